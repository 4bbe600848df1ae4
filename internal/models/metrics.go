// Package models defines the snapshot structures rendered by the CLI.
// These structures are serialized to JSON or YAML.
package models

import (
	"time"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// Snapshot represents a single point-in-time reading of every host statistic.
// Sections whose collector failed are left at their zero value.
type Snapshot struct {
	Timestamp time.Time            `json:"timestamp" yaml:"timestamp"`
	Hostname  string               `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	OSType    string               `json:"os_type,omitempty" yaml:"os_type,omitempty"`
	OSRelease string               `json:"os_release,omitempty" yaml:"os_release,omitempty"`
	CPU       *platform.CPUInfo    `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory    *platform.MemoryInfo `json:"memory,omitempty" yaml:"memory,omitempty"`
	Disks     []DiskUsage          `json:"disks,omitempty" yaml:"disks,omitempty"`
	Errors    []string             `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// DiskUsage represents capacity for a single mount point or drive, in bytes.
type DiskUsage struct {
	Path  string `json:"path" yaml:"path"`
	Fs    string `json:"fs,omitempty" yaml:"fs,omitempty"`
	Total uint64 `json:"total" yaml:"total"`
	Used  uint64 `json:"used" yaml:"used"`
	Free  uint64 `json:"free" yaml:"free"`
}

// OSInfo is the combined output of the os collector.
type OSInfo struct {
	Type    string `json:"type" yaml:"type"`
	Release string `json:"release" yaml:"release"`
}

// CollectorResult holds the output of a single collector run.
type CollectorResult struct {
	Name  string
	Data  interface{}
	Error error
}
