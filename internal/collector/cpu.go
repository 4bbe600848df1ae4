// CPU collector: logical processor count.
package collector

import (
	"context"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// CPUCollector collects the logical processor count.
type CPUCollector struct {
	stats platform.Stats
}

// NewCPUCollector creates a new CPU collector.
func NewCPUCollector(stats platform.Stats) *CPUCollector {
	return &CPUCollector{stats: stats}
}

// Name returns the collector identifier.
func (c *CPUCollector) Name() string { return NameCPU }

// Collect returns a platform.CPUInfo.
func (c *CPUCollector) Collect(ctx context.Context) (interface{}, error) {
	info, err := callWithContext(ctx, c.stats.CPUStats)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// IsAvailable returns true; every backend reports a processor count.
func (c *CPUCollector) IsAvailable() bool { return true }
