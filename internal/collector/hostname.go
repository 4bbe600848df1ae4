package collector

import (
	"context"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// HostnameCollector collects the host name.
type HostnameCollector struct {
	stats platform.Stats
}

// NewHostnameCollector creates a new host name collector.
func NewHostnameCollector(stats platform.Stats) *HostnameCollector {
	return &HostnameCollector{stats: stats}
}

func (c *HostnameCollector) Name() string { return NameHostname }

// Collect returns the host name as a string.
func (c *HostnameCollector) Collect(ctx context.Context) (interface{}, error) {
	name, err := callWithContext(ctx, c.stats.ComputerName)
	if err != nil {
		return nil, err
	}
	return name, nil
}

func (c *HostnameCollector) IsAvailable() bool { return true }
