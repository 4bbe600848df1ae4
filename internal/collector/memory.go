// Memory collector: physical and swap counters in KiB.
package collector

import (
	"context"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// MemoryCollector collects memory counters.
type MemoryCollector struct {
	stats platform.Stats
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector(stats platform.Stats) *MemoryCollector {
	return &MemoryCollector{stats: stats}
}

// Name returns the collector identifier.
func (c *MemoryCollector) Name() string { return NameMemory }

// Collect returns a platform.MemoryInfo.
func (c *MemoryCollector) Collect(ctx context.Context) (interface{}, error) {
	info, err := callWithContext(ctx, c.stats.MemoryStats)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// IsAvailable returns true; memory counters exist on every backend.
func (c *MemoryCollector) IsAvailable() bool { return true }
