// OS info collector: backend label and normalized release.
package collector

import (
	"context"

	"github.com/vitalis-app/sysinfo/internal/models"
	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// OSInfoCollector collects the OS type and release.
type OSInfoCollector struct {
	stats platform.Stats
}

// NewOSInfoCollector creates a new OS info collector.
func NewOSInfoCollector(stats platform.Stats) *OSInfoCollector {
	return &OSInfoCollector{stats: stats}
}

// Name returns the collector identifier.
func (c *OSInfoCollector) Name() string { return NameOS }

// Collect returns a models.OSInfo. OSType never fails, so a release error
// still fails the whole collector: a type without a release is not reported.
func (c *OSInfoCollector) Collect(ctx context.Context) (interface{}, error) {
	release, err := callWithContext(ctx, c.stats.OSRelease)
	if err != nil {
		return nil, err
	}
	return models.OSInfo{
		Type:    c.stats.OSType(),
		Release: release,
	}, nil
}

// IsAvailable returns true; OS info is available on all platforms.
func (c *OSInfoCollector) IsAvailable() bool { return true }
