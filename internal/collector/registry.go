// Package collector provides a registry for managing statistic collectors.
// Collectors are registered at startup; CollectAll runs every available
// collector concurrently for one snapshot.
package collector

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// Registry manages all registered collectors and orchestrates concurrent collection.
type Registry struct {
	collectors []Collector
	logger     *zap.Logger
}

// NewRegistry creates a new collector registry with the given logger.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		collectors: make([]Collector, 0),
		logger:     logger,
	}
}

// NewDefaultRegistry registers the built-in collectors named in enabled
// (all of them when enabled is empty). Unknown names are an error.
func NewDefaultRegistry(stats platform.Stats, enabled, diskPaths []string, logger *zap.Logger) (*Registry, error) {
	r := NewRegistry(logger)
	if len(enabled) == 0 {
		enabled = AllNames
	}
	for _, name := range enabled {
		switch name {
		case NameHostname:
			r.Register(NewHostnameCollector(stats))
		case NameOS:
			r.Register(NewOSInfoCollector(stats))
		case NameCPU:
			r.Register(NewCPUCollector(stats))
		case NameMemory:
			r.Register(NewMemoryCollector(stats))
		case NameDisk:
			r.Register(NewDiskCollector(stats, diskPaths, r.logger))
		default:
			return nil, fmt.Errorf("unknown collector %q", name)
		}
	}
	return r, nil
}

// Register adds a collector if it's available on the current platform.
// Unavailable collectors are logged and skipped.
func (r *Registry) Register(c Collector) {
	if c.IsAvailable() {
		r.collectors = append(r.collectors, c)
		r.logger.Debug("Registered collector", zap.String("name", c.Name()))
	} else {
		r.logger.Warn("Collector not available, skipping", zap.String("name", c.Name()))
	}
}

// CollectAll runs all registered collectors concurrently and returns a map
// of collector name -> result data. A failed collector is logged and its
// error is folded into the returned error; it never prevents other
// collectors from completing. Partial data returned with an error is kept.
func (r *Registry) CollectAll(ctx context.Context) (map[string]interface{}, error) {
	results := make(map[string]interface{})
	var errs error
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, c := range r.collectors {
		wg.Add(1)
		go func(col Collector) {
			defer wg.Done()
			data, err := col.Collect(ctx)

			mu.Lock()
			defer mu.Unlock()
			if data != nil {
				results[col.Name()] = data
			}
			if err != nil {
				r.logger.Error("Collection failed",
					zap.String("collector", col.Name()),
					zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", col.Name(), err))
			}
		}(c)
	}

	wg.Wait()
	return results, errs
}

// Collectors returns a copy of all registered collectors.
func (r *Registry) Collectors() []Collector {
	result := make([]Collector, len(r.collectors))
	copy(result, r.collectors)
	return result
}
