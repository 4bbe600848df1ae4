// Package collector defines the Collector interface and provides one
// collector per group of host statistics, each backed by a platform.Stats.
package collector

import "context"

// Collector is the interface that all statistic collectors must implement.
type Collector interface {
	// Name returns the unique identifier for this collector.
	Name() string

	// Collect reads the statistic and returns it.
	// The context bounds how long the caller waits for the OS call.
	Collect(ctx context.Context) (interface{}, error)

	// IsAvailable checks if this collector can run on the current platform.
	// Collectors that return false will not be registered.
	IsAvailable() bool
}

// Names of the built-in collectors.
const (
	NameCPU      = "cpu"
	NameMemory   = "memory"
	NameDisk     = "disk"
	NameOS       = "os"
	NameHostname = "hostname"
)

// AllNames lists every built-in collector in registration order.
var AllNames = []string{NameHostname, NameOS, NameCPU, NameMemory, NameDisk}

// callWithContext runs fn in its own goroutine and returns early if ctx is
// done first. Platform calls cannot be cancelled, so an abandoned call
// finishes in the background and its result is dropped.
func callWithContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()
	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
