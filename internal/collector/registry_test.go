package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

type unavailableCollector struct{}

func (unavailableCollector) Name() string { return "unavailable" }
func (unavailableCollector) Collect(context.Context) (interface{}, error) {
	return nil, errors.New("must not run")
}
func (unavailableCollector) IsAvailable() bool { return false }

func TestRegistryCollectAll(t *testing.T) {
	r, err := NewDefaultRegistry(newFake(), nil, []string{"/"}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, r.Collectors(), len(AllNames))

	results, err := r.CollectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(AllNames))
	require.Equal(t, "build-01", results[NameHostname])
}

func TestRegistryPartialFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	f := newFake()
	f.memErr = &platform.ResourceError{Kind: platform.KindGeneric, Op: "sysinfo", Reason: "cannot get memory information"}
	f.nameErr = errors.New("no host name")

	r, err := NewDefaultRegistry(f, nil, []string{"/"}, zap.New(core))
	require.NoError(t, err)

	results, err := r.CollectAll(context.Background())
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 2)
	require.True(t, platform.IsGeneric(err))

	require.NotContains(t, results, NameMemory)
	require.NotContains(t, results, NameHostname)
	require.Contains(t, results, NameCPU)
	require.Contains(t, results, NameDisk)
	require.Equal(t, 2, logs.FilterMessage("Collection failed").Len())
}

func TestRegistrySelectedCollectors(t *testing.T) {
	r, err := NewDefaultRegistry(newFake(), []string{NameCPU, NameOS}, nil, nil)
	require.NoError(t, err)
	require.Len(t, r.Collectors(), 2)

	_, err = NewDefaultRegistry(newFake(), []string{"gpu"}, nil, nil)
	require.EqualError(t, err, `unknown collector "gpu"`)
}

func TestRegistrySkipsUnavailable(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(unavailableCollector{})
	require.Empty(t, r.Collectors())

	results, err := r.CollectAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, results)
}
