//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows

package platform

import (
	"regexp"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var releasePattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func rootPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

func TestDiskStatsRoot(t *testing.T) {
	info, err := DiskStats(rootPath())
	require.NoError(t, err)
	require.Greater(t, info.Total, uint64(0))
	require.LessOrEqual(t, info.Free, info.Total)
}

func TestMemoryStats(t *testing.T) {
	info, err := MemoryStats()
	require.NoError(t, err)
	require.Greater(t, info.Total, uint64(0))
	require.LessOrEqual(t, info.Free, info.Total)
	require.LessOrEqual(t, info.SwapFree, info.SwapTotal)
	require.Zero(t, info.Cached, "no backend reads cached memory")
	require.Zero(t, info.Avail, "no backend reads available memory")
}

func TestCPUStats(t *testing.T) {
	info, err := CPUStats()
	require.NoError(t, err)
	require.GreaterOrEqual(t, info.NumOfProcessors, uint32(1))
}

func TestOSRelease(t *testing.T) {
	release, err := OSRelease()
	require.NoError(t, err)
	require.Regexp(t, releasePattern, release)
}

func TestOSType(t *testing.T) {
	want := map[string]string{
		"linux":     "Linux",
		"darwin":    "Darwin",
		"freebsd":   "FreeBSD",
		"openbsd":   "OpenBSD",
		"netbsd":    "NetBSD",
		"dragonfly": "DragonFly",
		"windows":   "Windows",
	}[runtime.GOOS]
	require.Equal(t, want, OSType())
	require.Equal(t, OSType(), Platform{}.OSType())
}

func TestComputerName(t *testing.T) {
	name, err := ComputerName()
	require.NoError(t, err)
	require.NotEmpty(t, name)
}

func TestPlatformMatchesPackageFunctions(t *testing.T) {
	var s Stats = Platform{}

	cpu, err := s.CPUStats()
	require.NoError(t, err)
	want, err := CPUStats()
	require.NoError(t, err)
	require.Equal(t, want, cpu)

	name, err := s.ComputerName()
	require.NoError(t, err)
	wantName, err := ComputerName()
	require.NoError(t, err)
	require.Equal(t, wantName, name)
}

func TestConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := Platform{}
			if _, err := p.DiskStats(rootPath()); err != nil {
				errs <- err
			}
			if _, err := p.MemoryStats(); err != nil {
				errs <- err
			}
			if _, err := p.OSRelease(); err != nil {
				errs <- err
			}
			if _, err := p.CPUStats(); err != nil {
				errs <- err
			}
			if _, err := p.ComputerName(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
