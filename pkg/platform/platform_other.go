//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package platform

import (
	"errors"
	"runtime"
)

// Targets without a native backend land here. Every fallible operation
// reports errors.ErrUnsupported.
const osType = runtime.GOOS

func unsupported(op string) error {
	return &ResourceError{
		Kind:   KindGeneric,
		Op:     op,
		Err:    errors.ErrUnsupported,
		Reason: "no backend for " + runtime.GOOS,
	}
}

func diskStats(string) (DiskInfo, error) { return DiskInfo{}, unsupported("disk stats") }
func memoryStats() (MemoryInfo, error)  { return MemoryInfo{}, unsupported("memory stats") }
func osRelease() (string, error)        { return "", unsupported("os release") }
func computerName() (string, error)     { return "", unsupported("computer name") }

// runtime.NumCPU is available on every target Go supports.
func cpuStats() (CPUInfo, error) {
	n := runtime.NumCPU()
	if n < 1 {
		return CPUInfo{}, unsupported("cpu stats")
	}
	return CPUInfo{NumOfProcessors: uint32(n)}, nil
}
