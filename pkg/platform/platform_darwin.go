package platform

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

const osType = "Darwin"

func memoryStats() (MemoryInfo, error) {
	total, err := sysctlUint("hw.memsize")
	if err != nil {
		return MemoryInfo{}, err
	}
	if total == 0 {
		return MemoryInfo{}, genericError("sysctl hw.memsize", "cannot get memory information")
	}
	free, err := pagesToKiB("vm.page_free_count")
	if err != nil {
		return MemoryInfo{}, err
	}
	swapTotal, swapFree, err := swapUsage()
	if err != nil {
		return MemoryInfo{}, err
	}
	return MemoryInfo{
		Total:     toKiB(total),
		Free:      free,
		SwapTotal: toKiB(swapTotal),
		SwapFree:  toKiB(swapFree),
	}, nil
}

// swapUsage decodes struct xsw_usage; its first two fields are
// xsu_total and xsu_avail, both in bytes.
func swapUsage() (total, avail uint64, err error) {
	raw, err := unix.SysctlRaw("vm.swapusage")
	if err != nil {
		return 0, 0, ioError("sysctl vm.swapusage", err)
	}
	if len(raw) < 16 {
		return 0, 0, genericError("sysctl vm.swapusage", "short xsw_usage")
	}
	return binary.NativeEndian.Uint64(raw[0:8]), binary.NativeEndian.Uint64(raw[8:16]), nil
}
