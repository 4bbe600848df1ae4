//go:build netbsd || openbsd

package platform

import "golang.org/x/sys/unix"

func memoryStats() (MemoryInfo, error) {
	total, err := sysctlUint(mibPhysMem)
	if err != nil {
		return MemoryInfo{}, err
	}
	if total == 0 {
		return MemoryInfo{}, genericError("sysctl "+mibPhysMem, "cannot get memory information")
	}
	uvm, err := unix.SysctlUvmexp(mibUvmexp)
	if err != nil {
		return MemoryInfo{}, ioError("sysctl "+mibUvmexp, err)
	}
	page := uint64(uvm.Pagesize)
	swapTotal := uint64(uvm.Swpages) * page
	swapUsed := uint64(uvm.Swpginuse) * page
	if swapUsed > swapTotal {
		swapUsed = swapTotal
	}
	return MemoryInfo{
		Total:     toKiB(total),
		Free:      toKiB(uint64(uvm.Free) * page),
		SwapTotal: toKiB(swapTotal),
		SwapFree:  toKiB(swapTotal - swapUsed),
	}, nil
}
