//go:build dragonfly || freebsd

package platform

func memoryStats() (MemoryInfo, error) {
	total, err := sysctlUint("hw.physmem")
	if err != nil {
		return MemoryInfo{}, err
	}
	if total == 0 {
		return MemoryInfo{}, genericError("sysctl hw.physmem", "cannot get memory information")
	}
	free, err := pagesToKiB("vm.stats.vm.v_free_count")
	if err != nil {
		return MemoryInfo{}, err
	}
	buffers, err := sysctlUint("vfs.bufspace")
	if err != nil {
		return MemoryInfo{}, err
	}
	// Swap totals come from kvm_getswapinfo, not from a MIB; they stay 0.
	return MemoryInfo{
		Total:   toKiB(total),
		Free:    free,
		Buffers: toKiB(buffers),
	}, nil
}
