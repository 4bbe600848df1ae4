package platform

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sys/unix"
)

const osType = "Linux"

func memoryStats() (MemoryInfo, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return MemoryInfo{}, ioError("sysinfo", err)
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	info := MemoryInfo{
		Total:     toKiB(uint64(si.Totalram) * unit),
		Free:      toKiB(uint64(si.Freeram) * unit),
		Buffers:   toKiB(uint64(si.Bufferram) * unit),
		SwapTotal: toKiB(uint64(si.Totalswap) * unit),
		SwapFree:  toKiB(uint64(si.Freeswap) * unit),
	}
	if info.Total == 0 {
		return MemoryInfo{}, genericError("sysinfo", "cannot get memory information")
	}
	return info, nil
}

func osRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ioError("uname", err)
	}
	return formatRelease("uname", unix.ByteSliceToString(uts.Release[:]))
}

func computerName() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ioError("uname", err)
	}
	return decodeHostName("uname", uts.Nodename[:])
}

func cpuStats() (CPUInfo, error) {
	n, err := cpu.Counts(true)
	if err != nil {
		return CPUInfo{}, ioError("cpu count", err)
	}
	if n < 1 {
		return CPUInfo{}, genericError("cpu count", "no logical processors reported")
	}
	return CPUInfo{NumOfProcessors: uint32(n)}, nil
}
