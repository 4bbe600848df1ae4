//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package platform

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/sys/unix"
)

// kern.osrelease is MIB {CTL_KERN, KERN_OSRELEASE} = {1, 2} on every BSD kernel.
// x/sys resolves names with sysctlnametomib, or a static table on OpenBSD.
const (
	mibOSRelease = "kern.osrelease"
	mibHostName  = "kern.hostname"
	mibNCPU      = "hw.ncpu"
	mibPageSize  = "hw.pagesize"
)

// sysctlUint reads an integer MIB of either width in native byte order.
func sysctlUint(name string) (uint64, error) {
	raw, err := unix.SysctlRaw(name)
	if err != nil {
		return 0, ioError("sysctl "+name, err)
	}
	switch len(raw) {
	case 4:
		return uint64(binary.NativeEndian.Uint32(raw)), nil
	case 8:
		return binary.NativeEndian.Uint64(raw), nil
	default:
		return 0, genericError("sysctl "+name, "unexpected value size "+strconv.Itoa(len(raw)))
	}
}

func sysctlString(name string) (string, error) {
	v, err := unix.Sysctl(name)
	if err != nil {
		return "", ioError("sysctl "+name, err)
	}
	return v, nil
}

func osRelease() (string, error) {
	raw, err := sysctlString(mibOSRelease)
	if err != nil {
		return "", err
	}
	return formatRelease("sysctl "+mibOSRelease, raw)
}

func computerName() (string, error) {
	raw, err := unix.SysctlRaw(mibHostName)
	if err != nil {
		return "", ioError("sysctl "+mibHostName, err)
	}
	return decodeHostName("sysctl "+mibHostName, raw)
}

func cpuStats() (CPUInfo, error) {
	n, err := sysctlUint(mibNCPU)
	if err != nil {
		return CPUInfo{}, err
	}
	if n < 1 {
		return CPUInfo{}, genericError("sysctl "+mibNCPU, "no logical processors reported")
	}
	return CPUInfo{NumOfProcessors: uint32(n)}, nil
}

// pagesToKiB converts a page-count MIB to KiB.
func pagesToKiB(name string) (uint64, error) {
	pages, err := sysctlUint(name)
	if err != nil {
		return 0, err
	}
	pageSize, err := sysctlUint(mibPageSize)
	if err != nil {
		return 0, err
	}
	return toKiB(pages * pageSize), nil
}
