package platform

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	osType = "Windows"

	// MAX_COMPUTERNAME_LENGTH
	maxComputerNameLength = 15
)

var (
	modKernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetDiskFreeSpaceW    = modKernel32.NewProc("GetDiskFreeSpaceW")
	procGlobalMemoryStatusEx = modKernel32.NewProc("GlobalMemoryStatusEx")
	procGetVersionExW        = modKernel32.NewProc("GetVersionExW")
	procGetSystemInfo        = modKernel32.NewProc("GetSystemInfo")
)

// memoryStatusEx matches MEMORYSTATUSEX.
type memoryStatusEx struct {
	length               uint32
	memoryLoad           uint32
	totalPhys            uint64
	availPhys            uint64
	totalPageFile        uint64
	availPageFile        uint64
	totalVirtual         uint64
	availVirtual         uint64
	availExtendedVirtual uint64
}

// osVersionInfo matches OSVERSIONINFOW.
type osVersionInfo struct {
	osVersionInfoSize uint32
	majorVersion      uint32
	minorVersion      uint32
	buildNumber       uint32
	platformID        uint32
	csdVersion        [128]uint16
}

// systemInfo matches SYSTEM_INFO.
type systemInfo struct {
	processorArchitecture     uint16
	reserved                  uint16
	pageSize                  uint32
	minimumApplicationAddress uintptr
	maximumApplicationAddress uintptr
	activeProcessorMask       uintptr
	numberOfProcessors        uint32
	processorType             uint32
	allocationGranularity     uint32
	processorLevel            uint16
	processorRevision         uint16
}

// lastError turns the error returned by LazyProc.Call into a native code,
// falling back to a generic error when the call left GetLastError at 0.
func lastError(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno != 0 {
		return ioError(op, errno)
	}
	return genericError(op, "call failed without an error code")
}

func diskStats(path string) (DiskInfo, error) {
	root, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return DiskInfo{}, ioError("GetDiskFreeSpaceW "+path, err)
	}
	var sectorsPerCluster, bytesPerSector, freeClusters, totalClusters uint32
	ret, _, callErr := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(root)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)),
	)
	if ret == 0 {
		return DiskInfo{}, lastError("GetDiskFreeSpaceW "+path, callErr)
	}
	bytesPerCluster := uint64(sectorsPerCluster) * uint64(bytesPerSector)
	return DiskInfo{
		Total: bytesPerCluster * uint64(totalClusters),
		Free:  bytesPerCluster * uint64(freeClusters),
	}, nil
}

func memoryStats() (MemoryInfo, error) {
	var ms memoryStatusEx
	ms.length = uint32(unsafe.Sizeof(ms))
	ret, _, callErr := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&ms)))
	if ret == 0 {
		return MemoryInfo{}, lastError("GlobalMemoryStatusEx", callErr)
	}
	if ms.totalPhys == 0 {
		return MemoryInfo{}, genericError("GlobalMemoryStatusEx", "cannot get memory information")
	}
	return MemoryInfo{
		Total:     toKiB(ms.totalPhys),
		Free:      toKiB(ms.availPhys),
		SwapTotal: toKiB(ms.totalPageFile),
		SwapFree:  toKiB(ms.availPageFile),
	}, nil
}

func osRelease() (string, error) {
	var vi osVersionInfo
	vi.osVersionInfoSize = uint32(unsafe.Sizeof(vi))
	ret, _, callErr := procGetVersionExW.Call(uintptr(unsafe.Pointer(&vi)))
	if ret == 0 {
		return "", lastError("GetVersionExW", callErr)
	}
	return joinRelease(uint64(vi.majorVersion), uint64(vi.minorVersion), uint64(vi.buildNumber)), nil
}

func cpuStats() (CPUInfo, error) {
	var si systemInfo
	// GetSystemInfo returns void and cannot fail.
	procGetSystemInfo.Call(uintptr(unsafe.Pointer(&si)))
	if si.numberOfProcessors < 1 {
		return CPUInfo{}, genericError("GetSystemInfo", "no logical processors reported")
	}
	return CPUInfo{NumOfProcessors: si.numberOfProcessors}, nil
}

func computerName() (string, error) {
	var buf [maxComputerNameLength + 1]uint16
	n := uint32(len(buf))
	if err := windows.GetComputerName(&buf[0], &n); err != nil {
		return "", ioError("GetComputerNameW", err)
	}
	return decodeComputerName(buf[:], n)
}

// decodeComputerName decodes the first n characters of buf. n is clamped to
// the buffer so a misreported length cannot index past it.
func decodeComputerName(buf []uint16, n uint32) (string, error) {
	if n > uint32(len(buf)) {
		n = uint32(len(buf))
	}
	return decodeUTF16("GetComputerNameW", buf[:n])
}
