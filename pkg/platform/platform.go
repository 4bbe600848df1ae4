package platform

// Stats is the set of operations every backend provides.
type Stats interface {
	// DiskStats returns the capacity of the filesystem mounted at path
	// (a mount point on Unix, a drive root such as `C:\` on Windows).
	DiskStats(path string) (DiskInfo, error)

	// MemoryStats returns physical and swap memory counters in KiB.
	MemoryStats() (MemoryInfo, error)

	// OSRelease returns the OS version as "major.minor.build".
	OSRelease() (string, error)

	// OSType returns the static label of the compiled-in backend.
	OSType() string

	// CPUStats returns the logical processor count.
	CPUStats() (CPUInfo, error)

	// ComputerName returns the host name.
	ComputerName() (string, error)
}

// Platform is the entry point to the compiled-in backend.
// The zero value is ready to use and safe for concurrent use.
type Platform struct{}

var _ Stats = Platform{}

func (Platform) DiskStats(path string) (DiskInfo, error) { return diskStats(path) }
func (Platform) MemoryStats() (MemoryInfo, error)        { return memoryStats() }
func (Platform) OSRelease() (string, error)              { return osRelease() }
func (Platform) OSType() string                          { return osType }
func (Platform) CPUStats() (CPUInfo, error)              { return cpuStats() }
func (Platform) ComputerName() (string, error)           { return computerName() }

// DiskStats returns the capacity of the filesystem mounted at path.
// A missing mount point or drive is a KindIO error carrying the OS error code.
func DiskStats(path string) (DiskInfo, error) { return diskStats(path) }

// MemoryStats returns memory counters in KiB. Total is always > 0 on success.
//
// Counters not exposed by the native interface are 0:
//   - linux:              Avail, Cached
//   - darwin:             Avail, Buffers, Cached
//   - freebsd, dragonfly: Avail, Cached, SwapTotal, SwapFree
//   - openbsd, netbsd:    Avail, Buffers, Cached
//   - windows:            Avail, Buffers, Cached
func MemoryStats() (MemoryInfo, error) { return memoryStats() }

// OSRelease returns the OS version normalized to "major.minor.build".
func OSRelease() (string, error) { return osRelease() }

// OSType returns the label of the build target: "Linux", "Darwin", "FreeBSD",
// "OpenBSD", "NetBSD", "DragonFly" or "Windows". It performs no OS call.
func OSType() string { return osType }

// CPUStats returns the logical processor count, always >= 1 on success.
func CPUStats() (CPUInfo, error) { return cpuStats() }

// ComputerName returns the non-empty host name.
func ComputerName() (string, error) { return computerName() }
