// Package platform reports point-in-time host resource statistics: disk
// capacity, memory usage, logical CPU count, OS release and type, and the
// host name.
//
// Exactly one backend is compiled in, chosen by build constraints:
//   - linux:   statfs(2), sysinfo(2), uname(2)
//   - darwin, freebsd, dragonfly, openbsd: statfs(2) and sysctl MIB reads
//   - netbsd:  statvfs(2) and sysctl MIB reads
//   - windows: kernel32 (GetDiskFreeSpaceW, GlobalMemoryStatusEx,
//     GetVersionExW, GetSystemInfo, GetComputerNameW)
//
// Other targets build against a backend that reports errors.ErrUnsupported.
//
// Every call is a fresh synchronous snapshot. The package holds no state and
// applies no timeout; callers that need bounded latency wrap the call.
//
// Memory figures are always in KiB. Fields a backend cannot read from its
// native interface are 0; see MemoryStats for the per-OS list.
package platform
