package platform

// DiskInfo holds the capacity of one filesystem, in bytes.
type DiskInfo struct {
	Total uint64 `json:"total" yaml:"total"`
	Free  uint64 `json:"free" yaml:"free"`
}

// Used returns Total - Free, or 0 if the backend reported Free > Total.
func (d DiskInfo) Used() uint64 {
	if d.Free > d.Total {
		return 0
	}
	return d.Total - d.Free
}

// MemoryInfo holds physical and swap memory counters, in KiB.
// Counters the active backend cannot obtain are 0.
type MemoryInfo struct {
	Total     uint64 `json:"total" yaml:"total"`
	Free      uint64 `json:"free" yaml:"free"`
	Avail     uint64 `json:"avail" yaml:"avail"`
	Buffers   uint64 `json:"buffers" yaml:"buffers"`
	Cached    uint64 `json:"cached" yaml:"cached"`
	SwapTotal uint64 `json:"swap_total" yaml:"swap_total"`
	SwapFree  uint64 `json:"swap_free" yaml:"swap_free"`
}

// CPUInfo holds the logical processor count.
type CPUInfo struct {
	NumOfProcessors uint32 `json:"num_of_processors" yaml:"num_of_processors"`
}
