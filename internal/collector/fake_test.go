package collector

import (
	"time"

	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// fakeStats is a platform.Stats with canned answers.
type fakeStats struct {
	disks   map[string]platform.DiskInfo
	mem     platform.MemoryInfo
	memErr  error
	release string
	relErr  error
	cpus    uint32
	name    string
	nameErr error
	delay   time.Duration
}

var _ platform.Stats = (*fakeStats)(nil)

func (f *fakeStats) DiskStats(path string) (platform.DiskInfo, error) {
	time.Sleep(f.delay)
	d, ok := f.disks[path]
	if !ok {
		return platform.DiskInfo{}, &platform.ResourceError{Kind: platform.KindIO, Op: "statfs " + path}
	}
	return d, nil
}

func (f *fakeStats) MemoryStats() (platform.MemoryInfo, error) {
	time.Sleep(f.delay)
	return f.mem, f.memErr
}

func (f *fakeStats) OSRelease() (string, error) { return f.release, f.relErr }
func (f *fakeStats) OSType() string             { return "Linux" }

func (f *fakeStats) CPUStats() (platform.CPUInfo, error) {
	return platform.CPUInfo{NumOfProcessors: f.cpus}, nil
}

func (f *fakeStats) ComputerName() (string, error) { return f.name, f.nameErr }

func newFake() *fakeStats {
	return &fakeStats{
		disks: map[string]platform.DiskInfo{
			"/":     {Total: 100, Free: 40},
			"/data": {Total: 1000, Free: 900},
		},
		mem:     platform.MemoryInfo{Total: 2048, Free: 1024},
		release: "6.8.0",
		cpus:    4,
		name:    "build-01",
	}
}
