// Disk collector: capacity of configured paths or of every local mount.
// Mount enumeration uses gopsutil; the capacity itself comes from platform.Stats.
package collector

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vitalis-app/sysinfo/internal/models"
	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// pseudoFSTypes contains filesystem types that should be excluded from disk metrics.
// These are virtual/system filesystems and network/remote filesystems that don't
// represent local storage devices.
var pseudoFSTypes = map[string]bool{
	// Virtual / system filesystems
	"devfs":         true,
	"autofs":        true,
	"nullfs":        true,
	"tmpfs":         true,
	"sysfs":         true,
	"proc":          true,
	"procfs":        true,
	"devtmpfs":      true,
	"cgroup":        true,
	"cgroup2":       true,
	"overlay":       true,
	"squashfs":      true,
	"fuse.snapfuse": true,
	"nsfs":          true,
	"pstore":        true,
	"debugfs":       true,
	"tracefs":       true,
	"securityfs":    true,
	"configfs":      true,
	"fusectl":       true,
	"mqueue":        true,
	"hugetlbfs":     true,
	"binfmt_misc":   true,
	"efivarfs":      true,
	"bpf":           true,
	"ramfs":         true,

	// Network / remote filesystems
	"nfs":        true,
	"nfs4":       true,
	"cifs":       true,
	"smbfs":      true,
	"fuse.sshfs": true,
	"9p":         true,
	"afs":        true,
	"glusterfs":  true,
	"ceph":       true,
	"davfs2":     true,
}

// isSystemMount returns true for macOS system volumes and other OS-internal
// paths that shouldn't be shown to users.
func isSystemMount(mount string) bool {
	for _, prefix := range []string{"/System/Volumes/", "/private/var/vm"} {
		if strings.HasPrefix(mount, prefix) {
			return true
		}
	}
	return false
}

// partitionLister matches disk.PartitionsWithContext.
type partitionLister func(ctx context.Context, all bool) ([]disk.PartitionStat, error)

// DiskCollector collects filesystem capacity.
type DiskCollector struct {
	stats  platform.Stats
	paths  []string
	list   partitionLister
	logger *zap.Logger
}

// NewDiskCollector creates a disk collector. With no paths it reports every
// local, non-pseudo mount; otherwise exactly the given paths.
func NewDiskCollector(stats platform.Stats, paths []string, logger *zap.Logger) *DiskCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiskCollector{
		stats:  stats,
		paths:  paths,
		list:   disk.PartitionsWithContext,
		logger: logger,
	}
}

// Name returns the collector identifier.
func (c *DiskCollector) Name() string { return NameDisk }

// Collect returns []models.DiskUsage. A configured path that cannot be read
// fails the collector but the readable paths are still returned alongside
// the error. Enumerated mounts that cannot be read are skipped.
func (c *DiskCollector) Collect(ctx context.Context) (interface{}, error) {
	if len(c.paths) > 0 {
		return c.collectPaths(ctx)
	}
	return c.collectMounts(ctx)
}

func (c *DiskCollector) collectPaths(ctx context.Context) (interface{}, error) {
	var (
		results []models.DiskUsage
		errs    error
	)
	for _, p := range c.paths {
		usage, err := c.usage(ctx, p, "")
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		results = append(results, usage)
	}
	if results == nil {
		return nil, errs
	}
	return results, errs
}

func (c *DiskCollector) collectMounts(ctx context.Context) (interface{}, error) {
	partitions, err := c.list(ctx, false)
	if err != nil {
		return nil, err
	}

	var results []models.DiskUsage
	for _, p := range partitions {
		if pseudoFSTypes[p.Fstype] {
			c.logger.Debug("Skipping pseudo/network filesystem",
				zap.String("mount", p.Mountpoint),
				zap.String("fstype", p.Fstype))
			continue
		}
		if isSystemMount(p.Mountpoint) {
			continue
		}

		usage, err := c.usage(ctx, driveRoot(p.Mountpoint), p.Fstype)
		if err != nil {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
			c.logger.Debug("Skipping unreadable mount",
				zap.String("mount", p.Mountpoint),
				zap.Error(err))
			continue
		}
		// Some virtual mounts report 0 size
		if usage.Total == 0 {
			continue
		}
		results = append(results, usage)
	}
	return results, nil
}

func (c *DiskCollector) usage(ctx context.Context, path, fstype string) (models.DiskUsage, error) {
	info, err := callWithContext(ctx, func() (platform.DiskInfo, error) {
		return c.stats.DiskStats(path)
	})
	if err != nil {
		return models.DiskUsage{}, err
	}
	return models.DiskUsage{
		Path:  path,
		Fs:    fstype,
		Total: info.Total,
		Used:  info.Used(),
		Free:  info.Free,
	}, nil
}

// driveRoot turns a bare Windows drive ("C:") into its root ("C:\"), which
// is the form GetDiskFreeSpaceW expects.
func driveRoot(mount string) string {
	if runtime.GOOS == "windows" && len(mount) == 2 && mount[1] == ':' {
		return mount + `\`
	}
	return mount
}

// IsAvailable returns true; disk metrics are available on all platforms.
func (c *DiskCollector) IsAvailable() bool { return true }
