//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package platform

// fsUsage is the raw block accounting of one filesystem.
type fsUsage struct {
	blocks uint64
	// avail is signed on the BSDs and goes negative once the root reserve is in use.
	avail int64
	bsize uint64
}

func diskStats(path string) (DiskInfo, error) {
	fs, err := statFS(path)
	if err != nil {
		return DiskInfo{}, ioError(statFSCall+" "+path, err)
	}
	return fs.info(), nil
}

func (u fsUsage) info() DiskInfo {
	avail := u.avail
	if avail < 0 {
		avail = 0
	}
	return DiskInfo{
		Total: u.blocks * u.bsize,
		Free:  uint64(avail) * u.bsize,
	}
}
