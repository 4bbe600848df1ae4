//go:build darwin || dragonfly || freebsd

package platform

import "golang.org/x/sys/unix"

const statFSCall = "statfs"

func statFS(path string) (fsUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return fsUsage{}, err
	}
	return fsUsage{blocks: uint64(st.Blocks), avail: int64(st.Bavail), bsize: uint64(st.Bsize)}, nil
}
