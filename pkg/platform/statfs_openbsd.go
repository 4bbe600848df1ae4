package platform

import "golang.org/x/sys/unix"

const statFSCall = "statfs"

func statFS(path string) (fsUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return fsUsage{}, err
	}
	return fsUsage{blocks: st.F_blocks, avail: st.F_bavail, bsize: uint64(st.F_bsize)}, nil
}
