package platform

import "golang.org/x/sys/unix"

// NetBSD replaced statfs(2) with statvfs(2).
const statFSCall = "statvfs"

func statFS(path string) (fsUsage, error) {
	var st unix.Statvfs_t
	if err := unix.Statvfs(path, &st); err != nil {
		return fsUsage{}, err
	}
	bsize := uint64(st.Bsize)
	if st.Frsize > 0 {
		bsize = uint64(st.Frsize)
	}
	return fsUsage{blocks: uint64(st.Blocks), avail: int64(st.Bavail), bsize: bsize}, nil
}
