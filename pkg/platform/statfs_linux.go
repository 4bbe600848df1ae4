package platform

import "golang.org/x/sys/unix"

const statFSCall = "statfs"

// statFS counts blocks in fragments; kernels that predate f_frsize leave it 0.
func statFS(path string) (fsUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return fsUsage{}, err
	}
	bsize := uint64(st.Bsize)
	if st.Frsize > 0 {
		bsize = uint64(st.Frsize)
	}
	return fsUsage{blocks: uint64(st.Blocks), avail: int64(st.Bavail), bsize: bsize}, nil
}
