package platform

const (
	osType = "NetBSD"

	mibPhysMem = "hw.physmem64"
	// vm.uvmexp2 is the fixed-width struct uvmexp_sysctl.
	mibUvmexp = "vm.uvmexp2"
)
