package platform

const (
	osType = "OpenBSD"

	// hw.physmem resolves to HW_PHYSMEM64.
	mibPhysMem = "hw.physmem"
	mibUvmexp  = "vm.uvmexp"
)
