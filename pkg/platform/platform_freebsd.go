package platform

const osType = "FreeBSD"
