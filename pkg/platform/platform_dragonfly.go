package platform

const osType = "DragonFly"
