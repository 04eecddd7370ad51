package target

const hostArch = ArchARM
