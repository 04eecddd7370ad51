package target

const hostArch = ArchARM64
