package target

const hostArch = ArchX86
