package target

const hostArch = ArchX8664
