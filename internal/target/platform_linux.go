package target

const hostPlatform = PlatformLinux
