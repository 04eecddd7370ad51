package target

const hostPlatform = PlatformMacOS
