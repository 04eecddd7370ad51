package target

const hostPlatform = PlatformWindows
