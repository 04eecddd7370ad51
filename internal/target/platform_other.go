//go:build !unix && !windows

package target

// js, wasip1 and plan9 have no platform family.
const hostPlatform = PlatformUnknown
