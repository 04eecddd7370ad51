//go:build unix && !linux && !darwin

package target

// Remaining unix targets: the BSDs, illumos, solaris, aix, hurd.
const hostPlatform = PlatformUnix
