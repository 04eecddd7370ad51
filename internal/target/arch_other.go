//go:build !amd64 && !386 && !arm64 && !arm

package target

const hostArch = ArchUnknown
