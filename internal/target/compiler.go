package target

import (
	"regexp"
	"runtime"
	"strconv"
)

// versionPattern matches dotted versions such as 13.2.0 or 1.25.
var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// detectCompiler prefers the C compiler that cgo built the binary with and
// falls back to what the Go toolchain says about itself.
func detectCompiler() Compiler {
	if c := cCompiler(); c.Known() {
		return c
	}
	return toolchainCompiler(runtime.Compiler, runtime.Version())
}

// toolchainCompiler maps a Go toolchain onto a compiler family. Only gccgo
// has one; its version string ends with the GCC release, as in
// "go1.18 gccgo (GCC) 12.2.0".
func toolchainCompiler(name, version string) Compiler {
	if name != "gccgo" {
		return Compiler{Family: CompilerUnknown}
	}
	c := Compiler{Family: CompilerGCC}
	c.Major, c.Minor, c.Patch = parseVersion(version)
	return c
}

// parseVersion returns the components of the last dotted version in s.
// Missing components are zero.
func parseVersion(s string) (major, minor, patch int) {
	matches := versionPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, 0, 0
	}
	m := matches[len(matches)-1]
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		patch, _ = strconv.Atoi(m[3])
	}
	return major, minor, patch
}
