package target

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Unknown is the label reported when no classification matches.
const Unknown = "Unknown"

// PointerSize is the size in bytes of a native pointer on the build target.
const PointerSize = int(unsafe.Sizeof(unsafe.Pointer(nil)))

// Platform is the operating system family a binary targets.
type Platform string

// Platform identities, in the order they are tested.
const (
	PlatformLinux   Platform = "Linux"
	PlatformWindows Platform = "Windows"
	PlatformMacOS   Platform = "macOS"
	PlatformUnix    Platform = "Unix"
	PlatformUnknown Platform = Unknown
)

// String returns the platform label, or Unknown for the empty value.
func (p Platform) String() string {
	if p == "" {
		return Unknown
	}
	return string(p)
}

// Platforms lists every Platform label in evaluation order.
func Platforms() []Platform {
	return []Platform{PlatformLinux, PlatformWindows, PlatformMacOS, PlatformUnix, PlatformUnknown}
}

// Architecture is the instruction set family a binary targets.
type Architecture string

// Architecture identities, in the order they are tested.
const (
	ArchX8664   Architecture = "x86_64"
	ArchX86     Architecture = "x86"
	ArchARM64   Architecture = "ARM64"
	ArchARM     Architecture = "ARM"
	ArchUnknown Architecture = Unknown
)

// String returns the architecture label, or Unknown for the empty value.
func (a Architecture) String() string {
	if a == "" {
		return Unknown
	}
	return string(a)
}

// Display returns the label as printed in the report. The x86 family
// carries its word size.
func (a Architecture) Display() string {
	switch a {
	case ArchX8664:
		return "x86_64 (64-bit)"
	case ArchX86:
		return "x86 (32-bit)"
	default:
		return a.String()
	}
}

// Architectures lists every Architecture label in evaluation order.
func Architectures() []Architecture {
	return []Architecture{ArchX8664, ArchX86, ArchARM64, ArchARM, ArchUnknown}
}

// CompilerFamily names the C toolchain that compiled the binary.
type CompilerFamily string

// Compiler families, in the order their predefined macros are tested.
const (
	CompilerGCC     CompilerFamily = "GCC"
	CompilerClang   CompilerFamily = "Clang"
	CompilerMSVC    CompilerFamily = "MSVC"
	CompilerUnknown CompilerFamily = Unknown
)

// Compiler is a compiler family with the version it reported about itself.
type Compiler struct {
	Family CompilerFamily
	Major  int
	Minor  int
	Patch  int
}

// Known reports whether the family was identified.
func (c Compiler) Known() bool {
	return c.Family != "" && c.Family != CompilerUnknown
}

// String renders "GCC 13.2.0", or Unknown.
func (c Compiler) String() string {
	if !c.Known() {
		return Unknown
	}
	return fmt.Sprintf("%s %d.%d.%d", c.Family, c.Major, c.Minor, c.Patch)
}

// Toolchain is the Go toolchain that produced the binary.
type Toolchain struct {
	// Name is runtime.Compiler: "gc" or "gccgo".
	Name string
	// Version is runtime.Version().
	Version string
}

// String renders "gc go1.25.5".
func (t Toolchain) String() string {
	return t.Name + " " + t.Version
}

// Info is the full identity of a build target.
type Info struct {
	OS          Platform
	Arch        Architecture
	Compiler    Compiler
	Toolchain   Toolchain
	PointerSize int
}

var hostCompiler = detectCompiler()

// Host returns the identity of the running binary.
func Host() Info {
	return Info{
		OS:          hostPlatform,
		Arch:        hostArch,
		Compiler:    hostCompiler,
		Toolchain:   currentToolchain(),
		PointerSize: PointerSize,
	}
}

func currentToolchain() Toolchain {
	return Toolchain{Name: runtime.Compiler, Version: runtime.Version()}
}
