// Package target identifies the platform a cctarget binary was compiled for.
//
// Every identity is fixed when the binary is built. The operating system and
// architecture are chosen by build constraints (one platform_*.go and one
// arch_*.go file is compiled per target, so two answers cannot coexist), the
// C compiler identity comes from the preprocessor through cgo, and the
// pointer width is the size of unsafe.Pointer. Each classification falls
// through to Unknown, so [Host] cannot fail.
//
// [Lookup] answers the same question for a GOOS/GOARCH pair other than the
// host, using the port table embedded from targets.toml.
package target
