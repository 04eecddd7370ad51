//go:build !cgo

package target

// cCompiler has nothing to report without cgo; no C compiler took part in
// the build.
func cCompiler() Compiler {
	return Compiler{Family: CompilerUnknown}
}
