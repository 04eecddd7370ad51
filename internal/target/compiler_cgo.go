//go:build cgo

package target

/*
// GCC is tested first. Clang also defines __GNUC__ and therefore reports
// as GCC, the same answer a plain C program gets with this ordering.
#if defined(__GNUC__)
static int cct_family(void) { return 1; }
static int cct_major(void)  { return __GNUC__; }
static int cct_minor(void)  { return __GNUC_MINOR__; }
static int cct_patch(void)  { return __GNUC_PATCHLEVEL__; }
#elif defined(__clang__)
static int cct_family(void) { return 2; }
static int cct_major(void)  { return __clang_major__; }
static int cct_minor(void)  { return __clang_minor__; }
static int cct_patch(void)  { return __clang_patchlevel__; }
#elif defined(_MSC_VER)
static int cct_family(void) { return 3; }
static int cct_major(void)  { return _MSC_VER / 100; }
static int cct_minor(void)  { return _MSC_VER % 100; }
static int cct_patch(void)  { return 0; }
#else
static int cct_family(void) { return 0; }
static int cct_major(void)  { return 0; }
static int cct_minor(void)  { return 0; }
static int cct_patch(void)  { return 0; }
#endif
*/
import "C"

// cCompiler reports the C compiler cgo used for this build.
func cCompiler() Compiler {
	c := Compiler{
		Major: int(C.cct_major()),
		Minor: int(C.cct_minor()),
		Patch: int(C.cct_patch()),
	}
	switch C.cct_family() {
	case 1:
		c.Family = CompilerGCC
	case 2:
		c.Family = CompilerClang
	case 3:
		c.Family = CompilerMSVC
	default:
		return Compiler{Family: CompilerUnknown}
	}
	return c
}
