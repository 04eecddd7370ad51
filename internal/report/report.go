// Package report renders the target report as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/cctarget/internal/target"
)

const (
	bannerTitle = "CCTARGET - Cross-Compilation Target Demonstrator"
	bannerRule  = "================================================="
	targetTitle = "Compilation Target Information:"
	targetRule  = "-------------------------------"
	argsTitle   = "Arguments passed:"
)

// Reporter writes the report sections to an io.Writer. After the first
// failed write every method is a no-op that returns that error.
type Reporter struct {
	out     io.Writer
	heading *color.Color
	err     error
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor enables or disables bold headings.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		if enabled {
			r.heading.EnableColor()
		} else {
			r.heading.DisableColor()
		}
	}
}

// New creates a Reporter writing to w. Headings are plain unless WithColor
// enables them.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:     w,
		heading: color.New(color.Bold),
	}
	r.heading.DisableColor()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}

// Banner writes the program title, its underline and a blank line.
func (r *Reporter) Banner() error {
	r.title(bannerTitle, bannerRule)
	r.printf("\n")
	return r.err
}

// Target writes the identity fields of info.
func (r *Reporter) Target(info target.Info) error {
	r.title(targetTitle, targetRule)
	r.printf("Operating System: %s\n", info.OS)
	r.printf("Architecture: %s\n", info.Arch.Display())
	r.printf("Compiler: %s\n", info.Compiler)
	r.printf("Go Toolchain: %s\n", info.Toolchain)
	r.printf("Pointer Size: %d bytes\n", info.PointerSize)
	return r.err
}

// Arguments echoes args with 1-based indices. It writes nothing for an
// empty slice.
func (r *Reporter) Arguments(args []string) error {
	if len(args) == 0 {
		return r.err
	}
	r.printf("\n")
	r.printf("%s\n", r.heading.Sprint(argsTitle))
	for i, arg := range args {
		r.printf("  [%d]: %s\n", i+1, arg)
	}
	return r.err
}

func (r *Reporter) title(text, rule string) {
	r.printf("%s\n%s\n", r.heading.Sprint(text), rule)
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.err = err
	}
}
