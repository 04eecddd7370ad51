package target

import (
	_ "embed"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/cctarget/internal/errors"
)

// ErrUnknownPointerWidth indicates a GOARCH missing from the port table.
var ErrUnknownPointerWidth = errors.New("unknown pointer width")

//go:embed targets.toml
var rawTable []byte

// Port is a GOOS/GOARCH pair the Go toolchain can build for.
type Port struct {
	GOOS   string `toml:"goos"`
	GOARCH string `toml:"goarch"`
}

// String renders the pair the way `go tool dist list` does.
func (p Port) String() string {
	return p.GOOS + "/" + p.GOARCH
}

type osGroup struct {
	Label Platform `toml:"label"`
	GOOS  []string `toml:"goos"`
}

type archGroup struct {
	Label  Architecture `toml:"label"`
	GOARCH []string     `toml:"goarch"`
}

type portTable struct {
	OS          []osGroup      `toml:"os"`
	Arch        []archGroup    `toml:"arch"`
	PointerSize map[string]int `toml:"pointer_size"`
	Ports       []Port         `toml:"port"`
}

var table = mustParseTable(rawTable)

func mustParseTable(data []byte) *portTable {
	t, err := parseTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTable(data []byte) (*portTable, error) {
	var t portTable
	if err := toml.Unmarshal(data, &t); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errors.Wrapf(err, "targets.toml:%d:%d", row, col)
		}
		return nil, errors.Wrap(err, "decoding targets.toml")
	}
	return &t, nil
}

// Ports returns the known ports in table order.
func Ports() []Port {
	return slices.Clone(table.Ports)
}

// Lookup returns the identity a build for goos/goarch would report. The C
// compiler of a foreign build cannot be known, so Compiler is always
// Unknown; the toolchain is the one running Lookup.
func Lookup(goos, goarch string) (Info, error) {
	return table.lookup(goos, goarch)
}

func (t *portTable) lookup(goos, goarch string) (Info, error) {
	info := Info{
		OS:        t.platform(goos),
		Arch:      t.arch(goarch),
		Compiler:  Compiler{Family: CompilerUnknown},
		Toolchain: currentToolchain(),
	}

	size, ok := t.PointerSize[goarch]
	if !ok {
		return info, errors.Wrapf(ErrUnknownPointerWidth, "GOARCH %q", goarch)
	}
	info.PointerSize = size
	return info, nil
}

func (t *portTable) platform(goos string) Platform {
	for _, g := range t.OS {
		if slices.Contains(g.GOOS, goos) {
			return g.Label
		}
	}
	return PlatformUnknown
}

func (t *portTable) arch(goarch string) Architecture {
	for _, g := range t.Arch {
		if slices.Contains(g.GOARCH, goarch) {
			return g.Label
		}
	}
	return ArchUnknown
}
