package formatter

import (
	"strings"

	"github.com/dfbb/lpqr/internal/pixel"
)

const KindFullBlock = "fullblock"

func init() {
	Register(KindFullBlock, decodeFullBlock)
}

// FullBlock prints one line per grid row and one glyph per pixel. With
// two-cell glyphs such as "██" the output keeps a square aspect ratio at the
// cost of twice the height of HalfBlock. Unset pixels print as off.
type FullBlock struct {
	on, off string
}

func NewFullBlock(on, off string) *FullBlock {
	return &FullBlock{on: on, off: off}
}

func (f *FullBlock) Kind() string { return KindFullBlock }

func (f *FullBlock) Glyphs() []string { return []string{f.off, f.on} }

func (f *FullBlock) Format(g *pixel.Grid) []string {
	rows := g.Rows()
	out := make([]string, len(rows))
	for y, row := range rows {
		var b strings.Builder
		for _, s := range row {
			if s.IsOn() {
				b.WriteString(f.on)
			} else {
				b.WriteString(f.off)
			}
		}
		out[y] = b.String()
	}
	return out
}

type fullBlockConfig struct {
	On  *string `yaml:"on"`
	Off *string `yaml:"off"`
}

func decodeFullBlock(unmarshal func(any) error) (Formatter, error) {
	var c fullBlockConfig
	if err := unmarshal(&c); err != nil {
		return nil, err
	}
	on, err := required("on", c.On)
	if err != nil {
		return nil, err
	}
	off, err := required("off", c.Off)
	if err != nil {
		return nil, err
	}
	return NewFullBlock(on, off), nil
}
