package formatter

import (
	"slices"
	"strings"

	"github.com/dfbb/lpqr/internal/pixel"
)

const KindHalfBlock = "halfblock"

func init() {
	Register(KindHalfBlock, decodeHalfBlock)
}

// HalfBlock packs two grid rows into one line of text. Each column of a row
// pair becomes one glyph chosen by which of the two pixels is on:
//
//	top  bottom  glyph
//	off  off     neither
//	off  on      bottomOnly
//	on   off     topOnly
//	on   on      both
//
// Off and Unset both count as off. A trailing unpaired row is paired with an
// all-off row, so a grid of height h yields (h+1)/2 lines.
type HalfBlock struct {
	glyphs [4]string // indexed by top<<1 | bottom
}

// NewHalfBlock returns a HalfBlock using the given glyphs. Any text is
// accepted, including multi-byte and empty strings.
func NewHalfBlock(neither, bottomOnly, topOnly, both string) *HalfBlock {
	return &HalfBlock{glyphs: [4]string{neither, bottomOnly, topOnly, both}}
}

func (f *HalfBlock) Kind() string { return KindHalfBlock }

func (f *HalfBlock) Glyphs() []string { return slices.Clone(f.glyphs[:]) }

// Glyph returns the glyph for one column of a row pair.
func (f *HalfBlock) Glyph(top, bottom bool) string {
	i := 0
	if top {
		i |= 2
	}
	if bottom {
		i |= 1
	}
	return f.glyphs[i]
}

func (f *HalfBlock) Format(g *pixel.Grid) []string {
	rows := g.Rows()
	blank := make([]pixel.State, g.Width())
	out := make([]string, 0, (len(rows)+1)/2)
	for y := 0; y < len(rows); y += 2 {
		top, bottom := rows[y], blank
		if y+1 < len(rows) {
			bottom = rows[y+1]
		}
		out = append(out, f.line(top, bottom))
	}
	return out
}

func (f *HalfBlock) line(top, bottom []pixel.State) string {
	var b strings.Builder
	for i := range top {
		b.WriteString(f.Glyph(top[i].IsOn(), bottom[i].IsOn()))
	}
	return b.String()
}

type halfBlockConfig struct {
	Neither *string `yaml:"neither"`
	Bottom  *string `yaml:"bottom"`
	Top     *string `yaml:"top"`
	Both    *string `yaml:"both"`
}

func decodeHalfBlock(unmarshal func(any) error) (Formatter, error) {
	var c halfBlockConfig
	if err := unmarshal(&c); err != nil {
		return nil, err
	}
	var glyphs [4]string
	for i, field := range []struct {
		name string
		v    *string
	}{{"neither", c.Neither}, {"bottom", c.Bottom}, {"top", c.Top}, {"both", c.Both}} {
		g, err := required(field.name, field.v)
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
	}
	return &HalfBlock{glyphs: glyphs}, nil
}
