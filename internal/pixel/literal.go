package pixel

import (
	"fmt"
	"unicode/utf8"
)

// Literal alphabet.
const (
	SymbolOn    = '#'
	SymbolOff   = '.'
	SymbolUnset = ' '
)

func symbolOf(s State) rune {
	switch s {
	case On:
		return SymbolOn
	case Off:
		return SymbolOff
	}
	return SymbolUnset
}

func stateOf(r rune) (State, bool) {
	switch r {
	case SymbolOn:
		return On, true
	case SymbolOff:
		return Off, true
	case SymbolUnset:
		return Unset, true
	}
	return Unset, false
}

// ParseLiteral builds a grid from text rows written in the literal alphabet.
// The grid is as wide as the longest row; pixels past the end of a shorter
// row stay Unset.
//
//	// a V shape
//	ParseLiteral([]string{
//		"#...#",
//		".#.#.",
//		"..#..",
//	})
func ParseLiteral(lines []string) (*Grid, error) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	g, err := New(width, len(lines), Unset)
	if err != nil {
		return nil, fmt.Errorf("parse literal: %w", err)
	}
	for y, l := range lines {
		x := 0
		for _, r := range l {
			s, ok := stateOf(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d column %d", ErrInvalidSymbol, r, y, x)
			}
			g.cells[y*width+x] = s
			x++
		}
	}
	return g, nil
}

// MustParseLiteral is like ParseLiteral but panics on error. Intended for
// fixtures and package-level variables.
func MustParseLiteral(lines ...string) *Grid {
	g, err := ParseLiteral(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Literal returns one row per line in the literal alphabet. It is the
// inverse of ParseLiteral.
func (g *Grid) Literal() []string {
	out := make([]string, g.height)
	buf := make([]rune, g.width)
	for y := range out {
		for x := range buf {
			buf[x] = symbolOf(g.cells[y*g.width+x])
		}
		out[y] = string(buf)
	}
	return out
}
