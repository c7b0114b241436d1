// Package pixel provides a dense, mutable grid of binary pixels with a third
// "unset" state used for transparency when grids are pasted onto each other.
//
// X is the column (0 = leftmost) and Y is the row (0 = topmost).
// A Grid is not safe for concurrent mutation; callers serialize writers.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("pixel: invalid dimension")
	ErrOutOfBounds      = errors.New("pixel: out of bounds")
	ErrInvalidSymbol    = errors.New("pixel: invalid symbol")
	ErrInvalidState     = errors.New("pixel: invalid state")
)

// State is the value of a single pixel.
type State uint8

const (
	Unset State = iota // not drawn; paste leaves the destination untouched
	Off
	On
)

func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case Off:
		return "off"
	case On:
		return "on"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Valid reports whether s is one of Unset, Off or On.
func (s State) Valid() bool { return s <= On }

// IsOn reports whether s is On. Off and Unset both count as background.
func (s State) IsOn() bool { return s == On }

// Grid is a width x height matrix of pixel states stored row-major.
type Grid struct {
	width  int
	height int
	cells  []State
}

// New returns a width x height grid with every pixel set to fill.
func New(width, height int, fill State) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if !fill.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, fill)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}
	if fill != Unset {
		g.fill(fill)
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Bounds returns the grid extent as a rectangle anchored at the origin.
// It also satisfies image.Image.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

func (g *Grid) checkIndex(p image.Point) error {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	return nil
}

// Get returns the state of the pixel at p.
func (g *Grid) Get(p image.Point) (State, error) {
	if err := g.checkIndex(p); err != nil {
		return Unset, err
	}
	return g.cells[p.Y*g.width+p.X], nil
}

// Set overwrites the pixel at p. Unset is stored as-is; values other than
// Unset, Off and On fail with ErrInvalidState.
func (g *Grid) Set(p image.Point, s State) error {
	if err := g.checkIndex(p); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %v at (%d,%d)", ErrInvalidState, s, p.X, p.Y)
	}
	g.cells[p.Y*g.width+p.X] = s
	return nil
}

// Fill sets every pixel to s.
func (g *Grid) Fill(s State) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidState, s)
	}
	g.fill(s)
	return nil
}

func (g *Grid) fill(s State) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Rows returns a copy of the grid's rows, top to bottom.
func (g *Grid) Rows() [][]State {
	rows := make([][]State, g.height)
	for y := range rows {
		row := make([]State, g.width)
		copy(row, g.cells[y*g.width:(y+1)*g.width])
		rows[y] = row
	}
	return rows
}

// Paste copies src into g with src's top-left corner at origin. Unset source
// pixels leave the destination unchanged. The whole of src must fit inside g;
// otherwise nothing is written and ErrOutOfBounds is returned.
func (g *Grid) Paste(src *Grid, origin image.Point) error {
	// Compare against the remaining room so huge origins cannot overflow.
	if origin.X < 0 || origin.Y < 0 ||
		origin.X > g.width-src.width || origin.Y > g.height-src.height {
		return fmt.Errorf("%w: %dx%d at (%d,%d) does not fit in %dx%d",
			ErrOutOfBounds, src.width, src.height, origin.X, origin.Y, g.width, g.height)
	}
	for y := 0; y < src.height; y++ {
		srcRow := src.cells[y*src.width : (y+1)*src.width]
		dst := (origin.Y+y)*g.width + origin.X
		for x, s := range srcRow {
			if s != Unset {
				g.cells[dst+x] = s
			}
		}
	}
	return nil
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]State, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether g and other have the same size and identical pixels.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, s := range g.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// String renders the grid in literal form, one quoted row per line.
func (g *Grid) String() string {
	const prefix = "pixel.Grid("
	lines := g.Literal()
	quoted := make([]string, len(lines))
	for i, l := range lines {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return prefix + strings.Join(quoted, ",\n"+strings.Repeat(" ", len(prefix))) + ")"
}
