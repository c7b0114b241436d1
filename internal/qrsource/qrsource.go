// Package qrsource draws QR codes onto pixel grids. It adapts rsc.io/qr: the
// encoder decides which modules are dark and the Canvas pastes one square
// sub-grid per dark module at its pixel offset.
package qrsource

import (
	"fmt"
	"image"
	"strings"

	"rsc.io/qr"

	"github.com/dfbb/lpqr/internal/pixel"
)

// Level is the QR error correction level.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// QR returns the rsc.io/qr equivalent of l.
func (l Level) QR() qr.Level {
	switch l {
	case L:
		return qr.L
	case Q:
		return qr.Q
	case H:
		return qr.H
	}
	return qr.M
}

// ParseLevel accepts L, M, Q or H in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return L, nil
	case "M":
		return M, nil
	case "Q":
		return Q, nil
	case "H":
		return H, nil
	}
	return M, fmt.Errorf("qrsource: unknown level %q (want L, M, Q or H)", s)
}

// Options control how a code is laid out on the canvas.
type Options struct {
	Level      Level
	ModuleSize int // pixels per module side, at least 1
	Border     int // quiet zone width in modules
}

// DefaultOptions uses level M, one pixel per module and the four-module quiet
// zone scanners expect.
func DefaultOptions() Options {
	return Options{Level: M, ModuleSize: 1, Border: 4}
}

// Canvas is a grid sized for a square code of a given module count.
type Canvas struct {
	grid       *pixel.Grid
	module     *pixel.Grid
	modules    int
	moduleSize int
	border     int
}

// NewCanvas returns an all-off canvas for a code of modules x modules.
func NewCanvas(modules, moduleSize, border int) (*Canvas, error) {
	if moduleSize < 1 || border < 0 {
		return nil, fmt.Errorf("qrsource: %w: module size %d, border %d",
			pixel.ErrInvalidDimension, moduleSize, border)
	}
	side := (modules + 2*border) * moduleSize
	g, err := pixel.New(side, side, pixel.Off)
	if err != nil {
		return nil, fmt.Errorf("qrsource: canvas: %w", err)
	}
	m, err := pixel.New(moduleSize, moduleSize, pixel.On)
	if err != nil {
		return nil, fmt.Errorf("qrsource: module: %w", err)
	}
	return &Canvas{grid: g, module: m, modules: modules, moduleSize: moduleSize, border: border}, nil
}

// DrawModule paints the dark module at column x, row y of the code. Modules
// outside the code, including the quiet zone, are rejected.
func (c *Canvas) DrawModule(x, y int) error {
	if x < 0 || x >= c.modules || y < 0 || y >= c.modules {
		return fmt.Errorf("qrsource: module (%d,%d) outside %dx%d code: %w",
			x, y, c.modules, c.modules, pixel.ErrOutOfBounds)
	}
	origin := image.Pt((x+c.border)*c.moduleSize, (y+c.border)*c.moduleSize)
	return c.grid.Paste(c.module, origin)
}

// Grid returns the canvas pixels. The caller owns the result.
func (c *Canvas) Grid() *pixel.Grid { return c.grid }

// Render encodes text and returns the code as a grid in which dark modules
// are On and light modules and the quiet zone are Off.
func Render(text string, opts Options) (*pixel.Grid, error) {
	code, err := qr.Encode(text, opts.Level.QR())
	if err != nil {
		return nil, fmt.Errorf("qrsource: encode: %w", err)
	}
	c, err := NewCanvas(code.Size, opts.ModuleSize, opts.Border)
	if err != nil {
		return nil, err
	}
	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			if !code.Black(x, y) {
				continue
			}
			if err := c.DrawModule(x, y); err != nil {
				return nil, err
			}
		}
	}
	return c.Grid(), nil
}
