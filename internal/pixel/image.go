package pixel

import (
	"image"
	"image/color"
)

// Palette is indexed by State: Unset is transparent, Off is white paper and
// On is black ink.
var Palette = color.Palette{
	Unset: color.Transparent,
	Off:   color.White,
	On:    color.Black,
}

// Some encoders (image/png among them) write paletted images compactly.
var _ image.PalettedImage = (*Grid)(nil)

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model { return Palette }

// At implements image.Image. Points outside the grid are transparent.
func (g *Grid) At(x, y int) color.Color {
	return Palette[g.ColorIndexAt(x, y)]
}

// ColorIndexAt implements image.PalettedImage.
func (g *Grid) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(g.Bounds())) {
		return uint8(Unset)
	}
	return uint8(g.cells[y*g.width+x])
}
