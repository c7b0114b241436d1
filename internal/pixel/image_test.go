package pixel

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestAt(t *testing.T) {
	g := MustParseLiteral("#. ")

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"on", 0, 0, color.Black},
		{"off", 1, 0, color.White},
		{"unset", 2, 0, color.Transparent},
		{"outside", 3, 0, color.Transparent},
		{"negative", -1, 0, color.Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestColorIndexAt(t *testing.T) {
	g := MustParseLiteral("#. ")
	for x, want := range []State{On, Off, Unset} {
		if got := g.ColorIndexAt(x, 0); got != uint8(want) {
			t.Errorf("ColorIndexAt(%d, 0) = %d, want %d", x, got, want)
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	g := MustParseLiteral("#.#", ".#.", "#.#")

	var buf bytes.Buffer
	if err := png.Encode(&buf, g); err != nil {
		t.Fatalf("png.Encode error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode error: %v", err)
	}
	if img.Bounds() != g.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), g.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			on := r == 0
			s, _ := g.Get(image.Pt(x, y))
			if on != s.IsOn() {
				t.Errorf("pixel (%d,%d) on = %v, want %v", x, y, on, s.IsOn())
			}
		}
	}
}
