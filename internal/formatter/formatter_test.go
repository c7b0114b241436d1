package formatter_test

import (
	"errors"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dfbb/lpqr/internal/formatter"
	"github.com/dfbb/lpqr/internal/pixel"
)

func decodeYAML(t *testing.T, kind, doc string) (formatter.Formatter, bool, error) {
	t.Helper()
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &node); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v", err)
	}
	return formatter.Decode(kind, node.Decode)
}

func TestKinds(t *testing.T) {
	kinds := formatter.Kinds()
	for _, k := range []string{formatter.KindFullBlock, formatter.KindHalfBlock} {
		if !slices.Contains(kinds, k) {
			t.Errorf("Kinds() = %v, missing %q", kinds, k)
		}
	}
	if !slices.IsSorted(kinds) {
		t.Errorf("Kinds() = %v, want sorted", kinds)
	}
}

func TestDecodeHalfBlock(t *testing.T) {
	f, ok, err := decodeYAML(t, "halfblock", `
neither: " "
bottom: "▄"
top: "▀"
both: "█"
`)
	if !ok || err != nil {
		t.Fatalf("Decode() ok = %v, err = %v", ok, err)
	}
	if f.Kind() != formatter.KindHalfBlock {
		t.Errorf("Kind() = %q, want %q", f.Kind(), formatter.KindHalfBlock)
	}
	got := f.Format(pixel.MustParseLiteral("#.", ".#"))
	if want := []string{"▀▄"}; !slices.Equal(got, want) {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDecodeEmptyGlyphAllowed(t *testing.T) {
	f, _, err := decodeYAML(t, "halfblock", `{neither: "", bottom: "b", top: "t", both: "B"}`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := f.Format(pixel.MustParseLiteral("..")); !slices.Equal(got, []string{""}) {
		t.Errorf("Format() = %q, want [\"\"]", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		kind string
		doc  string
	}{
		{"halfblock missing both", "halfblock", `{neither: " ", bottom: "b", top: "t"}`},
		{"fullblock missing off", "fullblock", `{on: "##"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := decodeYAML(t, tt.kind, tt.doc)
			if !ok {
				t.Fatalf("kind %q not registered", tt.kind)
			}
			if !errors.Is(err, formatter.ErrInvalidConfig) {
				t.Errorf("Decode() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, ok, err := decodeYAML(t, "braille", `{}`)
	if ok || err != nil {
		t.Errorf("Decode(unknown) ok = %v, err = %v; want false, nil", ok, err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate kind")
		}
	}()
	formatter.Register(formatter.KindHalfBlock, func(func(any) error) (formatter.Formatter, error) {
		return nil, nil
	})
}

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		glyph string
		want  int
	}{
		{"", 0},
		{" ", 1},
		{"█", 1},
		{"██", 2},
		{"##", 2},
	}
	for _, c := range cases {
		if got := formatter.DisplayWidth(c.glyph); got != c.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.glyph, got, c.want)
		}
	}
}

func TestUniformWidth(t *testing.T) {
	if !formatter.UniformWidth(formatter.NewHalfBlock(" ", "▄", "▀", "█")) {
		t.Error("single-cell block glyphs reported as non-uniform")
	}
	if formatter.UniformWidth(formatter.NewFullBlock("██", " ")) {
		t.Error("mixed-width glyphs reported as uniform")
	}
}
