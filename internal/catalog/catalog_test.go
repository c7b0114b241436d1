package catalog_test

import (
	"errors"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/dfbb/lpqr/internal/catalog"
	"github.com/dfbb/lpqr/internal/formatter"
	"github.com/dfbb/lpqr/internal/pixel"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	want := []string{
		"fullblock.ascii",
		"fullblock.utf8",
		"halfblock.ascii",
		"halfblock.inverted",
		"halfblock.utf8",
	}
	if got := c.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %q, want %q", got, want)
	}

	f, err := c.Lookup("halfblock.utf8")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	got := f.Format(pixel.MustParseLiteral("##", "..", "#."))
	if want := []string{"▀▀", "▀ "}; !slices.Equal(got, want) {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestLookupNotFound(t *testing.T) {
	c, _ := catalog.Default()
	for _, p := range []string{"halfblock.nope", "nope.utf8", "halfblock", "", ".utf8", "halfblock."} {
		if _, err := c.Lookup(p); !errors.Is(err, catalog.ErrNotFound) {
			t.Errorf("Lookup(%q) error = %v, want ErrNotFound", p, err)
		}
	}
	if _, err := c.Names("nope"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Names(nope) error = %v, want ErrNotFound", err)
	}
}

func TestLoadFSOverride(t *testing.T) {
	c, _ := catalog.Default()
	user := fstest.MapFS{
		"mine.yml": {Data: []byte(`
kind: halfblock
instances:
  - name: utf8
    neither: "."
    bottom: "b"
    top: "t"
    both: "#"
  - name: dots
    neither: " "
    bottom: "."
    top: "'"
    both: ":"
`)},
		"notes.txt": {Data: []byte("ignored")},
	}
	if err := c.LoadFS(user); err != nil {
		t.Fatalf("LoadFS() error: %v", err)
	}

	names, _ := c.Names("halfblock")
	if want := []string{"ascii", "dots", "inverted", "utf8"}; !slices.Equal(names, want) {
		t.Errorf("Names(halfblock) = %q, want %q", names, want)
	}
	f, _ := c.Get("halfblock", "utf8")
	if got := f.Format(pixel.MustParseLiteral("#.", "#.")); !slices.Equal(got, []string{"#."}) {
		t.Errorf("overridden Format() = %q, want [\"#.\"]", got)
	}
}

func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"fullblock.json": {Data: []byte(`{"kind": "fullblock", "instances": [{"name": "x", "on": "X", "off": "_"}]}`)},
	}
	c, err := catalog.Load(fsys)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	f, err := c.Lookup("fullblock.x")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if f.Kind() != formatter.KindFullBlock {
		t.Errorf("Kind() = %q, want %q", f.Kind(), formatter.KindFullBlock)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown kind", "kind: braille\ninstances:\n  - name: a\n", catalog.ErrUnknownKind},
		{"missing kind", "instances:\n  - name: a\n", formatter.ErrInvalidConfig},
		{"missing name", "kind: fullblock\ninstances:\n  - on: X\n    off: _\n", formatter.ErrInvalidConfig},
		{"missing glyph", "kind: fullblock\ninstances:\n  - name: a\n    on: X\n", formatter.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Load(fstest.MapFS{"c.yaml": {Data: []byte(tt.data)}})
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	_, err := catalog.Load(fstest.MapFS{"c.yaml": {Data: []byte("kind: [unterminated")}})
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestAdd(t *testing.T) {
	c := catalog.New()
	c.Add("halfblock", "custom", formatter.NewHalfBlock("a", "b", "c", "d"))
	if _, err := c.Lookup("halfblock.custom"); err != nil {
		t.Errorf("Lookup() after Add error: %v", err)
	}
	if got := c.Kinds(); !slices.Equal(got, []string{"halfblock"}) {
		t.Errorf("Kinds() = %q, want [halfblock]", got)
	}
}
