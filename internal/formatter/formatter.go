// Package formatter turns pixel grids into printable lines of text.
package formatter

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/dfbb/lpqr/internal/pixel"
)

// ErrInvalidConfig is returned when a configuration record cannot build a formatter.
var ErrInvalidConfig = errors.New("formatter: invalid config")

// Formatter is implemented by every formatter kind. Implementations are
// immutable after construction and safe for concurrent use.
type Formatter interface {
	// Kind returns the registry name the formatter was declared under.
	Kind() string
	// Format renders g without modifying it.
	Format(g *pixel.Grid) []string
	// Glyphs returns every glyph the formatter can emit.
	Glyphs() []string
}

// Decoder builds a formatter from one configuration record. unmarshal fills
// a kind-specific struct from the record.
type Decoder func(unmarshal func(any) error) (Formatter, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Decoder)
)

// Register makes a formatter kind available by name. It panics if the name
// is registered twice or dec is nil.
func Register(kind string, dec Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if dec == nil {
		panic("formatter: Register decoder is nil")
	}
	if _, dup := registry[kind]; dup {
		panic("formatter: Register called twice for kind " + kind)
	}
	registry[kind] = dec
}

// Decode builds a formatter of the named kind. ok is false when the kind is
// not registered.
func Decode(kind string, unmarshal func(any) error) (f Formatter, ok bool, err error) {
	registryMu.RLock()
	dec, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	f, err = dec(unmarshal)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", kind, err)
	}
	return f, true, nil
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// DisplayWidth returns the number of terminal cells glyph occupies.
func DisplayWidth(glyph string) int {
	return runewidth.StringWidth(glyph)
}

// UniformWidth reports whether every glyph of f has the same display width.
func UniformWidth(f Formatter) bool {
	glyphs := f.Glyphs()
	if len(glyphs) == 0 {
		return true
	}
	for _, g := range glyphs[1:] {
		if DisplayWidth(g) != DisplayWidth(glyphs[0]) {
			return false
		}
	}
	return true
}

func required(field string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidConfig, field)
	}
	return *v, nil
}
