// Package catalog holds named, pre-configured formatters grouped by kind and
// loads them from declarative YAML or JSON files.
//
// Each file declares one kind and a list of instances:
//
//	kind: halfblock
//	instances:
//	  - name: utf8
//	    neither: " "
//	    bottom: "▄"
//	    top: "▀"
//	    both: "█"
//
// Formatters are addressed as "kind.name", e.g. "halfblock.utf8".
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dfbb/lpqr/internal/formatter"
)

var (
	ErrNotFound    = errors.New("catalog: not found")
	ErrUnknownKind = errors.New("catalog: unknown formatter kind")
)

//go:embed builtin/*.yaml
var builtin embed.FS

// Catalog maps kind -> instance name -> formatter. The zero value is not
// usable; call New. A Catalog is not safe for concurrent modification, but
// lookups may run concurrently once loading is done.
type Catalog struct {
	kinds map[string]map[string]formatter.Formatter
}

func New() *Catalog {
	return &Catalog{kinds: make(map[string]map[string]formatter.Formatter)}
}

// Default returns a catalog holding the built-in formatters.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(builtin, "builtin")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads every catalog file in the root of fsys into a new catalog.
func Load(fsys fs.FS) (*Catalog, error) {
	c := New()
	if err := c.LoadFS(fsys); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFS adds the formatters declared in the root of fsys to c. Entries with
// the same kind and name replace existing ones, so user files can override
// the built-ins.
func (c *Catalog) LoadFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !isCatalogFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if err := c.parse(e.Name(), data); err != nil {
			return err
		}
	}
	return nil
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

type file struct {
	Kind      string      `yaml:"kind"`
	Instances []yaml.Node `yaml:"instances"`
}

type instance struct {
	Name string `yaml:"name"`
}

func (c *Catalog) parse(name string, data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("catalog: %s: %w", name, err)
	}
	if f.Kind == "" {
		return fmt.Errorf("catalog: %s: %w: missing kind", name, formatter.ErrInvalidConfig)
	}
	for i := range f.Instances {
		node := &f.Instances[i]
		var inst instance
		if err := node.Decode(&inst); err != nil {
			return fmt.Errorf("catalog: %s: instance %d: %w", name, i, err)
		}
		if inst.Name == "" {
			return fmt.Errorf("catalog: %s: instance %d: %w: missing name", name, i, formatter.ErrInvalidConfig)
		}
		fm, ok, err := formatter.Decode(f.Kind, node.Decode)
		if !ok {
			return fmt.Errorf("catalog: %s: %w %q", name, ErrUnknownKind, f.Kind)
		}
		if err != nil {
			return fmt.Errorf("catalog: %s: %s: %w", name, inst.Name, err)
		}
		if !formatter.UniformWidth(fm) {
			slog.Warn("catalog: glyphs differ in display width", "file", name, "formatter", f.Kind+"."+inst.Name)
		}
		c.Add(f.Kind, inst.Name, fm)
	}
	slog.Debug("catalog: loaded file", "file", name, "kind", f.Kind, "instances", len(f.Instances))
	return nil
}

// Add stores f under kind and name, replacing any existing entry.
func (c *Catalog) Add(kind, name string, f formatter.Formatter) {
	m, ok := c.kinds[kind]
	if !ok {
		m = make(map[string]formatter.Formatter)
		c.kinds[kind] = m
	}
	m[name] = f
}

// Get returns the formatter registered as kind and name.
func (c *Catalog) Get(kind, name string) (formatter.Formatter, error) {
	f, ok := c.kinds[kind][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotFound, kind, name)
	}
	return f, nil
}

// Lookup resolves a "kind.name" path.
func (c *Catalog) Lookup(p string) (formatter.Formatter, error) {
	kind, name, ok := strings.Cut(p, ".")
	if !ok || kind == "" || name == "" {
		return nil, fmt.Errorf("%w: %q is not of the form kind.name", ErrNotFound, p)
	}
	return c.Get(kind, name)
}

// Kinds returns the kinds that have at least one formatter, sorted.
func (c *Catalog) Kinds() []string {
	return slices.Sorted(maps.Keys(c.kinds))
}

// Names returns the formatter names of kind, sorted.
func (c *Catalog) Names(kind string) ([]string, error) {
	m, ok := c.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %s", ErrNotFound, kind)
	}
	return slices.Sorted(maps.Keys(m)), nil
}

// Paths returns every "kind.name" in the catalog, sorted.
func (c *Catalog) Paths() []string {
	var out []string
	for _, kind := range c.Kinds() {
		for _, name := range slices.Sorted(maps.Keys(c.kinds[kind])) {
			out = append(out, kind+"."+name)
		}
	}
	return out
}
