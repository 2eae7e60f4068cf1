// Package storage reads palette files and writes export output through an
// afero filesystem.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/moltenlabs/brand/color"
)

// Errors returned by Storage. Each is wrapped with the path it concerns.
var (
	ErrReadPalette  = zerr.New("failed to read palette file")
	ErrParsePalette = zerr.New("failed to parse palette file")
	ErrPaletteShape = zerr.New("palette must be a mapping of names to colors")
	ErrWriteFile    = zerr.New("failed to write file")
)

// Storage handles reading and writing token files
type Storage struct {
	fs afero.Fs
}

// New creates a Storage on fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Storage {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Storage{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *Storage) Fs() afero.Fs {
	return s.fs
}

// Palette is the result of loading a user palette file. Entries that fail
// validation are collected in Issues instead of aborting the load.
type Palette struct {
	Path   string
	Colors []color.Named
	Issues []Issue
}

// Valid reports whether every entry parsed.
func (p *Palette) Valid() bool {
	return len(p.Issues) == 0
}

// Issue is one rejected palette entry.
type Issue struct {
	Name string
	Line int
	Err  error
}

func (i Issue) Error() string {
	return i.Name + ": " + i.Err.Error()
}

func (i Issue) Unwrap() error {
	return i.Err
}

// LoadPalette reads a YAML or JSON file mapping names to colors. Nested
// mappings flatten into dotted names, and a top-level "colors" key (the
// export document layout) is used when present. Colors are hex strings
// or {r, g, b, a} objects.
func (s *Storage) LoadPalette(path string) (*Palette, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrReadPalette.Error()), "path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrParsePalette.Error()), "path", path)
	}

	p := &Palette{Path: path}
	if doc.Kind == 0 {
		return p, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(ErrPaletteShape, "path", path)
	}
	if colors := lookup(root, "colors"); colors != nil && colors.Kind == yaml.MappingNode {
		root = colors
	}

	seen := make(map[string]bool)
	p.walk(root, "", seen)
	return p, nil
}

func (p *Palette) walk(node *yaml.Node, prefix string, seen map[string]bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, value := node.Content[i], node.Content[i+1]
		name := strings.ToLower(keyNode.Value)
		if prefix != "" {
			name = prefix + "." + name
		}

		if value.Kind == yaml.MappingNode && !isChannelObject(value) {
			p.walk(value, name, seen)
			continue
		}

		if seen[name] {
			p.Issues = append(p.Issues, Issue{Name: name, Line: keyNode.Line, Err: errDuplicate})
			continue
		}
		seen[name] = true

		if value.ShortTag() == "!!null" {
			p.Issues = append(p.Issues, Issue{Name: name, Line: keyNode.Line, Err: errNull})
			continue
		}

		var c color.Color
		if err := value.Decode(&c); err != nil {
			p.Issues = append(p.Issues, Issue{Name: name, Line: value.Line, Err: err})
			continue
		}
		p.Colors = append(p.Colors, color.Named{Name: name, Color: c})
	}
}

var errDuplicate = zerr.New("duplicate token name")

// errNull covers empty values. An unquoted # starts a YAML comment, so
// `name: #f97316` is null too.
var errNull = fmt.Errorf("%w: empty value (quote hex colors, # starts a YAML comment)", color.ErrInvalidHexFormat)

// isChannelObject reports whether a mapping only has r, g, b and a keys.
func isChannelObject(node *yaml.Node) bool {
	if len(node.Content) == 0 {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		switch strings.ToLower(node.Content[i].Value) {
		case "r", "g", "b", "a":
		default:
			return false
		}
	}
	return true
}

func lookup(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// WriteFile writes data to path, creating parent directories.
func (s *Storage) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, ErrWriteFile.Error()), "path", path)
		}
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, ErrWriteFile.Error()), "path", path)
	}
	return nil
}

// Exists reports whether path exists.
func (s *Storage) Exists(path string) bool {
	ok, _ := afero.Exists(s.fs, path)
	return ok
}
