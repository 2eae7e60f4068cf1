// Package export renders the token registry as JSON, YAML or CSS custom
// properties, and describes the JSON layout with a JSON Schema.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/moltenlabs/brand/brand"
	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/products"
	"github.com/moltenlabs/brand/tokens"
	"github.com/moltenlabs/brand/typography"
)

// Version is the layout version written into every document.
const Version = 1

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSS  Format = "css"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{JSON, YAML, CSS}
}

var (
	ErrUnknownFormat = zerr.New("unknown export format")
	ErrEncode        = zerr.New("failed to encode tokens")
)

// ParseFormat matches a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", zerr.With(ErrUnknownFormat, "format", s)
}

// Document is the serialized token set.
type Document struct {
	Version    int                             `json:"version" yaml:"version"`
	Brand      brand.Info                      `json:"brand" yaml:"brand"`
	Colors     map[string]color.Color          `json:"colors" yaml:"colors"`
	Spacing    map[string]uint16               `json:"spacing" yaml:"spacing"`
	Typography map[string]typography.TextStyle `json:"typography" yaml:"typography"`
	Products   map[string]products.Product     `json:"products" yaml:"products"`
}

// Build collects every registered token into a Document.
func Build() Document {
	doc := Document{
		Version:    Version,
		Brand:      brand.Metadata(),
		Colors:     make(map[string]color.Color),
		Spacing:    make(map[string]uint16),
		Typography: make(map[string]typography.TextStyle),
		Products:   make(map[string]products.Product),
	}
	for _, n := range tokens.Colors() {
		doc.Colors[n.Name] = n.Color
	}
	for _, d := range tokens.Spacing() {
		doc.Spacing[d.Name] = d.Value
	}
	for _, p := range tokens.Typography() {
		doc.Typography[p.Name] = p.Style
	}
	for _, name := range products.Names() {
		p, _ := products.Lookup(name)
		doc.Products[name] = p
	}
	return doc
}

// Options tune the output.
type Options struct {
	// Prefix namespaces CSS custom properties, e.g. "molten" gives
	// --molten-forge-black. Empty means no prefix.
	Prefix string
}

// Encode writes the full token set to w in format f.
func Encode(w io.Writer, f Format, opts Options) error {
	var err error
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(Build())
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(Build()); err == nil {
			err = enc.Close()
		}
	case CSS:
		err = writeCSS(w, opts.Prefix)
	default:
		return zerr.With(ErrUnknownFormat, "format", string(f))
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, ErrEncode.Error()), "format", string(f))
	}
	return nil
}

var cssName = strings.NewReplacer(".", "-", "_", "-")

// Variable returns the CSS custom property name for a dotted token name.
func Variable(prefix, name string) string {
	name = cssName.Replace(name)
	if prefix == "" {
		return "--" + name
	}
	return "--" + prefix + "-" + name
}

func writeCSS(w io.Writer, prefix string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/* %s design tokens. %s */\n", brand.Company, brand.Tagline)
	sb.WriteString(":root {\n")

	decl := func(name, value string) {
		fmt.Fprintf(&sb, "  %s: %s;\n", Variable(prefix, name), value)
	}

	for _, n := range tokens.Colors() {
		decl(n.Name, n.Color.Hex())
	}
	sb.WriteString("\n")
	for _, d := range tokens.Spacing() {
		decl(d.Name, fmt.Sprintf("%dpx", d.Value))
	}
	sb.WriteString("\n")
	decl("font.sans", typography.FamilySans)
	decl("font.mono", typography.FamilyMono)
	decl("font.display", typography.FamilyDisplay)
	decl("font.serif", typography.FamilySerif)
	for _, p := range tokens.Typography() {
		base := "text." + p.Name + "."
		decl(base+"family", p.Style.Family)
		decl(base+"size", fmt.Sprintf("%dpx", p.Style.Size))
		decl(base+"weight", fmt.Sprintf("%d", p.Style.Weight))
		decl(base+"line_height", fmt.Sprintf("%g", p.Style.LineHeight))
		decl(base+"letter_spacing", fmt.Sprintf("%gem", p.Style.LetterSpacing))
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
