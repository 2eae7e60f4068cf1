// Package products holds the palettes of each Molten Labs product. Products
// share the core brand DNA from package colors but carry their own primary
// hue: Lair is Goblin Purple, Hearth is Iron Blue and Alloy is Molten Orange.
package products

import (
	"strings"

	"github.com/moltenlabs/brand/color"
)

// Meta describes a product.
type Meta struct {
	Name        string `json:"name" yaml:"name"`
	Tagline     string `json:"tagline" yaml:"tagline"`
	Description string `json:"description" yaml:"description"`
}

// Product is the summary every product exposes, used for lookups by name.
type Product struct {
	Key       string      `json:"key" yaml:"key"`
	Primary   color.Color `json:"primary" yaml:"primary"`
	Secondary color.Color `json:"secondary" yaml:"secondary"`
	Accent    color.Color `json:"accent" yaml:"accent"`
	Meta      Meta        `json:"meta" yaml:"meta"`
}

// Names lists the known product keys.
func Names() []string {
	return []string{"lair", "hearth", "alloy"}
}

// Lookup finds a product by key, ignoring case.
func Lookup(name string) (Product, bool) {
	switch strings.ToLower(name) {
	case "lair":
		return Lair.Product(), true
	case "hearth":
		return Hearth.Product(), true
	case "alloy":
		return Alloy.Product(), true
	}
	return Product{}, false
}

// Primary returns the primary color of the named product. Unknown names get
// Alloy's, as Alloy is the design system all products derive from.
func Primary(name string) color.Color {
	return lookupOrAlloy(name).Primary
}

// Tagline returns the tagline of the named product, defaulting to Alloy.
func Tagline(name string) string {
	return lookupOrAlloy(name).Meta.Tagline
}

func lookupOrAlloy(name string) Product {
	if p, ok := Lookup(name); ok {
		return p
	}
	return Alloy.Product()
}

// Tokens returns the colors of every product under dotted names such as
// "lair.terminal.cursor".
func Tokens() []color.Named {
	var out []color.Named
	out = append(out, Lair.Tokens()...)
	out = append(out, Hearth.Tokens()...)
	out = append(out, Alloy.Tokens()...)
	return out
}
