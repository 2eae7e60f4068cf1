// Package tokens is the registry of every color token defined across the
// brand packages, addressed by dotted lowercase names such as
// "forge.black", "molten.500" or "lair.terminal.background".
//
// The registry is built once on first use and never modified afterwards;
// every function returns copies, so callers may share results freely.
package tokens

import (
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/colors"
	"github.com/moltenlabs/brand/products"
	"github.com/moltenlabs/brand/semantic"
	"github.com/moltenlabs/brand/spacing"
	"github.com/moltenlabs/brand/typography"
)

type registry struct {
	colors []color.Named
	byName map[string]color.Color
}

var load = sync.OnceValue(func() *registry {
	var all []color.Named
	all = append(all, colors.Tokens()...)
	all = append(all, semantic.Tokens()...)
	all = append(all, products.Tokens()...)

	r := &registry{
		colors: all,
		byName: make(map[string]color.Color, len(all)),
	}
	for _, n := range all {
		if _, dup := r.byName[n.Name]; dup {
			panic("tokens: duplicate color token " + n.Name)
		}
		r.byName[n.Name] = n.Color
	}
	return r
})

// Colors returns every color token in declaration order.
func Colors() []color.Named {
	return append([]color.Named(nil), load().colors...)
}

// Color looks a token up by name, ignoring case.
func Color(name string) (color.Color, bool) {
	c, ok := load().byName[strings.ToLower(name)]
	return c, ok
}

// Names returns every token name in declaration order.
func Names() []string {
	return lo.Map(load().colors, func(n color.Named, _ int) string {
		return n.Name
	})
}

// Namespace returns the first segment of a token name.
func Namespace(name string) string {
	ns, _, _ := strings.Cut(name, ".")
	return ns
}

// Namespaces returns the distinct namespaces in declaration order.
func Namespaces() []string {
	return lo.Uniq(lo.Map(load().colors, func(n color.Named, _ int) string {
		return Namespace(n.Name)
	}))
}

// InNamespace returns the tokens whose first segment is ns.
func InNamespace(ns string) []color.Named {
	ns = strings.ToLower(ns)
	return lo.Filter(load().colors, func(n color.Named, _ int) bool {
		return Namespace(n.Name) == ns
	})
}

// Resolve accepts either a token name or a hex string.
func Resolve(ref string) (color.Color, error) {
	if c, ok := Color(ref); ok {
		return c, nil
	}
	return color.ParseHex(ref)
}

// Dimension is a named numeric token such as a spacing step.
type Dimension struct {
	Name  string `json:"name" yaml:"name"`
	Value uint16 `json:"value" yaml:"value"`
}

// Spacing returns the spacing scale and its semantic aliases as dotted
// names ("spacing.s4", "spacing.gap_md").
func Spacing() []Dimension {
	out := []Dimension{{Name: "spacing.base", Value: spacing.Base}}
	for _, s := range spacing.Steps() {
		out = append(out, Dimension{Name: "spacing.s" + strconv.Itoa(int(s.Index)), Value: s.Pixels})
	}
	for _, a := range spacing.Aliases() {
		out = append(out, Dimension{Name: "spacing." + a.Name, Value: a.Pixels})
	}
	return out
}

// Typography returns the text style presets.
func Typography() []typography.NamedStyle {
	return typography.Presets()
}
