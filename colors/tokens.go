package colors

import (
	"strconv"

	"github.com/moltenlabs/brand/color"
)

// Tokens returns every color defined in this package under dotted names
// such as "forge.black" or "molten.500".
func Tokens() []color.Named {
	var out []color.Named
	add := func(name string, c color.Color) {
		out = append(out, color.Named{Name: name, Color: c})
	}

	add("forge.black", Forge.Black)
	add("forge.steel", Forge.Steel)
	add("forge.white", Forge.White)
	add("forge.molten", Forge.Molten)
	add("forge.ember", Forge.Ember)
	add("forge.iron", Forge.Iron)

	for _, s := range MoltenSteps() {
		add("molten."+strconv.Itoa(s.Level), s.Color)
	}
	add("molten.primary", Molten.Primary)

	for _, s := range NeutralSteps() {
		add("neutral."+strconv.Itoa(s.Level), s.Color)
	}

	add("surface.base", Surface.Base)
	add("surface.raised", Surface.Raised)
	add("surface.overlay", Surface.Overlay)
	add("surface.muted", Surface.Muted)

	add("text.primary", Text.Primary)
	add("text.secondary", Text.Secondary)
	add("text.muted", Text.Muted)
	add("text.inverse", Text.Inverse)
	add("text.brand", Text.Brand)

	add("glass.background", Glass.Background)
	add("glass.background_hover", Glass.BackgroundHover)
	add("glass.border", Glass.Border)
	add("glass.border_hover", Glass.BorderHover)

	return out
}
