package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/colors"
	"github.com/moltenlabs/brand/semantic"
)

// Color palette for consistent styling across the CLI and TUI, taken from
// the brand tokens themselves.
var (
	// Primary colors
	ColorPrimary   = Lipgloss(colors.Molten.Primary) // titles and highlights
	ColorSecondary = Lipgloss(colors.Forge.Iron)     // selection and links

	// Text colors
	ColorText      = Lipgloss(colors.Text.Primary)
	ColorTextLight = Lipgloss(colors.Text.Secondary)
	ColorTextBrand = Lipgloss(colors.Text.Brand)

	// Border and muted colors
	ColorBorder    = Lipgloss(colors.Surface.Muted)
	ColorMuted     = Lipgloss(colors.Text.Muted)
	ColorSelection = Lipgloss(colors.Surface.Overlay)

	// Semantic colors
	ColorSuccess = Lipgloss(semantic.Success)
	ColorError   = Lipgloss(semantic.Error)
	ColorWarning = Lipgloss(semantic.Warning)
)

// Flatten composites a translucent color onto the base surface. Terminals
// have no alpha channel, so this is what a glass token looks like there.
func Flatten(c color.Color) color.Color {
	if c.Opaque() {
		return c
	}
	return c.Over(colors.Surface.Base)
}

// Lipgloss converts a token to a lipgloss color.
func Lipgloss(c color.Color) lipgloss.Color {
	return lipgloss.Color(Flatten(c).Hex())
}

// ReadableOn picks white or black text, whichever contrasts more with bg.
func ReadableOn(bg color.Color) color.Color {
	bg = Flatten(bg)
	if bg.Contrast(color.White) >= bg.Contrast(color.Black) {
		return color.White
	}
	return color.Black
}

// Swatch renders glyph in the token's color.
func Swatch(c color.Color, glyph string) string {
	return lipgloss.NewStyle().Foreground(Lipgloss(c)).Render(glyph)
}

// Chip renders text on the token's color with readable foreground.
func Chip(c color.Color, text string) string {
	return lipgloss.NewStyle().
		Background(Lipgloss(c)).
		Foreground(Lipgloss(ReadableOn(c))).
		Padding(0, 1).
		Render(text)
}
