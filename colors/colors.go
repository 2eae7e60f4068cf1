// Package colors holds the foundational palettes shared by every Molten Labs
// product: the Forge parent brand, the Molten orange scale, the neutral gray
// scale, and the dark-mode surface, text and glass roles built from them.
package colors

import "github.com/moltenlabs/brand/color"

// ForgePalette is the parent company palette.
type ForgePalette struct {
	Black  color.Color // primary background, deep black
	Steel  color.Color // secondary text and borders
	White  color.Color // primary text, near white
	Molten color.Color // energy and highlights
	Ember  color.Color // accents and alerts
	Iron   color.Color // links and interactive elements
}

// Forge is the core brand palette.
var Forge = ForgePalette{
	Black:  color.New(10, 10, 10),    // #0a0a0a
	Steel:  color.New(113, 113, 122), // #71717a
	White:  color.New(250, 250, 250), // #fafafa
	Molten: color.New(249, 115, 22),  // #f97316
	Ember:  color.New(239, 68, 68),   // #ef4444
	Iron:   color.New(59, 130, 246),  // #3b82f6
}

// MoltenScale is the primary brand orange from lightest (50) to darkest (950).
type MoltenScale struct {
	S50, S100, S200, S300, S400, S500, S600, S700, S800, S900, S950 color.Color

	// Primary is the brand orange, the same value as S500.
	Primary color.Color
}

// Molten is the warm orange scale of the forge's fire.
var Molten = MoltenScale{
	S50:  color.New(255, 247, 237), // #fff7ed
	S100: color.New(255, 237, 213), // #ffedd5
	S200: color.New(254, 215, 170), // #fed7aa
	S300: color.New(253, 186, 116), // #fdba74
	S400: color.New(251, 146, 60),  // #fb923c
	S500: color.New(249, 115, 22),  // #f97316
	S600: color.New(234, 88, 12),   // #ea580c
	S700: color.New(194, 65, 12),   // #c2410c
	S800: color.New(154, 52, 18),   // #9a3412
	S900: color.New(124, 45, 18),   // #7c2d12
	S950: color.New(67, 20, 7),     // #431407

	Primary: color.New(249, 115, 22),
}

// NeutralScale is the gray scale from pure white (0) to near black (950).
type NeutralScale struct {
	S0, S50, S100, S200, S300, S400, S500, S600, S700, S800, S900, S950 color.Color
}

// Neutral is used for text, borders and backgrounds.
var Neutral = NeutralScale{
	S0:   color.New(255, 255, 255), // #ffffff
	S50:  color.New(250, 250, 250), // #fafafa
	S100: color.New(244, 244, 245), // #f4f4f5
	S200: color.New(228, 228, 231), // #e4e4e7
	S300: color.New(212, 212, 216), // #d4d4d8
	S400: color.New(161, 161, 170), // #a1a1aa
	S500: color.New(113, 113, 122), // #71717a
	S600: color.New(82, 82, 91),    // #52525b
	S700: color.New(63, 63, 70),    // #3f3f46
	S800: color.New(39, 39, 42),    // #27272a
	S900: color.New(24, 24, 27),    // #18181b
	S950: color.New(10, 10, 10),    // #0a0a0a
}

// SurfacePalette holds dark-mode surface layers.
type SurfacePalette struct {
	Base    color.Color // app background
	Raised  color.Color // cards
	Overlay color.Color // modals, dropdowns
	Muted   color.Color // disabled surfaces
}

// Surface is the dark-mode surface stack, darkest first.
var Surface = SurfacePalette{
	Base:    color.New(10, 10, 10), // #0a0a0a
	Raised:  color.New(24, 24, 27), // #18181b
	Overlay: color.New(39, 39, 42), // #27272a
	Muted:   color.New(63, 63, 70), // #3f3f46
}

// TextPalette holds text roles.
type TextPalette struct {
	Primary   color.Color
	Secondary color.Color
	Muted     color.Color
	Inverse   color.Color // for light backgrounds
	Brand     color.Color
}

// Text holds the text colors for dark surfaces.
var Text = TextPalette{
	Primary:   color.New(250, 250, 250), // #fafafa
	Secondary: color.New(161, 161, 170), // #a1a1aa
	Muted:     color.New(113, 113, 122), // #71717a
	Inverse:   color.New(10, 10, 10),    // #0a0a0a
	Brand:     color.New(249, 115, 22),  // #f97316
}

// GlassPalette holds translucent overlay effects.
type GlassPalette struct {
	Background      color.Color
	BackgroundHover color.Color
	Border          color.Color
	BorderHover     color.Color
}

// Glass holds the translucent white and molten overlays.
var Glass = GlassPalette{
	Background:      color.NewRGBA(255, 255, 255, 8),  // ~3%
	BackgroundHover: color.NewRGBA(249, 115, 22, 13),  // ~5%
	Border:          color.NewRGBA(255, 255, 255, 15), // ~6%
	BorderHover:     color.NewRGBA(249, 115, 22, 77),  // ~30%
}

// MoltenSteps lists the molten scale in ascending step order.
func MoltenSteps() []Step {
	m := Molten
	return []Step{
		{50, m.S50}, {100, m.S100}, {200, m.S200}, {300, m.S300},
		{400, m.S400}, {500, m.S500}, {600, m.S600}, {700, m.S700},
		{800, m.S800}, {900, m.S900}, {950, m.S950},
	}
}

// NeutralSteps lists the neutral scale in ascending step order.
func NeutralSteps() []Step {
	n := Neutral
	return []Step{
		{0, n.S0}, {50, n.S50}, {100, n.S100}, {200, n.S200}, {300, n.S300},
		{400, n.S400}, {500, n.S500}, {600, n.S600}, {700, n.S700},
		{800, n.S800}, {900, n.S900}, {950, n.S950},
	}
}

// Step is one entry of a color scale.
type Step struct {
	Level int
	Color color.Color
}

// MoltenStep returns the molten color at the given step, falling back to
// the primary (500) for unknown steps.
func MoltenStep(level int) color.Color {
	return stepOr(MoltenSteps(), level, Molten.S500)
}

// NeutralStep returns the neutral color at the given step, falling back to
// the mid gray (500) for unknown steps.
func NeutralStep(level int) color.Color {
	return stepOr(NeutralSteps(), level, Neutral.S500)
}

func stepOr(steps []Step, level int, fallback color.Color) color.Color {
	for _, s := range steps {
		if s.Level == level {
			return s.Color
		}
	}
	return fallback
}
