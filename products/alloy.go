package products

import "github.com/moltenlabs/brand/color"

// AlloyTokens is the design system itself, led by Molten Orange.
type AlloyTokens struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	System struct {
		Primary color.Color
		Neutral color.Color
		Surface color.Color
	}

	Glass struct {
		Background      color.Color
		BackgroundHover color.Color
		Border          color.Color
		BorderHover     color.Color
	}

	Meta Meta
}

// Alloy tokens.
var Alloy = func() AlloyTokens {
	var t AlloyTokens
	t.Primary = color.New(249, 115, 22)   // #f97316
	t.Secondary = color.New(251, 146, 60) // #fb923c
	t.Accent = color.New(234, 88, 12)     // #ea580c

	t.System.Primary = color.New(249, 115, 22)
	t.System.Neutral = color.New(113, 113, 122) // #71717a
	t.System.Surface = color.New(24, 24, 27)    // #18181b

	t.Glass.Background = color.NewRGBA(255, 255, 255, 8)
	t.Glass.BackgroundHover = color.NewRGBA(249, 115, 22, 13)
	t.Glass.Border = color.NewRGBA(255, 255, 255, 15)
	t.Glass.BorderHover = color.NewRGBA(249, 115, 22, 77)

	t.Meta = Meta{
		Name:        "Alloy",
		Tagline:     "Components forged together",
		Description: "The official design system for Molten Labs",
	}
	return t
}()

// Product returns the summary view.
func (t AlloyTokens) Product() Product {
	return Product{Key: "alloy", Primary: t.Primary, Secondary: t.Secondary, Accent: t.Accent, Meta: t.Meta}
}

// Tokens returns all Alloy colors.
func (t AlloyTokens) Tokens() []color.Named {
	return []color.Named{
		{Name: "alloy.primary", Color: t.Primary},
		{Name: "alloy.secondary", Color: t.Secondary},
		{Name: "alloy.accent", Color: t.Accent},
		{Name: "alloy.system.primary", Color: t.System.Primary},
		{Name: "alloy.system.neutral", Color: t.System.Neutral},
		{Name: "alloy.system.surface", Color: t.System.Surface},
		{Name: "alloy.glass.background", Color: t.Glass.Background},
		{Name: "alloy.glass.background_hover", Color: t.Glass.BackgroundHover},
		{Name: "alloy.glass.border", Color: t.Glass.Border},
		{Name: "alloy.glass.border_hover", Color: t.Glass.BorderHover},
	}
}
