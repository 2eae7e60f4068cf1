package products

import "github.com/moltenlabs/brand/color"

// LairTokens is the GPU-rendered terminal and multi-agent orchestration
// platform, themed around Goblin Purple.
type LairTokens struct {
	Primary   color.Color // Goblin Purple
	Secondary color.Color // hover states
	Accent    color.Color // active states

	Terminal struct {
		Background color.Color // Cave Dark
		Foreground color.Color
		Cursor     color.Color
		Selection  color.Color
	}

	Goblin struct {
		Primary color.Color
		Glow    color.Color
		Shadow  color.Color
		Pulse   color.Color // animations
	}

	Surface struct {
		Base        color.Color
		Raised      color.Color
		Tinted      color.Color // purple tint
		Border      color.Color
		BorderHover color.Color
	}

	Meta Meta
}

// Lair tokens.
var Lair = func() LairTokens {
	var t LairTokens
	t.Primary = color.New(124, 58, 237)    // #7c3aed
	t.Secondary = color.New(167, 139, 250) // #a78bfa
	t.Accent = color.New(91, 33, 182)      // #5b21b6

	t.Terminal.Background = color.New(15, 15, 26)    // #0f0f1a
	t.Terminal.Foreground = color.New(228, 228, 231) // #e4e4e7
	t.Terminal.Cursor = color.New(124, 58, 237)
	t.Terminal.Selection = color.NewRGBA(124, 58, 237, 77) // ~30%

	t.Goblin.Primary = color.New(124, 58, 237)
	t.Goblin.Glow = color.NewRGBA(124, 58, 237, 102)  // ~40%
	t.Goblin.Shadow = color.NewRGBA(124, 58, 237, 51) // ~20%
	t.Goblin.Pulse = color.NewRGBA(124, 58, 237, 153) // ~60%

	t.Surface.Base = color.New(15, 15, 26)   // #0f0f1a
	t.Surface.Raised = color.New(26, 26, 46) // #1a1a2e
	t.Surface.Tinted = color.New(37, 37, 56) // #252538
	t.Surface.Border = color.NewRGBA(124, 58, 237, 51)
	t.Surface.BorderHover = color.NewRGBA(124, 58, 237, 102)

	t.Meta = Meta{
		Name:        "Lair",
		Tagline:     "The terminal where goblins ship code",
		Description: "GPU-rendered terminal and multi-agent orchestration platform",
	}
	return t
}()

// Product returns the summary view.
func (t LairTokens) Product() Product {
	return Product{Key: "lair", Primary: t.Primary, Secondary: t.Secondary, Accent: t.Accent, Meta: t.Meta}
}

// Tokens returns all Lair colors.
func (t LairTokens) Tokens() []color.Named {
	return []color.Named{
		{Name: "lair.primary", Color: t.Primary},
		{Name: "lair.secondary", Color: t.Secondary},
		{Name: "lair.accent", Color: t.Accent},
		{Name: "lair.terminal.background", Color: t.Terminal.Background},
		{Name: "lair.terminal.foreground", Color: t.Terminal.Foreground},
		{Name: "lair.terminal.cursor", Color: t.Terminal.Cursor},
		{Name: "lair.terminal.selection", Color: t.Terminal.Selection},
		{Name: "lair.goblin.primary", Color: t.Goblin.Primary},
		{Name: "lair.goblin.glow", Color: t.Goblin.Glow},
		{Name: "lair.goblin.shadow", Color: t.Goblin.Shadow},
		{Name: "lair.goblin.pulse", Color: t.Goblin.Pulse},
		{Name: "lair.surface.base", Color: t.Surface.Base},
		{Name: "lair.surface.raised", Color: t.Surface.Raised},
		{Name: "lair.surface.tinted", Color: t.Surface.Tinted},
		{Name: "lair.surface.border", Color: t.Surface.Border},
		{Name: "lair.surface.border_hover", Color: t.Surface.BorderHover},
	}
}
