package products

import "github.com/moltenlabs/brand/color"

// HearthTokens is the content-first editorial platform, using Iron Blue for
// a trustworthy editorial feel.
type HearthTokens struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	Editorial struct {
		Text      color.Color
		Secondary color.Color
		Tertiary  color.Color
		Border    color.Color
	}

	Content struct {
		Background color.Color
		Card       color.Color
		CardHover  color.Color
		Border     color.Color
	}

	Meta Meta
}

// Hearth tokens.
var Hearth = func() HearthTokens {
	var t HearthTokens
	t.Primary = color.New(59, 130, 246)   // #3b82f6
	t.Secondary = color.New(96, 165, 250) // #60a5fa
	t.Accent = color.New(37, 99, 235)     // #2563eb

	t.Editorial.Text = color.New(229, 229, 229)      // #e5e5e5
	t.Editorial.Secondary = color.New(163, 163, 163) // #a3a3a3
	t.Editorial.Tertiary = color.New(82, 82, 82)     // #525252
	t.Editorial.Border = color.New(38, 38, 38)       // #262626

	t.Content.Background = color.New(10, 10, 10) // #0a0a0a
	t.Content.Card = color.New(17, 17, 17)       // #111111
	t.Content.CardHover = color.New(22, 22, 22)  // #161616
	t.Content.Border = color.New(38, 38, 38)     // #262626

	t.Meta = Meta{
		Name:        "Hearth",
		Tagline:     "The warm center where the community gathers",
		Description: "Content marketing platform and community hub",
	}
	return t
}()

// Product returns the summary view.
func (t HearthTokens) Product() Product {
	return Product{Key: "hearth", Primary: t.Primary, Secondary: t.Secondary, Accent: t.Accent, Meta: t.Meta}
}

// Tokens returns all Hearth colors.
func (t HearthTokens) Tokens() []color.Named {
	return []color.Named{
		{Name: "hearth.primary", Color: t.Primary},
		{Name: "hearth.secondary", Color: t.Secondary},
		{Name: "hearth.accent", Color: t.Accent},
		{Name: "hearth.editorial.text", Color: t.Editorial.Text},
		{Name: "hearth.editorial.secondary", Color: t.Editorial.Secondary},
		{Name: "hearth.editorial.tertiary", Color: t.Editorial.Tertiary},
		{Name: "hearth.editorial.border", Color: t.Editorial.Border},
		{Name: "hearth.content.background", Color: t.Content.Background},
		{Name: "hearth.content.card", Color: t.Content.Card},
		{Name: "hearth.content.card_hover", Color: t.Content.CardHover},
		{Name: "hearth.content.border", Color: t.Content.Border},
	}
}
