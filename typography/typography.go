// Package typography defines font families, sizes, weights, line heights,
// letter spacing and the text style presets built from them.
package typography

import (
	"fmt"
	"strings"
)

// Font family stacks.
const (
	FamilySans    = `"Geist Sans", system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`
	FamilyMono    = `"Geist Mono", "SF Mono", Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`
	FamilyDisplay = `"Space Grotesk", "Geist Sans", system-ui, -apple-system, sans-serif`
	FamilySerif   = `"Fraunces", "Georgia", "Times New Roman", "Times", serif` // Hearth editorial
)

// Font sizes in pixels.
const (
	SizeTiny      uint16 = 12 // footnotes, legal
	SizeSmall     uint16 = 14 // captions, labels
	SizeBase      uint16 = 16 // body
	SizeLarge     uint16 = 18
	SizeLead      uint16 = 20
	SizeH4        uint16 = 22
	SizeH3        uint16 = 24
	SizeH2        uint16 = 28
	SizeH1        uint16 = 36
	SizeDisplay   uint16 = 48
	SizeDisplayLg uint16 = 60
	SizeDisplayXl uint16 = 72
)

// Font weights.
const (
	WeightThin       uint16 = 100
	WeightExtraLight uint16 = 200
	WeightLight      uint16 = 300
	WeightRegular    uint16 = 400
	WeightMedium     uint16 = 500
	WeightSemiBold   uint16 = 600
	WeightBold       uint16 = 700
	WeightExtraBold  uint16 = 800
	WeightBlack      uint16 = 900
)

// Line height multipliers.
const (
	LineHeightTight   float32 = 1.1
	LineHeightSnug    float32 = 1.25
	LineHeightNormal  float32 = 1.5
	LineHeightRelaxed float32 = 1.625
	LineHeightLoose   float32 = 2.0
)

// Letter spacing in em.
const (
	LetterSpacingTighter float32 = -0.025
	LetterSpacingTight   float32 = -0.015
	LetterSpacingNormal  float32 = 0
	LetterSpacingWide    float32 = 0.025
	LetterSpacingWider   float32 = 0.05
	LetterSpacingWidest  float32 = 0.1
)

// TextStyle is a complete typographic preset.
type TextStyle struct {
	Family        string  `json:"family" yaml:"family"`
	Size          uint16  `json:"size" yaml:"size"`
	Weight        uint16  `json:"weight" yaml:"weight"`
	LineHeight    float32 `json:"line_height" yaml:"line_height"`
	LetterSpacing float32 `json:"letter_spacing" yaml:"letter_spacing"`
}

// CSS renders the style as CSS declarations.
func (s TextStyle) CSS() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "font-family: %s; ", s.Family)
	fmt.Fprintf(&sb, "font-size: %dpx; ", s.Size)
	fmt.Fprintf(&sb, "font-weight: %d; ", s.Weight)
	fmt.Fprintf(&sb, "line-height: %g; ", s.LineHeight)
	fmt.Fprintf(&sb, "letter-spacing: %gem;", s.LetterSpacing)
	return sb.String()
}

// Presets.
var (
	Display = TextStyle{FamilyDisplay, SizeDisplay, WeightBold, LineHeightTight, LetterSpacingTighter}
	H1      = TextStyle{FamilySans, SizeH1, WeightBold, LineHeightTight, LetterSpacingTight}
	H2      = TextStyle{FamilySans, SizeH2, WeightSemiBold, LineHeightSnug, LetterSpacingTight}
	H3      = TextStyle{FamilySans, SizeH3, WeightSemiBold, LineHeightSnug, LetterSpacingNormal}
	Body    = TextStyle{FamilySans, SizeBase, WeightRegular, LineHeightNormal, LetterSpacingNormal}
	Small   = TextStyle{FamilySans, SizeSmall, WeightRegular, LineHeightNormal, LetterSpacingNormal}
	Code    = TextStyle{FamilyMono, SizeSmall, WeightRegular, LineHeightRelaxed, LetterSpacingNormal}
	Label   = TextStyle{FamilySans, SizeTiny, WeightMedium, LineHeightNormal, LetterSpacingWide} // small caps effect
)

// NamedStyle pairs a preset with its name.
type NamedStyle struct {
	Name  string    `json:"name" yaml:"name"`
	Style TextStyle `json:"style" yaml:"style"`
}

// Presets lists every preset from largest to smallest.
func Presets() []NamedStyle {
	return []NamedStyle{
		{"display", Display},
		{"h1", H1},
		{"h2", H2},
		{"h3", H3},
		{"body", Body},
		{"small", Small},
		{"code", Code},
		{"label", Label},
	}
}

// Preset finds a preset by name, ignoring case.
func Preset(name string) (TextStyle, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p.Style, true
		}
	}
	return TextStyle{}, false
}
