package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colorful converts the RGB channels to a go-colorful value. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Luminance returns the WCAG relative luminance in [0, 1]. Alpha is ignored.
func (c Color) Luminance() float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between c and o, from 1 to 21.
func (c Color) Contrast(o Color) float64 {
	l1, l2 := c.Luminance(), o.Luminance()
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// MixLab blends toward o through CIE L*a*b*, which keeps intermediate steps
// perceptually even. Alpha is interpolated linearly.
func (c Color) MixLab(o Color, t float64) Color {
	t = clampUnit(t)
	r, g, b := c.Colorful().BlendLab(o.Colorful(), t).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: lerp(c.A, o.A, t)}
}
