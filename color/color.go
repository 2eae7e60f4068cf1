// Package color defines the Color value type shared by every token table.
//
// A Color is a small comparable struct holding 8-bit red, green, blue and
// alpha channels. Alpha uses the same 0-255 scale as the color channels,
// 255 meaning fully opaque. Values are never mutated after construction, so
// they can be shared freely between goroutines.
//
// Construction from literal uint8 channels cannot fail. Construction from
// untrusted input (ints, fractions, hex strings, JSON, YAML) rejects
// out-of-range values with a typed error instead of clamping them.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
)

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Named pairs a token name with its color.
type Named struct {
	Name  string
	Color Color
}

// Common colors.
var (
	Transparent = NewRGBA(0, 0, 0, 0)
	Black       = New(0, 0, 0)
	White       = New(255, 255, 255)
)

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewRGBA returns a color with an explicit alpha channel.
func NewRGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromChannels builds an opaque color from integer channels in [0, 255].
func FromChannels(r, g, b int) (Color, error) {
	return FromChannelsRGBA(r, g, b, 255)
}

// FromChannelsRGBA builds a color from integer channels in [0, 255].
func FromChannelsRGBA(r, g, b, a int) (Color, error) {
	channels := [4]struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}, {"alpha", a}}

	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, fmt.Errorf("%w: %s=%d, want 0-255", ErrInvalidChannel, ch.name, ch.value)
		}
	}
	return NewRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// FromOpacity builds a color whose alpha is given as a fraction in [0, 1].
func FromOpacity(r, g, b int, opacity float64) (Color, error) {
	if math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		return Color{}, fmt.Errorf("%w: opacity=%v, want 0-1", ErrInvalidChannel, opacity)
	}
	c, err := FromChannels(r, g, b)
	if err != nil {
		return Color{}, err
	}
	c.A = round(opacity * 255)
	return c, nil
}

// FromStd converts any image/color value.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return NewRGBA(n.R, n.G, n.B, n.A)
}

// RGBA implements image/color.Color. The returned channels are
// alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Equal reports whether all four channels match exactly.
func (c Color) Equal(o Color) bool {
	return c == o
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A == 255
}

// Solid returns the color with alpha forced to 255.
func (c Color) Solid() Color {
	c.A = 255
	return c
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// WithOpacity returns the color with alpha set from a fraction. The
// fraction is clamped to [0, 1] and rounded half up, so 0.4 gives 102.
func (c Color) WithOpacity(opacity float64) Color {
	if math.IsNaN(opacity) {
		opacity = 0
	}
	c.A = round(clampUnit(opacity) * 255)
	return c
}

// ToRGB drops the alpha channel.
func (c Color) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ToRGBA returns the channel view including alpha.
func (c Color) ToRGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String renders CSS functional notation: rgb(...) for opaque colors and
// rgba(...) otherwise.
func (c Color) String() string {
	if c.Opaque() {
		return c.ToRGB().String()
	}
	return c.ToRGBA().CSS()
}

// RGB is the three-channel view of a color.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Color returns the opaque color for these channels.
func (c RGB) Color() Color {
	return New(c.R, c.G, c.B)
}

// Hex returns the lowercase #rrggbb form.
func (c RGB) Hex() string {
	return c.Color().Hex()
}

// RGBA extends the color with full opacity.
func (c RGB) RGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Floats returns the channels normalized to [0, 1].
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA is the four-channel view of a color.
type RGBA struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// Color returns the color for these channels.
func (c RGBA) Color() Color {
	return NewRGBA(c.R, c.G, c.B, c.A)
}

// Hex returns the lowercase hex form, #rrggbbaa unless fully opaque.
func (c RGBA) Hex() string {
	return c.Color().Hex()
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Alpha returns the alpha channel normalized to [0, 1].
func (c RGBA) Alpha() float32 {
	return float32(c.A) / 255
}

// CSS renders rgba(r, g, b, a) with alpha to two decimals.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, c.Alpha())
}

func (c RGBA) String() string {
	return c.CSS()
}

// round converts a value to a channel, rounding half up and clamping to
// [0, 255].
func round(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return uint8(math.Floor(v + 0.5))
}

func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
