package color

// All blending helpers compute in float64, round half up and clamp the
// result to [0, 255]. Factors outside [0, 1] are clamped first.

// Lighten moves each RGB channel toward 255 by the fraction f. Alpha is kept.
func (c Color) Lighten(f float64) Color {
	f = clampUnit(f)
	return Color{
		R: round(float64(c.R) + (255-float64(c.R))*f),
		G: round(float64(c.G) + (255-float64(c.G))*f),
		B: round(float64(c.B) + (255-float64(c.B))*f),
		A: c.A,
	}
}

// Darken scales each RGB channel toward 0 by the fraction f. Alpha is kept.
func (c Color) Darken(f float64) Color {
	f = clampUnit(f)
	return Color{
		R: round(float64(c.R) * (1 - f)),
		G: round(float64(c.G) * (1 - f)),
		B: round(float64(c.B) * (1 - f)),
		A: c.A,
	}
}

// Mix interpolates linearly from c (t=0) to o (t=1) on all four channels.
func (c Color) Mix(o Color, t float64) Color {
	t = clampUnit(t)
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		A: lerp(c.A, o.A, t),
	}
}

// Over composites c on top of dst (Porter-Duff source-over, straight alpha).
func (c Color) Over(dst Color) Color {
	if c.A == 255 {
		return c
	}
	if c.A == 0 {
		return dst
	}

	as := float64(c.A) / 255
	ad := float64(dst.A) / 255
	ao := as + ad*(1-as)
	if ao <= 0 {
		return Transparent
	}

	channel := func(s, d uint8) uint8 {
		return round((float64(s)*as + float64(d)*ad*(1-as)) / ao)
	}
	return Color{
		R: channel(c.R, dst.R),
		G: channel(c.G, dst.G),
		B: channel(c.B, dst.B),
		A: round(ao * 255),
	}
}

// Invert replaces each RGB channel with 255 minus its value. Alpha is kept.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

func lerp(a, b uint8, t float64) uint8 {
	return round(float64(a) + (float64(b)-float64(a))*t)
}
