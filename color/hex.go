package color

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// ParseHex parses #RRGGBB or #RRGGBBAA. The leading '#' is optional and
// digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: %q has %d digits, want 6 or 8", ErrInvalidHexFormat, s, len(digits))
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(digits); i += 2 {
		hi, ok := unhex(digits[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q in %q", ErrInvalidHexDigit, digits[i], s)
		}
		lo, ok := unhex(digits[i+1])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q in %q", ErrInvalidHexDigit, digits[i+1], s)
		}
		ch[i/2] = hi<<4 | lo
	}
	return NewRGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as lowercase #rrggbb, or #rrggbbaa when the color
// is not fully opaque.
func (c Color) Hex() string {
	n := 7
	if !c.Opaque() {
		n = 9
	}
	buf := make([]byte, 1, n)
	buf[0] = '#'
	buf = appendByte(buf, c.R)
	buf = appendByte(buf, c.G)
	buf = appendByte(buf, c.B)
	if !c.Opaque() {
		buf = appendByte(buf, c.A)
	}
	return string(buf)
}

func appendByte(buf []byte, v uint8) []byte {
	return append(buf, hexDigits[v>>4], hexDigits[v&0x0f])
}

func unhex(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
