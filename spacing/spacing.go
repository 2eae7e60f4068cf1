// Package spacing defines the spacing scale shared by every product. Values
// are pixels on a 4px base unit; the scale skips steps deliberately to keep
// a visual rhythm.
package spacing

import "math"

// Base is the spacing unit in pixels.
const Base uint16 = 4

// Scale steps, named by their multiple of Base.
const (
	S0  uint16 = 0
	S1  uint16 = 4
	S2  uint16 = 8
	S3  uint16 = 12
	S4  uint16 = 16
	S5  uint16 = 20
	S6  uint16 = 24
	S8  uint16 = 32
	S10 uint16 = 40
	S12 uint16 = 48
	S16 uint16 = 64
	S20 uint16 = 80
	S24 uint16 = 96
	S32 uint16 = 128
	S40 uint16 = 160
	S48 uint16 = 192
	S64 uint16 = 256
)

// Semantic aliases.
const (
	Inline      = S1 // inline elements
	ComponentSm = S2 // buttons, inputs
	ComponentMd = S3
	ComponentLg = S4
	GapSm       = S2 // related items
	GapMd       = S4
	GapLg       = S6
	Section     = S8
	Page        = S16
)

// Step is one entry of the scale.
type Step struct {
	Index  uint16 `json:"index" yaml:"index"`
	Pixels uint16 `json:"px" yaml:"px"`
}

// Steps lists the scale in ascending order.
func Steps() []Step {
	return []Step{
		{0, S0}, {1, S1}, {2, S2}, {3, S3}, {4, S4}, {5, S5}, {6, S6},
		{8, S8}, {10, S10}, {12, S12}, {16, S16}, {20, S20}, {24, S24},
		{32, S32}, {40, S40}, {48, S48}, {64, S64},
	}
}

// Get returns the pixel value for a scale index. Indices that are not on
// the scale fall back to S4.
func Get(index uint16) uint16 {
	for _, s := range Steps() {
		if s.Index == index {
			return s.Pixels
		}
	}
	return S4
}

// Units converts a number of base units to pixels, saturating at
// math.MaxUint16.
func Units(n uint16) uint16 {
	if n > math.MaxUint16/Base {
		return math.MaxUint16
	}
	return n * Base
}

// Aliases returns the semantic spacing names with their pixel values.
func Aliases() []Alias {
	return []Alias{
		{"inline", Inline},
		{"component_sm", ComponentSm},
		{"component_md", ComponentMd},
		{"component_lg", ComponentLg},
		{"gap_sm", GapSm},
		{"gap_md", GapMd},
		{"gap_lg", GapLg},
		{"section", Section},
		{"page", Page},
	}
}

// Alias is a semantic spacing name.
type Alias struct {
	Name   string `json:"name" yaml:"name"`
	Pixels uint16 `json:"px" yaml:"px"`
}
