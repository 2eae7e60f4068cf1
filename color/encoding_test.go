package color_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/moltenlabs/brand/color"
)

type swatch struct {
	Name  string      `json:"name" yaml:"name"`
	Color color.Color `json:"color" yaml:"color"`
}

func TestJSON_Marshal(t *testing.T) {
	data, err := json.Marshal(swatch{Name: "glass", Color: color.NewRGBA(255, 255, 255, 8)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"glass","color":"#ffffff08"}`, string(data))
}

func TestJSON_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.Color
	}{
		{"hex", `{"color":"#F97316"}`, color.New(249, 115, 22)},
		{"hex without hash", `{"color":"7c3aed66"}`, color.NewRGBA(124, 58, 237, 102)},
		{"object", `{"color":{"r":16,"g":185,"b":129}}`, color.New(16, 185, 129)},
		{"object with alpha", `{"color":{"r":1,"g":2,"b":3,"a":4}}`, color.NewRGBA(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s swatch
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s.Color)
		})
	}
}

func TestJSON_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"short hex", `{"color":"#FFF"}`, color.ErrInvalidHexFormat},
		{"bad digit", `{"color":"#GGGGGG"}`, color.ErrInvalidHexDigit},
		{"channel out of range", `{"color":{"r":300,"g":0,"b":0}}`, color.ErrInvalidChannel},
		{"missing channel", `{"color":{"r":1,"g":2}}`, color.ErrInvalidChannel},
		{"number", `{"color":42}`, color.ErrInvalidHexFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s swatch
			err := json.Unmarshal([]byte(tt.in), &s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJSON_Null(t *testing.T) {
	s := swatch{Color: color.White}
	require.NoError(t, json.Unmarshal([]byte(`{"color":null}`), &s))
	assert.Equal(t, color.White, s.Color)
}

func TestYAML_RoundTrip(t *testing.T) {
	in := swatch{Name: "selection", Color: color.NewRGBA(124, 58, 237, 77)}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#7c3aed4d")

	var out swatch
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAML_Unmarshal(t *testing.T) {
	var s swatch
	require.NoError(t, yaml.Unmarshal([]byte("color: {r: 59, g: 130, b: 246}\n"), &s))
	assert.Equal(t, color.New(59, 130, 246), s.Color)

	require.NoError(t, yaml.Unmarshal([]byte("color: \"#EF4444\"\n"), &s))
	assert.Equal(t, color.New(239, 68, 68), s.Color)

	require.NoError(t, yaml.Unmarshal([]byte("color: 101010\n"), &s))
	assert.Equal(t, color.New(16, 16, 16), s.Color)

	err := yaml.Unmarshal([]byte("color: [1, 2, 3]\n"), &s)
	assert.ErrorIs(t, err, color.ErrInvalidHexFormat)

	err = yaml.Unmarshal([]byte("color: {r: 1, g: 2, b: -3}\n"), &s)
	assert.ErrorIs(t, err, color.ErrInvalidChannel)

	err = yaml.Unmarshal([]byte("color: \"#12345\"\n"), &s)
	assert.ErrorIs(t, err, color.ErrInvalidHexFormat)
}

func TestText(t *testing.T) {
	text, err := color.New(10, 10, 10).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#0a0a0a", string(text))

	var c color.Color
	require.NoError(t, c.UnmarshalText([]byte("#FAFAFA")))
	assert.Equal(t, color.New(250, 250, 250), c)
	assert.ErrorIs(t, c.UnmarshalText([]byte("nope")), color.ErrInvalidHexFormat)
}
