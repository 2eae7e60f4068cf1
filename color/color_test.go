package color_test

import (
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltenlabs/brand/color"
)

func TestFromChannels(t *testing.T) {
	c, err := color.FromChannels(249, 115, 22)
	require.NoError(t, err)
	assert.Equal(t, color.New(249, 115, 22), c)
	assert.True(t, c.Opaque())

	c, err = color.FromChannelsRGBA(124, 58, 237, 102)
	require.NoError(t, err)
	assert.Equal(t, uint8(102), c.A)
}

func TestFromChannels_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a int
	}{
		{"red high", 256, 0, 0, 255},
		{"green negative", 0, -1, 0, 255},
		{"blue high", 0, 0, 1000, 255},
		{"alpha high", 0, 0, 0, 256},
		{"alpha negative", 0, 0, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := color.FromChannelsRGBA(tt.r, tt.g, tt.b, tt.a)
			assert.ErrorIs(t, err, color.ErrInvalidChannel)
		})
	}

	_, err := color.FromChannels(-5, 0, 0)
	assert.ErrorIs(t, err, color.ErrInvalidChannel)
}

func TestFromOpacity(t *testing.T) {
	c, err := color.FromOpacity(124, 58, 237, 0.4)
	require.NoError(t, err)
	assert.Equal(t, uint8(102), c.A)

	c, err = color.FromOpacity(0, 0, 0, 0.3)
	require.NoError(t, err)
	assert.Equal(t, uint8(77), c.A)

	for _, bad := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		_, err := color.FromOpacity(0, 0, 0, bad)
		assert.ErrorIs(t, err, color.ErrInvalidChannel, "opacity %v", bad)
	}

	_, err = color.FromOpacity(300, 0, 0, 0.5)
	assert.ErrorIs(t, err, color.ErrInvalidChannel)
}

func TestWithOpacity(t *testing.T) {
	purple := color.New(124, 58, 237)
	assert.Equal(t, uint8(102), purple.WithOpacity(0.4).A)
	assert.Equal(t, uint8(255), purple.WithOpacity(2).A)
	assert.Equal(t, uint8(0), purple.WithOpacity(-1).A)
	assert.Equal(t, uint8(0), purple.WithOpacity(math.NaN()).A)
	assert.Equal(t, purple.ToRGB(), purple.WithOpacity(0.4).ToRGB())
}

func TestWithAlphaAndSolid(t *testing.T) {
	c := color.New(1, 2, 3).WithAlpha(9)
	assert.Equal(t, color.NewRGBA(1, 2, 3, 9), c)
	assert.False(t, c.Opaque())
	assert.Equal(t, color.New(1, 2, 3), c.Solid())
}

func TestEqual(t *testing.T) {
	a := color.New(10, 20, 30)
	assert.True(t, a.Equal(color.New(10, 20, 30)))
	assert.False(t, a.Equal(color.NewRGBA(10, 20, 30, 254)))
	assert.False(t, a.Equal(color.New(10, 20, 31)))
	assert.True(t, a == color.NewRGBA(10, 20, 30, 255))
}

func TestViews(t *testing.T) {
	c := color.NewRGBA(124, 58, 237, 102)

	rgb := c.ToRGB()
	assert.Equal(t, color.RGB{R: 124, G: 58, B: 237}, rgb)
	assert.Equal(t, "#7c3aed", rgb.Hex())
	assert.Equal(t, "rgb(124, 58, 237)", rgb.String())
	assert.Equal(t, color.RGBA{R: 124, G: 58, B: 237, A: 255}, rgb.RGBA())
	assert.Equal(t, color.New(124, 58, 237), rgb.Color())

	rgba := c.ToRGBA()
	assert.Equal(t, "#7c3aed66", rgba.Hex())
	assert.Equal(t, "rgba(124, 58, 237, 0.40)", rgba.CSS())
	assert.Equal(t, rgb, rgba.RGB())
	assert.Equal(t, c, rgba.Color())
	assert.InDelta(t, 0.4, rgba.Alpha(), 0.001)

	r, g, b := color.RGB{R: 255, G: 0, B: 51}.Floats()
	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.0, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
}

func TestString(t *testing.T) {
	assert.Equal(t, "rgb(249, 115, 22)", color.New(249, 115, 22).String())
	assert.Equal(t, "rgba(0, 0, 0, 0.00)", color.Transparent.String())
}

func TestStdColor(t *testing.T) {
	var _ stdcolor.Color = color.Color{}

	r, g, b, a := color.White.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})

	assert.Equal(t, color.New(1, 2, 3), color.FromStd(stdcolor.RGBA{R: 1, G: 2, B: 3, A: 255}))
	assert.Equal(t, color.NewRGBA(10, 20, 30, 40), color.FromStd(stdcolor.NRGBA{R: 10, G: 20, B: 30, A: 40}))
	assert.Equal(t, color.Transparent, color.FromStd(stdcolor.Transparent))
}
