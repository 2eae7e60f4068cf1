package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moltenlabs/brand/color"
)

func TestLightenDarken(t *testing.T) {
	gray := color.New(100, 100, 100)
	assert.Equal(t, color.New(178, 178, 178), gray.Lighten(0.5))
	assert.Equal(t, color.New(50, 50, 50), gray.Darken(0.5))
	assert.Equal(t, color.New(191, 191, 191), color.White.Darken(0.25))

	assert.Equal(t, gray, gray.Lighten(0))
	assert.Equal(t, gray, gray.Darken(0))
	assert.Equal(t, color.White, gray.Lighten(2))
	assert.Equal(t, color.Black, gray.Darken(7))
	assert.Equal(t, gray, gray.Lighten(-1))

	glass := color.NewRGBA(200, 100, 0, 13)
	assert.Equal(t, uint8(13), glass.Lighten(0.3).A)
	assert.Equal(t, uint8(13), glass.Darken(0.3).A)
}

func TestMix(t *testing.T) {
	assert.Equal(t, color.New(128, 128, 128), color.Black.Mix(color.White, 0.5))
	assert.Equal(t, color.Black, color.Black.Mix(color.White, 0))
	assert.Equal(t, color.White, color.Black.Mix(color.White, 1))
	assert.Equal(t, color.White, color.Black.Mix(color.White, 3))
	assert.Equal(t, color.NewRGBA(0, 0, 0, 128), color.Black.Mix(color.Transparent, 0.5))
}

func TestOver(t *testing.T) {
	halfWhite := color.NewRGBA(255, 255, 255, 128)
	assert.Equal(t, color.New(128, 128, 128), halfWhite.Over(color.Black))

	red := color.NewRGBA(255, 0, 0, 128)
	assert.Equal(t, red, red.Over(color.Transparent))

	assert.Equal(t, color.Black, color.Transparent.Over(color.Black))
	assert.Equal(t, color.White, color.White.Over(color.Black))
	assert.Equal(t, color.Transparent, color.Transparent.Over(color.Transparent))
}

func TestInvert(t *testing.T) {
	assert.Equal(t, color.White, color.Black.Invert())
	assert.Equal(t, color.NewRGBA(6, 140, 233, 8), color.NewRGBA(249, 115, 22, 8).Invert())
}

func TestLuminanceContrast(t *testing.T) {
	assert.InDelta(t, 1.0, color.White.Luminance(), 1e-9)
	assert.InDelta(t, 0.0, color.Black.Luminance(), 1e-9)
	assert.InDelta(t, 21.0, color.White.Contrast(color.Black), 1e-9)
	assert.InDelta(t, 21.0, color.Black.Contrast(color.White), 1e-9)
	assert.InDelta(t, 1.0, color.White.Contrast(color.White), 1e-9)

	orange := color.New(249, 115, 22)
	assert.Greater(t, orange.Contrast(color.New(10, 10, 10)), 4.5)
}

func TestMixLab(t *testing.T) {
	assert.Equal(t, color.Black, color.Black.MixLab(color.White, 0))
	assert.Equal(t, color.White, color.Black.MixLab(color.White, 1))

	mid := color.Black.MixLab(color.White, 0.5)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.G, mid.B)
	assert.Greater(t, mid.R, uint8(100))
	assert.Less(t, mid.R, uint8(140))
}
