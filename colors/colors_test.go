package colors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/colors"
)

func TestForge(t *testing.T) {
	assert.Equal(t, "#0a0a0a", colors.Forge.Black.Hex())
	assert.Equal(t, "#71717a", colors.Forge.Steel.Hex())
	assert.Equal(t, "#fafafa", colors.Forge.White.Hex())
	assert.Equal(t, "#f97316", colors.Forge.Molten.Hex())
	assert.Equal(t, "#ef4444", colors.Forge.Ember.Hex())
	assert.Equal(t, "#3b82f6", colors.Forge.Iron.Hex())
}

func TestMolten(t *testing.T) {
	assert.Equal(t, "#f97316", colors.Molten.Primary.Hex())
	assert.Equal(t, colors.Molten.S500, colors.Molten.Primary)
	assert.Equal(t, "#fff7ed", colors.Molten.S50.Hex())
	assert.Equal(t, "#431407", colors.Molten.S950.Hex())
}

func TestSteps(t *testing.T) {
	tests := []struct {
		name string
		got  color.Color
		want color.Color
	}{
		{"molten 50", colors.MoltenStep(50), colors.Molten.S50},
		{"molten 700", colors.MoltenStep(700), colors.Molten.S700},
		{"molten unknown", colors.MoltenStep(0), colors.Molten.S500},
		{"molten negative", colors.MoltenStep(-100), colors.Molten.S500},
		{"neutral 0", colors.NeutralStep(0), colors.Neutral.S0},
		{"neutral 950", colors.NeutralStep(950), colors.Neutral.S950},
		{"neutral unknown", colors.NeutralStep(1000), colors.Neutral.S500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSteps_Ascending(t *testing.T) {
	for _, steps := range [][]colors.Step{colors.MoltenSteps(), colors.NeutralSteps()} {
		for i := 1; i < len(steps); i++ {
			assert.Less(t, steps[i-1].Level, steps[i].Level)
			// each step is darker than the previous one
			assert.Greater(t, steps[i-1].Color.Luminance(), steps[i].Color.Luminance())
		}
	}
}

func TestGlassIsTranslucent(t *testing.T) {
	for _, c := range []color.Color{
		colors.Glass.Background, colors.Glass.BackgroundHover,
		colors.Glass.Border, colors.Glass.BorderHover,
	} {
		assert.False(t, c.Opaque())
		assert.Len(t, c.Hex(), 9)
	}
}

func TestTokens(t *testing.T) {
	tokens := colors.Tokens()
	require.Len(t, tokens, 6+12+12+4+5+4)

	seen := map[string]bool{}
	for _, tok := range tokens {
		assert.False(t, seen[tok.Name], "duplicate %s", tok.Name)
		seen[tok.Name] = true

		parsed, err := color.ParseHex(tok.Color.Hex())
		require.NoError(t, err, tok.Name)
		assert.Equal(t, tok.Color, parsed, tok.Name)
	}
	assert.True(t, seen["molten.500"])
	assert.True(t, seen["glass.border_hover"])
}
