package brand_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltenlabs/brand/brand"
)

func TestMetadata(t *testing.T) {
	info := brand.Metadata()
	assert.Equal(t, "Molten Labs", info.Company)
	assert.Equal(t, "Let them cook", info.Tagline)
	assert.Equal(t, "https://molten.dev", info.Website)
	assert.Equal(t, "https://github.com/moltenlabs", info.GitHub)
}

func TestMetadata_JSON(t *testing.T) {
	data, err := json.Marshal(brand.Metadata())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"company": "Molten Labs",
		"tagline": "Let them cook",
		"website": "https://molten.dev",
		"github": "https://github.com/moltenlabs"
	}`, string(data))
}
