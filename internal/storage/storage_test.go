package storage_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/internal/storage"
)

func newStorage(t *testing.T, files map[string]string) *storage.Storage {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return storage.New(fs)
}

func TestLoadPalette_YAML(t *testing.T) {
	s := newStorage(t, map[string]string{
		"palette.yaml": `
brand:
  primary: "#F97316"
  ink: "0a0a0a"
glass: {r: 255, g: 255, b: 255, a: 20}
`,
	})

	p, err := s.LoadPalette("palette.yaml")
	require.NoError(t, err)
	assert.True(t, p.Valid())
	assert.Equal(t, []color.Named{
		{Name: "brand.primary", Color: color.New(249, 115, 22)},
		{Name: "brand.ink", Color: color.New(10, 10, 10)},
		{Name: "glass", Color: color.NewRGBA(255, 255, 255, 20)},
	}, p.Colors)
}

func TestLoadPalette_JSON(t *testing.T) {
	s := newStorage(t, map[string]string{
		"palette.json": `{"Accent": "#22c55e", "shadow": {"r": 0, "g": 0, "b": 0, "a": 128}}`,
	})

	p, err := s.LoadPalette("palette.json")
	require.NoError(t, err)
	require.Len(t, p.Colors, 2)
	assert.Equal(t, "accent", p.Colors[0].Name)
	assert.Equal(t, "#00000080", p.Colors[1].Color.Hex())
}

func TestLoadPalette_ExportLayout(t *testing.T) {
	s := newStorage(t, map[string]string{
		"tokens.yaml": `
version: 1
colors:
  forge.black: "#0a0a0a"
spacing:
  spacing.base: 4
`,
	})

	p, err := s.LoadPalette("tokens.yaml")
	require.NoError(t, err)
	assert.Equal(t, []color.Named{{Name: "forge.black", Color: color.New(10, 10, 10)}}, p.Colors)
}

func TestLoadPalette_ReportsEveryIssue(t *testing.T) {
	s := newStorage(t, map[string]string{
		"bad.yaml": `
ok: "#ffffff"
short: "#fff"
digits: "#gggggg"
range: {r: 300, g: 0, b: 0}
list: [1, 2, 3]
OK: "#000000"
`,
	})

	p, err := s.LoadPalette("bad.yaml")
	require.NoError(t, err)
	assert.False(t, p.Valid())
	require.Len(t, p.Colors, 1)

	want := map[string]error{
		"short":  color.ErrInvalidHexFormat,
		"digits": color.ErrInvalidHexDigit,
		"range":  color.ErrInvalidChannel,
		"list":   color.ErrInvalidHexFormat,
	}
	names := make([]string, 0, len(p.Issues))
	for _, issue := range p.Issues {
		names = append(names, issue.Name)
		assert.Positive(t, issue.Line, issue.Name)
		if sentinel, ok := want[issue.Name]; ok {
			assert.True(t, errors.Is(issue, sentinel), "%s: %v", issue.Name, issue.Err)
		}
	}
	assert.Equal(t, []string{"short", "digits", "range", "list", "ok"}, names)
	assert.Contains(t, p.Issues[4].Error(), "duplicate token name")
}

func TestLoadPalette_Empty(t *testing.T) {
	s := newStorage(t, map[string]string{"empty.yaml": ""})

	p, err := s.LoadPalette("empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, p.Colors)
	assert.True(t, p.Valid())
}

func TestLoadPalette_Errors(t *testing.T) {
	s := newStorage(t, map[string]string{
		"list.yaml":   "- \"#ffffff\"\n",
		"broken.yaml": "a: [unclosed\n",
	})

	tests := []struct {
		path string
		msg  string
	}{
		{"missing.yaml", "failed to read palette file"},
		{"broken.yaml", "failed to parse palette file"},
		{"list.yaml", "palette must be a mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := s.LoadPalette(tt.path)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.msg)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.path, zErr.Metadata()["path"])
		})
	}
}

func TestWriteFile(t *testing.T) {
	s := newStorage(t, nil)

	require.NoError(t, s.WriteFile("out/tokens/molten.css", []byte(":root {}\n")))
	assert.True(t, s.Exists("out/tokens/molten.css"))

	data, err := afero.ReadFile(s.Fs(), "out/tokens/molten.css")
	require.NoError(t, err)
	assert.Equal(t, ":root {}\n", string(data))
}

func TestWriteFile_ReadOnly(t *testing.T) {
	s := storage.New(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := s.WriteFile("tokens.json", []byte("{}"))
	require.ErrorContains(t, err, "failed to write file")
}

func TestLoadPalette_NullEntries(t *testing.T) {
	s := newStorage(t, map[string]string{
		"null.yaml": "brand: #f97316\nempty:\njs: null\ntilde: ~\nok: \"#ffffff\"\n",
	})

	p, err := s.LoadPalette("null.yaml")
	require.NoError(t, err)
	assert.False(t, p.Valid())
	assert.Equal(t, []color.Named{{Name: "ok", Color: color.White}}, p.Colors)

	names := make([]string, 0, len(p.Issues))
	for _, issue := range p.Issues {
		names = append(names, issue.Name)
		assert.True(t, errors.Is(issue, color.ErrInvalidHexFormat), issue.Name)
		assert.Contains(t, issue.Error(), "YAML comment")
	}
	assert.Equal(t, []string{"brand", "empty", "js", "tilde"}, names)
	assert.Equal(t, 1, p.Issues[0].Line)
}
