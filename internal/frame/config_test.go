package frame

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLibrary(t *testing.T) {
	data := []byte(`{
		"default": {"score_color": "#fff"},
		"gold": {"image_box_top": "10%", "image_box_left": "5%"}
	}`)

	lib, err := ParseLibrary(data)
	require.NoError(t, err)

	assert.Equal(t, "#fff", lib["default"][KeyScoreColor])
	assert.Equal(t, "10%", lib["gold"][KeyImageBoxTop])
}

func TestParseLibraryMalformedInput(t *testing.T) {
	cases := map[string][]byte{
		"not json":        []byte(`frames: nope`),
		"wrong shape":     []byte(`{"default": "gold"}`),
		"non-string prop": []byte(`{"default": {"score_color": 42}}`),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			lib, err := ParseLibrary(data)
			require.ErrorIs(t, err, ErrMalformedConfig)

			// The returned library is empty but usable: resolution still
			// produces the built-in defaults instead of blowing up.
			resolved := Resolve(lib, "gold")
			assert.Equal(t, "#ffffff", resolved["--score-color"])
		})
	}
}

func TestParseLibraryNullDocument(t *testing.T) {
	lib, err := ParseLibrary([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, lib)
	assert.Empty(t, lib)
}

func TestLoadLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default": {"name_color": "#222"}}`), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, "#222", lib["default"][KeyNameColor])
}

func TestLoadLibraryMissingFile(t *testing.T) {
	lib, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Empty(t, lib)

	// Degraded mode still serves defaults.
	resolved := Resolve(lib, "default")
	assert.Equal(t, "1.2rem", resolved["--name-font-size"])
}
