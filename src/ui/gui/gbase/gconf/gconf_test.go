package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, 4, c.GridSize)
	assert.Zero(t, c.TimeLimit)
	assert.True(t, c.Sound)
}

func TestInvalidValuesAreCorrected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilepuzzle.json")
	raw := `{"theme":"pink","language":"xx","grid_size":12,"time_limit":-5,"window_w":10,"window_h":10,"debug":true}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, "en", c.Lang)
	assert.Equal(t, 4, c.GridSize)
	assert.Zero(t, c.TimeLimit)
	assert.Equal(t, 1000, c.WindowW)
	assert.True(t, c.Debug)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilepuzzle.json")
	c, err := LoadConfig(path)
	require.NoError(t, err)
	c.Theme = "dark"
	c.GridSize = 6
	c.TimeLimit = 90
	c.Lang = "ru"
	require.NoError(t, c.Save())

	back, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", back.Theme)
	assert.Equal(t, 6, back.GridSize)
	assert.Equal(t, 90, back.TimeLimit)
	assert.Equal(t, "ru", back.Lang)
}

func TestBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilepuzzle.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
