package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 16, c.World.Width)
	assert.Equal(t, "autosave", c.Save.AutoSaveSlot)
	assert.Equal(t, 100, c.Save.AutoSaveInterval)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 1.0, c.Game.GameSpeed)
	assert.Equal(t, "normal", c.Game.Difficulty)
}

func TestLoadOverridesAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
world:
  width: 32
  seed: 42
save:
  db_path: /tmp/game.db
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, c.World.Width)
	assert.Equal(t, int64(42), c.World.Seed)
	assert.Equal(t, "/tmp/game.db", c.Save.DBPath)
	assert.Equal(t, "debug", c.Logging.Level)

	// unset fields fall back to defaults
	assert.Equal(t, 16, c.World.Height)
	assert.Equal(t, "autosave", c.Save.AutoSaveSlot)
	assert.Equal(t, "text", c.Logging.Format)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
