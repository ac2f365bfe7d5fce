package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-ultra/internal/engine"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, yaml.Unmarshal(defaultSnakeYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestConversions(t *testing.T) {
	cfg := Default()

	assert.Equal(t, engine.DefaultSpeed, cfg.SpeedCurve())
	assert.Equal(t, engine.Config{GridSize: 20}, cfg.Engine())
	assert.Equal(t, 3*time.Second, cfg.ExplosionDuration())
	assert.Equal(t, 5*time.Second, cfg.FlavorTimeout())
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  size: 30\nfood:\n  avoid_snake: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Grid.Size)
	assert.True(t, cfg.Food.AvoidSnake)
	assert.Equal(t, 150, cfg.Speed.BaseMs, "unset fields keep defaults")
}

func TestLoadCustomErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("grid:\n  size: 2\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "grid.size")
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("explosion:\n  duration_ms: 1000\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.ExplosionDuration())
}

func TestLoadUserFileWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".snake"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".snake", "config.yaml"), []byte("display:\n  fps: 30\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.FPS)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Grid.Size = 1
	cfg.Speed.CapMs = 150
	cfg.Display.FPS = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"grid.size", "speed.cap_ms", "display.fps"} {
		assert.True(t, strings.Contains(err.Error(), field), "missing %s in %v", field, err)
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Grid.Size = 25

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "avoid_snake")

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
