package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SOUNDTUNER_AUDIO_DIR", "/srv/audio")
	t.Setenv("SOUNDTUNER_AUDIO_SE_VOLUME", "40")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/audio", cfg.Audio.Dir)
	assert.Equal(t, 40, cfg.Audio.SEVolume)
	assert.Equal(t, 100, cfg.Audio.BGMVolume)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("title: Test\naudio:\n  tuner_file: tuning.yaml\n  bgm_volume: 70\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Title)
	assert.Equal(t, 70, cfg.Audio.BGMVolume)
	assert.Equal(t, filepath.Join("data", "tuning.yaml"), cfg.Audio.TunerPath())
	assert.Equal(t, 816, cfg.WindowWidth)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Audio.MEVolume = 55
	cfg.Audio.TunerFile = "/abs/tuner.json"

	require.NoError(t, cfg.Save(path))
	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, "/abs/tuner.json", loaded.Audio.TunerPath())
}
