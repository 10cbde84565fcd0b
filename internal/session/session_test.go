package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sound-tuner/internal/audio"
	"sound-tuner/internal/config"
)

type recordingBackend struct {
	played  []audio.Sound
	static  []audio.Sound
	masters map[audio.Category]float64
	stops   int
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{masters: make(map[audio.Category]float64)}
}

func (r *recordingBackend) Play(_ audio.Category, s *audio.Sound, _ float64) error {
	r.played = append(r.played, *s)
	return nil
}

func (r *recordingBackend) PlayStatic(s *audio.Sound) error {
	r.static = append(r.static, *s)
	return nil
}

func (r *recordingBackend) Stop(audio.Category) error {
	r.stops++
	return nil
}

func (r *recordingBackend) StopStatic() error { return nil }

func (r *recordingBackend) SetMasterVolume(cat audio.Category, v float64) {
	r.masters[cat] = v
}

const tunerJSON = `{ "settings": [
  { "type": "se",  "name": "Cursor2", "volume": 50, "pan": 30 },
  { "type": "bgm", "name": "Battle1", "pitch": 200 }
] }`

func testConfig(t *testing.T, tunerData string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Audio.DataDir = t.TempDir()
	cfg.Audio.SEVolume = 80
	if tunerData != "" {
		path := filepath.Join(cfg.Audio.DataDir, cfg.Audio.TunerFile)
		require.NoError(t, os.WriteFile(path, []byte(tunerData), 0o644))
	}
	return cfg
}

func TestNew_WiresTunerIntoAudio(t *testing.T) {
	be := newRecordingBackend()
	s, err := New(testConfig(t, tunerJSON), be)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 2, s.Tuner.Table().Len())
	assert.Equal(t, 0.8, be.masters[audio.SE])

	require.NoError(t, s.Audio.PlaySe(&audio.Sound{Name: "Cursor2", Volume: 90, Pitch: 100}))
	require.NoError(t, s.Audio.PlayStaticSe(&audio.Sound{Name: "Cursor2", Volume: 60, Pitch: 100}))
	require.NoError(t, s.Audio.PlayBgm(&audio.Sound{Name: "Battle1", Volume: 90, Pitch: 100}, 0))

	require.Len(t, be.played, 2)
	assert.Equal(t, audio.Sound{Name: "Cursor2", Volume: 45, Pitch: 100, Pan: 30}, be.played[0])
	assert.Equal(t, audio.Sound{Name: "Battle1", Volume: 90, Pitch: 150}, be.played[1])
	require.Len(t, be.static, 1)
	assert.Equal(t, audio.Sound{Name: "Cursor2", Volume: 30, Pitch: 100, Pan: 30}, be.static[0])
}

func TestNew_MissingTunerFile(t *testing.T) {
	be := newRecordingBackend()
	s, err := New(testConfig(t, ""), be)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Tuner.Table().Len())

	in := &audio.Sound{Name: "Cursor2", Volume: 90, Pitch: 100}
	require.NoError(t, s.Audio.PlaySe(in))
	assert.Equal(t, *in, be.played[0])
}

func TestNew_BrokenTunerFile(t *testing.T) {
	_, err := New(testConfig(t, `{"settings": [`), newRecordingBackend())
	assert.Error(t, err)
}

func TestNew_FreshTablePerSession(t *testing.T) {
	cfg := testConfig(t, tunerJSON)
	be := newRecordingBackend()

	first, err := New(cfg, be)
	require.NoError(t, err)

	path := filepath.Join(cfg.Audio.DataDir, cfg.Audio.TunerFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"settings": []}`), 0o644))

	second, err := New(cfg, be)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, first.Tuner.Table().Len(), "old session keeps its table")
	assert.Equal(t, 0, second.Tuner.Table().Len())

	require.NoError(t, second.Close())
	assert.Equal(t, len(audio.Categories()), be.stops)
}

func TestStatus(t *testing.T) {
	s, err := New(testConfig(t, tunerJSON), newRecordingBackend())
	require.NoError(t, err)
	require.NoError(t, s.Audio.PlaySe(&audio.Sound{Name: "Cursor2", Volume: 90, Pitch: 100}))
	require.NoError(t, s.Audio.PlayMe(&audio.Sound{Name: "Victory1", Volume: 90, Pitch: 100}))
	s.Audio.Mute()

	lines := s.Status()
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], s.ID.String())
	assert.Equal(t, "Настроено звуков: 2", lines[1])
	assert.Equal(t, "Звук выключен", lines[2])
	assert.Equal(t, "bgm: -", lines[3])
	assert.Equal(t, "me: Victory1 (volume=90 pitch=100 pan=0)", lines[5])
	assert.Equal(t, "se: Cursor2 (volume=45 pitch=100 pan=30) *", lines[6])
}
