package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/tilewalk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryItems struct {
	items   map[string][]byte
	loadErr error
}

func (m *memoryItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryItems) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	store := NewSettingsStore(&memoryItems{items: map[string][]byte{}})

	assert.Equal(t, SavedSettings{}, store.Load())

	require.NoError(t, store.Save(SavedSettings{MusicMuted: true}))
	assert.True(t, store.Load().MusicMuted)
}

func TestSettingsFallBackToDefaults(t *testing.T) {
	corrupt := NewSettingsStore(&memoryItems{items: map[string][]byte{settingsKey: []byte("{nope")}})
	assert.Equal(t, SavedSettings{}, corrupt.Load())

	failing := NewSettingsStore(&memoryItems{loadErr: errors.New("disk gone")})
	assert.Equal(t, SavedSettings{}, failing.Load())

	var missing *SettingsStore
	assert.Equal(t, SavedSettings{}, missing.Load())
	assert.NoError(t, missing.Save(SavedSettings{MusicMuted: true}))
}

func TestMusicToggle(t *testing.T) {
	audio := newFakeAudio()
	music := NewMusic(audio, false)

	music.Start()
	music.Start()
	assert.Equal(t, 1, audio.loops)

	assert.True(t, music.Toggle())
	assert.Equal(t, 1, audio.stopped)

	assert.False(t, music.Toggle())
	assert.Equal(t, 2, audio.loops)
}

func TestMusicPlaysAtConfiguredVolume(t *testing.T) {
	audio := newFakeAudio()
	NewMusic(audio, false).Start()

	require.Len(t, audio.loopOpts, 1)
	assert.Equal(t, cfg.Audio.MusicVolume, audio.loopOpts[0].Volume)
	assert.Equal(t, 1.0, audio.loopOpts[0].Speed)
}

func TestMusicStartsMuted(t *testing.T) {
	audio := newFakeAudio()
	music := NewMusic(audio, true)

	music.Start()
	assert.Zero(t, audio.loops)
	assert.True(t, music.Muted())
}

func TestMusicToggleSystemPersists(t *testing.T) {
	s := newTestScene(t, 100, 100)
	items := &memoryItems{items: map[string][]byte{}}
	store := NewSettingsStore(items)
	music := NewMusic(s.audio, false)
	music.Start()
	system := NewMusicToggleSystem(music, store)

	system(s.ecs)
	assert.False(t, music.Muted())

	s.input().Current[cfg.ActionToggleMusic] = true
	system(s.ecs)
	assert.True(t, music.Muted())
	assert.True(t, store.Load().MusicMuted)
}
