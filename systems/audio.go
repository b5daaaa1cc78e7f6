package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// PlayOptions tune a single playback. Detune is in cents.
type PlayOptions struct {
	Volume float64
	Speed  float64
	Detune float64
}

// LoopHandle stops a looping sound.
type LoopHandle interface {
	Stop()
}

// AudioService plays sounds and schedules repeating callbacks on game time.
type AudioService interface {
	PlayLoop(id cfg.SoundID, opts PlayOptions) LoopHandle
	PlayOneShot(id cfg.SoundID, opts PlayOptions)
	ScheduleRepeating(interval float64, fn func()) TimerHandle
}

// EbitenAudio is the AudioService backed by ebiten's audio context.
// Sounds are read from fsys; missing files are logged once and skipped.
type EbitenAudio struct {
	fsys   fs.FS
	timers *Timers

	initOnce sync.Once
	context  *audio.Context
	loader   *assets.AudioLoader
	warned   map[string]bool
}

func NewEbitenAudio(fsys fs.FS, timers *Timers) *EbitenAudio {
	return &EbitenAudio{
		fsys:   fsys,
		timers: timers,
		warned: map[string]bool{},
	}
}

func (a *EbitenAudio) init() {
	a.initOnce.Do(func() {
		a.context = audio.NewContext(cfg.Audio.SampleRate)
		a.loader = assets.NewAudioLoader(a.context, a.fsys)
	})
}

// Preload decodes every configured sound effect so the first play does not stall.
func (a *EbitenAudio) Preload() {
	a.init()
	for id, path := range cfg.Sound.Paths {
		if id == cfg.SoundMusic {
			continue
		}
		if _, err := a.loader.Decoded(path); err != nil {
			a.warn(path, err)
		}
	}
}

func (a *EbitenAudio) PlayOneShot(id cfg.SoundID, opts PlayOptions) {
	a.init()
	path, ok := cfg.Sound.Paths[id]
	if !ok {
		return
	}

	player, err := a.loader.LoadSFX(path, assets.PlaybackRate(opts.Speed, opts.Detune))
	if err != nil {
		a.warn(path, err)
		return
	}
	player.SetVolume(opts.Volume)
	player.Play()
}

func (a *EbitenAudio) PlayLoop(id cfg.SoundID, opts PlayOptions) LoopHandle {
	a.init()
	path, ok := cfg.Sound.Paths[id]
	if !ok {
		return noopLoop{}
	}

	player, err := a.loader.LoadMusic(path)
	if err != nil {
		a.warn(path, err)
		return noopLoop{}
	}
	player.SetVolume(opts.Volume)
	player.Play()
	return &playerLoop{player: player}
}

func (a *EbitenAudio) ScheduleRepeating(interval float64, fn func()) TimerHandle {
	return a.timers.ScheduleRepeating(interval, fn)
}

func (a *EbitenAudio) warn(path string, err error) {
	if a.warned[path] {
		return
	}
	a.warned[path] = true
	log.WithField("ref", path).WithError(err).Warn("sound unavailable")
}

type playerLoop struct {
	player *audio.Player
}

func (l *playerLoop) Stop() {
	if l.player == nil {
		return
	}
	_ = l.player.Close()
	l.player = nil
}

type noopLoop struct{}

func (noopLoop) Stop() {}

// Music owns the background music loop.
type Music struct {
	audio  AudioService
	handle LoopHandle
	muted  bool
}

func NewMusic(a AudioService, muted bool) *Music {
	return &Music{audio: a, muted: muted}
}

// Start begins the loop unless muted or already playing.
func (m *Music) Start() {
	if m.muted || m.handle != nil {
		return
	}
	m.handle = m.audio.PlayLoop(cfg.SoundMusic, PlayOptions{Volume: cfg.Audio.MusicVolume, Speed: 1})
}

// Toggle pauses or resumes the music and reports whether it is now muted.
func (m *Music) Toggle() bool {
	if m.muted {
		m.muted = false
		m.Start()
	} else {
		m.muted = true
		if m.handle != nil {
			m.handle.Stop()
			m.handle = nil
		}
	}
	return m.muted
}

func (m *Music) Muted() bool {
	return m.muted
}

// NewMusicToggleSystem flips the music on ActionToggleMusic and persists
// the result.
func NewMusicToggleSystem(music *Music, store *SettingsStore) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		inputEntry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		if !components.Input.Get(inputEntry).JustPressed(cfg.ActionToggleMusic) {
			return
		}
		muted := music.Toggle()
		log.WithField("muted", muted).Info("music toggled")
		_ = store.Save(SavedSettings{MusicMuted: muted})
	}
}
