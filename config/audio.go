package config

// SoundID represents a logical sound
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFootsteps
	SoundMusic
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate  int
	MusicVolume float64
}

// SoundConfig maps sound IDs to file paths under the asset dir
type SoundConfig struct {
	Paths map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:  44100,
		MusicVolume: 0.3,
	}

	Sound = SoundConfig{
		Paths: map[SoundID]string{
			SoundFootsteps: "audio/footsteps.wav",
			SoundMusic:     "audio/background.ogg",
		},
	}
}

func (s SoundID) String() string {
	switch s {
	case SoundFootsteps:
		return "footsteps"
	case SoundMusic:
		return "music"
	default:
		return "none"
	}
}
