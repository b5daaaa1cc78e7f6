package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// bytesPerFrame is one 16-bit stereo sample, the format ebiten decoders emit.
const bytesPerFrame = 4

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // decoded PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// Decoded returns the decoded PCM for a sound effect, caching it.
func (l *AudioLoader) Decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}

// LoadSFX returns a new player for a sound effect, resampled by rate.
// A rate above 1 plays faster and higher.
func (l *AudioLoader) LoadSFX(path string, rate float64) (*audio.Player, error) {
	decoded, err := l.Decoded(path)
	if err != nil {
		return nil, err
	}
	if rate != 1 {
		decoded = Resample(decoded, rate)
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

// LoadMusic returns a looping streaming player.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(path string, data []byte) (decodedStream, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path)
	}
}

// PlaybackRate combines a speed multiplier with a detune in cents.
func PlaybackRate(speed, detune float64) float64 {
	if speed <= 0 {
		speed = 1
	}
	return speed * math.Pow(2, detune/1200)
}

// Resample stretches 16-bit stereo PCM by rate using linear interpolation.
func Resample(pcm []byte, rate float64) []byte {
	frames := len(pcm) / bytesPerFrame
	if frames == 0 || rate <= 0 {
		return pcm
	}

	outFrames := int(float64(frames) / rate)
	out := make([]byte, outFrames*bytesPerFrame)
	for i := 0; i < outFrames; i++ {
		pos := float64(i) * rate
		i0 := int(pos)
		if i0 >= frames {
			i0 = frames - 1
		}
		i1 := i0 + 1
		if i1 >= frames {
			i1 = frames - 1
		}
		frac := pos - float64(i0)
		for ch := 0; ch < 2; ch++ {
			a := float64(int16(binary.LittleEndian.Uint16(pcm[i0*bytesPerFrame+ch*2:])))
			b := float64(int16(binary.LittleEndian.Uint16(pcm[i1*bytesPerFrame+ch*2:])))
			v := a + (b-a)*frac
			binary.LittleEndian.PutUint16(out[i*bytesPerFrame+ch*2:], uint16(int16(v)))
		}
	}
	return out
}
