package assets

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pcmFrames(values ...int16) []byte {
	out := make([]byte, len(values)*bytesPerFrame)
	for i, v := range values {
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(v))
	}
	return out
}

func TestResampleLength(t *testing.T) {
	pcm := pcmFrames(0, 100, 200, 300, 400, 500, 600, 700)

	assert.Len(t, Resample(pcm, 2), 4*bytesPerFrame)
	assert.Len(t, Resample(pcm, 0.5), 16*bytesPerFrame)
	assert.Equal(t, pcm, Resample(pcm, 0))
}

func TestResampleInterpolates(t *testing.T) {
	out := Resample(pcmFrames(0, 100), 0.5)

	left := int16(binary.LittleEndian.Uint16(out[bytesPerFrame:]))
	assert.Equal(t, int16(50), left)
}

func TestPlaybackRate(t *testing.T) {
	assert.InDelta(t, 1.2, PlaybackRate(1.2, 0), 1e-9)
	assert.InDelta(t, 2.0, PlaybackRate(1, 1200), 1e-9)
	assert.InDelta(t, 0.5, PlaybackRate(1, -1200), 1e-9)
	assert.InDelta(t, 1.0, PlaybackRate(0, 0), 1e-9)
}

func TestFrameRect(t *testing.T) {
	bounds := image.Rect(0, 0, 39*16, 31*16)

	assert.Equal(t, image.Rect(0, 0, 16, 16), FrameRect(bounds, 39, 31, 0))
	// 936 = 24*39, first column of row 24
	assert.Equal(t, image.Rect(0, 384, 16, 400), FrameRect(bounds, 39, 31, 936))
	assert.Equal(t, image.Rect(48, 384, 64, 400), FrameRect(bounds, 39, 31, 939))
}

func TestIsMapFile(t *testing.T) {
	assert.True(t, IsMapFile("maps/outdoor.json"))
	assert.True(t, IsMapFile("indoor.TMX"))
	assert.False(t, IsMapFile("notes.md"))
}
