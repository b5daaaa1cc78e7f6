package assets

import (
	"image"
	"testing"

	cfg "github.com/automoto/tilewalk/config"
	"github.com/stretchr/testify/assert"
)

func TestFrameRectFromSheetSlices(t *testing.T) {
	sheet := cfg.Spritesheet
	bounds := image.Rect(0, 0, sheet.SliceX*16, sheet.SliceY*16)

	tests := []struct {
		name  string
		index int
		want  image.Rectangle
	}{
		{"first", 0, image.Rect(0, 0, 16, 16)},
		{"end of first row", sheet.SliceX - 1, image.Rect((sheet.SliceX-1)*16, 0, sheet.SliceX*16, 16)},
		{"second row", sheet.SliceX + 2, image.Rect(32, 16, 48, 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrameRect(bounds, sheet.SliceX, sheet.SliceY, tt.index))
		})
	}
}
