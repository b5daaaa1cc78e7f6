package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader loads and caches images from a file system.
type ImageLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// Load returns the image at path, decoding it on first use.
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Frame returns a cached sub-image of a sheet sliced into sliceX by sliceY
// equal cells. Frames are numbered row-major from zero.
func (l *ImageLoader) Frame(path string, sliceX, sliceY, index int) (*ebiten.Image, error) {
	key := fmt.Sprintf("%s#%d", path, index)
	if img, ok := l.frameCache[key]; ok {
		return img, nil
	}

	sheet, err := l.Load(path)
	if err != nil {
		return nil, err
	}

	rect := FrameRect(sheet.Bounds(), sliceX, sliceY, index)
	frame := sheet.SubImage(rect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame, nil
}

// FrameRect computes the source rectangle of a frame on a sliced sheet.
func FrameRect(bounds image.Rectangle, sliceX, sliceY, index int) image.Rectangle {
	fw := bounds.Dx() / sliceX
	fh := bounds.Dy() / sliceY
	col := index % sliceX
	row := index / sliceX
	x := bounds.Min.X + col*fw
	y := bounds.Min.Y + row*fh
	return image.Rect(x, y, x+fw, y+fh)
}
