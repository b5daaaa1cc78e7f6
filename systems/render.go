package systems

import (
	"image/color"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Renderer draws the map and the player through the camera.
// Without images it falls back to flat rectangles.
type Renderer struct {
	images      *assets.ImageLoader
	sheetWarned bool
}

func NewRenderer(images *assets.ImageLoader) *Renderer {
	return &Renderer{images: images}
}

func activeCamera(e *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}

// DrawMap draws the scene background scaled by the map scale factor.
func (r *Renderer) DrawMap(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	camera, ok := activeCamera(e)
	if !ok {
		return
	}
	mapEntry, ok := components.Map.First(e.World)
	if !ok {
		return
	}
	m := components.Map.Get(mapEntry)

	x, y := camera.WorldToScreen(m.Origin.X*m.Scale, m.Origin.Y*m.Scale)
	if m.Background == nil {
		w := float32(float64(m.Map.Width) * m.Scale * camera.Scale)
		h := float32(float64(m.Map.Height) * m.Scale * camera.Scale)
		vector.FillRect(screen, float32(x), float32(y), w, h, cfg.DarkBlue, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(m.Scale*camera.Scale, m.Scale*camera.Scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(m.Background, drawOp)
}

// DrawPlayer draws the current animation frame centered on the player.
func (r *Renderer) DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := activeCamera(e)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	scale := 1.0
	if mapEntry, ok := components.Map.First(e.World); ok {
		scale = components.Map.Get(mapEntry).Scale
	}
	pos := player.Position(obj.Object)
	sx, sy := camera.WorldToScreen(pos.X, pos.Y)

	frame := r.frame(anim)
	if frame == nil {
		w := float32(obj.W * camera.Scale)
		h := float32(obj.H * camera.Scale)
		ox, oy := camera.WorldToScreen(obj.X, obj.Y)
		vector.FillRect(screen, float32(ox), float32(oy), w, h, cfg.LightBlue, false)
		return
	}

	fw := float64(frame.Bounds().Dx())
	fh := float64(frame.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-fw/2, -fh/2)
	if anim.FlipX {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Scale(scale*camera.Scale, scale*camera.Scale)
	drawOp.GeoM.Translate(sx, sy)
	screen.DrawImage(frame, drawOp)
}

func (r *Renderer) frame(anim *components.AnimationData) *ebiten.Image {
	if r.images == nil || anim.Frame() < 0 {
		return nil
	}
	sheet := cfg.Spritesheet
	img, err := r.images.Frame(sheet.Path, sheet.SliceX, sheet.SliceY, anim.Frame())
	if err != nil {
		if !r.sheetWarned {
			r.sheetWarned = true
			log.WithField("ref", sheet.Path).WithError(err).Warn("spritesheet unavailable")
		}
		return nil
	}
	return img
}

// DrawBoundaries outlines every collision object when boundary debugging is on.
func DrawBoundaries(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoundaries {
		return
	}
	camera, ok := activeCamera(e)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvTrigger) {
			c = cfg.Magenta
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Green
		}

		x, y := camera.WorldToScreen(obj.X, obj.Y)
		w := float32(obj.W * camera.Scale)
		h := float32(obj.H * camera.Scale)
		vector.FillRect(screen, float32(x), float32(y), w, 1, c, false)
		vector.FillRect(screen, float32(x), float32(y)+h-1, w, 1, c, false)
		vector.FillRect(screen, float32(x), float32(y), 1, h, c, false)
		vector.FillRect(screen, float32(x)+w-1, float32(y), 1, h, c, false)
	}
}
