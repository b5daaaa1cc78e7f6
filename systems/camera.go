package systems

import (
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the camera above the player and eases any pending zoom.
// With no valid player it leaves the camera where it is.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.Zoom != nil {
		scale, done := camera.Zoom.Update(float32(config.C.TickSeconds))
		camera.Scale = float64(scale)
		if done {
			camera.Zoom = nil
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.Valid() {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	pos := player.Position(obj.Object)
	camera.Position.X = pos.X
	camera.Position.Y = pos.Y - config.Camera.OffsetY
}

// CameraScale returns the zoom for a viewport: portrait viewports get the
// narrow scale.
func CameraScale(width, height float64) float64 {
	if height > 0 && width/height < 1 {
		return config.Camera.NarrowScale
	}
	return config.Camera.WideScale
}

// ResizeCamera records the viewport and starts a zoom toward its scale.
func ResizeCamera(camera *components.CameraData, width, height float64) {
	camera.ViewportWidth = width
	camera.ViewportHeight = height

	target := CameraScale(width, height)
	if camera.Scale == 0 {
		camera.Scale = target
		camera.Zoom = nil
		return
	}
	if camera.Scale == target {
		return
	}
	camera.Zoom = gween.New(float32(camera.Scale), float32(target), config.Camera.ZoomSeconds, ease.OutQuad)
}
