package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Scale    float64
	// Zoom eases Scale toward a new value after a viewport resize.
	Zoom *gween.Tween

	ViewportWidth  float64
	ViewportHeight float64
}

// ScreenToWorld converts a viewport coordinate to world space.
func (c *CameraData) ScreenToWorld(x, y float64) math.Vec2 {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return math.Vec2{
		X: c.Position.X + (x-c.ViewportWidth/2)/scale,
		Y: c.Position.Y + (y-c.ViewportHeight/2)/scale,
	}
}

// WorldToScreen converts a world coordinate to viewport space.
func (c *CameraData) WorldToScreen(x, y float64) (float64, float64) {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return (x-c.Position.X)*scale + c.ViewportWidth/2,
		(y-c.Position.Y)*scale + c.ViewportHeight/2
}

var Camera = donburi.NewComponentType[CameraData]()
