package systems

import (
	"testing"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestCameraScale(t *testing.T) {
	assert.Equal(t, 1.0, CameraScale(720, 1280))
	assert.Equal(t, 1.5, CameraScale(1280, 720))
	assert.Equal(t, 1.5, CameraScale(800, 800))
}

func TestResizeCameraTweens(t *testing.T) {
	camera := &components.CameraData{}

	ResizeCamera(camera, 1280, 720)
	assert.Equal(t, 1.5, camera.Scale)
	assert.Nil(t, camera.Zoom)

	ResizeCamera(camera, 720, 1280)
	assert.NotNil(t, camera.Zoom)
	assert.Equal(t, 1.5, camera.Scale)
}

func TestCameraFollowsPlayer(t *testing.T) {
	s := newTestScene(t, 300, 400)
	entry := factory.CreateCamera(s.ecs)
	camera := components.Camera.Get(entry)
	ResizeCamera(camera, 1280, 720)
	ResizeCamera(camera, 720, 1280)

	for i := 0; i < 60; i++ {
		UpdateCamera(s.ecs)
	}

	assert.InDelta(t, 300, camera.Position.X, 1e-9)
	assert.InDelta(t, 400-cfg.Camera.OffsetY, camera.Position.Y, 1e-9)
	assert.InDelta(t, 1.0, camera.Scale, 1e-6)
	assert.Nil(t, camera.Zoom)
}

func TestCameraWithoutPlayerStaysPut(t *testing.T) {
	s := newTestScene(t, 300, 400)
	entry := factory.CreateCamera(s.ecs)
	camera := components.Camera.Get(entry)
	camera.Position.X, camera.Position.Y = 10, 20

	s.ecs.World.Remove(s.player.Entity())
	UpdateCamera(s.ecs)

	assert.Equal(t, 10.0, camera.Position.X)
	assert.Equal(t, 20.0, camera.Position.Y)
}
