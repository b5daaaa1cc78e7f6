package systems

import (
	"testing"

	"github.com/automoto/tilewalk/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type collector struct {
	names []string
}

func newCollector(w *ecs.ECS) *collector {
	c := &collector{}
	CollisionEventType.Subscribe(w.World, func(_ donburi.World, ev CollisionEvent) {
		c.names = append(c.names, ev.Name)
	})
	return c
}

// pass runs one collision update and returns the names published by it.
func (c *collector) pass(w *ecs.ECS) []string {
	c.names = nil
	UpdateCollisions(w)
	CollisionEventType.ProcessEvents(w.World)
	return c.names
}

func TestBoundaryBlocksMovement(t *testing.T) {
	s := newTestScene(t, 100, 100)
	// Player box is (95,98) 10x10.
	factory.CreateBoundary(s.ecs, "", 110, 90, 20, 30)

	s.playerData().DeltaX = 20
	UpdateCollisions(s.ecs)

	assert.Equal(t, 100.0, s.obj().X)
	assert.Zero(t, s.playerData().DeltaX)
}

func TestBoundaryBlocksVertically(t *testing.T) {
	s := newTestScene(t, 100, 100)
	factory.CreateBoundary(s.ecs, "", 80, 60, 40, 20)

	s.playerData().DeltaY = -30
	UpdateCollisions(s.ecs)

	assert.Equal(t, 80.0, s.obj().Y)
}

func TestFreeMovement(t *testing.T) {
	s := newTestScene(t, 100, 100)
	factory.CreateBoundary(s.ecs, "", 500, 500, 20, 20)

	s.playerData().DeltaX = 7
	s.playerData().DeltaY = -3
	UpdateCollisions(s.ecs)

	assert.Equal(t, 102.0, s.obj().X)
	assert.Equal(t, 95.0, s.obj().Y)
}

func TestContactPublishesNamedBoundaries(t *testing.T) {
	s := newTestScene(t, 100, 100)
	factory.CreateBoundary(s.ecs, "pc", 105, 98, 10, 10)
	factory.CreateBoundary(s.ecs, "", 85, 98, 10, 10)
	factory.CreateBoundary(s.ecs, "bed", 300, 300, 10, 10)

	c := newCollector(s.ecs)
	names := c.pass(s.ecs)
	assert.Equal(t, []string{"pc"}, names)

	// Contact persists while resting against it.
	names = c.pass(s.ecs)
	assert.Equal(t, []string{"pc"}, names)
}

func TestMovingIntoNamedBoundaryPublishesOnce(t *testing.T) {
	s := newTestScene(t, 100, 100)
	factory.CreateBoundary(s.ecs, "door", 110, 90, 20, 30)

	c := newCollector(s.ecs)
	s.playerData().DeltaX = 50
	names := c.pass(s.ecs)

	assert.Equal(t, []string{"door"}, names)
	assert.Equal(t, 100.0, s.obj().X)
}
