package systems

import (
	"testing"

	"github.com/automoto/tilewalk/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type routerScene struct {
	*testScene
	router      *CollisionRouter
	gate        *DialogueGate
	transitions *fakeTransitions
	boundary    *donburi.Entry
}

// newRouterScene puts a boundary named name against the player's right edge.
func newRouterScene(t *testing.T, name string) *routerScene {
	t.Helper()
	s := newTestScene(t, 100, 100)
	gate := NewDialogueGate(s.ecs)
	transitions := &fakeTransitions{}
	router := NewCollisionRouter(RouterConfig{
		Scene:      "test",
		DoorTarget: "indoor",
		ExitTarget: "outdoor",
		Dialogue: map[string]string{
			"pc":  "A <b>computer</b>.",
			"bed": "A bed.",
		},
		Footsteps:   s.footsteps,
		Gate:        gate,
		Transitions: transitions,
	})

	boundary := factory.CreateBoundary(s.ecs, name, 105, 98, 10, 10)
	router.Register(boundary, name)
	router.Subscribe(s.ecs.World)

	return &routerScene{
		testScene:   s,
		router:      router,
		gate:        gate,
		transitions: transitions,
		boundary:    boundary,
	}
}

func (s *routerScene) tick(n int) {
	for i := 0; i < n; i++ {
		UpdateCollisions(s.ecs)
		s.router.Update(s.ecs)
	}
}

func (s *routerScene) moveAway() {
	s.playerData().SetPosition(s.obj().Object, math.Vec2{X: 500, Y: 500})
}

func (s *routerScene) moveBack() {
	s.playerData().SetPosition(s.obj().Object, math.Vec2{X: 100, Y: 100})
}

func TestRouterDialogueOncePerContact(t *testing.T) {
	s := newRouterScene(t, "pc")
	s.footsteps.Start()

	s.tick(10)

	require.True(t, s.gate.IsOpen())
	full, _ := s.gate.Text()
	assert.Equal(t, "A computer.", full)
	assert.True(t, s.playerData().InDialogue)
	assert.False(t, s.footsteps.Active())
	assert.Equal(t, triggerTriggered, s.router.State(s.boundary))

	s.gate.Close()
	assert.False(t, s.playerData().InDialogue)
	assert.Equal(t, triggerResolved, s.router.State(s.boundary))

	// Still touching: no new dialogue.
	s.tick(10)
	assert.False(t, s.gate.IsOpen())
	assert.Equal(t, triggerResolved, s.router.State(s.boundary))

	s.moveAway()
	s.tick(1)
	assert.Equal(t, triggerIdle, s.router.State(s.boundary))

	s.moveBack()
	s.tick(1)
	assert.True(t, s.gate.IsOpen())
}

func TestRouterDoorRequestsTransitionOnce(t *testing.T) {
	s := newRouterScene(t, "door")
	s.footsteps.Start()

	s.tick(5)

	assert.Equal(t, []string{"indoor"}, s.transitions.targets)
	assert.Equal(t, []bool{false}, s.transitions.exits)
	assert.False(t, s.footsteps.Active())
	assert.False(t, s.gate.IsOpen())
}

func TestRouterExitSetsPendingExit(t *testing.T) {
	s := newRouterScene(t, "exit")

	s.tick(5)

	assert.Equal(t, []string{"outdoor"}, s.transitions.targets)
	assert.Equal(t, []bool{true}, s.transitions.exits)
}

func TestRouterInertBoundaries(t *testing.T) {
	for _, name := range []string{"", "wall", "spawnpoints"} {
		t.Run(name, func(t *testing.T) {
			s := newRouterScene(t, name)
			s.footsteps.Start()

			s.tick(5)

			assert.Empty(t, s.transitions.targets)
			assert.False(t, s.gate.IsOpen())
			assert.False(t, s.playerData().InDialogue)
			assert.True(t, s.footsteps.Active())
		})
	}
}

func TestRouterUnregisteredBoundaryHasNoState(t *testing.T) {
	s := newRouterScene(t, "")
	assert.Equal(t, "", s.router.State(s.boundary))
}

func TestRouterDialogueMissResolves(t *testing.T) {
	s := newRouterScene(t, "statue")
	s.footsteps.Start()

	s.tick(1)

	assert.False(t, s.gate.IsOpen())
	assert.False(t, s.playerData().InDialogue)
	assert.False(t, s.footsteps.Active())
	assert.Equal(t, triggerResolved, s.router.State(s.boundary))
}
