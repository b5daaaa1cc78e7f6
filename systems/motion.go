package systems

import (
	"math"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Pointer angle bands, in degrees.
const (
	angleLowerBound = 50.0
	angleUpperBound = 125.0
)

// MotionController turns pointer and key input into a movement delta,
// a facing direction and an animation for the player.
type MotionController struct {
	footsteps *FootstepScheduler
}

func NewMotionController(footsteps *FootstepScheduler) *MotionController {
	return &MotionController{footsteps: footsteps}
}

func (m *MotionController) Update(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	var camera *components.CameraData
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera = components.Camera.Get(cameraEntry)
	}

	m.Step(playerEntry, input, camera, cfg.C.TickSeconds)
}

// Step applies one frame of input to the player entry.
func (m *MotionController) Step(entry *donburi.Entry, input *components.InputData, camera *components.CameraData, dt float64) {
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)
	obj := components.Object.Get(entry)

	player.DeltaX, player.DeltaY = 0, 0

	if player.InDialogue {
		return
	}

	if input.PointerDown {
		dest := dmath.Vec2{X: input.PointerX, Y: input.PointerY}
		if camera != nil {
			dest = camera.ScreenToWorld(input.PointerX, input.PointerY)
		}
		m.pointerMove(player, anim, player.Position(obj.Object), dest, dt)
	} else if input.PointerReleased() || player.HasDestination {
		player.HasDestination = false
		m.stop(player, anim)
	}

	m.keyMove(player, anim, input, dt)
}

func (m *MotionController) pointerMove(player *components.PlayerData, anim *components.AnimationData, pos, dest dmath.Vec2, dt float64) {
	if !player.IsMoving {
		player.IsMoving = true
		m.footsteps.Start()
	}

	player.Destination = dest
	player.HasDestination = true

	dx, dy := dest.X-pos.X, dest.Y-pos.Y
	dist := math.Hypot(dx, dy)
	step := player.Speed * dt
	if dist <= step {
		player.DeltaX += dx
		player.DeltaY += dy
	} else if dist > 0 {
		player.DeltaX += dx / dist * step
		player.DeltaY += dy / dist * step
	}

	if key, dir, flip, ok := WalkForAngle(PointerAngle(pos, dest)); ok {
		if key == cfg.AnimWalkSide {
			anim.FlipX = flip
		}
		anim.Play(key)
		player.Direction = dir
	}
}

func (m *MotionController) keyMove(player *components.PlayerData, anim *components.AnimationData, input *components.InputData, dt float64) {
	right := input.Pressed(cfg.ActionMoveRight)
	left := input.Pressed(cfg.ActionMoveLeft)
	up := input.Pressed(cfg.ActionMoveUp)
	down := input.Pressed(cfg.ActionMoveDown)

	if !right && !left && !up && !down {
		if player.KeyMovementActive {
			player.KeyMovementActive = false
			m.stop(player, anim)
		}
		return
	}

	if !player.IsMoving {
		player.IsMoving = true
		player.KeyMovementActive = true
		m.footsteps.Start()
	}

	step := player.Speed * dt
	switch {
	case right:
		anim.FlipX = false
		anim.Play(cfg.AnimWalkSide)
		player.Direction = cfg.DirectionRight
		player.DeltaX += step
	case left:
		anim.FlipX = true
		anim.Play(cfg.AnimWalkSide)
		player.Direction = cfg.DirectionLeft
		player.DeltaX -= step
	case up:
		anim.Play(cfg.AnimWalkUp)
		player.Direction = cfg.DirectionUp
		player.DeltaY -= step
	case down:
		anim.Play(cfg.AnimWalkDown)
		player.Direction = cfg.DirectionDown
		player.DeltaY += step
	}
}

// stop ends movement and settles on the idle animation for the last facing.
func (m *MotionController) stop(player *components.PlayerData, anim *components.AnimationData) {
	if player.IsMoving {
		player.IsMoving = false
		m.footsteps.Stop()
	}
	anim.Play(cfg.IdleAnimation(player.Direction))
}

// PointerAngle returns the angle in degrees of the vector from dest to pos.
// A destination straight above the player gives 90.
func PointerAngle(pos, dest dmath.Vec2) float64 {
	return math.Atan2(pos.Y-dest.Y, pos.X-dest.X) * 180 / math.Pi
}

// WalkForAngle picks the walk animation for a pointer angle. Angles that sit
// exactly on a band edge select nothing and ok is false.
func WalkForAngle(angle float64) (key string, dir cfg.Direction, flip bool, ok bool) {
	switch {
	case angle > angleLowerBound && angle < angleUpperBound:
		return cfg.AnimWalkUp, cfg.DirectionUp, false, true
	case angle < -angleLowerBound && angle > -angleUpperBound:
		return cfg.AnimWalkDown, cfg.DirectionDown, false, true
	case math.Abs(angle) > angleUpperBound:
		return cfg.AnimWalkSide, cfg.DirectionRight, false, true
	case math.Abs(angle) < angleLowerBound:
		return cfg.AnimWalkSide, cfg.DirectionLeft, true, true
	}
	return "", 0, false, false
}
