package components

import (
	cfg "github.com/automoto/tilewalk/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is the avatar's movement state. Its position lives on the
// player's collision object; see Position and SetPosition.
type PlayerData struct {
	Speed             float64
	Direction         cfg.Direction
	IsMoving          bool
	InDialogue        bool
	KeyMovementActive bool

	// Destination is the pointer move target in world space.
	Destination    math.Vec2
	HasDestination bool

	// Pending movement for this tick, consumed by the collision system.
	DeltaX float64
	DeltaY float64

	// OffsetY shifts the collision box below the anchor point.
	OffsetY float64
}

// Position returns the anchor point (sprite center) in world space.
func (p *PlayerData) Position(obj *resolv.Object) math.Vec2 {
	return math.Vec2{
		X: obj.X + obj.W/2,
		Y: obj.Y + obj.H/2 - p.OffsetY,
	}
}

// SetPosition moves the collision object so the anchor lands on pos.
func (p *PlayerData) SetPosition(obj *resolv.Object, pos math.Vec2) {
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y + p.OffsetY - obj.H/2
	obj.Update()
}

var Player = donburi.NewComponentType[PlayerData]()
