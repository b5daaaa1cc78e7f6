package config

// Direction is the way the player is facing
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "down"
	}
}

// Animation keys
const (
	AnimIdleDown = "idle-down"
	AnimIdleSide = "idle-side"
	AnimIdleUp   = "idle-up"
	AnimWalkDown = "walk-down"
	AnimWalkSide = "walk-side"
	AnimWalkUp   = "walk-up"
)

// AnimationDef is a frame range on the player spritesheet.
// Speed is in frames per second. Single-frame defs ignore Loop.
type AnimationDef struct {
	First int
	Last  int
	Speed float64
	Loop  bool
}

// SpritesheetConfig describes how the player spritesheet is sliced
type SpritesheetConfig struct {
	Path    string
	SliceX  int
	SliceY  int
	Default string
}

var Spritesheet SpritesheetConfig

// PlayerAnimations maps animation keys to frame ranges.
var PlayerAnimations = map[string]AnimationDef{
	AnimIdleDown: {First: 936, Last: 936},
	AnimWalkDown: {First: 936, Last: 939, Speed: 8, Loop: true},
	AnimIdleSide: {First: 975, Last: 975},
	AnimWalkSide: {First: 975, Last: 978, Speed: 8, Loop: true},
	AnimIdleUp:   {First: 1014, Last: 1014},
	AnimWalkUp:   {First: 1014, Last: 1017, Speed: 8, Loop: true},
}

// IdleAnimation returns the idle key for a facing direction.
func IdleAnimation(d Direction) string {
	switch d {
	case DirectionUp:
		return AnimIdleUp
	case DirectionLeft, DirectionRight:
		return AnimIdleSide
	default:
		return AnimIdleDown
	}
}

// WalkAnimation returns the walk key for a facing direction.
func WalkAnimation(d Direction) string {
	switch d {
	case DirectionUp:
		return AnimWalkUp
	case DirectionLeft, DirectionRight:
		return AnimWalkSide
	default:
		return AnimWalkDown
	}
}

func init() {
	Spritesheet = SpritesheetConfig{
		Path:    "images/spritesheet.png",
		SliceX:  39,
		SliceY:  31,
		Default: AnimIdleDown,
	}
}
