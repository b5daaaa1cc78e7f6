package systems

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource fills the current frame of input. The previous frame has
// already been shifted out when it is called.
type InputSource func(input *components.InputData)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// NewInputSystem returns a system that refreshes the Input singleton from source.
// Must run BEFORE the motion system.
func NewInputSystem(source InputSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)
		input.Advance()
		source(input)
	}
}

// PollInput reads keyboard, gamepad, mouse and touch state from ebiten.
func PollInput(input *components.InputData) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Touches act as the mouse
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.PointerX, input.PointerY = float64(x), float64(y)
		input.PointerDown = true
		return
	}

	x, y := ebiten.CursorPosition()
	input.PointerX, input.PointerY = float64(x), float64(y)
	input.PointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// GetOrCreateInput returns the singleton Input component, creating it if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
	}
	return components.Input.Get(entry)
}
