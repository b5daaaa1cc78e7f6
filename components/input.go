package components

import (
	cfg "github.com/automoto/tilewalk/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions, plus the pointer. JustPressed/JustReleased are computed by
// comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pointer position is in viewport coordinates.
	PointerX        float64
	PointerY        float64
	PointerDown     bool
	PointerPrevious bool
}

func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

func (i *InputData) JustReleased(action cfg.ActionID) bool {
	return !i.Current[action] && i.Previous[action]
}

func (i *InputData) PointerReleased() bool {
	return !i.PointerDown && i.PointerPrevious
}

// Advance moves the current frame into the previous one.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
	i.PointerPrevious = i.PointerDown
}

var Input = donburi.NewComponentType[InputData]()
