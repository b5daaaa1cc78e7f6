package components

import (
	"github.com/automoto/tilewalk/assets/animations"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current string
	FlipX   bool
	// Plays counts real animation changes; repeated keys are not counted.
	Plays     int
	Animation *animations.Animation
	Defs      map[string]cfg.AnimationDef
}

// Play switches to key. It is a no-op when key is already playing and
// reports whether a change happened.
func (a *AnimationData) Play(key string) bool {
	if a.Current == key {
		return false
	}
	a.Current = key
	a.Plays++

	def, ok := a.Defs[key]
	if !ok {
		a.Animation = nil
		return true
	}
	a.Animation = animations.NewAnimation(def.First, def.Last, def.Speed, def.Loop)
	return true
}

// Frame returns the spritesheet frame to draw, or -1 when nothing is playing.
func (a *AnimationData) Frame() int {
	if a.Animation == nil {
		return -1
	}
	return a.Animation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
