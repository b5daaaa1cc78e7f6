package factory

import (
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
)

// GenerateAnimations creates an AnimationData component over defs, already
// playing the initial key.
func GenerateAnimations(defs map[string]cfg.AnimationDef, initial string) *components.AnimationData {
	animData := &components.AnimationData{
		Defs: defs,
	}
	animData.Play(initial)
	return animData
}
