package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DialogueData is the open dialogue of a scene (singleton component).
type DialogueData struct {
	Open    bool
	Text    string
	OnClose func()

	// Revealed is how many runes of Text are visible.
	Revealed int
	Reveal   *gween.Tween
}

var Dialogue = donburi.NewComponentType[DialogueData]()
