package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Boundary = donburi.NewTag().SetName("Boundary")
)

// Resolv tags for collision queries
const (
	ResolvPlayer   = "player"
	ResolvBoundary = "boundary"
	// ResolvTrigger is added to boundaries that have a name.
	ResolvTrigger = "trigger"
)
