package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in the scene's collision space.
type ObjectData struct {
	*resolv.Object
}

// Overlaps reports whether the object's rectangle, shifted by dx/dy,
// intersects other. Touching edges do not count.
func (o ObjectData) Overlaps(other *resolv.Object, dx, dy float64) bool {
	x, y := o.X+dx, o.Y+dy
	return x < other.X+other.W && x+o.W > other.X &&
		y < other.Y+other.H && y+o.H > other.Y
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the scene's resolv space (singleton component).
var Space = donburi.NewComponentType[resolv.Space]()
