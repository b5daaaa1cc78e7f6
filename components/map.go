package components

import (
	"github.com/automoto/tilewalk/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MapData is the loaded map of the active scene (singleton component).
type MapData struct {
	Scene string
	Map   *assets.TileMap
	Scale float64
	// Origin is where the map is placed, in map pixels.
	Origin     math.Vec2
	Background *ebiten.Image
}

var Map = donburi.NewComponentType[MapData]()
