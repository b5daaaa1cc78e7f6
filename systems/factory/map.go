package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMap stores the scene's loaded map. background may be nil.
func CreateMap(ecs *ecs.ECS, scene string, m *assets.TileMap, scale float64, background *ebiten.Image) *donburi.Entry {
	entry := archetypes.Map.Spawn(ecs)
	components.Map.Set(entry, &components.MapData{
		Scene:      scene,
		Map:        m,
		Scale:      scale,
		Background: background,
	})
	return entry
}

// MapBounds returns the world-space extent covering the map and all of its
// objects.
func MapBounds(m *assets.TileMap, scale float64) (int, int) {
	w, h := float64(m.Width), float64(m.Height)
	for _, layer := range m.Layers {
		for _, obj := range layer.Objects {
			w = max(w, obj.X+obj.Width)
			h = max(h, obj.Y+obj.Height)
		}
	}
	return int(w*scale) + 1, int(h*scale) + 1
}
