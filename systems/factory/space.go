package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 32

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	// Round up so the last partial cell row and column exist.
	w := (max(width, 1) + spaceCellSize - 1) / spaceCellSize * spaceCellSize
	h := (max(height, 1) + spaceCellSize - 1) / spaceCellSize * spaceCellSize
	spaceData := resolv.NewSpace(w, h, spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}
