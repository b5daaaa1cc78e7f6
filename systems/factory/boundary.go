package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoundary registers one map rectangle in the collision space.
// Named boundaries are additionally tagged as triggers.
func CreateBoundary(ecs *ecs.ECS, name string, x, y, w, h float64) *donburi.Entry {
	boundary := archetypes.Boundary.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBoundary)
	if name != "" {
		obj.AddTags(tags.ResolvTrigger)
	}
	obj.Data = boundary // Link for O(1) lookup

	components.Object.SetValue(boundary, components.ObjectData{Object: obj})
	components.Boundary.SetValue(boundary, components.BoundaryData{Name: name})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return boundary
}
