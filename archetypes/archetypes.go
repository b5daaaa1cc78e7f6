package archetypes

import (
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
	)
	Boundary = newArchetype(
		tags.Boundary,
		components.Boundary,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Map = newArchetype(
		components.Map,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Dialogue = newArchetype(
		components.Dialogue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
