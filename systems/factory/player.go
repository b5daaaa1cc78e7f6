package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the avatar with its anchor at (x, y) in world space.
// Collision dimensions are scaled by the scene scale factor.
func CreatePlayer(ecs *ecs.ECS, x, y, scale float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := cfg.Player.CollisionWidth * scale
	h := cfg.Player.CollisionHeight * scale
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	data := components.PlayerData{
		Speed:     cfg.Player.Speed,
		Direction: cfg.DirectionDown,
		OffsetY:   cfg.Player.CollisionOffsetY * scale,
	}
	data.SetPosition(obj, math.Vec2{X: x, Y: y})
	components.Player.SetValue(player, data)

	components.Animation.Set(player, GenerateAnimations(cfg.PlayerAnimations, cfg.IdleAnimation(cfg.DirectionDown)))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
