package systems

import (
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every playing animation by one tick.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.Animation != nil {
			anim.Animation.Update(cfg.C.TickSeconds)
		}
	})
}
