package systems

import (
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEvent is published once per tick for each named boundary the
// player is in contact with.
type CollisionEvent struct {
	Name     string
	Boundary *donburi.Entry
}

var CollisionEventType = events.NewEventType[CollisionEvent]()

// UpdateCollisions moves the player by its pending delta, blocking on every
// boundary, and publishes contacts with named boundaries.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	touched := map[*resolv.Object]bool{}
	moveAxis(obj, player.DeltaX, 0, touched)
	moveAxis(obj, 0, player.DeltaY, touched)
	player.DeltaX, player.DeltaY = 0, 0
	obj.Update()

	// Resting against a boundary counts as contact too.
	for _, probe := range [][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		for _, other := range overlapping(obj, probe[0], probe[1]) {
			touched[other] = true
		}
	}

	published := map[*donburi.Entry]bool{}
	for other := range touched {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || published[entry] {
			continue
		}
		boundary := components.Boundary.Get(entry)
		if boundary.Name == "" {
			continue
		}
		published[entry] = true
		CollisionEventType.Publish(e.World, CollisionEvent{Name: boundary.Name, Boundary: entry})
	}
}

// moveAxis moves obj along one axis and snaps it against the first boundary
// in the way. Boundaries that blocked the move are added to touched.
func moveAxis(obj *components.ObjectData, dx, dy float64, touched map[*resolv.Object]bool) {
	if dx == 0 && dy == 0 {
		return
	}

	hits := overlapping(obj, dx, dy)
	if len(hits) == 0 {
		obj.X += dx
		obj.Y += dy
		obj.Update()
		return
	}

	for _, other := range hits {
		touched[other] = true
		// Already overlapping: never blocks, so the player can walk out.
		if obj.Overlaps(other, 0, 0) {
			continue
		}
		switch {
		case dx > 0:
			dx = min(dx, other.X-obj.W-obj.X)
		case dx < 0:
			dx = max(dx, other.X+other.W-obj.X)
		case dy > 0:
			dy = min(dy, other.Y-obj.H-obj.Y)
		case dy < 0:
			dy = max(dy, other.Y+other.H-obj.Y)
		}
	}

	obj.X += dx
	obj.Y += dy
	obj.Update()
}

// overlapping returns the boundary objects the player's rectangle would
// intersect after moving by dx/dy. resolv's cell query is the broad phase.
func overlapping(obj *components.ObjectData, dx, dy float64) []*resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvBoundary)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range check.ObjectsByTags(tags.ResolvBoundary) {
		if obj.Overlaps(other, dx, dy) {
			out = append(out, other)
		}
	}
	return out
}
