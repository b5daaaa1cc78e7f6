package systems

import (
	"github.com/looplab/fsm"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Boundary names with fixed meaning
const (
	TriggerDoor        = "door"
	TriggerExit        = "exit"
	TriggerWall        = "wall"
	TriggerSpawnpoints = "spawnpoints"
)

// Trigger machine states and events
const (
	triggerIdle      = "idle"
	triggerTriggered = "triggered"
	triggerResolved  = "resolved"

	eventTrigger = "trigger"
	eventResolve = "resolve"
	eventRearm   = "rearm"
)

type triggerKind int

const (
	kindInert triggerKind = iota
	kindDoor
	kindExit
	kindDialogue
)

func classifyTrigger(name string) triggerKind {
	switch name {
	case TriggerDoor:
		return kindDoor
	case TriggerExit:
		return kindExit
	case TriggerWall, TriggerSpawnpoints, "":
		return kindInert
	default:
		return kindDialogue
	}
}

// TransitionRequester switches scenes on behalf of door and exit triggers.
type TransitionRequester interface {
	RequestTransition(target string, pendingExit bool)
}

// RouterConfig wires a CollisionRouter to its scene.
type RouterConfig struct {
	Scene       string
	DoorTarget  string
	ExitTarget  string
	Dialogue    map[string]string
	Footsteps   *FootstepScheduler
	Gate        *DialogueGate
	Transitions TransitionRequester
}

type trigger struct {
	name    string
	kind    triggerKind
	machine *fsm.FSM
}

// CollisionRouter resolves contacts with named boundaries into scene
// transitions or dialogue. Each trigger fires once per sustained contact.
type CollisionRouter struct {
	cfg      RouterConfig
	triggers map[donburi.Entity]*trigger
	touched  map[donburi.Entity]bool
	log      *log.Entry
}

func NewCollisionRouter(cfg RouterConfig) *CollisionRouter {
	return &CollisionRouter{
		cfg:      cfg,
		triggers: map[donburi.Entity]*trigger{},
		touched:  map[donburi.Entity]bool{},
		log:      log.WithField("scene", cfg.Scene),
	}
}

// Register adds the responder for a named boundary.
func (r *CollisionRouter) Register(boundary *donburi.Entry, name string) {
	if name == "" {
		return
	}
	r.triggers[boundary.Entity()] = &trigger{
		name: name,
		kind: classifyTrigger(name),
		machine: fsm.NewFSM(
			triggerIdle,
			[]fsm.EventDesc{
				{Name: eventTrigger, Src: []string{triggerIdle}, Dst: triggerTriggered},
				{Name: eventResolve, Src: []string{triggerTriggered}, Dst: triggerResolved},
				{Name: eventRearm, Src: []string{triggerResolved}, Dst: triggerIdle},
			},
			fsm.Callbacks{},
		),
	}
}

// Subscribe hooks the router to the world's collision events.
func (r *CollisionRouter) Subscribe(w donburi.World) {
	CollisionEventType.Subscribe(w, r.onCollision)
}

// Update dispatches this tick's collision events, then rearms every
// resolved trigger that is no longer in contact.
func (r *CollisionRouter) Update(e *ecs.ECS) {
	CollisionEventType.ProcessEvents(e.World)

	for entity, t := range r.triggers {
		if !r.touched[entity] && t.machine.Can(eventRearm) {
			_ = t.machine.Event(eventRearm)
		}
	}
	clear(r.touched)
}

// State returns the machine state of the trigger on boundary, or "" if
// the boundary has no responder.
func (r *CollisionRouter) State(boundary *donburi.Entry) string {
	t, ok := r.triggers[boundary.Entity()]
	if !ok {
		return ""
	}
	return t.machine.Current()
}

func (r *CollisionRouter) onCollision(w donburi.World, ev CollisionEvent) {
	entity := ev.Boundary.Entity()
	r.touched[entity] = true

	t, ok := r.triggers[entity]
	if !ok || t.kind == kindInert {
		return
	}
	if !t.machine.Can(eventTrigger) {
		return
	}
	_ = t.machine.Event(eventTrigger)

	logger := r.log.WithField("trigger", t.name)
	switch t.kind {
	case kindDoor:
		r.cfg.Footsteps.Stop()
		logger.WithField("target", r.cfg.DoorTarget).Info("door reached")
		r.cfg.Transitions.RequestTransition(r.cfg.DoorTarget, false)
	case kindExit:
		r.cfg.Footsteps.Stop()
		logger.WithField("target", r.cfg.ExitTarget).Info("exit reached")
		r.cfg.Transitions.RequestTransition(r.cfg.ExitTarget, true)
	case kindDialogue:
		r.cfg.Footsteps.Stop()
		text, ok := r.cfg.Dialogue[t.name]
		if !ok {
			logger.Warn("dialogue lookup miss")
			r.resolve(t)
			return
		}
		if !r.cfg.Gate.Open(text, func() { r.resolve(t) }) {
			r.resolve(t)
		}
	}
}

func (r *CollisionRouter) resolve(t *trigger) {
	if t.machine.Can(eventResolve) {
		_ = t.machine.Event(eventResolve)
	}
}
