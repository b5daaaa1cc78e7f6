package scenes

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/systems"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// State is the lifecycle of the active scene.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateActive
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

var ErrUnknownScene = errors.New("unknown scene")

// SceneLoadError is recorded when a scene's map cannot be loaded.
type SceneLoadError struct {
	Scene string
	Err   error
}

func (e *SceneLoadError) Error() string {
	return fmt.Sprintf("load scene %q: %v", e.Scene, e.Err)
}

func (e *SceneLoadError) Unwrap() error {
	return e.Err
}

// TransitionContext carries the door/exit decision into the next scene
// build. It is cleared after every placement.
type TransitionContext struct {
	PendingExit bool
	TargetScene string
}

// MapSource loads map descriptors by reference.
type MapSource interface {
	Load(ctx context.Context, ref string) (*assets.TileMap, error)
}

type loadResult struct {
	scene string
	m     *assets.TileMap
	err   error
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithInputSource replaces ebiten input polling.
func WithInputSource(src systems.InputSource) Option {
	return func(c *Coordinator) {
		c.input = src
	}
}

// WithImages enables background and sprite drawing.
func WithImages(images *assets.ImageLoader) Option {
	return func(c *Coordinator) {
		c.images = images
	}
}

func WithMapSource(maps MapSource) Option {
	return func(c *Coordinator) {
		c.maps = maps
	}
}

func WithSceneTable(table cfg.SceneTable) Option {
	return func(c *Coordinator) {
		c.table = table
	}
}

func WithDialogue(dialogue map[string]string) Option {
	return func(c *Coordinator) {
		c.dialogue = dialogue
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Coordinator) {
		c.rng = rng
	}
}

// WithSystems adds systems to every scene, run after dialogue handling.
func WithSystems(fns ...ecs.System) Option {
	return func(c *Coordinator) {
		c.extra = append(c.extra, fns...)
	}
}

// Coordinator owns the active scene: it loads maps, builds the scene
// world, places the player and applies door/exit transitions.
type Coordinator struct {
	table    cfg.SceneTable
	maps     MapSource
	dialogue map[string]string
	input    systems.InputSource
	images   *assets.ImageLoader
	rng      *rand.Rand
	extra    []ecs.System

	audio     systems.AudioService
	timers    *systems.Timers
	footsteps *systems.FootstepScheduler
	renderer  *systems.Renderer

	state   State
	current string
	loading string
	err     error
	cancel  context.CancelFunc
	results chan loadResult

	transition TransitionContext
	requested  string

	ecs    *ecs.ECS
	router *systems.CollisionRouter
	gate   *systems.DialogueGate
	player *donburi.Entry

	viewportW, viewportH float64
}

// NewCoordinator creates a coordinator that plays sounds through audio and
// advances timers once per Update.
func NewCoordinator(audio systems.AudioService, timers *systems.Timers, opts ...Option) *Coordinator {
	c := &Coordinator{
		table:    cfg.Scenes,
		maps:     assets.NewEmbeddedMapLoader(),
		dialogue: cfg.Dialogue,
		input:    systems.PollInput,
		audio:    audio,
		timers:   timers,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.footsteps = systems.NewFootstepScheduler(audio, c.rng)
	c.renderer = systems.NewRenderer(c.images)
	return c
}

// EnterScene tears down the active scene and starts loading name.
// It is ignored while another load is outstanding.
func (c *Coordinator) EnterScene(name string) error {
	if c.state == StateLoading {
		log.WithField("scene", name).WithField("loading", c.loading).Debug("scene change ignored while loading")
		return nil
	}
	sc, ok := c.table.Scenes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.teardown()

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan loadResult, 1)
	go func() {
		m, err := c.maps.Load(ctx, sc.Map)
		results <- loadResult{scene: name, m: m, err: err}
	}()

	c.cancel = cancel
	c.results = results
	c.loading = name
	c.err = nil
	c.state = StateLoading
	log.WithField("scene", name).WithField("ref", sc.Map).Debug("loading scene")
	return nil
}

// Reload rebuilds the current scene from its map descriptor.
func (c *Coordinator) Reload() error {
	if c.current == "" {
		return nil
	}
	return c.EnterScene(c.current)
}

func (c *Coordinator) teardown() {
	c.footsteps.Stop()
	c.requested = ""
	c.ecs = nil
	c.router = nil
	c.gate = nil
	c.player = nil
}

// Update applies a finished load, runs the active scene for one tick and
// then performs any transition requested during it.
func (c *Coordinator) Update() {
	if c.state == StateLoading {
		select {
		case res := <-c.results:
			c.apply(res)
		default:
		}
	}

	if c.state == StateActive {
		c.ecs.Update()

		if target := c.requested; target != "" {
			c.requested = ""
			if err := c.EnterScene(target); err != nil {
				log.WithField("scene", c.current).WithError(err).Error("transition failed")
			}
		}
	}

	c.timers.Advance(cfg.C.TickSeconds)
}

// Await blocks until the outstanding load has been applied and returns
// the load error, if any.
func (c *Coordinator) Await(ctx context.Context) error {
	if c.state == StateLoading {
		select {
		case res := <-c.results:
			c.apply(res)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return c.err
}

func (c *Coordinator) apply(res loadResult) {
	c.cancel()
	c.cancel = nil
	c.results = nil
	c.loading = ""

	logger := log.WithField("scene", res.scene)
	if res.err != nil {
		c.err = &SceneLoadError{Scene: res.scene, Err: res.err}
		c.state = StateFailed
		logger.WithError(res.err).Error("scene load failed")
		return
	}

	c.build(res.scene, res.m)
	c.current = res.scene
	c.state = StateActive
	logger.Info("scene entered")
}

func (c *Coordinator) build(name string, m *assets.TileMap) {
	sc := c.table.Scenes[name]
	scale := c.table.ScaleFactor

	w := ecs.NewECS(donburi.NewWorld())

	width, height := factory.MapBounds(m, scale)
	factory.CreateSpace(w, width, height)
	factory.CreateMap(w, name, m, scale, c.background(name, sc, m))

	player := factory.CreatePlayer(w, 0, 0, scale)
	gate := systems.NewDialogueGate(w)
	router := systems.NewCollisionRouter(systems.RouterConfig{
		Scene:       name,
		DoorTarget:  sc.DoorTarget,
		ExitTarget:  sc.ExitTarget,
		Dialogue:    c.dialogue,
		Footsteps:   c.footsteps,
		Gate:        gate,
		Transitions: c,
	})

	for _, b := range m.Boundaries() {
		boundary := factory.CreateBoundary(w, b.Name, b.X*scale, b.Y*scale, b.Width*scale, b.Height*scale)
		router.Register(boundary, b.Name)
	}

	c.placePlayer(w.World, player, m, name)

	camera := components.Camera.Get(factory.CreateCamera(w))
	if c.viewportW > 0 && c.viewportH > 0 {
		systems.ResizeCamera(camera, c.viewportW, c.viewportH)
	}
	systems.UpdateCamera(w)
	systems.GetOrCreateInput(w)

	// Wired only once the scene is fully built.
	router.Subscribe(w.World)
	motion := systems.NewMotionController(c.footsteps)

	w.AddSystem(systems.NewInputSystem(c.input))
	w.AddSystem(motion.Update)
	w.AddSystem(systems.UpdateCollisions)
	w.AddSystem(router.Update)
	w.AddSystem(gate.Update)
	for _, fn := range c.extra {
		w.AddSystem(fn)
	}
	w.AddSystem(systems.UpdateAnimations)
	w.AddSystem(systems.UpdateCamera)

	w.AddRenderer(cfg.Default, c.renderer.DrawMap)
	w.AddRenderer(cfg.Default, c.renderer.DrawPlayer)
	w.AddRenderer(cfg.Default, systems.DrawBoundaries)

	c.ecs = w
	c.router = router
	c.gate = gate
	c.player = player
}

func (c *Coordinator) background(name string, sc cfg.SceneConfig, m *assets.TileMap) *ebiten.Image {
	if c.images == nil {
		return nil
	}
	ref := sc.Background
	if ref == "" {
		ref = m.Background
	}
	if ref == "" {
		return nil
	}
	img, err := c.images.Load(ref)
	if err != nil {
		log.WithField("scene", name).WithField("ref", ref).WithError(err).Warn("background unavailable")
		return nil
	}
	return img
}

// placePlayer puts the player at the door side when arriving through an
// exit, else at the map's spawn point, else at the scene fallback.
func (c *Coordinator) placePlayer(world donburi.World, player *donburi.Entry, m *assets.TileMap, scene string) {
	sc := c.table.Scenes[scene]
	scale := c.table.ScaleFactor

	var origin math.Vec2
	if mapEntry, ok := components.Map.First(world); ok {
		origin = components.Map.Get(mapEntry).Origin
	}

	var pos math.Vec2
	source := "fallback"
	switch spawn, ok := m.SpawnPoint(); {
	case c.transition.PendingExit && c.transition.TargetScene == scene && sc.DoorSide != nil:
		pos = math.Vec2{X: sc.DoorSide.X * scale, Y: sc.DoorSide.Y * scale}
		source = "door side"
	case ok:
		pos = math.Vec2{
			X: (origin.X + spawn.X) * scale,
			Y: (origin.Y + spawn.Y) * scale,
		}
		source = "spawn point"
	default:
		pos = math.Vec2{X: sc.FallbackSpawn.X * scale, Y: sc.FallbackSpawn.Y * scale}
	}
	c.transition = TransitionContext{}

	components.Player.Get(player).SetPosition(components.Object.Get(player).Object, pos)
	log.WithField("scene", scene).WithField("x", pos.X).WithField("y", pos.Y).Debug("player placed at " + source)
}

// RequestTransition records the transition context and switches scenes
// once the current tick finishes.
func (c *Coordinator) RequestTransition(target string, pendingExit bool) {
	c.transition = TransitionContext{PendingExit: pendingExit, TargetScene: target}
	c.requested = target
}

// Resize updates the camera for a new viewport size.
func (c *Coordinator) Resize(width, height float64) {
	c.viewportW, c.viewportH = width, height
	if c.ecs == nil {
		return
	}
	if entry, ok := components.Camera.First(c.ecs.World); ok {
		systems.ResizeCamera(components.Camera.Get(entry), width, height)
	}
}

func (c *Coordinator) Draw(screen *ebiten.Image) {
	if c.ecs == nil {
		return
	}
	c.ecs.Draw(screen)
}

func (c *Coordinator) State() State {
	return c.state
}

// Err returns the load failure once the coordinator is in StateFailed.
func (c *Coordinator) Err() error {
	return c.err
}

// Current returns the name of the active scene.
func (c *Coordinator) Current() string {
	return c.current
}

// MapRef returns the map descriptor of the active scene.
func (c *Coordinator) MapRef() string {
	return c.table.Scenes[c.current].Map
}

func (c *Coordinator) Transition() TransitionContext {
	return c.transition
}

func (c *Coordinator) ECS() *ecs.ECS {
	return c.ecs
}

func (c *Coordinator) Router() *systems.CollisionRouter {
	return c.router
}

func (c *Coordinator) Gate() *systems.DialogueGate {
	return c.gate
}

func (c *Coordinator) Player() *donburi.Entry {
	return c.player
}

func (c *Coordinator) Footsteps() *systems.FootstepScheduler {
	return c.footsteps
}
