package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeAudio struct {
	timers   *Timers
	oneShots []PlayOptions
	loops    int
	loopOpts []PlayOptions
	stopped  int
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{timers: NewTimers()}
}

func (a *fakeAudio) PlayLoop(id cfg.SoundID, opts PlayOptions) LoopHandle {
	a.loops++
	a.loopOpts = append(a.loopOpts, opts)
	return fakeLoop{a}
}

func (a *fakeAudio) PlayOneShot(id cfg.SoundID, opts PlayOptions) {
	if id == cfg.SoundFootsteps {
		a.oneShots = append(a.oneShots, opts)
	}
}

func (a *fakeAudio) ScheduleRepeating(interval float64, fn func()) TimerHandle {
	return a.timers.ScheduleRepeating(interval, fn)
}

// tick advances the fake's timers by n frames.
func (a *fakeAudio) tick(n int) {
	for i := 0; i < n; i++ {
		a.timers.Advance(cfg.C.TickSeconds)
	}
}

type fakeLoop struct {
	a *fakeAudio
}

func (l fakeLoop) Stop() {
	l.a.stopped++
}

type fakeTransitions struct {
	targets []string
	exits   []bool
}

func (f *fakeTransitions) RequestTransition(target string, pendingExit bool) {
	f.targets = append(f.targets, target)
	f.exits = append(f.exits, pendingExit)
}

// testScene is a one-player world with a collision space and no map.
type testScene struct {
	ecs       *ecs.ECS
	player    *donburi.Entry
	audio     *fakeAudio
	footsteps *FootstepScheduler
}

func newTestScene(t *testing.T, x, y float64) *testScene {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(w, 2000, 2000)
	player := factory.CreatePlayer(w, x, y, 1)
	GetOrCreateInput(w)

	audio := newFakeAudio()
	return &testScene{
		ecs:       w,
		player:    player,
		audio:     audio,
		footsteps: NewFootstepScheduler(audio, rand.New(rand.NewSource(1))),
	}
}

func (s *testScene) input() *components.InputData {
	return GetOrCreateInput(s.ecs)
}

func (s *testScene) playerData() *components.PlayerData {
	return components.Player.Get(s.player)
}

func (s *testScene) anim() *components.AnimationData {
	return components.Animation.Get(s.player)
}

func (s *testScene) obj() *components.ObjectData {
	return components.Object.Get(s.player)
}
