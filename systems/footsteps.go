package systems

import (
	"math/rand"

	cfg "github.com/automoto/tilewalk/config"
)

// FootstepScheduler plays the footstep sound on a fixed interval while the
// player walks. At most one loop is live at a time.
type FootstepScheduler struct {
	audio AudioService
	rng   *rand.Rand
	loop  TimerHandle
}

func NewFootstepScheduler(a AudioService, rng *rand.Rand) *FootstepScheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &FootstepScheduler{audio: a, rng: rng}
}

// Start replaces any running loop with a fresh one.
func (f *FootstepScheduler) Start() {
	f.Stop()
	f.loop = f.audio.ScheduleRepeating(cfg.Footsteps.Interval, f.step)
}

// Stop cancels the loop. Calling it with no loop running does nothing.
func (f *FootstepScheduler) Stop() {
	if f.loop == nil {
		return
	}
	f.loop.Cancel()
	f.loop = nil
}

func (f *FootstepScheduler) Active() bool {
	return f.loop != nil
}

func (f *FootstepScheduler) step() {
	detune := cfg.Footsteps.DetuneMin + f.rng.Float64()*(cfg.Footsteps.DetuneMax-cfg.Footsteps.DetuneMin)
	f.audio.PlayOneShot(cfg.SoundFootsteps, PlayOptions{
		Volume: cfg.Footsteps.Volume,
		Speed:  cfg.Footsteps.Speed,
		Detune: detune,
	})
}
