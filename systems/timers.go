package systems

// TimerHandle cancels a scheduled callback.
type TimerHandle interface {
	Cancel()
}

type timer struct {
	interval  float64
	elapsed   float64
	fn        func()
	cancelled bool
}

func (t *timer) Cancel() {
	t.cancelled = true
}

// Timers runs repeating callbacks on simulated time. It is advanced once
// per frame from the game goroutine.
type Timers struct {
	entries []*timer
}

func NewTimers() *Timers {
	return &Timers{}
}

// ScheduleRepeating calls fn every interval seconds, first after one interval.
func (ts *Timers) ScheduleRepeating(interval float64, fn func()) TimerHandle {
	t := &timer{interval: interval, fn: fn}
	if interval <= 0 {
		t.cancelled = true
		return t
	}
	ts.entries = append(ts.entries, t)
	return t
}

// Advance moves simulated time forward by dt seconds.
func (ts *Timers) Advance(dt float64) {
	// Callbacks may schedule new timers; only the ones present now advance.
	current := ts.entries
	for _, t := range current {
		if t.cancelled {
			continue
		}
		t.elapsed += dt
		for t.elapsed >= t.interval && !t.cancelled {
			t.elapsed -= t.interval
			t.fn()
		}
	}

	live := ts.entries[:0]
	for _, t := range ts.entries {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(ts.entries); i++ {
		ts.entries[i] = nil
	}
	ts.entries = live
}

// Len returns the number of live timers.
func (ts *Timers) Len() int {
	n := 0
	for _, t := range ts.entries {
		if !t.cancelled {
			n++
		}
	}
	return n
}
