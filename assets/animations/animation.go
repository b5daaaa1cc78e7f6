package animations

// Animation steps through a frame range at a fixed rate.
type Animation struct {
	First int
	Last  int
	Speed float64 // frames per second
	Loop  bool

	elapsed float64
	frame   int
	Looped  bool
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.Speed <= 0 || a.First == a.Last {
		return
	}
	a.elapsed += dt
	step := 1 / a.Speed
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame++
		if a.frame > a.Last {
			a.Looped = true
			if a.Loop {
				a.frame = a.First
			} else {
				a.frame = a.Last
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last int, speed float64, loop bool) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Speed: speed,
		Loop:  loop,
		frame: first,
	}
}
