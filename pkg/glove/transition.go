package glove

import (
	"github.com/chewxy/math32"
)

// Interpolate blends two readings channel by channel. The factor is expected
// in [0,1] but is not clamped; the result is truncated to integers.
func Interpolate(start, end Reading, factor float64) Reading {
	var r Reading
	for i := range r {
		r[i] = int(float64(start[i]) + float64(end[i]-start[i])*factor)
	}
	return r
}

// Transition is a lazy, finite sequence of readings easing from one pattern
// to another. It is consumed exactly once; create a new Transition for each
// letter change.
type Transition struct {
	start, end Reading
	steps      int
	k          int
}

// NewTransition creates a transition of the given number of steps (steps >= 1).
// Step k blends with an eased fraction 0.5 - 0.5*cos(k/steps * pi), so the
// first reading equals start and the last stops just short of end.
func NewTransition(start, end Reading, steps int) *Transition {
	if steps < 1 {
		steps = 1
	}
	return &Transition{start: start, end: end, steps: steps}
}

// Len returns the total number of readings the transition yields.
func (t *Transition) Len() int { return t.steps }

// Next returns the next eased reading, or ok=false once the sequence is
// exhausted.
func (t *Transition) Next() (Reading, bool) {
	if t.k >= t.steps {
		return Reading{}, false
	}
	fraction := float32(t.k) / float32(t.steps)
	eased := 0.5 - 0.5*math32.Cos(fraction*math32.Pi)
	t.k++
	return Interpolate(t.start, t.end, float64(eased)), true
}
