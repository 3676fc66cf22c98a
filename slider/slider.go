// Package slider holds the "time travel" offset applied to every city and to
// the gradient strip. It is owned by the bar loop goroutine; no locking.
package slider

import "math"

const (
	MinHours = -24.0
	MaxHours = 24.0
)

type Slider struct {
	hours   float64
	step    float64
	snap    float64
	version uint64
}

// New returns a slider at "now". step is the size of one scroll notch and
// snap the distance from zero under which the offset collapses to zero.
func New(step, snap float64) *Slider {
	return &Slider{step: step, snap: snap}
}

func (s *Slider) Hours() float64 { return s.hours }

// Shifted reports whether the offset is away from "now".
func (s *Slider) Shifted() bool { return s.hours != 0 }

// Version changes every time the offset does; providers compare it to decide
// whether to redraw.
func (s *Slider) Version() uint64 { return s.version }

// Set clamps h to the slider range and snaps small values to zero. It
// returns true if the offset changed.
func (s *Slider) Set(h float64) bool {
	if math.IsNaN(h) {
		return false
	}
	h = math.Max(MinHours, math.Min(MaxHours, h))
	if math.Abs(h) < s.snap {
		h = 0
	}
	if h == s.hours {
		return false
	}
	s.hours = h
	s.version++
	return true
}

// Nudge moves the offset by n steps.
func (s *Slider) Nudge(n int) bool {
	return s.Set(s.hours + float64(n)*s.step)
}

// Reset returns to "now".
func (s *Slider) Reset() bool {
	return s.Set(0)
}
