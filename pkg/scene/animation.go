package scene

import (
	"math"

	"github.com/decker502/lily/internal/particle"
)

// RepeatIndefinite marks an animation that loops for the primitive's whole life.
const RepeatIndefinite = -1

// Attr names an animatable attribute. Names follow the SVG attribute names so
// the SVG adapter can write them unchanged.
type Attr string

const (
	AttrCX      Attr = "cx"
	AttrCY      Attr = "cy"
	AttrR       Attr = "r"
	AttrX1      Attr = "x1"
	AttrY1      Attr = "y1"
	AttrX2      Attr = "x2"
	AttrY2      Attr = "y2"
	AttrOpacity Attr = "opacity"
	AttrRotate  Attr = "rotate"
)

// Timing is the clock shared by every animation variant.
type Timing struct {
	Duration float64 // seconds per iteration
	Delay    float64 // seconds before the first iteration starts
	Repeat   int     // iteration count, RepeatIndefinite for looping motion
}

// Loop returns an indefinitely repeating Timing.
func Loop(duration, delay float64) Timing {
	return Timing{Duration: duration, Delay: delay, Repeat: RepeatIndefinite}
}

// Clock returns the timing itself; it lets the variants satisfy Animation by
// embedding Timing.
func (tm Timing) Clock() Timing {
	return tm
}

// Progress returns the normalized progress (0-1) within the current iteration
// at scene time t, and whether the animation is applied at all. Before the
// delay has elapsed, and after a finite animation ends, the attribute keeps
// its base value.
func (tm Timing) Progress(t float64) (float64, bool) {
	if tm.Duration <= 0 || t < tm.Delay {
		return 0, false
	}
	elapsed := t - tm.Delay
	if tm.Repeat != RepeatIndefinite {
		iterations := tm.Repeat
		if iterations < 1 {
			iterations = 1
		}
		if elapsed >= tm.Duration*float64(iterations) {
			return 0, false
		}
	}
	return math.Mod(elapsed, tm.Duration) / tm.Duration, true
}

// Animation is a declarative time-varying binding of one attribute. The
// variants are *Linear and *Keyframes.
type Animation interface {
	Attribute() Attr
	Clock() Timing
	// ValueAt returns the attribute value at normalized progress p.
	ValueAt(p float64) float64
	animation()
}

// Linear ramps an attribute from From to To over one iteration.
type Linear struct {
	Attr     Attr
	From, To float64
	Timing
}

// Attribute implements Animation.
func (a *Linear) Attribute() Attr { return a.Attr }

// ValueAt implements Animation.
func (a *Linear) ValueAt(p float64) float64 {
	return a.From + (a.To-a.From)*p
}

func (*Linear) animation() {}

// Keyframes cycles an attribute through evenly spaced values.
type Keyframes struct {
	Attr   Attr
	Values []float64
	// Additive animations add to the base value instead of replacing it.
	Additive bool
	// Class tags the animation so owners can find and remove it later.
	Class string
	Timing
}

// Attribute implements Animation.
func (a *Keyframes) Attribute() Attr { return a.Attr }

// ValueAt implements Animation.
func (a *Keyframes) ValueAt(p float64) float64 {
	return particle.EvaluateKeyframes(particle.EvenKeyframes(a.Values), p, particle.InterpLinear)
}

func (*Keyframes) animation() {}

// Ramp builds a looping Linear animation.
func Ramp(attr Attr, from, to, duration, delay float64) *Linear {
	return &Linear{Attr: attr, From: from, To: to, Timing: Loop(duration, delay)}
}

// Cycle builds a looping Keyframes animation.
func Cycle(attr Attr, values []float64, duration, delay float64) *Keyframes {
	return &Keyframes{Attr: attr, Values: values, Timing: Loop(duration, delay)}
}

// IsLooping reports whether every animation in list repeats indefinitely.
func IsLooping(list []Animation) bool {
	for _, a := range list {
		if a.Clock().Repeat != RepeatIndefinite {
			return false
		}
	}
	return true
}

func isAdditive(a Animation) bool {
	kf, ok := a.(*Keyframes)
	return ok && kf.Additive
}
