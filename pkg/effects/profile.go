// Package effects populates the ambient particle layers of the scene: snow,
// rain, floating motes, rising bubbles and twinkling stars.
//
// Each layer is a population of independent primitives whose motion is fully
// declarative. Durations, delays and offsets are sampled once per primitive
// at creation; nothing is re-sampled while the animation runs.
package effects

import (
	"fmt"
	"image/color"

	"github.com/decker502/lily/internal/particle"
)

// Kind identifies an effect layer.
type Kind string

const (
	Snow              Kind = "snow"
	Rain              Kind = "rain"
	FloatingParticles Kind = "floatingParticles"
	Bubbles           Kind = "bubbles"
	Stars             Kind = "stars"
)

// Kinds lists every effect kind in drawing order (back to front).
func Kinds() []Kind {
	return []Kind{Stars, FloatingParticles, Bubbles, Snow, Rain}
}

// ParseKind maps a layer name to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown effect kind %q", s)
}

// WindSensitive reports whether the kind switches motion profile with wind.
func (k Kind) WindSensitive() bool {
	switch k {
	case Snow, Rain, FloatingParticles:
		return true
	}
	return false
}

// WindSensitiveKinds lists the kinds regenerated on a wind toggle.
func WindSensitiveKinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if k.WindSensitive() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Config is the immutable generation context passed into every call.
type Config struct {
	Wind bool
}

// Profile holds the sampled ranges of one effect kind.
type Profile struct {
	// Size is the disc radius, or the streak length for rain.
	Size     particle.Range
	Duration particle.Range
	Delay    particle.Range
}

// Scene geometry shared by every layer.
const (
	FieldWidth  = 800.0
	FieldHeight = 800.0

	snowTop       = -10.0
	snowBottom    = 810.0
	snowDrift     = 20.0
	snowWindLeft  = -100.0
	snowWindRight = 900.0
	snowWindSpeed = 0.75 // wind sweep duration as a fraction of the fall duration

	rainBottom         = 800.0
	rainStartMin       = -20.0
	rainStartJitter    = 30.0
	rainWindStrength   = 300.0
	rainWindDurationFx = 1.0

	floatRiseMin      = 50.0
	floatRiseMax      = 150.0
	floatPeakOpacity  = 0.8
	floatWindDriftMin = 200.0
	floatWindDriftMax = 350.0
	floatWindSlowdown = 1.5

	bubbleBottom   = 850.0
	bubbleTop      = -50.0
	bubbleWobble   = 20.0
	bubbleWobbleFx = 1.5 // wobble duration divisor

	starSkyHeight = 350.0
	starBaseMin   = 0.4
	starBaseMax   = 0.9
	starPeakBoost = 0.3
)

// DefaultProfiles returns the built-in profile of every kind.
func DefaultProfiles() map[Kind]Profile {
	return map[Kind]Profile{
		Snow: {
			Size:     particle.R(1, 3),
			Duration: particle.R(5, 10),
			Delay:    particle.R(0, 5),
		},
		Rain: {
			Size:     particle.R(20, 40),
			Duration: particle.R(0.5, 1.0),
			Delay:    particle.R(0, 2),
		},
		FloatingParticles: {
			Size:     particle.R(1, 3),
			Duration: particle.R(2, 5),
			Delay:    particle.R(0, 5),
		},
		Bubbles: {
			Size:     particle.R(2, 8),
			Duration: particle.R(3, 8),
			Delay:    particle.R(0, 5),
		},
		Stars: {
			Size:     particle.R(0.5, 1.5),
			Duration: particle.R(3, 8),
			Delay:    particle.R(0, 8),
		},
	}
}

// Override replaces selected ranges of a Profile. Nil fields keep the
// current range, so an explicit "[0]" is a real override.
type Override struct {
	Size     *particle.Range
	Duration *particle.Range
	Delay    *particle.Range
}

// Merge returns p with every set range of o applied.
func (p Profile) Merge(o Override) Profile {
	if o.Size != nil {
		p.Size = *o.Size
	}
	if o.Duration != nil {
		p.Duration = *o.Duration
	}
	if o.Delay != nil {
		p.Delay = *o.Delay
	}
	return p
}

// Layer colours. They are baked into each primitive at creation.
var (
	snowColor        = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	rainColor        = color.RGBA{R: 174, G: 194, B: 224, A: 170}
	floatingColor    = color.RGBA{R: 255, G: 236, B: 179, A: 255}
	bubbleStroke     = color.RGBA{R: 255, G: 255, B: 255, A: 150}
	bubbleFill       = color.RGBA{R: 200, G: 230, B: 255, A: 30}
	starColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	rainStrokeWidth  = 1.0
	bubbleStrokeWide = 1.0
)
