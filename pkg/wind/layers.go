package wind

import (
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/scene"
)

// Target is one layer rebuilt on every wind change.
type Target struct {
	Kind      effects.Kind
	Container scene.Container
	// Count returns the population size at regeneration time, e.g. the
	// current slider value.
	Count func() int
}

// Layers regenerates a fixed list of targets with one generator.
type Layers struct {
	gen     *effects.Generator
	targets []Target
}

// NewLayers creates a regenerator over targets, rebuilt in the given order.
func NewLayers(gen *effects.Generator, targets ...Target) *Layers {
	return &Layers{gen: gen, targets: targets}
}

// RegenerateLayers implements Regenerator.
func (l *Layers) RegenerateLayers(cfg effects.Config) {
	for _, t := range l.targets {
		l.gen.Regenerate(t.Container, t.Kind, t.Count(), cfg)
	}
}

// Covers reports whether every wind-sensitive kind has a target.
func (l *Layers) Covers() bool {
	have := make(map[effects.Kind]bool, len(l.targets))
	for _, t := range l.targets {
		have[t.Kind] = true
	}
	for _, k := range effects.WindSensitiveKinds() {
		if !have[k] {
			return false
		}
	}
	return true
}

// Fixed returns a Count func for a constant population.
func Fixed(n int) func() int {
	return func() int { return n }
}
