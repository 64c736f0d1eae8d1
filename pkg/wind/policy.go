// Package wind holds the process-wide wind mode and couples it to the
// wind-sensitive effect layers and to flower sway.
package wind

import (
	"log"

	"github.com/decker502/lily/pkg/effects"
)

// Regenerator rebuilds effect layers from scratch with the given motion config.
type Regenerator interface {
	RegenerateLayers(cfg effects.Config)
}

// Swayer re-evaluates sway animations for every flower.
type Swayer interface {
	ApplySway(wind bool)
}

// Policy is the binary wind mode. Every change regenerates the layers first
// and then re-evaluates sway, so no stale primitive survives a toggle.
type Policy struct {
	enabled bool
	layers  Regenerator
	sway    Swayer
}

// NewPolicy creates a policy with wind disabled. It does not touch the
// collaborators until the first change.
func NewPolicy(layers Regenerator, sway Swayer) *Policy {
	return &Policy{layers: layers, sway: sway}
}

// Enabled reports the current mode.
func (p *Policy) Enabled() bool { return p.enabled }

// Config returns the generator config for the current mode.
func (p *Policy) Config() effects.Config {
	return effects.Config{Wind: p.enabled}
}

// Toggle flips the mode, applies it and returns the new state.
func (p *Policy) Toggle() bool {
	p.Set(!p.enabled)
	return p.enabled
}

// Set switches to the given mode. Setting the current mode still
// regenerates, which lets callers force a rebuild.
func (p *Policy) Set(enabled bool) {
	p.enabled = enabled
	p.Apply()
}

// Apply regenerates the layers and re-evaluates sway for the current mode.
func (p *Policy) Apply() {
	if p.layers != nil {
		p.layers.RegenerateLayers(p.Config())
	}
	if p.sway != nil {
		p.sway.ApplySway(p.enabled)
	}
	log.Printf("[Wind] wind=%v applied", p.enabled)
}
