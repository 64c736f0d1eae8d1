package flora

import (
	"github.com/decker502/lily/internal/particle"
)

// Garden owns the petal template and every flower instance.
type Garden struct {
	sampler  particle.Sampler
	template *PetalTemplate
	flowers  []*Flower
	palette  Palette
}

// NewGarden builds the petal template once and one flower per placement,
// each with a fresh stamen cluster in p's stamen colour.
func NewGarden(placements []Placement, p Palette, s particle.Sampler) *Garden {
	g := &Garden{
		sampler:  s,
		template: NewPetalTemplate(p),
		palette:  p,
	}
	for i, pl := range placements {
		g.flowers = append(g.flowers, newFlower(i, pl, g.template))
	}
	g.RegenerateStamens()
	return g
}

// Template returns the shared petal template.
func (g *Garden) Template() *PetalTemplate { return g.template }

// Flowers returns the flowers in creation order.
func (g *Garden) Flowers() []*Flower { return g.flowers }

// Palette returns the palette the stamens were last built with.
func (g *Garden) Palette() Palette { return g.palette }

// RegenerateStamens rebuilds every flower's stamen cluster.
func (g *Garden) RegenerateStamens() {
	for _, f := range g.flowers {
		f.RegenerateStamens(g.sampler, g.palette.Stamen)
	}
}

// SwitchPalette recolours the template in place, rebuilds every stamen
// cluster with the new stamen colour and re-evaluates sway.
func (g *Garden) SwitchPalette(p Palette, wind bool) {
	g.palette = p
	g.template.ApplyPalette(p)
	g.RegenerateStamens()
	g.ApplySway(wind)
}

// ApplySway re-evaluates sway on every flower.
func (g *Garden) ApplySway(wind bool) {
	ApplySway(g.flowers, wind, g.sampler)
}

// SwayingCount returns how many flowers currently sway.
func (g *Garden) SwayingCount() int {
	n := 0
	for _, f := range g.flowers {
		if f.Swaying() {
			n++
		}
	}
	return n
}
