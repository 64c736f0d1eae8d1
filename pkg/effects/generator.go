package effects

import (
	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/scene"
)

// Generator stamps out effect populations.
type Generator struct {
	sampler  particle.Sampler
	profiles map[Kind]Profile
}

// NewGenerator creates a generator with the built-in profiles.
func NewGenerator(s particle.Sampler) *Generator {
	return &Generator{
		sampler:  s,
		profiles: DefaultProfiles(),
	}
}

// SetProfileOverride replaces the set ranges of kind's profile.
func (g *Generator) SetProfileOverride(kind Kind, override Override) {
	g.profiles[kind] = g.profiles[kind].Merge(override)
}

// Profile returns the active profile of kind.
func (g *Generator) Profile(kind Kind) Profile {
	return g.profiles[kind]
}

// Generate appends count independent primitives of kind to c. A negative
// count is treated as zero.
func (g *Generator) Generate(c scene.Container, kind Kind, count int, cfg Config) {
	for i := 0; i < count; i++ {
		c.Append(g.Build(kind, cfg))
	}
}

// Regenerate removes every primitive from c, then generates count new ones.
func (g *Generator) Regenerate(c scene.Container, kind Kind, count int, cfg Config) {
	c.Clear()
	g.Generate(c, kind, count, cfg)
}

// Build creates one primitive of kind.
func (g *Generator) Build(kind Kind, cfg Config) *scene.Primitive {
	switch kind {
	case Snow:
		return g.snowflake(cfg)
	case Rain:
		return g.raindrop(cfg)
	case FloatingParticles:
		return g.mote(cfg)
	case Bubbles:
		return g.bubble()
	case Stars:
		return g.star()
	}
	panic("effects: unknown kind " + string(kind))
}

func (g *Generator) uniform(min, max float64) float64 {
	return g.sampler.Uniform(min, max)
}

// snowflake falls from the top edge to below the bottom edge. Without wind it
// drifts in a small oscillation; with wind it sweeps across the whole field.
func (g *Generator) snowflake(cfg Config) *scene.Primitive {
	p := g.profiles[Snow]
	cx := g.uniform(0, FieldWidth)
	r := p.Size.Sample(g.sampler)
	dur := p.Duration.Sample(g.sampler)
	delay := p.Delay.Sample(g.sampler)

	flake := scene.NewDisc(cx, snowTop, r).WithFill(snowColor)
	flake.Animate(scene.Ramp(scene.AttrCY, snowTop, snowBottom, dur, delay))

	if cfg.Wind {
		flake.Animate(scene.Ramp(scene.AttrCX, snowWindLeft, snowWindRight, dur*snowWindSpeed, delay))
	} else {
		flake.Animate(scene.Cycle(scene.AttrCX, []float64{cx, cx + snowDrift, cx}, dur/2, delay))
	}
	return flake
}

// raindrop is a short streak whose endpoints fall in lockstep. With wind the
// tail starts offset to the left so the streak slants, and both endpoints are
// pushed sideways over the same duration as the fall.
func (g *Generator) raindrop(cfg Config) *scene.Primitive {
	p := g.profiles[Rain]
	x := g.uniform(0, FieldWidth)
	y1 := rainStartMin - g.uniform(0, rainStartJitter)
	length := p.Size.Sample(g.sampler)
	y2 := y1 + length
	dur := p.Duration.Sample(g.sampler)
	delay := p.Delay.Sample(g.sampler)

	x1, x2 := x, x
	if cfg.Wind {
		x1 = x - rainWindStrength
	}

	drop := scene.NewLine(x1, y1, x2, y2).WithStroke(rainColor, rainStrokeWidth)
	if cfg.Wind {
		windDur := dur * rainWindDurationFx
		drop.Animate(
			scene.Ramp(scene.AttrX1, x1, x1+rainWindStrength*2, windDur, delay),
			scene.Ramp(scene.AttrX2, x2, x2+rainWindStrength*2, windDur, delay),
		)
	}
	drop.Animate(
		scene.Ramp(scene.AttrY1, y1, rainBottom, dur, delay),
		scene.Ramp(scene.AttrY2, y2, rainBottom+length, dur, delay),
	)
	return drop
}

// mote rises a short random distance while fading in and out.
func (g *Generator) mote(cfg Config) *scene.Primitive {
	p := g.profiles[FloatingParticles]
	cx := g.uniform(0, FieldWidth)
	cy := g.uniform(0, FieldHeight)
	r := p.Size.Sample(g.sampler)
	dur := p.Duration.Sample(g.sampler)
	delay := p.Delay.Sample(g.sampler)
	rise := g.uniform(floatRiseMin, floatRiseMax)

	mote := scene.NewDisc(cx, cy, r).WithFill(floatingColor)
	if cfg.Wind {
		drift := g.uniform(floatWindDriftMin, floatWindDriftMax)
		mote.Animate(scene.Ramp(scene.AttrCX, cx, cx+drift, dur*floatWindSlowdown, delay))
	}
	mote.Animate(
		scene.Ramp(scene.AttrCY, cy, cy-rise, dur, delay),
		scene.Cycle(scene.AttrOpacity, []float64{0, floatPeakOpacity, 0}, dur, delay),
	)
	return mote
}

// bubble rises from below the field to above it with a sideways wobble.
// Wind does not reach under water.
func (g *Generator) bubble() *scene.Primitive {
	p := g.profiles[Bubbles]
	cx := g.uniform(0, FieldWidth)
	r := p.Size.Sample(g.sampler)
	dur := p.Duration.Sample(g.sampler)
	delay := p.Delay.Sample(g.sampler)

	b := scene.NewDisc(cx, bubbleBottom, r).
		WithFill(bubbleFill).
		WithStroke(bubbleStroke, bubbleStrokeWide)
	b.Animate(
		scene.Ramp(scene.AttrCY, bubbleBottom, bubbleTop, dur, delay),
		scene.Cycle(scene.AttrCX, []float64{cx, cx + bubbleWobble, cx - bubbleWobble, cx}, dur/bubbleWobbleFx, 0),
	)
	return b
}

// star twinkles in place between a random base opacity and a capped peak.
func (g *Generator) star() *scene.Primitive {
	p := g.profiles[Stars]
	cx := g.uniform(0, FieldWidth)
	cy := g.uniform(0, starSkyHeight)
	r := p.Size.Sample(g.sampler)

	base := g.uniform(starBaseMin, starBaseMax)
	peak := min(1, base+starPeakBoost)
	dur := p.Duration.Sample(g.sampler)
	delay := p.Delay.Sample(g.sampler)

	s := scene.NewDisc(cx, cy, r).WithFill(starColor)
	s.Opacity = base
	s.Animate(scene.Cycle(scene.AttrOpacity, []float64{base, peak, base}, dur, delay))
	return s
}
