package flora

import (
	"fmt"
	"image/color"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/scene"
)

// Sway parameters.
const (
	SwayClass = "sway"
)

var (
	swayAmplitude = particle.R(5, 9)
	swayDuration  = particle.R(3, 5)
	stemColor     = color.RGBA{R: 46, G: 110, B: 52, A: 255}
)

const stemWidth = 3.0

// Placement positions one flower. X, Y is the stem base; the head sits
// StemLength above it, and the whole flower is scaled by Scale.
type Placement struct {
	X          float64
	Y          float64
	Scale      float64
	StemLength float64
}

// Flower is one instance of the floral motif.
type Flower struct {
	Index int
	// Group holds the flower transform and its sway animation. Rotation
	// pivots on the stem base.
	Group *scene.Group
	// HeadY is the head offset from the group origin.
	HeadY float64
	Stem  *scene.Primitive
	// Stamens is regenerated on every palette switch.
	Stamens *scene.Layer
	// Template is shared with every other flower and never copied.
	Template *PetalTemplate
}

func newFlower(index int, pl Placement, t *PetalTemplate) *Flower {
	scale := pl.Scale
	if scale == 0 {
		scale = 1
	}
	return &Flower{
		Index:    index,
		Group:    scene.NewGroup(fmt.Sprintf("flower-%d", index), pl.X, pl.Y, scale),
		HeadY:    -pl.StemLength,
		Stem:     scene.NewLine(0, 0, 0, -pl.StemLength).WithStroke(stemColor, stemWidth),
		Stamens:  scene.NewLayer(fmt.Sprintf("stamens-%d", index)),
		Template: t,
	}
}

// RegenerateStamens discards the stamen cluster and builds a new one.
func (f *Flower) RegenerateStamens(s particle.Sampler, c color.RGBA) {
	f.Stamens.Clear()
	for _, p := range GenerateStamens(s, c) {
		f.Stamens.Append(p)
	}
}

// Swaying reports whether a sway animation is attached.
func (f *Flower) Swaying() bool {
	return f.Group.CountClass(SwayClass) > 0
}

// ApplySway re-evaluates the sway animation of every flower. Existing sway
// animations are always removed first; with wind enabled, even-indexed
// flowers get one fresh sway animation.
func ApplySway(flowers []*Flower, wind bool, s particle.Sampler) {
	for _, f := range flowers {
		f.Group.RemoveClass(SwayClass)
		if !wind || f.Index%2 != 0 {
			continue
		}
		amount := swayAmplitude.Sample(s)
		f.Group.Attach(&scene.Keyframes{
			Attr:     scene.AttrRotate,
			Values:   []float64{0, amount, 0, -amount / 2, 0},
			Additive: true,
			Class:    SwayClass,
			Timing:   scene.Loop(swayDuration.Sample(s), 0),
		})
	}
}
