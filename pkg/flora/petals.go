// Package flora generates the floral motif: a shared radial petal template
// and, per flower, a randomized stamen cluster whose curved strokes all bend
// back toward "up".
package flora

import (
	"image/color"

	"github.com/decker502/lily/pkg/scene"
)

// Ring identifies one of the four concentric petal rings.
type Ring int

const (
	RingBack Ring = iota
	RingMain
	RingInner
	RingExtraInner
)

// RingCount is the number of petal rings.
const RingCount = 4

// PetalsPerRing is the angular order of every ring (60° spacing).
const PetalsPerRing = 6

func (r Ring) String() string {
	switch r {
	case RingBack:
		return "petal-back"
	case RingMain:
		return "petal-main"
	case RingInner:
		return "petal-inner"
	case RingExtraInner:
		return "petal-extra-inner"
	}
	return "petal-unknown"
}

// ringRotations are the literal rotation sets of the four rosettes.
var ringRotations = [RingCount][PetalsPerRing]float64{
	RingBack:       {15, 75, 135, 195, 255, 315},
	RingMain:       {0, 60, 120, 180, 240, 300},
	RingInner:      {30, 90, 150, 210, 270, 330},
	RingExtraInner: {45, 105, 165, 225, 285, 345},
}

// petalShape is the base outline of one ring's petal.
type petalShape struct {
	length float64
	width  float64
	curl   float64 // sideways tip offset, makes the petal recurve
}

var ringShapes = [RingCount]petalShape{
	RingBack:       {length: 118, width: 13, curl: 14},
	RingMain:       {length: 126, width: 12, curl: 18},
	RingInner:      {length: 100, width: 10, curl: 12},
	RingExtraInner: {length: 84, width: 9, curl: 9},
}

func (s petalShape) path() scene.PathData {
	return scene.PathData{}.
		MoveTo(0, 0).
		QuadTo(s.width, -s.length*0.45, s.curl, -s.length).
		QuadTo(-s.width*0.6, -s.length*0.55, 0, 0).
		Close()
}

// PetalRing is one rosette: the same base shape stamped at six rotations.
type PetalRing struct {
	Ring      Ring
	Shape     scene.PathData
	Fill      color.RGBA
	Rotations [PetalsPerRing]float64
}

// PetalTemplate is the static floret shared read-only by every flower.
// Geometry is built once; palette changes only rewrite the ring fills.
type PetalTemplate struct {
	Rings [RingCount]*PetalRing
}

// NewPetalTemplate builds the four rosettes coloured with p.
func NewPetalTemplate(p Palette) *PetalTemplate {
	t := &PetalTemplate{}
	for r := RingBack; r <= RingExtraInner; r++ {
		t.Rings[r] = &PetalRing{
			Ring:      r,
			Shape:     ringShapes[r].path(),
			Fill:      p.Petal(r),
			Rotations: ringRotations[r],
		}
	}
	return t
}

// ApplyPalette rewrites the ring fills in place.
func (t *PetalTemplate) ApplyPalette(p Palette) {
	for _, ring := range t.Rings {
		ring.Fill = p.Petal(ring.Ring)
	}
}

// Fills returns the current fill of every ring.
func (t *PetalTemplate) Fills() [RingCount]color.RGBA {
	var fills [RingCount]color.RGBA
	for i, ring := range t.Rings {
		fills[i] = ring.Fill
	}
	return fills
}

// PetalCount returns the total number of petals in the template.
func (t *PetalTemplate) PetalCount() int {
	n := 0
	for _, ring := range t.Rings {
		n += len(ring.Rotations)
	}
	return n
}
