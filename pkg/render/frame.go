// Package render turns a scene snapshot into pixels (Ebitengine) or into a
// standalone animated SVG document.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lily/pkg/flora"
	"github.com/decker502/lily/pkg/scene"
)

// Scene field size. Every generator works in this coordinate space; the
// window scales it.
const (
	FieldWidth  = 800
	FieldHeight = 800
)

// RippleState is the water distortion applied to the flowers.
type RippleState struct {
	Frequency  float64
	Frames     int
	Amplitude  float64
	BandHeight float64
}

// Frame is everything needed to draw the scene once.
type Frame struct {
	// T is the scene time in seconds. The SVG writer ignores it and emits
	// the animations instead.
	T          float64
	Title      string
	Background color.RGBA
	// Back layers are drawn beneath the flowers, Front layers above them.
	Back   []*scene.Layer
	Garden *flora.Garden
	Front  []*scene.Layer
	// Ripple is nil while the water effect is off.
	Ripple *RippleState
}

// rad converts degrees to radians.
func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// flowerGeoM maps the flower's local frame (origin at the stem base) to
// field coordinates at time t. Sway rotates about the stem base.
func flowerGeoM(f *flora.Flower, t float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Rotate(rad(f.Group.RotationAt(t)))
	g.Scale(f.Group.Scale, f.Group.Scale)
	g.Translate(f.Group.X, f.Group.Y)
	return g
}

// headGeoM maps the flower head frame to field coordinates.
func headGeoM(f *flora.Flower, flower ebiten.GeoM) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(0, f.HeadY)
	g.Concat(flower)
	return g
}

// localGeoM prepends a rotation (degrees) and a uniform scale to parent.
func localGeoM(rotate, scale float64, parent ebiten.GeoM) ebiten.GeoM {
	var g ebiten.GeoM
	g.Rotate(rad(rotate))
	g.Scale(scale, scale)
	g.Concat(parent)
	return g
}

// straight returns p's colour with its alpha multiplied by opacity.
func straight(p scene.Paint, opacity float64) color.NRGBA {
	a := float64(p.Color.A) * max(0, min(1, opacity))
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(math.Round(a))}
}
