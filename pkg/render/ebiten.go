package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/lily/pkg/flora"
	"github.com/decker502/lily/pkg/ripple"
	"github.com/decker502/lily/pkg/scene"
)

// EbitenRenderer draws frames with vector primitives. It resolves every
// declarative animation at the frame time, so no per-primitive state is
// kept between frames.
type EbitenRenderer struct {
	flowers *ebiten.Image // offscreen target for the rippled flowers
}

// NewEbitenRenderer creates a renderer.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// Draw renders f onto screen, which must be FieldWidth x FieldHeight.
func (r *EbitenRenderer) Draw(screen *ebiten.Image, f Frame) {
	screen.Fill(f.Background)

	for _, l := range f.Back {
		r.drawLayer(screen, l, f.T)
	}

	if f.Garden != nil {
		if f.Ripple == nil {
			r.drawGarden(screen, f.Garden, f.T)
		} else {
			r.drawRippled(screen, f)
		}
	}

	for _, l := range f.Front {
		r.drawLayer(screen, l, f.T)
	}
}

func (r *EbitenRenderer) drawRippled(screen *ebiten.Image, f Frame) {
	if r.flowers == nil {
		r.flowers = ebiten.NewImage(FieldWidth, FieldHeight)
	}
	r.flowers.Clear()
	r.drawGarden(r.flowers, f.Garden, f.T)

	band := int(f.Ripple.BandHeight)
	if band < 1 {
		band = 1
	}
	for y := 0; y < FieldHeight; y += band {
		strip := r.flowers.SubImage(image.Rect(0, y, FieldWidth, y+band)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ripple.Offset(f.Ripple.Frequency, f.Ripple.Frames, float64(y), f.Ripple.Amplitude), float64(y))
		screen.DrawImage(strip, op)
	}
}

func (r *EbitenRenderer) drawLayer(dst *ebiten.Image, l *scene.Layer, t float64) {
	if !l.Visible() {
		return
	}
	var identity ebiten.GeoM
	for _, p := range l.Primitives() {
		resolved := p.At(t)
		r.drawPrimitive(dst, &resolved, identity, 1)
	}
}

func (r *EbitenRenderer) drawGarden(dst *ebiten.Image, g *flora.Garden, t float64) {
	tmpl := g.Template()
	for _, f := range g.Flowers() {
		flower := flowerGeoM(f, t)
		scale := f.Group.Scale

		stem := f.Stem.At(t)
		r.drawPrimitive(dst, &stem, flower, scale)

		head := headGeoM(f, flower)
		cluster := localGeoM(0, flora.ClusterScale, head)
		for _, s := range f.Stamens.Primitives() {
			resolved := s.At(t)
			r.drawPrimitive(dst, &resolved, cluster, scale*flora.ClusterScale)
		}

		// The floret covers the stamen roots.
		for _, ring := range tmpl.Rings {
			paint := scene.Solid(ring.Fill)
			for _, rot := range ring.Rotations {
				r.fillPath(dst, ring.Shape, localGeoM(rot, 1, head), straight(paint, 1))
			}
		}
	}
}

// drawPrimitive draws a resolved primitive through geo. scale is the uniform
// scale already in geo, applied to radii and stroke widths.
func (r *EbitenRenderer) drawPrimitive(dst *ebiten.Image, p *scene.Primitive, geo ebiten.GeoM, scale float64) {
	switch p.Shape {
	case scene.ShapeDisc:
		x, y := geo.Apply(p.CX, p.CY)
		radius := float32(p.R * scale)
		if p.Fill.Set {
			vector.FillCircle(dst, float32(x), float32(y), radius, straight(p.Fill, p.Opacity), true)
		}
		if p.Stroke.Set {
			vector.StrokeCircle(dst, float32(x), float32(y), radius, float32(p.StrokeWidth*scale), straight(p.Stroke, p.Opacity), true)
		}
	case scene.ShapeLine:
		if !p.Stroke.Set {
			return
		}
		x1, y1 := geo.Apply(p.X1, p.Y1)
		x2, y2 := geo.Apply(p.X2, p.Y2)
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(p.StrokeWidth*scale), straight(p.Stroke, p.Opacity), true)
	case scene.ShapeCurve:
		local := localGeoM(p.Rotate, 1, geo)
		if p.Fill.Set {
			r.fillPath(dst, p.Path, local, straight(p.Fill, p.Opacity))
		}
		if p.Stroke.Set {
			r.strokePath(dst, p.Path, local, p.StrokeWidth*scale, straight(p.Stroke, p.Opacity))
		}
	}
}

// buildPath maps d through geo. Affine maps keep Bézier curves Bézier, so
// transforming the control points is exact.
func buildPath(d scene.PathData, geo ebiten.GeoM) *vector.Path {
	var path vector.Path
	for _, s := range d {
		switch s.Op {
		case scene.OpMoveTo:
			x, y := geo.Apply(s.X, s.Y)
			path.MoveTo(float32(x), float32(y))
		case scene.OpLineTo:
			x, y := geo.Apply(s.X, s.Y)
			path.LineTo(float32(x), float32(y))
		case scene.OpQuadTo:
			cx, cy := geo.Apply(s.X1, s.Y1)
			x, y := geo.Apply(s.X, s.Y)
			path.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
		case scene.OpCubicTo:
			c1x, c1y := geo.Apply(s.X1, s.Y1)
			c2x, c2y := geo.Apply(s.X2, s.Y2)
			x, y := geo.Apply(s.X, s.Y)
			path.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
		case scene.OpClose:
			path.Close()
		}
	}
	return &path
}

// pathOptions draws in clr, given as straight alpha.
func pathOptions(clr color.NRGBA) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

func (r *EbitenRenderer) fillPath(dst *ebiten.Image, d scene.PathData, geo ebiten.GeoM, clr color.NRGBA) {
	vector.FillPath(dst, buildPath(d, geo), nil, pathOptions(clr))
}

func (r *EbitenRenderer) strokePath(dst *ebiten.Image, d scene.PathData, geo ebiten.GeoM, width float64, clr color.NRGBA) {
	op := &vector.StrokeOptions{
		Width:   float32(width),
		LineCap: vector.LineCapRound,
	}
	vector.StrokePath(dst, buildPath(d, geo), op, pathOptions(clr))
}
