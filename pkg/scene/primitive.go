// Package scene holds the declarative scene model: drawable primitives, the
// animations attached to them and the containers that own them.
//
// Nothing in this package moves on its own. A primitive keeps its base
// geometry and a list of animations; renderers call At to resolve the
// primitive at a given scene time.
package scene

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// Shape is the geometric kind of a primitive.
type Shape int

const (
	ShapeDisc Shape = iota
	ShapeLine
	ShapeCurve
)

func (s Shape) String() string {
	switch s {
	case ShapeDisc:
		return "disc"
	case ShapeLine:
		return "line"
	case ShapeCurve:
		return "curve"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Paint is an optional solid colour. The zero value paints nothing.
// Color is read as straight (non-premultiplied) alpha.
type Paint struct {
	Color color.RGBA
	Set   bool
}

// Solid returns a Paint of c.
func Solid(c color.RGBA) Paint {
	return Paint{Color: c, Set: true}
}

// Hex renders the paint as "#rrggbb", or "none" when unset.
func (p Paint) Hex() string {
	if !p.Set {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B)
}

// Alpha returns the paint alpha in 0-1.
func (p Paint) Alpha() float64 {
	if !p.Set {
		return 0
	}
	return float64(p.Color.A) / 255
}

// Primitive is one drawable vector shape plus its attached animations.
// Only the geometry fields matching Shape are meaningful.
type Primitive struct {
	ID    string
	Shape Shape

	// Disc
	CX, CY, R float64

	// Line
	X1, Y1, X2, Y2 float64

	// Curve, drawn in the primitive's local frame rotated by Rotate degrees
	Path   PathData
	Rotate float64

	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	Opacity     float64

	Animations []Animation
}

func newPrimitive(shape Shape) *Primitive {
	return &Primitive{
		ID:      uuid.NewString(),
		Shape:   shape,
		Opacity: 1,
	}
}

// NewDisc creates a disc centred on (cx, cy).
func NewDisc(cx, cy, r float64) *Primitive {
	p := newPrimitive(ShapeDisc)
	p.CX, p.CY, p.R = cx, cy, r
	return p
}

// NewLine creates a line segment.
func NewLine(x1, y1, x2, y2 float64) *Primitive {
	p := newPrimitive(ShapeLine)
	p.X1, p.Y1, p.X2, p.Y2 = x1, y1, x2, y2
	return p
}

// NewCurve creates a path primitive rotated by rotate degrees about its origin.
func NewCurve(path PathData, rotate float64) *Primitive {
	p := newPrimitive(ShapeCurve)
	p.Path = path
	p.Rotate = rotate
	return p
}

// WithFill sets the fill paint.
func (p *Primitive) WithFill(c color.RGBA) *Primitive {
	p.Fill = Solid(c)
	return p
}

// WithStroke sets the stroke paint and width.
func (p *Primitive) WithStroke(c color.RGBA, width float64) *Primitive {
	p.Stroke = Solid(c)
	p.StrokeWidth = width
	return p
}

// Animate attaches animations in order. Later animations of the same
// attribute win when they overlap.
func (p *Primitive) Animate(anims ...Animation) *Primitive {
	p.Animations = append(p.Animations, anims...)
	return p
}

// AnimationsOf returns the animations bound to attr.
func (p *Primitive) AnimationsOf(attr Attr) []Animation {
	var out []Animation
	for _, a := range p.Animations {
		if a.Attribute() == attr {
			out = append(out, a)
		}
	}
	return out
}

// Value returns the base value of attr.
func (p *Primitive) Value(attr Attr) float64 {
	switch attr {
	case AttrCX:
		return p.CX
	case AttrCY:
		return p.CY
	case AttrR:
		return p.R
	case AttrX1:
		return p.X1
	case AttrY1:
		return p.Y1
	case AttrX2:
		return p.X2
	case AttrY2:
		return p.Y2
	case AttrOpacity:
		return p.Opacity
	case AttrRotate:
		return p.Rotate
	}
	return 0
}

func (p *Primitive) set(attr Attr, v float64) {
	switch attr {
	case AttrCX:
		p.CX = v
	case AttrCY:
		p.CY = v
	case AttrR:
		p.R = v
	case AttrX1:
		p.X1 = v
	case AttrY1:
		p.Y1 = v
	case AttrX2:
		p.X2 = v
	case AttrY2:
		p.Y2 = v
	case AttrOpacity:
		p.Opacity = v
	case AttrRotate:
		p.Rotate = v
	}
}

// At resolves the primitive at scene time t (seconds). The returned copy has
// every active animation applied and carries no animations of its own.
func (p *Primitive) At(t float64) Primitive {
	out := *p
	out.Animations = nil
	for _, a := range p.Animations {
		progress, active := a.Clock().Progress(t)
		if !active {
			continue
		}
		v := a.ValueAt(progress)
		if isAdditive(a) {
			v += out.Value(a.Attribute())
		}
		out.set(a.Attribute(), v)
	}
	return out
}
