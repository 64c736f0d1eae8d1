package scene

import (
	"strconv"
	"strings"
)

// PathOp is the command of a path segment.
type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Segment is one path command. Control points unused by Op are zero.
//
//	MoveTo/LineTo: X, Y
//	QuadTo:        X1, Y1 (control), X, Y
//	CubicTo:       X1, Y1, X2, Y2 (controls), X, Y
type Segment struct {
	Op     PathOp
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// PathData is an ordered list of path segments.
type PathData []Segment

// MoveTo appends a move command.
func (d PathData) MoveTo(x, y float64) PathData {
	return append(d, Segment{Op: OpMoveTo, X: x, Y: y})
}

// LineTo appends a straight line.
func (d PathData) LineTo(x, y float64) PathData {
	return append(d, Segment{Op: OpLineTo, X: x, Y: y})
}

// QuadTo appends a quadratic curve.
func (d PathData) QuadTo(cx, cy, x, y float64) PathData {
	return append(d, Segment{Op: OpQuadTo, X1: cx, Y1: cy, X: x, Y: y})
}

// CubicTo appends a cubic curve.
func (d PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) PathData {
	return append(d, Segment{Op: OpCubicTo, X1: c1x, Y1: c1y, X2: c2x, Y2: c2y, X: x, Y: y})
}

// Close appends a close command.
func (d PathData) Close() PathData {
	return append(d, Segment{Op: OpClose})
}

// End returns the end point of the last drawing segment.
func (d PathData) End() (x, y float64) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Op != OpClose {
			return d[i].X, d[i].Y
		}
	}
	return 0, 0
}

// String renders the path in SVG "d" syntax, e.g. "M0,0 C1,-2 3,-4 5,-6".
func (d PathData) String() string {
	var b strings.Builder
	for i, s := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case OpMoveTo:
			b.WriteByte('M')
			writePoint(&b, s.X, s.Y)
		case OpLineTo:
			b.WriteByte('L')
			writePoint(&b, s.X, s.Y)
		case OpQuadTo:
			b.WriteByte('Q')
			writePoint(&b, s.X1, s.Y1)
			b.WriteByte(' ')
			writePoint(&b, s.X, s.Y)
		case OpCubicTo:
			b.WriteByte('C')
			writePoint(&b, s.X1, s.Y1)
			b.WriteByte(' ')
			writePoint(&b, s.X2, s.Y2)
			b.WriteByte(' ')
			writePoint(&b, s.X, s.Y)
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, x, y float64) {
	b.WriteString(FormatFloat(x))
	b.WriteByte(',')
	b.WriteString(FormatFloat(y))
}

// FormatFloat formats v compactly with at most three decimals.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
