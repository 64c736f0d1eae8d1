package render

import (
	"image/color"
	"math"
	"testing"
)

func TestPathOptions_PremultipliesStraightColour(t *testing.T) {
	op := pathOptions(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if !op.AntiAlias {
		t.Error("paths should be anti-aliased")
	}
	a := float64(128) / 255
	cs := op.ColorScale
	if math.Abs(float64(cs.A())-a) > 1e-3 {
		t.Errorf("alpha scale = %v, want %v", cs.A(), a)
	}
	if math.Abs(float64(cs.R())-a) > 1e-3 {
		t.Errorf("red scale = %v, want %v (premultiplied)", cs.R(), a)
	}
	if cs.G() != 0 || cs.B() != 0 {
		t.Errorf("green/blue scale = %v/%v, want 0", cs.G(), cs.B())
	}
}
