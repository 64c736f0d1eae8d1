package scene

import (
	"image/color"
	"testing"
)

func TestPathData_String(t *testing.T) {
	tests := []struct {
		name string
		path PathData
		want string
	}{
		{
			"Cubic",
			PathData{}.MoveTo(0, 0).CubicTo(1.5, -42, -3.25, -98, 10, -140),
			"M0,0 C1.5,-42 -3.25,-98 10,-140",
		},
		{
			"Quadratic",
			PathData{}.MoveTo(0, 0).QuadTo(10, -30, 20, -50),
			"M0,0 Q10,-30 20,-50",
		},
		{
			"Closed",
			PathData{}.MoveTo(0, 0).LineTo(5, 5).Close(),
			"M0,0 L5,5 Z",
		},
		{
			"Rounding",
			PathData{}.MoveTo(0.12345, -0.0001),
			"M0.123,0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathData_End(t *testing.T) {
	p := PathData{}.MoveTo(0, 0).CubicTo(1, 2, 3, 4, 5, 6).Close()
	x, y := p.End()
	if x != 5 || y != 6 {
		t.Errorf("End() = (%v, %v), want (5, 6)", x, y)
	}
	x, y = PathData{}.End()
	if x != 0 || y != 0 {
		t.Errorf("empty End() = (%v, %v), want (0, 0)", x, y)
	}
}

func TestPaint_Hex(t *testing.T) {
	if got := (Paint{}).Hex(); got != "none" {
		t.Errorf("unset Hex() = %q, want none", got)
	}
	p := NewDisc(0, 0, 1).WithFill(rgba(0xaa, 0, 0x10, 0xff)).Fill
	if got := p.Hex(); got != "#aa0010" {
		t.Errorf("Hex() = %q, want #aa0010", got)
	}
	if p.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", p.Alpha())
	}
}

func rgba(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}
