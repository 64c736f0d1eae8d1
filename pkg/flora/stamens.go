package flora

import (
	"image/color"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/scene"
)

// Stamen fan parameters.
const (
	StamenStartAngle  = -85.0
	StamenEndAngle    = 85.0
	StamenAngleStep   = 15.0
	StamenAngleJitter = 5.0
	StamenLength      = 140.0
	StamenBias        = 0.8 // counter-rotation applied to the tip, per degree
	StamenStrokeWidth = 0.8
	ClusterScale      = 0.9

	// ForeshortenedStamens are the short stamens near the cluster's visual centre.
	ForeshortenedStamens = 3
	foreshortenedAngle   = 20.0
)

var stamenLengthScale = particle.R(0.8, 1.2)

// fanAngles returns the base angles of the fan, stepping from the start
// angle while it does not pass the end angle.
func fanAngles() []float64 {
	var angles []float64
	for base := StamenStartAngle; base <= StamenEndAngle; base += StamenAngleStep {
		angles = append(angles, base)
	}
	return angles
}

// FanSize returns the number of fan stamens (12 for the default angles,
// -85° through +80°).
func FanSize() int {
	return len(fanAngles())
}

// CurveBias returns the sideways tip offset for a stamen rotated by angle
// degrees. It counteracts the rotation so the tip points upward.
func CurveBias(angle float64) float64 {
	return -angle * StamenBias
}

// GenerateStamens synthesizes a fresh stamen cluster stroked with c. The fan
// stamens come first in angle order, followed by the foreshortened ones.
func GenerateStamens(s particle.Sampler, c color.RGBA) []*scene.Primitive {
	out := make([]*scene.Primitive, 0, FanSize()+ForeshortenedStamens)

	for _, base := range fanAngles() {
		angle := base + s.Uniform(-StamenAngleJitter, StamenAngleJitter)
		length := StamenLength * stamenLengthScale.Sample(s)
		bias := CurveBias(angle)

		// Control points bend progressively harder toward the bias so the
		// stroke leaves the centre along its rotation and finishes upright.
		cp1x := s.Uniform(-5, 5) + bias*0.2
		cp1y := -length * 0.3
		cp2x := s.Uniform(-10, 10) + bias*0.6
		cp2y := -length * 0.7
		endx := s.Uniform(-5, 5) + bias
		endy := -length

		path := scene.PathData{}.MoveTo(0, 0).CubicTo(cp1x, cp1y, cp2x, cp2y, endx, endy)
		out = append(out, scene.NewCurve(path, angle).WithStroke(c, StamenStrokeWidth))
	}

	for i := 0; i < ForeshortenedStamens; i++ {
		angle := s.Uniform(-foreshortenedAngle, foreshortenedAngle)
		scale := stamenLengthScale.Sample(s)
		qx := 10*scale + s.Uniform(0, 5)
		qy := -30*scale + s.Uniform(0, 5)
		ex := 20*scale + s.Uniform(0, 5)
		ey := -50*scale + s.Uniform(0, 5)

		path := scene.PathData{}.MoveTo(0, 0).QuadTo(qx, qy, ex, ey)
		out = append(out, scene.NewCurve(path, angle).WithStroke(c, StamenStrokeWidth))
	}

	return out
}
