package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/decker502/lily/pkg/flora"
	"github.com/decker502/lily/pkg/ripple"
	"github.com/decker502/lily/pkg/scene"
)

// Ripple frequency sweep written into SVG documents: one full sine period of
// the frame-driven modulation at 60 frames per second.
const svgRipplePeriod = 2 * math.Pi / 0.01 / 60

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteSVG writes f as a standalone SVG document of the given pixel size.
// Every animation becomes a SMIL element, so the document animates on its
// own; hidden layers are kept with display="none".
func WriteSVG(w io.Writer, f Frame, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(width, height, 0, 0, FieldWidth, FieldHeight)
	if f.Title != "" {
		canvas.Title(f.Title)
	}
	canvas.Rect(0, 0, FieldWidth, FieldHeight, `fill="`+scene.Solid(f.Background).Hex()+`"`)

	if f.Garden != nil {
		canvas.Def()
		writeTemplate(canvas, f.Garden.Template())
		if f.Ripple != nil {
			writeRippleFilter(canvas, f.Ripple)
		}
		canvas.DefEnd()
	}

	for _, l := range f.Back {
		writeLayer(canvas, l)
	}
	if f.Garden != nil {
		writeGarden(canvas, f.Garden, f.Ripple != nil)
	}
	for _, l := range f.Front {
		writeLayer(canvas, l)
	}
	canvas.End()
	return ew.err
}

func writeTemplate(canvas *svg.SVG, t *flora.PetalTemplate) {
	for _, ring := range t.Rings {
		canvas.Group(fmt.Sprintf(`id="%s"`, ring.Ring), `fill="`+scene.Solid(ring.Fill).Hex()+`"`)
		d := ring.Shape.String()
		for _, rot := range ring.Rotations {
			canvas.Path(d, fmt.Sprintf(`transform="rotate(%s)"`, scene.FormatFloat(rot)))
		}
		canvas.Gend()
	}
	canvas.Group(`id="floret"`)
	for _, ring := range t.Rings {
		canvas.Use(0, 0, "#"+ring.Ring.String())
	}
	canvas.Gend()
}

func writeRippleFilter(canvas *svg.SVG, r *RippleState) {
	canvas.Filter("water-ripple")
	canvas.FeTurbulence(svg.Filterspec{Result: "noise"}, "turbulence", r.Frequency, r.Frequency, 2, 0, false, `id="water-ripple-noise"`)
	lo, mid, hi := ripple.BaseFrequency-ripple.FrequencySwing, ripple.BaseFrequency, ripple.BaseFrequency+ripple.FrequencySwing
	fmt.Fprintf(canvas.Writer, `<animate xlink:href="#water-ripple-noise" attributeName="baseFrequency" values="%s;%s;%s;%s;%s" dur="%ss" repeatCount="indefinite"/>`+"\n",
		freqPair(mid), freqPair(hi), freqPair(mid), freqPair(lo), freqPair(mid), scene.FormatFloat(svgRipplePeriod))
	canvas.FeDisplacementMap(svg.Filterspec{In: "SourceGraphic", In2: "noise"}, r.Amplitude*2, "R", "G")
	canvas.Fend()
}

func freqPair(v float64) string {
	s := scene.FormatFloat(v)
	return s + " " + s
}

func writeLayer(canvas *svg.SVG, l *scene.Layer) {
	attrs := []string{fmt.Sprintf(`id="%s"`, l.Name())}
	if !l.Visible() {
		attrs = append(attrs, `display="none"`)
	}
	canvas.Group(attrs...)
	for _, p := range l.Primitives() {
		writePrimitive(canvas.Writer, p)
	}
	canvas.Gend()
}

func writeGarden(canvas *svg.SVG, g *flora.Garden, rippled bool) {
	attrs := []string{`id="flowers"`}
	if rippled {
		attrs = append(attrs, `filter="url(#water-ripple)"`)
	}
	canvas.Group(attrs...)
	for _, f := range g.Flowers() {
		canvas.Group(
			fmt.Sprintf(`id="%s"`, f.Group.ID),
			`class="procedural-flower"`,
			fmt.Sprintf(`transform="translate(%s %s) scale(%s)"`,
				scene.FormatFloat(f.Group.X), scene.FormatFloat(f.Group.Y), scene.FormatFloat(f.Group.Scale)),
		)
		writePrimitive(canvas.Writer, f.Stem)

		canvas.Group(fmt.Sprintf(`transform="translate(0 %s)"`, scene.FormatFloat(f.HeadY)))
		canvas.Group(`class="stamen-cluster"`, fmt.Sprintf(`transform="scale(%s)"`, scene.FormatFloat(flora.ClusterScale)))
		for _, s := range f.Stamens.Primitives() {
			writePrimitive(canvas.Writer, s)
		}
		canvas.Gend()
		canvas.Use(0, 0, "#floret")
		canvas.Gend()

		// Nested in the flower group, so no href.
		for _, a := range f.Group.Animations {
			writeAnimation(canvas.Writer, "", a)
		}
		canvas.Gend()
	}
	canvas.Gend()
}

// elementID is the SVG id of p. XML ids must not start with a digit.
func elementID(p *scene.Primitive) string {
	return "p-" + p.ID
}

func paintAttrs(p *scene.Primitive) string {
	var b strings.Builder
	fmt.Fprintf(&b, `fill="%s"`, p.Fill.Hex())
	if p.Fill.Set && p.Fill.Color.A != 0xff {
		fmt.Fprintf(&b, ` fill-opacity="%s"`, scene.FormatFloat(p.Fill.Alpha()))
	}
	if p.Stroke.Set {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, p.Stroke.Hex(), scene.FormatFloat(p.StrokeWidth))
		if p.Stroke.Color.A != 0xff {
			fmt.Fprintf(&b, ` stroke-opacity="%s"`, scene.FormatFloat(p.Stroke.Alpha()))
		}
		if p.Shape != scene.ShapeDisc {
			b.WriteString(` stroke-linecap="round"`)
		}
	}
	if p.Opacity != 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, scene.FormatFloat(p.Opacity))
	}
	return b.String()
}

func writePrimitive(w io.Writer, p *scene.Primitive) {
	f := scene.FormatFloat
	id := elementID(p)
	switch p.Shape {
	case scene.ShapeDisc:
		fmt.Fprintf(w, `<circle id="%s" cx="%s" cy="%s" r="%s" %s/>`+"\n", id, f(p.CX), f(p.CY), f(p.R), paintAttrs(p))
	case scene.ShapeLine:
		fmt.Fprintf(w, `<line id="%s" x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n", id, f(p.X1), f(p.Y1), f(p.X2), f(p.Y2), paintAttrs(p))
	case scene.ShapeCurve:
		fmt.Fprintf(w, `<path id="%s" d="%s" transform="rotate(%s)" %s/>`+"\n", id, p.Path, f(p.Rotate), paintAttrs(p))
	}
	for _, a := range p.Animations {
		writeAnimation(w, "#"+id, a)
	}
}

// timing renders the shared SMIL timing attributes.
func timing(tm scene.Timing) string {
	repeat := "indefinite"
	if tm.Repeat != scene.RepeatIndefinite {
		repeat = fmt.Sprint(max(1, tm.Repeat))
	}
	s := fmt.Sprintf(`dur="%ss" repeatCount="%s"`, scene.FormatFloat(tm.Duration), repeat)
	if tm.Delay > 0 {
		s += fmt.Sprintf(` begin="%ss"`, scene.FormatFloat(tm.Delay))
	}
	return s
}

func values(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = scene.FormatFloat(v)
	}
	return strings.Join(parts, ";")
}

// writeAnimation writes a targeting href, or the enclosing element when
// href is empty.
func writeAnimation(w io.Writer, href string, a scene.Animation) {
	target := ""
	if href != "" {
		target = fmt.Sprintf(` xlink:href="%s"`, href)
	}
	tag, attr := "animate", fmt.Sprintf(`attributeName="%s"`, a.Attribute())
	if a.Attribute() == scene.AttrRotate {
		tag, attr = "animateTransform", `attributeName="transform" type="rotate"`
	}
	switch a := a.(type) {
	case *scene.Linear:
		fmt.Fprintf(w, `<%s%s %s from="%s" to="%s" %s/>`+"\n",
			tag, target, attr, scene.FormatFloat(a.From), scene.FormatFloat(a.To), timing(a.Timing))
	case *scene.Keyframes:
		extra := ""
		if a.Additive {
			extra += ` additive="sum"`
		}
		if a.Class != "" {
			extra += fmt.Sprintf(` class="%s"`, a.Class)
		}
		fmt.Fprintf(w, `<%s%s %s values="%s" %s%s/>`+"\n",
			tag, target, attr, values(a.Values), timing(a.Timing), extra)
	}
}
