// Package main provides a layer viewer tool for tuning one effect layer at
// a time, without the flowers.
//
// Usage:
//
//	go run ./cmd/layerviewer [flags]
//
// Flags:
//
//	--kind <name>     Start with a layer kind (snow, rain, floatingParticles, bubbles, stars)
//	--count <n>       Primitive count (default 100)
//	--wind            Start with wind enabled
//	--size <range>    Override the size range of every kind, e.g. "[2 4]"
//	--duration <range> Override the duration range of every kind
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Left/Right Arrow  - Switch to previous/next kind
//	Up/Down Arrow     - Count +10/-10
//	W                 - Toggle wind
//	Space             - Regenerate
//	Q/Escape          - Quit
package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	flag "github.com/spf13/pflag"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/render"
	"github.com/decker502/lily/pkg/scene"
)

var (
	kindFlag     = flag.StringP("kind", "k", string(effects.Snow), "Initial layer kind")
	countFlag    = flag.IntP("count", "n", 100, "Primitive count")
	windFlag     = flag.Bool("wind", false, "Start with wind enabled")
	sizeFlag     = flag.String("size", "", "Size range override, e.g. \"[2 4]\"")
	durationFlag = flag.String("duration", "", "Duration range override")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var background = color.RGBA{R: 0x0b, G: 0x10, B: 0x26, A: 0xff}

// LayerViewer implements ebiten.Game for the layer viewer.
type LayerViewer struct {
	gen      *effects.Generator
	layer    *scene.Layer
	kinds    []effects.Kind
	index    int
	count    int
	wind     bool
	renderer *render.EbitenRenderer
	elapsed  float64
}

// NewLayerViewer creates the viewer and generates the first layer. The
// override applies to every kind, not just the initial one.
func NewLayerViewer(kind effects.Kind, count int, wind bool, override effects.Override) *LayerViewer {
	v := &LayerViewer{
		gen:      effects.NewGenerator(particle.RandSampler{}),
		layer:    scene.NewLayer("viewer"),
		kinds:    effects.Kinds(),
		count:    count,
		wind:     wind,
		renderer: render.NewEbitenRenderer(),
	}
	for i, k := range v.kinds {
		if k == kind {
			v.index = i
		}
		v.gen.SetProfileOverride(k, override)
	}
	v.regenerate()
	return v
}

func (v *LayerViewer) kind() effects.Kind { return v.kinds[v.index] }

func (v *LayerViewer) regenerate() {
	v.gen.Regenerate(v.layer, v.kind(), v.count, effects.Config{Wind: v.wind})
	v.elapsed = 0
	log.Printf("[LayerViewer] %s: %d primitives, wind=%v", v.kind(), v.layer.Len(), v.wind)
}

// Update handles input.
func (v *LayerViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	changed := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.index = (v.index + 1) % len(v.kinds)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.index = (v.index - 1 + len(v.kinds)) % len(v.kinds)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.count += 10
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.count = max(0, v.count-10)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		v.wind = !v.wind
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		changed = true
	}
	if changed {
		v.regenerate()
	}

	v.elapsed += 1.0 / 60.0
	return nil
}

// Draw renders the layer and the status line.
func (v *LayerViewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen, render.Frame{
		T:          v.elapsed,
		Background: background,
		Front:      []*scene.Layer{v.layer},
	})
	p := v.gen.Profile(v.kind())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"%s (%d/%d)  count=%d  wind=%v  t=%.1fs\nsize=%s duration=%s delay=%s\n<-/-> kind  Up/Down count  W wind  Space regenerate",
		v.kind(), v.index+1, len(v.kinds), v.count, v.wind, v.elapsed,
		p.Size, p.Duration, p.Delay), 8, 8)
}

// Layout returns the scene field size.
func (v *LayerViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.FieldWidth, render.FieldHeight
}

// parseOverride turns the --size and --duration values into an override.
// Empty values leave the range alone.
func parseOverride(size, duration string) (effects.Override, error) {
	var o effects.Override
	if size != "" {
		r, err := particle.ParseRange(size)
		if err != nil {
			return o, fmt.Errorf("--size: %w", err)
		}
		o.Size = &r
	}
	if duration != "" {
		r, err := particle.ParseRange(duration)
		if err != nil {
			return o, fmt.Errorf("--duration: %w", err)
		}
		o.Duration = &r
	}
	return o, nil
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	kind, err := effects.ParseKind(*kindFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	override, err := parseOverride(*sizeFlag, *durationFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	viewer := NewLayerViewer(kind, *countFlag, *windFlag, override)

	ebiten.SetWindowSize(render.FieldWidth, render.FieldHeight)
	ebiten.SetWindowTitle("Layer Viewer")
	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
