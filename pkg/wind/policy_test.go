package wind

import (
	"testing"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/scene"
)

type recorder struct {
	calls []string
	cfgs  []effects.Config
	sway  []bool
}

func (r *recorder) RegenerateLayers(cfg effects.Config) {
	r.calls = append(r.calls, "regenerate")
	r.cfgs = append(r.cfgs, cfg)
}

func (r *recorder) ApplySway(wind bool) {
	r.calls = append(r.calls, "sway")
	r.sway = append(r.sway, wind)
}

func TestPolicy_ToggleRegeneratesThenSways(t *testing.T) {
	rec := &recorder{}
	p := NewPolicy(rec, rec)
	if p.Enabled() || len(rec.calls) != 0 {
		t.Fatalf("new policy: enabled=%v calls=%v", p.Enabled(), rec.calls)
	}

	if !p.Toggle() {
		t.Fatal("Toggle() = false, want true")
	}
	if p.Toggle() {
		t.Fatal("second Toggle() = true, want false")
	}

	want := []string{"regenerate", "sway", "regenerate", "sway"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, rec.calls[i], want[i])
		}
	}
	if !rec.cfgs[0].Wind || rec.cfgs[1].Wind {
		t.Errorf("configs = %+v", rec.cfgs)
	}
	if !rec.sway[0] || rec.sway[1] {
		t.Errorf("sway args = %v", rec.sway)
	}
}

func TestPolicy_SetSameStateStillRegenerates(t *testing.T) {
	rec := &recorder{}
	p := NewPolicy(rec, rec)
	p.Set(false)
	p.Set(false)
	if len(rec.cfgs) != 2 {
		t.Errorf("regenerations = %d, want 2", len(rec.cfgs))
	}
}

func TestPolicy_NilCollaborators(t *testing.T) {
	p := NewPolicy(nil, nil)
	p.Toggle()
	if !p.Config().Wind {
		t.Error("Config().Wind = false after toggle")
	}
}

// horizontal describes the horizontal motion of a primitive.
func horizontal(p *scene.Primitive) string {
	for _, attr := range []scene.Attr{scene.AttrCX, scene.AttrX1} {
		for _, a := range p.AnimationsOf(attr) {
			switch a.(type) {
			case *scene.Linear:
				return "sweep"
			case *scene.Keyframes:
				return "oscillation"
			}
		}
	}
	return "none"
}

func TestLayers_WindChangesHorizontalMotion(t *testing.T) {
	gen := effects.NewGenerator(particle.RandSampler{})
	containers := map[effects.Kind]*scene.Layer{}
	var targets []Target
	for _, k := range effects.WindSensitiveKinds() {
		containers[k] = scene.NewLayer(string(k))
		targets = append(targets, Target{Kind: k, Container: containers[k], Count: Fixed(20)})
	}
	layers := NewLayers(gen, targets...)
	if !layers.Covers() {
		t.Fatal("Covers() = false")
	}
	p := NewPolicy(layers, nil)

	p.Set(false)
	before := map[effects.Kind]string{}
	for k, l := range containers {
		before[k] = horizontal(l.Primitives()[0])
	}

	p.Toggle()
	for k, l := range containers {
		if l.Len() != 20 {
			t.Errorf("%s: %d primitives after toggle, want 20", k, l.Len())
		}
		for _, prim := range l.Primitives() {
			if got := horizontal(prim); got == before[k] {
				t.Errorf("%s: horizontal motion %q unchanged by wind", k, got)
				break
			}
			if got := horizontal(prim); got != "sweep" {
				t.Errorf("%s: wind motion = %q, want sweep", k, got)
				break
			}
		}
	}
}

func TestLayers_CountReadAtRegeneration(t *testing.T) {
	gen := effects.NewGenerator(particle.RandSampler{})
	snow := scene.NewLayer("snow")
	rate := 10
	layers := NewLayers(gen, Target{Kind: effects.Snow, Container: snow, Count: func() int { return rate }})
	if layers.Covers() {
		t.Error("Covers() = true with only snow")
	}

	layers.RegenerateLayers(effects.Config{})
	rate = 35
	layers.RegenerateLayers(effects.Config{Wind: true})
	if snow.Len() != 35 {
		t.Errorf("snow has %d primitives, want 35", snow.Len())
	}
}

func TestLayers_CoversNeedsEverySensitiveKind(t *testing.T) {
	gen := effects.NewGenerator(particle.RandSampler{})
	layers := NewLayers(gen,
		Target{Kind: effects.Snow, Container: scene.NewLayer("snow"), Count: Fixed(1)},
		Target{Kind: effects.Bubbles, Container: scene.NewLayer("bubbles"), Count: Fixed(1)},
	)
	if layers.Covers() {
		t.Error("Covers() = true without rain and floating targets")
	}
}
