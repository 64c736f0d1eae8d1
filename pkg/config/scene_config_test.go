package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/embedded"
)

const validSceneYAML = `
canvas:
  width: 800
  height: 800
  background: "#0b1026"
palettes:
  - name: red
    petal_back: "#aa0000"
    petal_main: "#cc0000"
    petal_inner: "#990000"
    petal_extra_inner: "#ff0000"
    stamen: "#ff3333"
flowers:
  - { x: 400, y: 800, scale: 0.5, stem_length: 600 }
counts:
  stars: 150
  bubbles: 40
  floating_particles: 60
rates:
  snow: { min: 0, max: 300, default: 100, step: 10 }
  rain: { min: 0, max: 300, default: 100, step: 10 }
profiles:
  snow:
    size: "[2 4]"
  rain:
    duration: [0.4, 0.8]
ripple:
  amplitude: 6
  band_height: 4
`

func TestParseSceneConfig_YAML(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(validSceneYAML), FormatYAML)
	if err != nil {
		t.Fatalf("ParseSceneConfig: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Counts.Stars != 150 || cfg.Rates.Snow.Default != 100 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if got := cfg.Profiles["snow"].Size; got == nil || *got != particle.R(2, 4) {
		t.Errorf("snow size = %v, want [2 4]", got)
	}
	if got := cfg.Profiles["rain"].Duration; got == nil || *got != particle.R(0.4, 0.8) {
		t.Errorf("rain duration = %v, want [0.4 0.8]", got)
	}
	if bg := cfg.Background(); bg.R != 0x0b || bg.G != 0x10 || bg.B != 0x26 {
		t.Errorf("Background() = %v", bg)
	}

	palettes, err := cfg.PaletteSet()
	if err != nil {
		t.Fatalf("PaletteSet: %v", err)
	}
	if len(palettes) != 1 || palettes[0].Name != "red" || palettes[0].Stamen.R != 0xff {
		t.Errorf("PaletteSet() = %+v", palettes)
	}

	pl := cfg.Placements()
	if len(pl) != 1 || pl[0].X != 400 || pl[0].StemLength != 600 {
		t.Errorf("Placements() = %+v", pl)
	}
}

func TestParseSceneConfig_TOML(t *testing.T) {
	data := `
[canvas]
width = 640
height = 480
background = "#000000"

[[palettes]]
petal_back = "#111111"
petal_main = "#222222"
petal_inner = "#333333"
petal_extra_inner = "#444444"
stamen = "#555555"

[rates.snow]
max = 50
default = 20
step = 5

[rates.rain]
max = 50
step = 5

[profiles.bubbles]
delay = "[1 2]"
`
	cfg, err := ParseSceneConfig([]byte(data), FormatTOML)
	if err != nil {
		t.Fatalf("ParseSceneConfig: %v", err)
	}
	if cfg.Canvas.Width != 640 || cfg.Rates.Snow.Default != 20 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if got := cfg.Profiles["bubbles"].Delay; got == nil || *got != particle.R(1, 2) {
		t.Errorf("bubbles delay = %v", got)
	}
	palettes, err := cfg.PaletteSet()
	if err != nil {
		t.Fatal(err)
	}
	if palettes[0].Name != "palette-0" {
		t.Errorf("unnamed palette got name %q", palettes[0].Name)
	}
}

func TestParseSceneConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		replace     [2]string
		errContains string
	}{
		{"bad colour", [2]string{`stamen: "#ff3333"`, `stamen: "red-ish"`}, "invalid colour"},
		{"no palettes", [2]string{"palettes:", "unused_palettes:"}, "at least one palette"},
		{"negative count", [2]string{"stars: 150", "stars: -1"}, "counts must not be negative"},
		{"slider bounds", [2]string{"snow: { min: 0, max: 300", "snow: { min: 400, max: 300"}, "snow rate bounds invalid"},
		{"default outside", [2]string{"default: 100, step: 10 }\n  rain", "default: 900, step: 10 }\n  rain"}, "outside"},
		{"zero step", [2]string{"rain: { min: 0, max: 300, default: 100, step: 10 }", "rain: { min: 0, max: 300, default: 100, step: 0 }"}, "step must be positive"},
		{"inverted range", [2]string{`size: "[2 4]"`, `size: "[4 2]"`}, "range invalid"},
		{"unknown kind", [2]string{"  snow:\n    size", "  hail:\n    size"}, "unknown effect kind"},
		{"canvas", [2]string{"width: 800", "width: 0"}, "canvas size"},
		{"flower scale", [2]string{"scale: 0.5", "scale: 0"}, "scale must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(validSceneYAML, tt.replace[0], tt.replace[1], 1)
			if data == validSceneYAML {
				t.Fatalf("replacement %q not found", tt.replace[0])
			}
			_, err := ParseSceneConfig([]byte(data), FormatYAML)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err, tt.errContains)
			}
		})
	}
}

func TestLoadSceneConfig_ByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "scene.yml")
	if err := os.WriteFile(yamlPath, []byte(validSceneYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSceneConfig(yamlPath); err != nil {
		t.Errorf("LoadSceneConfig(.yml): %v", err)
	}

	if _, err := LoadSceneConfig(filepath.Join(dir, "scene.json")); err == nil {
		t.Error("expected error for .json")
	}
	if _, err := LoadSceneConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyProfiles(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(validSceneYAML), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	gen := effects.NewGenerator(particle.RandSampler{})
	cfg.ApplyProfiles(gen)

	snow := gen.Profile(effects.Snow)
	if snow.Size != particle.R(2, 4) {
		t.Errorf("snow size = %v, want [2 4]", snow.Size)
	}
	if snow.Duration != effects.DefaultProfiles()[effects.Snow].Duration {
		t.Errorf("snow duration changed to %v", snow.Duration)
	}
}

func TestRateConfig_Clamp(t *testing.T) {
	r := RateConfig{Min: 0, Max: 300, Default: 100, Step: 10}
	for in, want := range map[int]int{-5: 0, 0: 0, 150: 150, 300: 300, 999: 300} {
		if got := r.Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestEmbeddedDefaultScene(t *testing.T) {
	scene, err := os.ReadFile("../../data/scene.yaml")
	if err != nil {
		t.Skipf("default scene not found: %v", err)
	}
	winter, err := os.ReadFile("../../data/presets/winter.toml")
	if err != nil {
		t.Skipf("winter preset not found: %v", err)
	}
	embedded.Init(fstest.MapFS{
		"data/scene.yaml":          {Data: scene},
		"data/presets/winter.toml": {Data: winter},
	})

	cfg, err := LoadEmbeddedSceneConfig(DefaultScenePath)
	if err != nil {
		t.Fatalf("default scene: %v", err)
	}
	if len(cfg.Palettes) != 3 || len(cfg.Flowers) != 5 {
		t.Errorf("default scene has %d palettes and %d flowers", len(cfg.Palettes), len(cfg.Flowers))
	}
	if cfg.Counts.Stars != 150 || cfg.Counts.Bubbles != 40 {
		t.Errorf("default counts = %+v", cfg.Counts)
	}

	names, err := Presets()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "winter" {
		t.Errorf("Presets() = %v", names)
	}
	w, err := LoadPreset("winter")
	if err != nil {
		t.Fatalf("winter preset: %v", err)
	}
	if d := w.Profiles["snow"].Duration; d == nil || *d != particle.R(8, 14) {
		t.Errorf("winter snow duration = %v", w.Profiles["snow"].Duration)
	}
}

func TestApplyProfiles_ExplicitZeroOverride(t *testing.T) {
	data := strings.Replace(validSceneYAML, `size: "[2 4]"`, `size: "[2 4]"`+"\n    delay: \"[0]\"", 1)
	cfg, err := ParseSceneConfig([]byte(data), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if d := cfg.Profiles["snow"].Delay; d == nil || *d != particle.R(0, 0) {
		t.Fatalf("snow delay = %v, want [0]", d)
	}
	if d := cfg.Profiles["snow"].Duration; d != nil {
		t.Errorf("absent duration decoded as %v", d)
	}

	gen := effects.NewGenerator(particle.RandSampler{})
	cfg.ApplyProfiles(gen)
	if got := gen.Profile(effects.Snow).Delay; got != particle.R(0, 0) {
		t.Errorf("snow delay = %v, want [0]", got)
	}
}
