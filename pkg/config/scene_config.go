package config

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/embedded"
	"github.com/decker502/lily/pkg/flora"
)

// DefaultScenePath is the embedded default scene.
const DefaultScenePath = "data/scene.yaml"

// PresetDir holds the embedded scene presets.
const PresetDir = "data/presets"

// Format is a scene file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the encoding from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported scene config extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// SceneConfig describes everything the scene is built from.
//
// Config file: data/scene.yaml (embedded), or any file passed with --config.
type SceneConfig struct {
	Canvas   CanvasConfig             `yaml:"canvas" toml:"canvas"`
	Palettes []PaletteConfig          `yaml:"palettes" toml:"palettes"`
	Flowers  []FlowerConfig           `yaml:"flowers" toml:"flowers"`
	Counts   CountsConfig             `yaml:"counts" toml:"counts"`
	Rates    RatesConfig              `yaml:"rates" toml:"rates"`
	Profiles map[string]ProfileConfig `yaml:"profiles" toml:"profiles"`
	Ripple   RippleConfig             `yaml:"ripple" toml:"ripple"`
}

// CanvasConfig is the window size and backdrop colour.
type CanvasConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background" toml:"background"`
}

// PaletteConfig is one palette as hex strings.
type PaletteConfig struct {
	Name            string `yaml:"name" toml:"name"`
	PetalBack       string `yaml:"petal_back" toml:"petal_back"`
	PetalMain       string `yaml:"petal_main" toml:"petal_main"`
	PetalInner      string `yaml:"petal_inner" toml:"petal_inner"`
	PetalExtraInner string `yaml:"petal_extra_inner" toml:"petal_extra_inner"`
	Stamen          string `yaml:"stamen" toml:"stamen"`
}

// FlowerConfig places one flower. X, Y is the stem base.
type FlowerConfig struct {
	X          float64 `yaml:"x" toml:"x"`
	Y          float64 `yaml:"y" toml:"y"`
	Scale      float64 `yaml:"scale" toml:"scale"`
	StemLength float64 `yaml:"stem_length" toml:"stem_length"`
}

// CountsConfig holds the fixed population sizes.
type CountsConfig struct {
	Stars             int `yaml:"stars" toml:"stars"`
	Bubbles           int `yaml:"bubbles" toml:"bubbles"`
	FloatingParticles int `yaml:"floating_particles" toml:"floating_particles"`
}

// RateConfig bounds one rate slider.
type RateConfig struct {
	Min     int `yaml:"min" toml:"min"`
	Max     int `yaml:"max" toml:"max"`
	Default int `yaml:"default" toml:"default"`
	Step    int `yaml:"step" toml:"step"`
}

// Clamp limits v to [Min, Max].
func (r RateConfig) Clamp(v int) int {
	return max(r.Min, min(r.Max, v))
}

// RatesConfig holds the snow and rain sliders.
type RatesConfig struct {
	Snow RateConfig `yaml:"snow" toml:"snow"`
	Rain RateConfig `yaml:"rain" toml:"rain"`
}

// ProfileConfig overrides the built-in ranges of one effect kind.
// Absent ranges keep the built-in values.
type ProfileConfig struct {
	Size     *particle.Range `yaml:"size" toml:"size"`
	Duration *particle.Range `yaml:"duration" toml:"duration"`
	Delay    *particle.Range `yaml:"delay" toml:"delay"`
}

// RippleConfig tunes the water distortion.
type RippleConfig struct {
	// Amplitude is the maximum horizontal displacement in pixels.
	Amplitude float64 `yaml:"amplitude" toml:"amplitude"`
	// BandHeight is the height of each displaced strip in pixels.
	BandHeight float64 `yaml:"band_height" toml:"band_height"`
}

// LoadSceneConfig loads a scene from a YAML or TOML file on disk.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	config, err := ParseSceneConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadEmbeddedSceneConfig loads a scene from the embedded resources.
func LoadEmbeddedSceneConfig(path string) (*SceneConfig, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config: %w", err)
	}
	config, err := ParseSceneConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadPreset loads the embedded preset data/presets/<name>.toml.
func LoadPreset(name string) (*SceneConfig, error) {
	return LoadEmbeddedSceneConfig(PresetDir + "/" + name + ".toml")
}

// Presets lists the embedded preset names.
func Presets() ([]string, error) {
	matches, err := embedded.Glob(PresetDir + "/*.toml")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".toml"))
	}
	sort.Strings(names)
	return names, nil
}

// ParseSceneConfig decodes and validates a scene.
func ParseSceneConfig(data []byte, format Format) (*SceneConfig, error) {
	var config SceneConfig
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse scene config: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to parse scene config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown scene config format %q", format)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return &config, nil
}

// Validate checks the scene:
//   - a positive canvas size and a parseable background
//   - at least one palette, every colour a valid hex
//   - non-negative counts and positive flower scales
//   - slider bounds with min <= default <= max and a positive step
//   - known profile kinds and ranges with min <= max
func (c *SceneConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := flora.ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}

	if len(c.Palettes) == 0 {
		return fmt.Errorf("at least one palette is required")
	}
	if _, err := c.PaletteSet(); err != nil {
		return err
	}

	for i, f := range c.Flowers {
		if f.Scale <= 0 {
			return fmt.Errorf("flower %d: scale must be positive, got %.2f", i, f.Scale)
		}
		if f.StemLength < 0 {
			return fmt.Errorf("flower %d: stem_length must not be negative, got %.1f", i, f.StemLength)
		}
	}

	if c.Counts.Stars < 0 || c.Counts.Bubbles < 0 || c.Counts.FloatingParticles < 0 {
		return fmt.Errorf("counts must not be negative: %+v", c.Counts)
	}

	for name, r := range map[string]RateConfig{"snow": c.Rates.Snow, "rain": c.Rates.Rain} {
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("%s rate bounds invalid: min(%d) max(%d)", name, r.Min, r.Max)
		}
		if r.Default < r.Min || r.Default > r.Max {
			return fmt.Errorf("%s rate default %d outside [%d, %d]", name, r.Default, r.Min, r.Max)
		}
		if r.Step <= 0 {
			return fmt.Errorf("%s rate step must be positive, got %d", name, r.Step)
		}
	}

	for name, p := range c.Profiles {
		if _, err := effects.ParseKind(name); err != nil {
			return fmt.Errorf("profiles: %w", err)
		}
		for field, r := range map[string]*particle.Range{"size": p.Size, "duration": p.Duration, "delay": p.Delay} {
			if r != nil && !r.Valid() {
				return fmt.Errorf("profiles.%s.%s range invalid: min(%g) > max(%g)", name, field, r.Min, r.Max)
			}
		}
	}

	if c.Ripple.Amplitude < 0 || c.Ripple.BandHeight < 0 {
		return fmt.Errorf("ripple values must not be negative: %+v", c.Ripple)
	}
	return nil
}

// PaletteSet converts the palettes in order.
func (c *SceneConfig) PaletteSet() ([]flora.Palette, error) {
	out := make([]flora.Palette, 0, len(c.Palettes))
	for i, p := range c.Palettes {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("palette-%d", i)
		}
		palette, err := flora.NewPalette(name, p.PetalBack, p.PetalMain, p.PetalInner, p.PetalExtraInner, p.Stamen)
		if err != nil {
			return nil, err
		}
		out = append(out, palette)
	}
	return out, nil
}

// Placements converts the flower list.
func (c *SceneConfig) Placements() []flora.Placement {
	out := make([]flora.Placement, len(c.Flowers))
	for i, f := range c.Flowers {
		out[i] = flora.Placement{X: f.X, Y: f.Y, Scale: f.Scale, StemLength: f.StemLength}
	}
	return out
}

// Background returns the parsed backdrop colour. Validate guarantees it parses.
func (c *SceneConfig) Background() color.RGBA {
	bg, _ := flora.ParseColor(c.Canvas.Background)
	return bg
}

// ApplyProfiles installs every profile override into gen.
func (c *SceneConfig) ApplyProfiles(gen *effects.Generator) {
	for name, p := range c.Profiles {
		kind, err := effects.ParseKind(name)
		if err != nil {
			continue
		}
		gen.SetProfileOverride(kind, effects.Override{Size: p.Size, Duration: p.Duration, Delay: p.Delay})
	}
}
