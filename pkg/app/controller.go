package app

import (
	"fmt"
	"log"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/config"
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/flora"
	"github.com/decker502/lily/pkg/render"
	"github.com/decker502/lily/pkg/ripple"
	"github.com/decker502/lily/pkg/scene"
	"github.com/decker502/lily/pkg/settings"
	"github.com/decker502/lily/pkg/wind"
)

// Window titles.
const (
	TitleDefault = "Spider Lily"
	TitleOcean   = "Fish"
)

// Controller owns the toggle state and routes every change into the
// generators. All methods run on the game loop goroutine.
type Controller struct {
	scene    *config.SceneConfig
	gen      *effects.Generator
	layers   map[effects.Kind]*scene.Layer
	garden   *flora.Garden
	palettes *flora.PaletteCycle
	wind     *wind.Policy
	frames   ripple.Scheduler
	ripple   *ripple.Handle
	settings *settings.SettingsManager

	snowRate int
	rainRate int
	ocean    bool
	title    string
	onTitle  func(string)
}

// NewController builds and populates the scene. sm may be nil, in which
// case the scene defaults are used and nothing is persisted.
func NewController(cfg *config.SceneConfig, s particle.Sampler, frames ripple.Scheduler, sm *settings.SettingsManager) (*Controller, error) {
	palettes, err := cfg.PaletteSet()
	if err != nil {
		return nil, fmt.Errorf("failed to build palettes: %w", err)
	}

	prefs := settings.DefaultSettings()
	if sm != nil {
		prefs = sm.GetSettings()
	}

	c := &Controller{
		scene:    cfg,
		gen:      effects.NewGenerator(s),
		layers:   make(map[effects.Kind]*scene.Layer),
		palettes: flora.NewPaletteCycle(palettes, prefs.PaletteIndex),
		frames:   frames,
		settings: sm,
		title:    TitleDefault,
	}
	cfg.ApplyProfiles(c.gen)
	for _, k := range effects.Kinds() {
		c.layers[k] = scene.NewLayer(string(k))
	}

	c.snowRate = rateOrDefault(cfg.Rates.Snow, prefs.SnowRate)
	c.rainRate = rateOrDefault(cfg.Rates.Rain, prefs.RainRate)

	c.garden = flora.NewGarden(cfg.Placements(), c.palettes.Current(), s)

	// Snow, rain and floating particles follow the wind; bubbles are
	// rebuilt with them so a wind change never appends to the ocean.
	layers := wind.NewLayers(c.gen,
		wind.Target{Kind: effects.Snow, Container: c.layers[effects.Snow], Count: func() int { return c.snowRate }},
		wind.Target{Kind: effects.Rain, Container: c.layers[effects.Rain], Count: func() int { return c.rainRate }},
		wind.Target{Kind: effects.FloatingParticles, Container: c.layers[effects.FloatingParticles], Count: wind.Fixed(cfg.Counts.FloatingParticles)},
		wind.Target{Kind: effects.Bubbles, Container: c.layers[effects.Bubbles], Count: wind.Fixed(cfg.Counts.Bubbles)},
	)
	if !layers.Covers() {
		return nil, fmt.Errorf("wind targets miss a wind-sensitive layer")
	}
	c.wind = wind.NewPolicy(layers, c.garden)
	c.wind.Set(prefs.Wind)

	c.gen.Regenerate(c.layers[effects.Stars], effects.Stars, cfg.Counts.Stars, effects.Config{})

	c.layers[effects.Snow].SetVisible(prefs.Snow)
	c.layers[effects.Rain].SetVisible(prefs.Rain)
	c.layers[effects.FloatingParticles].SetVisible(prefs.Floating)
	c.layers[effects.Bubbles].SetVisible(false)
	if prefs.Ocean {
		c.EnableOcean()
	}
	c.updateStarVisibility()

	log.Printf("[Controller] Scene ready: %d flowers, palette %s, wind=%v", len(c.garden.Flowers()), c.palettes.Current().Name, c.wind.Enabled())
	return c, nil
}

// rateOrDefault clamps a saved slider value, or falls back to the scene
// default when none was saved.
func rateOrDefault(r config.RateConfig, saved int) int {
	if saved < 0 {
		return r.Default
	}
	return r.Clamp(saved)
}

// SetTitleListener registers fn to be called on every title change.
func (c *Controller) SetTitleListener(fn func(string)) {
	c.onTitle = fn
	if fn != nil {
		fn(c.title)
	}
}

// Layer returns the layer of kind.
func (c *Controller) Layer(kind effects.Kind) *scene.Layer { return c.layers[kind] }

// Garden returns the flowers.
func (c *Controller) Garden() *flora.Garden { return c.garden }

// Palette returns the active palette.
func (c *Controller) Palette() flora.Palette { return c.palettes.Current() }

// Title returns the current window title.
func (c *Controller) Title() string { return c.title }

// Wind reports whether wind is enabled.
func (c *Controller) Wind() bool { return c.wind.Enabled() }

// Ocean reports whether the water effect is enabled.
func (c *Controller) Ocean() bool { return c.ocean }

// Ripple returns the running ripple step, or nil.
func (c *Controller) Ripple() *ripple.Handle { return c.ripple }

// SnowRate returns the snow slider value.
func (c *Controller) SnowRate() int { return c.snowRate }

// RainRate returns the rain slider value.
func (c *Controller) RainRate() int { return c.rainRate }

// Rates returns the slider bounds.
func (c *Controller) Rates() config.RatesConfig { return c.scene.Rates }

func (c *Controller) toggleLayer(kind effects.Kind) bool {
	l := c.layers[kind]
	l.SetVisible(!l.Visible())
	log.Printf("[Controller] %s visible=%v", kind, l.Visible())
	return l.Visible()
}

// ToggleSnow shows or hides snow and returns the new state.
func (c *Controller) ToggleSnow() bool {
	return c.toggleLayer(effects.Snow)
}

// ToggleRain shows or hides rain and returns the new state. Stars hide
// while it rains.
func (c *Controller) ToggleRain() bool {
	on := c.toggleLayer(effects.Rain)
	c.updateStarVisibility()
	return on
}

// ToggleFloating shows or hides the floating particles.
func (c *Controller) ToggleFloating() bool {
	return c.toggleLayer(effects.FloatingParticles)
}

// SetSnowRate clamps v to the slider bounds and stores it. Snow is rebuilt
// only while visible. It returns the applied value.
func (c *Controller) SetSnowRate(v int) int {
	c.snowRate = c.scene.Rates.Snow.Clamp(v)
	if c.layers[effects.Snow].Visible() {
		c.gen.Regenerate(c.layers[effects.Snow], effects.Snow, c.snowRate, c.wind.Config())
	}
	return c.snowRate
}

// SetRainRate clamps v to the slider bounds and stores it. Rain is rebuilt
// only while visible. It returns the applied value.
func (c *Controller) SetRainRate(v int) int {
	c.rainRate = c.scene.Rates.Rain.Clamp(v)
	if c.layers[effects.Rain].Visible() {
		c.gen.Regenerate(c.layers[effects.Rain], effects.Rain, c.rainRate, c.wind.Config())
	}
	return c.rainRate
}

// StepSnowRate moves the snow slider by n steps.
func (c *Controller) StepSnowRate(n int) int {
	return c.SetSnowRate(c.snowRate + n*c.scene.Rates.Snow.Step)
}

// StepRainRate moves the rain slider by n steps.
func (c *Controller) StepRainRate(n int) int {
	return c.SetRainRate(c.rainRate + n*c.scene.Rates.Rain.Step)
}

// ToggleWind flips wind mode, rebuilding the particle layers and sway.
func (c *Controller) ToggleWind() bool {
	on := c.wind.Toggle()
	log.Printf("[Controller] Wind enabled=%v, %d flowers swaying", on, c.garden.SwayingCount())
	return on
}

// CyclePalette switches to the next palette.
func (c *Controller) CyclePalette() flora.Palette {
	p := c.palettes.Next()
	c.garden.SwitchPalette(p, c.wind.Enabled())
	log.Printf("[Controller] Palette switched to %s (%d/%d)", p.Name, c.palettes.Index()+1, c.palettes.Len())
	return p
}

// SelectPalette cycles to the palette called name.
func (c *Controller) SelectPalette(name string) error {
	for i := 0; i < c.palettes.Len(); i++ {
		if c.palettes.Current().Name == name {
			return nil
		}
		c.CyclePalette()
	}
	return fmt.Errorf("unknown palette %q", name)
}

// EnableOcean shows freshly generated bubbles, starts the ripple step and
// switches the title. It does nothing while the ocean is already on and
// reports whether it acted.
func (c *Controller) EnableOcean() bool {
	if c.ocean {
		return false
	}
	c.ocean = true
	bubbles := c.layers[effects.Bubbles]
	c.gen.Regenerate(bubbles, effects.Bubbles, c.scene.Counts.Bubbles, c.wind.Config())
	bubbles.SetVisible(true)
	if c.frames != nil {
		c.ripple = ripple.Start(c.frames, nil)
	}
	c.setTitle(TitleOcean)
	c.updateStarVisibility()
	log.Printf("[Controller] Ocean enabled")
	return true
}

// DisableOcean hides the bubbles, stops the ripple step and restores the
// title. It reports whether it acted.
func (c *Controller) DisableOcean() bool {
	if !c.ocean {
		return false
	}
	c.ocean = false
	c.layers[effects.Bubbles].SetVisible(false)
	c.ripple.Stop()
	c.ripple = nil
	c.setTitle(TitleDefault)
	c.updateStarVisibility()
	log.Printf("[Controller] Ocean disabled")
	return true
}

// ToggleOcean flips the water effect and returns the new state.
func (c *Controller) ToggleOcean() bool {
	if c.ocean {
		c.DisableOcean()
	} else {
		c.EnableOcean()
	}
	return c.ocean
}

func (c *Controller) setTitle(title string) {
	c.title = title
	if c.onTitle != nil {
		c.onTitle(title)
	}
}

// updateStarVisibility hides the stars while rain or ocean is on.
func (c *Controller) updateStarVisibility() {
	c.layers[effects.Stars].SetVisible(!c.layers[effects.Rain].Visible() && !c.ocean)
}

// Frame snapshots the scene for rendering at time t.
func (c *Controller) Frame(t float64) render.Frame {
	kinds := effects.Kinds()
	f := render.Frame{
		T:          t,
		Title:      c.title,
		Background: c.scene.Background(),
		Garden:     c.garden,
	}
	// Stars sit behind the flowers; every other layer is drawn over them.
	for _, k := range kinds {
		if k == effects.Stars {
			f.Back = append(f.Back, c.layers[k])
		} else {
			f.Front = append(f.Front, c.layers[k])
		}
	}
	if c.ripple.Running() {
		f.Ripple = &render.RippleState{
			Frequency:  c.ripple.Frequency(),
			Frames:     c.ripple.Frames(),
			Amplitude:  c.scene.Ripple.Amplitude,
			BandHeight: c.scene.Ripple.BandHeight,
		}
	} else if c.ocean {
		// No scheduler: a static ripple keeps the flowers under water.
		f.Ripple = &render.RippleState{
			Frequency:  ripple.BaseFrequency,
			Amplitude:  c.scene.Ripple.Amplitude,
			BandHeight: c.scene.Ripple.BandHeight,
		}
	}
	return f
}

// Save stores the current state as preferences. Without a settings
// manager it does nothing.
func (c *Controller) Save(fullscreen bool) error {
	if c.settings == nil {
		return nil
	}
	s := c.settings.GetSettings()
	s.Snow = c.layers[effects.Snow].Visible()
	s.Rain = c.layers[effects.Rain].Visible()
	s.Floating = c.layers[effects.FloatingParticles].Visible()
	s.Ocean = c.ocean
	s.Wind = c.wind.Enabled()
	s.PaletteIndex = c.palettes.Index()
	s.Fullscreen = fullscreen
	c.settings.SetRates(c.snowRate, c.rainRate)
	return c.settings.Save()
}
