// Package app hosts the scene in an Ebitengine game loop.
//
// The initialization logic lives here rather than in main so desktop and
// mobile share it: desktop calls NewApp from main.go, mobile from
// mobile/mobile.go.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/config"
	"github.com/decker502/lily/pkg/render"
	"github.com/decker502/lily/pkg/ripple"
	"github.com/decker502/lily/pkg/settings"
)

// tick is the fixed update step; Ebitengine calls Update at 60 TPS.
const tick = 1.0 / 60.0

// Config is the application startup configuration.
type Config struct {
	// Verbose keeps log output.
	Verbose bool
	// ScenePath is a YAML or TOML scene file; empty uses Preset or the
	// embedded default.
	ScenePath string
	// Preset names an embedded preset (data/presets/<name>.toml).
	Preset string
	// NoPersist keeps preferences in memory only.
	NoPersist bool
	// Fullscreen starts fullscreen, overriding the saved preference.
	Fullscreen bool
}

// App wraps the scene controller and implements ebiten.Game.
type App struct {
	controller *Controller
	renderer   *render.EbitenRenderer
	frames     *ripple.FrameQueue
	scene      *config.SceneConfig
	bindings   []binding
	showHUD    bool
	elapsed    float64

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// LoadScene resolves the scene configuration from cfg.
// Call embedded.Init first.
func LoadScene(cfg Config) (*config.SceneConfig, error) {
	switch {
	case cfg.ScenePath != "":
		return config.LoadSceneConfig(cfg.ScenePath)
	case cfg.Preset != "":
		return config.LoadPreset(cfg.Preset)
	default:
		return config.LoadEmbeddedSceneConfig(config.DefaultScenePath)
	}
}

// NewApp creates the application. Call embedded.Init first.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneCfg, err := LoadScene(cfg)
	if err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	log.Printf("[App] Scene loaded: %dx%d, %d palettes, %d flowers",
		sceneCfg.Canvas.Width, sceneCfg.Canvas.Height, len(sceneCfg.Palettes), len(sceneCfg.Flowers))

	var sm *settings.SettingsManager
	if !cfg.NoPersist {
		m, err := settings.Open(settings.AppName)
		if err != nil {
			log.Printf("[App] Warning: %v (preferences will not be saved)", err)
		}
		sm = settings.NewSettingsManager(m)
		log.Printf("[App] Preferences persist: %v", sm.Persistent())
	}

	frames := ripple.NewFrameQueue()
	controller, err := NewController(sceneCfg, particle.RandSampler{}, frames, sm)
	if err != nil {
		return nil, err
	}

	a := &App{
		controller: controller,
		renderer:   render.NewEbitenRenderer(),
		frames:     frames,
		scene:      sceneCfg,
		showHUD:    true,
	}
	a.bindings = defaultBindings(a)

	fullscreen := cfg.Fullscreen
	if sm != nil && sm.GetSettings().Fullscreen {
		fullscreen = true
	}
	ebiten.SetFullscreen(fullscreen)
	controller.SetTitleListener(ebiten.SetWindowTitle)
	return a, nil
}

// WindowSize returns the configured window size.
func (a *App) WindowSize() (int, int) {
	return a.scene.Canvas.Width, a.scene.Canvas.Height
}

// Update runs once per tick.
func (a *App) Update() error {
	// Leaving fullscreen needs a few frames before the size sticks.
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, b := range a.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			b.action()
		}
	}
	if tapped, x, y := justTapped(); tapped {
		// While hidden, any tap brings the help back.
		if !a.showHUD || !a.tapHUD(x, y) {
			a.showHUD = true
		}
	}

	a.frames.Tick()
	a.elapsed += tick
	return nil
}

// Draw renders the scene, then the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.controller.Frame(a.elapsed))
	if a.showHUD {
		drawHUD(screen, a.hudLines())
	}
}

// DrawFinalScreen fills the letterbox and scales the scene with linear
// filtering.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the fixed scene field; Ebitengine scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.FieldWidth, render.FieldHeight
}

// Shutdown persists the preferences.
func (a *App) Shutdown() error {
	if err := a.controller.Save(ebiten.IsFullscreen()); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
