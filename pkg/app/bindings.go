package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lily/pkg/effects"
)

// binding maps a key to a controller action. label renders the HUD line
// for the action's current state.
type binding struct {
	key    ebiten.Key
	keyTag string
	label  func() string
	action func()
}

func enableLabel(on bool, what string) string {
	if on {
		return "Disable " + what
	}
	return "Enable " + what
}

func defaultBindings(a *App) []binding {
	c := a.controller
	visible := func(k effects.Kind) bool { return c.Layer(k).Visible() }
	return []binding{
		{ebiten.KeyS, "S", func() string { return enableLabel(visible(effects.Snow), "Snow") }, func() { c.ToggleSnow() }},
		{ebiten.KeyR, "R", func() string { return enableLabel(visible(effects.Rain), "Rain") }, func() { c.ToggleRain() }},
		{ebiten.KeyF, "F", func() string { return enableLabel(visible(effects.FloatingParticles), "Particles") }, func() { c.ToggleFloating() }},
		{ebiten.KeyO, "O", func() string { return enableLabel(c.Ocean(), "Ocean") }, func() { c.ToggleOcean() }},
		{ebiten.KeyW, "W", func() string { return enableLabel(c.Wind(), "Wind") }, func() { c.ToggleWind() }},
		{ebiten.KeyC, "C", func() string { return "Change Color (" + c.Palette().Name + ")" }, func() { c.CyclePalette() }},
		{ebiten.KeyMinus, "-", func() string { return fmt.Sprintf("Snow rate %d", c.SnowRate()) }, func() { c.StepSnowRate(-1) }},
		{ebiten.KeyEqual, "=", func() string { return "" }, func() { c.StepSnowRate(1) }},
		{ebiten.KeyBracketLeft, "[", func() string { return fmt.Sprintf("Rain rate %d", c.RainRate()) }, func() { c.StepRainRate(-1) }},
		{ebiten.KeyBracketRight, "]", func() string { return "" }, func() { c.StepRainRate(1) }},
		{ebiten.KeyH, "H", func() string { return "Hide help" }, func() { a.showHUD = !a.showHUD }},
	}
}
