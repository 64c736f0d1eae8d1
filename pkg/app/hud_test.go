package app

import (
	"strings"
	"testing"

	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/render"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	c, frames := newTestController(t, nil)
	a := &App{controller: c, frames: frames, showHUD: true}
	a.bindings = defaultBindings(a)
	return a
}

func TestHUDLines(t *testing.T) {
	a := newTestApp(t)
	lines := a.hudLines()

	want := []string{
		"[S] Enable Snow",
		"[R] Enable Rain",
		"[F] Disable Particles",
		"[O] Enable Ocean",
		"[W] Enable Wind",
		"[C] Change Color (red)",
		"[-/=] Snow rate 100",
		"[[/]] Rain rate 100",
		"[H] Hide help",
	}
	if len(lines) != len(want)+1 {
		t.Fatalf("lines: got %d, want %d:\n%s", len(lines), len(want)+1, strings.Join(lines, "\n"))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: got %q, want %q", i, lines[i], w)
		}
	}

	a.controller.ToggleWind()
	if got := a.hudLines()[4]; got != "[W] Disable Wind" {
		t.Errorf("wind line after toggle: got %q", got)
	}
}

func TestTapHUD(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		hit   bool
		check func(t *testing.T, a *App)
	}{
		{
			name: "snow line toggles snow",
			x:    20, y: hudY + 2,
			hit: true,
			check: func(t *testing.T, a *App) {
				if !a.controller.Layer(effects.Snow).Visible() {
					t.Error("snow should be visible")
				}
			},
		},
		{
			name: "ocean line",
			x:    20, y: hudY + 3*hudLineHeight + 4,
			hit: true,
			check: func(t *testing.T, a *App) {
				if !a.controller.Ocean() {
					t.Error("ocean should be on")
				}
			},
		},
		{
			name: "left half of slider line decreases",
			x:    20, y: hudY + 6*hudLineHeight,
			hit: true,
			check: func(t *testing.T, a *App) {
				if got := a.controller.SnowRate(); got != 90 {
					t.Errorf("snow rate: got %d, want 90", got)
				}
			},
		},
		{
			name: "right half of slider line increases",
			x:    render.FieldWidth - 20, y: hudY + 7*hudLineHeight,
			hit: true,
			check: func(t *testing.T, a *App) {
				if got := a.controller.RainRate(); got != 110 {
					t.Errorf("rain rate: got %d, want 110", got)
				}
			},
		},
		{
			name: "below the bindings",
			x:    20, y: hudY + 20*hudLineHeight,
			hit: false,
		},
		{
			name: "above the HUD",
			x:    20, y: 2,
			hit: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			if got := a.tapHUD(tt.x, tt.y); got != tt.hit {
				t.Fatalf("tapHUD(%d, %d): got %v, want %v", tt.x, tt.y, got, tt.hit)
			}
			if tt.check != nil {
				tt.check(t, a)
			}
		})
	}
}

func TestHideHelpBinding(t *testing.T) {
	a := newTestApp(t)
	a.tapHUD(20, hudY+8*hudLineHeight)
	if a.showHUD {
		t.Error("help should be hidden")
	}
}
