package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/lily/pkg/render"
)

const (
	hudX          = 8
	hudY          = 8
	hudLineHeight = 16
)

// hudEntry is one HUD line. Slider lines carry two bindings: a tap on the
// left half of the field runs the first, the right half the second.
type hudEntry struct {
	text     string
	bindings []binding
}

// hudEntries groups the key bindings into lines. A binding with an empty
// label shares the line of the binding before it.
func (a *App) hudEntries() []hudEntry {
	var entries []hudEntry
	for _, b := range a.bindings {
		if b.label() == "" && len(entries) > 0 {
			last := &entries[len(entries)-1]
			last.bindings = append(last.bindings, b)
			continue
		}
		entries = append(entries, hudEntry{bindings: []binding{b}})
	}
	for i := range entries {
		e := &entries[i]
		keys := make([]string, len(e.bindings))
		for j, b := range e.bindings {
			keys[j] = b.keyTag
		}
		e.text = "[" + strings.Join(keys, "/") + "] " + e.bindings[0].label()
	}
	return entries
}

func (a *App) hudLines() []string {
	entries := a.hudEntries()
	lines := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		lines = append(lines, e.text)
	}
	return append(lines, "[F11] Fullscreen  [Esc] Quit")
}

// tapHUD runs the binding under (x, y) and reports whether one matched.
func (a *App) tapHUD(x, y int) bool {
	if y < hudY {
		return false
	}
	entries := a.hudEntries()
	i := (y - hudY) / hudLineHeight
	if i >= len(entries) {
		return false
	}
	e := entries[i]
	b := e.bindings[0]
	if len(e.bindings) > 1 && x >= render.FieldWidth/2 {
		b = e.bindings[1]
	}
	b.action()
	return true
}

func drawHUD(screen *ebiten.Image, lines []string) {
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), hudX, hudY)
}
