package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/lily/pkg/app"
	"github.com/decker502/lily/pkg/config"
	"github.com/decker502/lily/pkg/embedded"
)

func loadScene(t *testing.T, cfg app.Config) *config.SceneConfig {
	t.Helper()
	embedded.Init(dataFS)
	sceneCfg, err := app.LoadScene(cfg)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	return sceneCfg
}

func TestWriteSVG(t *testing.T) {
	tests := []struct {
		name       string
		cfg        app.Config
		opts       svgOptions
		flowers    int
		wantRipple bool
	}{
		{"default scene", app.Config{}, svgOptions{floating: true}, 5, false},
		{"ocean", app.Config{}, svgOptions{floating: true, ocean: true}, 5, true},
		{"winter preset", app.Config{Preset: "winter"}, svgOptions{snow: true, wind: true}, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeSVG(&buf, loadScene(t, tt.cfg), tt.opts); err != nil {
				t.Fatalf("writeSVG: %v", err)
			}
			out := buf.String()
			if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
				t.Fatalf("not an SVG document: %.80q", out)
			}
			if got := strings.Count(out, `class="procedural-flower"`); got != tt.flowers {
				t.Errorf("flowers: got %d, want %d", got, tt.flowers)
			}
			if got := strings.Contains(out, `id="water-ripple"`); got != tt.wantRipple {
				t.Errorf("water ripple filter: got %v, want %v", got, tt.wantRipple)
			}
		})
	}
}

func TestWriteSVG_UnknownPalette(t *testing.T) {
	var buf bytes.Buffer
	err := writeSVG(&buf, loadScene(t, app.Config{}), svgOptions{palette: "green"})
	if err == nil {
		t.Fatal("want error for an unknown palette")
	}
}

func TestWriteSVGFile(t *testing.T) {
	dir := t.TempDir()
	sceneCfg := loadScene(t, app.Config{})

	path := filepath.Join(dir, "lily.svg")
	if err := writeSVGFile(path, sceneCfg, svgOptions{floating: true}); err != nil {
		t.Fatalf("writeSVGFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(string(data)), "</svg>") {
		t.Errorf("document not complete on disk: %.80q", data)
	}

	if err := writeSVGFile(filepath.Join(dir, "missing", "lily.svg"), sceneCfg, svgOptions{}); err == nil {
		t.Error("want error for an uncreatable path")
	}
}

func TestPresetsCommand(t *testing.T) {
	embedded.Init(dataFS)
	var buf bytes.Buffer
	presetsCmd.SetOut(&buf)
	if err := presetsCmd.RunE(presetsCmd, nil); err != nil {
		t.Fatalf("presets: %v", err)
	}
	if !strings.Contains(buf.String(), "winter") {
		t.Errorf("presets: got %q, want winter listed", buf.String())
	}
}
