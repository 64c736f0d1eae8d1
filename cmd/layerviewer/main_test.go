package main

import (
	"testing"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/effects"
)

func TestParseOverride(t *testing.T) {
	tests := []struct {
		name         string
		size         string
		duration     string
		wantSize     *particle.Range
		wantDuration *particle.Range
		wantErr      bool
	}{
		{name: "Empty"},
		{name: "Size only", size: "[2 4]", wantSize: &particle.Range{Min: 2, Max: 4}},
		{name: "Zero duration", duration: "[0]", wantDuration: &particle.Range{}},
		{name: "Bad size", size: "[a b]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseOverride(tt.size, tt.duration)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOverride() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !sameRange(o.Size, tt.wantSize) {
				t.Errorf("Size = %v, want %v", o.Size, tt.wantSize)
			}
			if !sameRange(o.Duration, tt.wantDuration) {
				t.Errorf("Duration = %v, want %v", o.Duration, tt.wantDuration)
			}
		})
	}
}

func TestNewLayerViewer_OverrideAppliesToEveryKind(t *testing.T) {
	o, err := parseOverride("[3]", "")
	if err != nil {
		t.Fatal(err)
	}
	v := NewLayerViewer(effects.Snow, 5, false, o)
	if v.layer.Len() != 5 {
		t.Errorf("layer len = %d, want 5", v.layer.Len())
	}
	defaults := effects.DefaultProfiles()
	for _, k := range effects.Kinds() {
		p := v.gen.Profile(k)
		if p.Size != particle.R(3, 3) {
			t.Errorf("%s size = %v, want [3]", k, p.Size)
		}
		if p.Duration != defaults[k].Duration {
			t.Errorf("%s duration = %v, want default %v", k, p.Duration, defaults[k].Duration)
		}
	}
}

func sameRange(a, b *particle.Range) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
