package embedded

import (
	"testing"
	"testing/fstest"
)

func reset() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	reset()
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
	reset()
}

func TestNotInitialized(t *testing.T) {
	reset()

	if _, err := Open("data/scene.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	} else if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
	if _, err := ReadFile("data/scene.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if Exists("data/scene.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
	if _, err := Glob("data/*.yaml"); err == nil {
		t.Error("Expected error when calling Glob() before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/scene.yaml":   {Data: []byte("canvas: {}\n")},
		"data/winter.toml":  {Data: []byte("")},
		"data/other/x.yaml": {Data: []byte("")},
	})
	defer reset()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/scene.yaml", false},
		{"dot prefix", "./data/scene.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"wrong prefix", "assets/scene.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "canvas: {}\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/winter.toml") {
		t.Error("Exists(data/winter.toml) = false")
	}
	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 1 || matches[0] != "data/scene.yaml" {
		t.Errorf("Glob = %v, want [data/scene.yaml]", matches)
	}
}
