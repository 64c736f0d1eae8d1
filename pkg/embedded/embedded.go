// Package embedded gives other packages access to the resources embedded
// at the module root.
//
// The //go:embed directive only reaches files below the declaring package,
// so the embed.FS lives in the root embed.go and is handed over with Init.
// Init must run before any resource is loaded.
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init installs the data filesystem. It must be called at the start of main.
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// clean normalizes path and checks the "data/" prefix.
func clean(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open opens an embedded resource. The path must start with "data/".
func Open(path string) (fs.File, error) {
	path, err := clean(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile reads an embedded resource. The path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	path, err := clean(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether the resource exists.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob returns the embedded resources matching pattern.
func Glob(pattern string) ([]string, error) {
	pattern, err := clean(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, pattern)
}
