// Package settings persists the viewer's toggle preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; it picks the storage directory.
const AppName = "spider_lily"

// SceneSettings holds the persisted preferences. They are global, not bound
// to a scene file.
type SceneSettings struct {
	// Effects
	Snow     bool `yaml:"snow"`
	Rain     bool `yaml:"rain"`
	Floating bool `yaml:"floating"`
	Ocean    bool `yaml:"ocean"`
	Wind     bool `yaml:"wind"`

	// Sliders, clamped to the scene's bounds when applied. A negative value
	// means the scene default.
	SnowRate int `yaml:"snowRate"`
	RainRate int `yaml:"rainRate"`

	PaletteIndex int `yaml:"paletteIndex"`

	// Display
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings returns the first-run preferences.
func DefaultSettings() *SceneSettings {
	return &SceneSettings{
		Floating: true,
		SnowRate: -1,
		RainRate: -1,
	}
}

// SettingsManager loads, holds and saves the preferences.
type SettingsManager struct {
	gdataManager *gdata.Manager // nil means memory-only (degraded mode)
	settings     *SceneSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "scene"
)

// Open creates the gdata manager for appName. Callers fall back to a nil
// manager when it fails.
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	return m, nil
}

// NewSettingsManager creates a manager and loads saved preferences.
// gdataManager may be nil. A load failure is logged and falls back to
// defaults; it never fails creation.
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Persistent reports whether preferences reach disk.
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load reads the saved preferences. Without a manager or a saved file the
// defaults are used.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save writes the preferences. Without a manager it does nothing.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings returns the live preferences. Changes take effect on the
// next Save.
func (sm *SettingsManager) GetSettings() *SceneSettings {
	return sm.settings
}

// SetRates stores the slider values. Negative values become zero.
func (sm *SettingsManager) SetRates(snow, rain int) {
	sm.settings.SnowRate = max(0, snow)
	sm.settings.RainRate = max(0, rain)
}
