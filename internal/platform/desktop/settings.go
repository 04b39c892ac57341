package desktop

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// WindowSettings are the window preferences kept between runs.
// They are global, not tied to a player name.
type WindowSettings struct {
	Scale      float64 `yaml:"scale"`      // Window size relative to the 800x600 field
	Fullscreen bool    `yaml:"fullscreen"` // Start in fullscreen
}

// DefaultWindowSettings returns the settings used before anything is saved.
func DefaultWindowSettings() WindowSettings {
	return WindowSettings{
		Scale:      1.0,
		Fullscreen: false,
	}
}

// Scale limits.
const (
	MinScale = 0.5
	MaxScale = 3.0
)

const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// SettingsManager loads and saves WindowSettings through gdata.
// A nil gdata manager puts it in degraded mode: settings live in memory only.
type SettingsManager struct {
	data     *gdata.Manager
	settings WindowSettings
}

// OpenSettings opens the per-user data directory for appName.
// When the directory is not usable the returned manager is in degraded mode
// and the error says why.
func OpenSettings(appName string) (*SettingsManager, error) {
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsManager(nil), fmt.Errorf("desktop: cannot open data dir: %w", err)
	}
	sm := NewSettingsManager(data)
	if err := sm.Load(); err != nil {
		return sm, err
	}
	return sm, nil
}

// NewSettingsManager creates a manager holding the defaults.
// Call Load to read saved settings.
func NewSettingsManager(data *gdata.Manager) *SettingsManager {
	return &SettingsManager{
		data:     data,
		settings: DefaultWindowSettings(),
	}
}

// Load reads saved settings. Missing or unreadable settings leave the
// defaults in place; only the latter is reported.
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultWindowSettings()
	if sm.data == nil {
		return nil
	}
	if !sm.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := sm.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("desktop: cannot load settings: %w", err)
	}

	loaded := DefaultWindowSettings()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("desktop: cannot parse settings: %w", err)
	}
	loaded.Scale = clampScale(loaded.Scale)
	sm.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op in degraded mode.
func (sm *SettingsManager) Save() error {
	if sm.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("desktop: cannot encode settings: %w", err)
	}
	if err := sm.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("desktop: cannot save settings: %w", err)
	}
	return nil
}

// Persistent reports whether Save actually writes anywhere.
func (sm *SettingsManager) Persistent() bool {
	return sm.data != nil
}

// Settings returns the current settings.
func (sm *SettingsManager) Settings() WindowSettings {
	return sm.settings
}

// SetScale changes the window scale in memory, clamped to [MinScale, MaxScale].
func (sm *SettingsManager) SetScale(scale float64) {
	sm.settings.Scale = clampScale(scale)
}

// SetFullscreen changes the fullscreen flag in memory.
func (sm *SettingsManager) SetFullscreen(on bool) {
	sm.settings.Fullscreen = on
}

func clampScale(s float64) float64 {
	switch {
	case s == 0:
		return 1.0
	case s < MinScale:
		return MinScale
	case s > MaxScale:
		return MaxScale
	default:
		return s
	}
}
