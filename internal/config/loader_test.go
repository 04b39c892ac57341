package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultCrossingConfig() {
		t.Errorf("embedded defaults drifted from DefaultCrossingConfig:\n%+v\n%+v", cfg, DefaultCrossingConfig())
	}
}

func TestDefaultLaneSpan(t *testing.T) {
	cfg := DefaultCrossingConfig()
	if got := cfg.Field.LaneSpan(); got != 300 {
		t.Errorf("LaneSpan() = %d, expected 300", got)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.yaml")
	data := []byte("dogs:\n  soft_cap: 6\nplayer:\n  speed: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dogs.SoftCap != 6 || cfg.Player.Speed != 9 {
		t.Errorf("overrides not applied: dogs.soft_cap=%d player.speed=%v", cfg.Dogs.SoftCap, cfg.Player.Speed)
	}
	if cfg.Vehicles.SoftCap != 8 {
		t.Errorf("untouched keys should keep defaults, vehicles.soft_cap=%d", cfg.Vehicles.SoftCap)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("vehicles:\n  min_speed: 5\n  max_speed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "speed range") {
		t.Errorf("Load() should reject an inverted speed range, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CrossingConfig)
	}{
		{"zero width", func(c *CrossingConfig) { c.Field.Width = 0 }},
		{"no lanes", func(c *CrossingConfig) { c.Field.LaneBottomMargin = 600 }},
		{"top clamp outside", func(c *CrossingConfig) { c.Field.TopClamp = 700 }},
		{"player speed", func(c *CrossingConfig) { c.Player.Speed = 0 }},
		{"spawn past goal", func(c *CrossingConfig) { c.Player.SpawnY = 80 }},
		{"spawn below field", func(c *CrossingConfig) { c.Player.SpawnY = 560 }},
		{"spawn off the right", func(c *CrossingConfig) { c.Player.SpawnX = 760 }},
		{"spawn off the left", func(c *CrossingConfig) { c.Player.SpawnX = -1 }},
		{"scooter width", func(c *CrossingConfig) { c.Vehicles.ScooterWidth = -1 }},
		{"negative cap", func(c *CrossingConfig) { c.Vehicles.SoftCap = -1 }},
		{"chance above one", func(c *CrossingConfig) { c.Dogs.SpawnChance = 1.5 }},
		{"zero dog speed", func(c *CrossingConfig) { c.Dogs.MinSpeed = 0 }},
	}

	if err := DefaultCrossingConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultCrossingConfig()
	ApplyPreset(&normal, PresetNormal)
	if normal != DefaultCrossingConfig() {
		t.Error("normal preset should not change the config")
	}

	hard := DefaultCrossingConfig()
	ApplyPreset(&hard, PresetHard)
	if hard.Vehicles.MaxSpeed != 6 || hard.Vehicles.SpawnChance != 0.01 {
		t.Errorf("hard preset: max_speed=%v spawn_chance=%v", hard.Vehicles.MaxSpeed, hard.Vehicles.SpawnChance)
	}
	if hard.Vehicles.SoftCap != 8 || hard.Dogs.SoftCap != 4 {
		t.Error("presets must not touch soft caps")
	}

	easy := DefaultCrossingConfig()
	ApplyPreset(&easy, PresetEasy)
	if easy.Dogs.MinSpeed != 0.375 || easy.Dogs.SpawnChance != 0.0015 {
		t.Errorf("easy preset: min_speed=%v spawn_chance=%v", easy.Dogs.MinSpeed, easy.Dogs.SpawnChance)
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy preset should stay valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		wantErr bool
	}{
		{"", PresetNormal, false},
		{"normal", PresetNormal, false},
		{"easy", PresetEasy, false},
		{"hard", PresetHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
