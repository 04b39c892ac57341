package config

import "fmt"

// Preset represents a named, static tuning of the street.
// Presets are applied once at load time; nothing changes during a run.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI value into a Preset. Empty means normal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy:
		return PresetEasy, nil
	case PresetHard:
		return PresetHard, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want easy, normal or hard)", s)
	}
}

// presetScale returns the speed and extra-spawn multipliers for a preset.
func presetScale(p Preset) (speed, spawn float64) {
	switch p {
	case PresetEasy:
		return 0.75, 0.5
	case PresetHard:
		return 1.5, 2.0
	default:
		return 1.0, 1.0
	}
}

// ApplyPreset scales obstacle speeds and extra-spawn chances.
// PresetNormal leaves the configuration unchanged.
func ApplyPreset(cfg *CrossingConfig, p Preset) {
	speed, spawn := presetScale(p)
	if speed == 1.0 && spawn == 1.0 {
		return
	}

	cfg.Vehicles.MinSpeed *= speed
	cfg.Vehicles.MaxSpeed *= speed
	cfg.Vehicles.SpawnChance = clampChance(cfg.Vehicles.SpawnChance * spawn)

	cfg.Dogs.MinSpeed *= speed
	cfg.Dogs.MaxSpeed *= speed
	cfg.Dogs.SpawnChance = clampChance(cfg.Dogs.SpawnChance * spawn)
}

func clampChance(c float64) float64 {
	if c > 1 {
		return 1
	}
	return c
}
