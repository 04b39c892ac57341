package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the street crossing configuration.
// Search order: customPath -> ~/.bondi/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is validated before it is returned.
func Load(customPath string) (CrossingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crossing.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates it.
func Parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CrossingConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable field.
func (c CrossingConfig) Validate() error {
	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %vx%v", f.Width, f.Height)
	}
	if f.LaneSpan() <= 0 {
		return fmt.Errorf("lane_top %v and lane_bottom_margin %v leave no lanes in height %v",
			f.LaneTop, f.LaneBottomMargin, f.Height)
	}
	if f.TopClamp < 0 || f.TopClamp >= f.Height {
		return fmt.Errorf("top_clamp %v outside field height %v", f.TopClamp, f.Height)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.Speed <= 0 {
		return fmt.Errorf("player width, height and speed must be positive")
	}
	if p.SpawnX < 0 || p.SpawnX > f.Width-p.Width || p.SpawnY < f.TopClamp || p.SpawnY > f.Height-p.Height {
		return fmt.Errorf("player spawn (%v, %v) outside the walkable field", p.SpawnX, p.SpawnY)
	}
	if p.SpawnY < f.GoalY {
		return fmt.Errorf("player spawn_y %v is already past goal_y %v", p.SpawnY, f.GoalY)
	}

	v := c.Vehicles
	if v.TukTukWidth <= 0 || v.ScooterWidth <= 0 || v.Height <= 0 {
		return fmt.Errorf("vehicle sizes must be positive")
	}
	if err := checkSpawning("vehicles", v.MinSpeed, v.MaxSpeed, v.Initial, v.SoftCap, v.SpawnChance); err != nil {
		return err
	}

	d := c.Dogs
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("dog sizes must be positive")
	}
	return checkSpawning("dogs", d.MinSpeed, d.MaxSpeed, d.Initial, d.SoftCap, d.SpawnChance)
}

func checkSpawning(name string, minSpeed, maxSpeed float64, initial, softCap int, chance float64) error {
	if minSpeed <= 0 || maxSpeed < minSpeed {
		return fmt.Errorf("%s: speed range [%v, %v) is invalid", name, minSpeed, maxSpeed)
	}
	if initial < 0 || softCap < 0 {
		return fmt.Errorf("%s: initial and soft_cap must not be negative", name)
	}
	if chance < 0 || chance > 1 {
		return fmt.Errorf("%s: spawn_chance %v outside [0, 1]", name, chance)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bondi", "configs", filename)
}
