package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the hardcoded street crossing configuration.
// It matches defaults/crossing.yaml and is used when the embed cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Field: FieldConfig{
			Width:            800,
			Height:           600,
			GoalY:            100,
			TopClamp:         50,
			LaneTop:          100,
			LaneBottomMargin: 200,
		},
		Player: PlayerConfig{
			Width:  50,
			Height: 50,
			Speed:  7,
			SpawnX: 375, // 800/2 - 25
			SpawnY: 500, // 600 - 100
		},
		Vehicles: VehicleConfig{
			TukTukWidth:  80,
			ScooterWidth: 60,
			Height:       40,
			MinSpeed:     1,
			MaxSpeed:     4,
			Initial:      3,
			SoftCap:      8,
			SpawnChance:  0.005,
		},
		Dogs: DogConfig{
			Width:       30,
			Height:      20,
			MinSpeed:    0.5,
			MaxSpeed:    2.5,
			Initial:     2,
			SoftCap:     4,
			SpawnChance: 0.003,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCrossingYAML
}
