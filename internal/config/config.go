// Package config provides YAML-based game configuration loading and
// static preset handling for the street crossing game.
package config

// CrossingConfig contains all tunable parameters of the street crossing game.
// Coordinates are logical field units, speeds are units per tick.
type CrossingConfig struct {
	Field    FieldConfig   `yaml:"field"`
	Player   PlayerConfig  `yaml:"player"`
	Vehicles VehicleConfig `yaml:"vehicles"`
	Dogs     DogConfig     `yaml:"dogs"`
}

// FieldConfig defines the playfield geometry.
type FieldConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	GoalY            float64 `yaml:"goal_y"`             // Player wins once y drops below this
	TopClamp         float64 `yaml:"top_clamp"`          // Lowest y the player can move to
	LaneTop          float64 `yaml:"lane_top"`           // First lane y (beach strip above)
	LaneBottomMargin float64 `yaml:"lane_bottom_margin"` // Space below the last lane start
}

// LaneSpan returns the number of distinct integer lane offsets.
func (f FieldConfig) LaneSpan() int {
	return int(f.Height - f.LaneTop - f.LaneBottomMargin)
}

// KerbHeight is the depth of the sidewalk on either side of the road.
const KerbHeight = 20

// Road returns the vertical extent of the road: from the first lane down to
// the kerb the player starts on.
func (c CrossingConfig) Road() (top, bottom float64) {
	return c.Field.LaneTop, c.Player.SpawnY
}

// PlayerConfig defines the backpacker.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`   // Step per movement key press
	SpawnX float64 `yaml:"spawn_x"` // Reset point after a collision
	SpawnY float64 `yaml:"spawn_y"`
}

// VehicleConfig defines tuk-tuks and scooters.
type VehicleConfig struct {
	TukTukWidth  float64 `yaml:"tuktuk_width"`
	ScooterWidth float64 `yaml:"scooter_width"`
	Height       float64 `yaml:"height"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"` // Exclusive
	Initial      int     `yaml:"initial"`
	SoftCap      int     `yaml:"soft_cap"`
	SpawnChance  float64 `yaml:"spawn_chance"` // Per-tick chance of an extra vehicle
}

// DogConfig defines stray dogs.
type DogConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"` // Exclusive
	Initial     int     `yaml:"initial"`
	SoftCap     int     `yaml:"soft_cap"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick chance of an extra dog
}
