package crossing

import "github.com/vovakirdan/bondi-dash/internal/core"

// Player is the backpacker. It moves only by keyboard input and is reset
// to its spawn point on any collision.
type Player struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Step per movement key press
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// ObstacleKind tells vehicles and dogs apart.
type ObstacleKind int

const (
	ObstacleVehicle ObstacleKind = iota
	ObstacleDog
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleVehicle:
		return "vehicle"
	case ObstacleDog:
		return "dog"
	default:
		return "unknown"
	}
}

// VehicleKind is the closed set of vehicle types. Each has a fixed width.
type VehicleKind int

const (
	VehicleTukTuk VehicleKind = iota
	VehicleScooter
)

// String returns the vehicle name.
func (v VehicleKind) String() string {
	switch v {
	case VehicleTukTuk:
		return "tuk-tuk"
	case VehicleScooter:
		return "scooter"
	default:
		return "unknown"
	}
}

// Obstacle is a vehicle or a dog crossing the street horizontally.
// The sign of VX encodes the direction of travel (negative = right to left).
type Obstacle struct {
	Kind    ObstacleKind
	Vehicle VehicleKind // Only meaningful when Kind == ObstacleVehicle
	X, Y    float64
	W, H    float64
	VX      float64
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Advance moves the obstacle by one tick of its velocity.
func (o *Obstacle) Advance() {
	o.X += o.VX
}

// Exited reports whether the obstacle has fully left a field of the given
// width on the side it is travelling towards.
func (o Obstacle) Exited(fieldW float64) bool {
	return (o.VX > 0 && o.X > fieldW) || (o.VX < 0 && o.X < -o.W)
}

// Sprite resolves the sprite kind used to draw this obstacle.
func (o Obstacle) Sprite() SpriteKind {
	if o.Kind == ObstacleDog {
		return SpriteDog
	}
	if o.Vehicle == VehicleScooter {
		return SpriteScooter
	}
	return SpriteTukTuk
}
