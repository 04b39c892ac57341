package crossing

import (
	"math/rand"

	"github.com/vovakirdan/bondi-dash/internal/config"
)

// Spawner creates obstacles at random lanes just outside the field.
// Random draws happen in a fixed order (direction, lane, speed, vehicle
// type) so a seed reproduces the same street.
type Spawner struct {
	rng *rand.Rand
	cfg config.CrossingConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.CrossingConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Spawn creates one obstacle of the given kind.
func (sp *Spawner) Spawn(kind ObstacleKind) Obstacle {
	if kind == ObstacleDog {
		return sp.Dog()
	}
	return sp.Vehicle()
}

// Vehicle creates a tuk-tuk or scooter entering from either side.
func (sp *Spawner) Vehicle() Obstacle {
	v := sp.cfg.Vehicles
	leftToRight, y, speed := sp.lane(v.MinSpeed, v.MaxSpeed)

	kind := VehicleScooter
	width := v.ScooterWidth
	if sp.rng.Float64() > 0.5 {
		kind = VehicleTukTuk
		width = v.TukTukWidth
	}

	return sp.place(Obstacle{
		Kind:    ObstacleVehicle,
		Vehicle: kind,
		Y:       y,
		W:       width,
		H:       v.Height,
	}, leftToRight, speed)
}

// Dog creates a stray dog entering from either side.
func (sp *Spawner) Dog() Obstacle {
	d := sp.cfg.Dogs
	leftToRight, y, speed := sp.lane(d.MinSpeed, d.MaxSpeed)

	return sp.place(Obstacle{
		Kind: ObstacleDog,
		Y:    y,
		W:    d.Width,
		H:    d.Height,
	}, leftToRight, speed)
}

// Roll returns true with the given probability. It always consumes one draw.
func (sp *Spawner) Roll(chance float64) bool {
	return sp.rng.Float64() < chance
}

// lane draws direction, lane y and speed magnitude.
func (sp *Spawner) lane(minSpeed, maxSpeed float64) (leftToRight bool, y, speed float64) {
	f := sp.cfg.Field
	leftToRight = sp.rng.Float64() > 0.5
	y = f.LaneTop + float64(sp.rng.Intn(f.LaneSpan()))
	speed = minSpeed + sp.rng.Float64()*(maxSpeed-minSpeed)
	return leftToRight, y, speed
}

// place puts the obstacle just outside the field on its entry side so the
// next tick moves it towards the visible area.
func (sp *Spawner) place(o Obstacle, leftToRight bool, speed float64) Obstacle {
	if leftToRight {
		o.X = -o.W
		o.VX = speed
	} else {
		o.X = sp.cfg.Field.Width
		o.VX = -speed
	}
	return o
}
