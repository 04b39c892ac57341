package crossing

// Snapshot is a plain copy of the session state. It is used by the
// headless simulator and by determinism tests.
type Snapshot struct {
	State    string        `yaml:"state"`
	Paused   bool          `yaml:"paused,omitempty"`
	Ticks    uint64        `yaml:"ticks"`
	Time     string        `yaml:"time"`
	Hits     int           `yaml:"hits"`
	Player   EntityState   `yaml:"player"`
	Vehicles []EntityState `yaml:"vehicles"`
	Dogs     []EntityState `yaml:"dogs"`
}

// EntityState is the position, size and velocity of one entity.
type EntityState struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
	VX   float64 `yaml:"vx,omitempty"`
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	elapsed := s.Elapsed()
	if s.state == StateWin {
		elapsed = s.FinalTime()
	}

	snap := Snapshot{
		State:  s.state.String(),
		Paused: s.paused,
		Ticks:  s.ticks,
		Time:   FormatSeconds(elapsed),
		Hits:   s.hits,
		Player: EntityState{
			Kind: SpritePlayer.String(),
			X:    s.player.X,
			Y:    s.player.Y,
			W:    s.player.W,
			H:    s.player.H,
		},
		Vehicles: make([]EntityState, 0, len(s.vehicles)),
		Dogs:     make([]EntityState, 0, len(s.dogs)),
	}
	for _, o := range s.vehicles {
		snap.Vehicles = append(snap.Vehicles, obstacleState(o))
	}
	for _, o := range s.dogs {
		snap.Dogs = append(snap.Dogs, obstacleState(o))
	}
	return snap
}

func obstacleState(o Obstacle) EntityState {
	return EntityState{
		Kind: o.Sprite().String(),
		X:    o.X,
		Y:    o.Y,
		W:    o.W,
		H:    o.H,
		VX:   o.VX,
	}
}
