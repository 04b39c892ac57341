// Package crossing implements the Bondi street crossing game.
// The backpacker starts outside the hostel and has to cross a street full of
// tuk-tuks, scooters and stray dogs to reach the beach. Any hit sends the
// player back to the start; the run time is the score.
package crossing

import (
	"fmt"
	"time"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
)

// TicksPerSecond is the fixed simulation rate. Each tick advances the run
// timer by exactly 1/60 s regardless of wall-clock scheduling.
const TicksPerSecond = 60

// ID is the identifier runs are stored under.
const ID = "bondi"

// Title is the display name of the game.
const Title = "Bondi Backpackers"

// State is the coarse game state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateWin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State  State
	Paused bool
	Hit    bool // The player was sent back to the start this tick
	Won    bool // The player reached the beach this tick
}

// Session owns all mutable game state: player, obstacles, timer and the
// tick loop handle. Nothing here is shared; the owning platform drives it
// from a single goroutine.
type Session struct {
	cfg      config.CrossingConfig
	seed     int64
	spawner  *Spawner
	player   Player
	vehicles []Obstacle
	dogs     []Obstacle
	state    State
	paused   bool

	ticks      uint64 // Ticks played in the current run
	finalTicks uint64 // Frozen at the win transition
	hits       int    // Collision resets in the current run

	loop Loop
}

// NewSession creates a session in the start state. The player is placed at
// its spawn point; the street stays empty until Start.
func NewSession(cfg config.CrossingConfig, seed int64) *Session {
	s := &Session{
		cfg:     cfg,
		seed:    seed,
		spawner: NewSpawner(seed, cfg),
		state:   StateStart,
	}
	s.resetPlayer()
	return s
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.CrossingConfig {
	return s.cfg
}

// Seed returns the RNG seed of the session.
func (s *Session) Seed() int64 {
	return s.seed
}

// Start leaves the start screen. It returns false if the session is not in
// the start state.
func (s *Session) Start() bool {
	if s.state != StateStart {
		return false
	}
	s.enterPlaying()
	return true
}

// Restart begins a new run after reaching the beach. The player goes back
// to the spawn point. It returns false unless the session is in the win state.
func (s *Session) Restart() bool {
	if s.state != StateWin {
		return false
	}
	s.resetPlayer()
	s.enterPlaying()
	return true
}

// enterPlaying populates a fresh street, zeroes the timer and starts the loop.
func (s *Session) enterPlaying() {
	s.vehicles = s.vehicles[:0]
	s.dogs = s.dogs[:0]
	for i := 0; i < s.cfg.Vehicles.Initial; i++ {
		s.vehicles = append(s.vehicles, s.spawner.Vehicle())
	}
	for i := 0; i < s.cfg.Dogs.Initial; i++ {
		s.dogs = append(s.dogs, s.spawner.Dog())
	}

	s.ticks = 0
	s.finalTicks = 0
	s.hits = 0
	s.paused = false
	s.state = StatePlaying
	s.loop.Start()
}

// enterWin freezes the timer and stops the loop.
func (s *Session) enterWin() {
	s.finalTicks = s.ticks
	s.state = StateWin
	s.loop.Stop()
}

// Step advances the game by one tick. Outside the playing state it does nothing.
func (s *Session) Step(in core.InputFrame) StepResult {
	if s.state != StatePlaying {
		return StepResult{State: s.state}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return StepResult{State: s.state, Paused: true}
	}

	s.ticks++
	s.applyInput(in)

	v, d := s.cfg.Vehicles, s.cfg.Dogs

	s.vehicles = s.advance(s.vehicles, ObstacleVehicle)
	// The soft cap is checked only here, recycled replacements ignore it.
	if s.spawner.Roll(v.SpawnChance) && len(s.vehicles) < v.SoftCap {
		s.vehicles = append(s.vehicles, s.spawner.Vehicle())
	}

	s.dogs = s.advance(s.dogs, ObstacleDog)
	if s.spawner.Roll(d.SpawnChance) && len(s.dogs) < d.SoftCap {
		s.dogs = append(s.dogs, s.spawner.Dog())
	}

	result := StepResult{}
	if s.collides() {
		s.resetPlayer()
		s.hits++
		result.Hit = true
	}

	if s.player.Y < s.cfg.Field.GoalY {
		s.enterWin()
		result.Won = true
	}

	result.State = s.state
	return result
}

// applyInput moves the player once per key press, clamped to the field.
// The top clamp sits above the goal line so the crossing can be detected.
func (s *Session) applyInput(in core.InputFrame) {
	f := s.cfg.Field
	p := &s.player

	minY, maxY := f.TopClamp, f.Height-p.H
	maxX := f.Width - p.W

	for i := in.Count(core.ActionUp); i > 0; i-- {
		p.Y = core.ClampF(p.Y-p.Speed, minY, maxY)
	}
	for i := in.Count(core.ActionDown); i > 0; i-- {
		p.Y = core.ClampF(p.Y+p.Speed, minY, maxY)
	}
	for i := in.Count(core.ActionLeft); i > 0; i-- {
		p.X = core.ClampF(p.X-p.Speed, 0, maxX)
	}
	for i := in.Count(core.ActionRight); i > 0; i-- {
		p.X = core.ClampF(p.X+p.Speed, 0, maxX)
	}
}

// advance moves every obstacle and replaces the ones that left the field
// with a fresh obstacle of the same kind.
func (s *Session) advance(obstacles []Obstacle, kind ObstacleKind) []Obstacle {
	kept := obstacles[:0]
	recycled := 0
	for _, o := range obstacles {
		o.Advance()
		if o.Exited(s.cfg.Field.Width) {
			recycled++
			continue
		}
		kept = append(kept, o)
	}
	for ; recycled > 0; recycled-- {
		kept = append(kept, s.spawner.Spawn(kind))
	}
	return kept
}

// collides reports whether any obstacle overlaps the player.
func (s *Session) collides() bool {
	pr := s.player.Rect()
	for _, o := range s.vehicles {
		if core.Collide(pr, o.Rect()) {
			return true
		}
	}
	for _, o := range s.dogs {
		if core.Collide(pr, o.Rect()) {
			return true
		}
	}
	return false
}

// resetPlayer puts the player back at the spawn point.
func (s *Session) resetPlayer() {
	p := s.cfg.Player
	s.player = Player{
		X:     p.SpawnX,
		Y:     p.SpawnY,
		W:     p.Width,
		H:     p.Height,
		Speed: p.Speed,
	}
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Paused reports whether a run is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Vehicles returns the current vehicles. The slice must not be modified.
func (s *Session) Vehicles() []Obstacle {
	return s.vehicles
}

// Dogs returns the current dogs. The slice must not be modified.
func (s *Session) Dogs() []Obstacle {
	return s.dogs
}

// Hits returns how many times the player was hit in the current run.
func (s *Session) Hits() int {
	return s.hits
}

// Ticks returns the number of ticks played in the current run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Elapsed returns the running timer.
func (s *Session) Elapsed() time.Duration {
	return ticksToDuration(s.ticks)
}

// FinalTime returns the time frozen when the player reached the beach.
// It is zero before the first win of a run.
func (s *Session) FinalTime() time.Duration {
	return ticksToDuration(s.finalTicks)
}

// Loop returns the session's scheduler handle.
func (s *Session) Loop() *Loop {
	return &s.loop
}

func ticksToDuration(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Second / TicksPerSecond
}

// FormatSeconds renders a duration in seconds with one decimal place.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Seconds())
}
