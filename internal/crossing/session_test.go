package crossing

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
)

// quietConfig returns the default configuration with random extra spawns off.
func quietConfig() config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Vehicles.SpawnChance = 0
	cfg.Dogs.SpawnChance = 0
	return cfg
}

// emptyStreet starts a session and removes every obstacle.
func emptyStreet(t *testing.T, cfg config.CrossingConfig) *Session {
	t.Helper()
	s := NewSession(cfg, 42)
	if !s.Start() {
		t.Fatal("Start() = false on a fresh session")
	}
	s.vehicles = nil
	s.dogs = nil
	return s
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewSessionStartsIdle(t *testing.T) {
	s := NewSession(config.DefaultCrossingConfig(), 1)

	if s.State() != StateStart {
		t.Errorf("State() = %v, want start", s.State())
	}
	if p := s.Player(); p.X != 375 || p.Y != 500 {
		t.Errorf("player at (%v,%v), want (375,500)", p.X, p.Y)
	}
	if len(s.Vehicles()) != 0 || len(s.Dogs()) != 0 {
		t.Error("street should be empty before start")
	}
	if s.Loop().Active() {
		t.Error("loop should not run before start")
	}

	res := s.Step(press(core.ActionUp))
	if res.State != StateStart || s.Player().Y != 500 {
		t.Error("Step before start should do nothing")
	}
}

func TestStartPopulatesStreet(t *testing.T) {
	s := NewSession(config.DefaultCrossingConfig(), 1)

	if !s.Start() {
		t.Fatal("Start() = false")
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, want playing", s.State())
	}
	if len(s.Vehicles()) != 3 {
		t.Errorf("vehicles = %d, want 3", len(s.Vehicles()))
	}
	if len(s.Dogs()) != 2 {
		t.Errorf("dogs = %d, want 2", len(s.Dogs()))
	}
	if !s.Loop().Active() {
		t.Error("loop should be active while playing")
	}
	if s.Start() {
		t.Error("second Start() should be rejected")
	}
	if s.Restart() {
		t.Error("Restart() should be rejected while playing")
	}
}

func TestPlayerMovesUp(t *testing.T) {
	s := emptyStreet(t, quietConfig())

	for i := 0; i < 9; i++ {
		s.Step(press(core.ActionUp))
	}

	if got := s.Player().Y; got != 437 {
		t.Errorf("player y = %v, want 437", got)
	}
}

func TestPlayerClampedToField(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		steps  int
		wantX  float64
		wantY  float64
	}{
		{"left edge", core.ActionLeft, 100, 0, 500},
		{"right edge", core.ActionRight, 100, 750, 500},
		{"bottom edge", core.ActionDown, 100, 375, 550},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyStreet(t, quietConfig())
			for i := 0; i < tt.steps; i++ {
				s.Step(press(tt.action))
			}
			p := s.Player()
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("player at (%v,%v), want (%v,%v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerTopClamp(t *testing.T) {
	cfg := quietConfig()
	cfg.Field.GoalY = 0 // never win, so the clamp is observable
	s := emptyStreet(t, cfg)

	for i := 0; i < 200; i++ {
		s.Step(press(core.ActionUp))
	}

	if got := s.Player().Y; got != 50 {
		t.Errorf("player y = %v, want top clamp 50", got)
	}
}

func TestRepeatedPressesInOneTick(t *testing.T) {
	s := emptyStreet(t, quietConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionUp)
	in.Set(core.ActionUp)
	s.Step(in)

	if got := s.Player().Y; got != 479 {
		t.Errorf("player y = %v, want 479", got)
	}
}

func TestObstacleLinearMotion(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	s.vehicles = []Obstacle{{
		Kind:    ObstacleVehicle,
		Vehicle: VehicleTukTuk,
		X:       -80,
		Y:       300,
		W:       80,
		H:       40,
		VX:      2.5,
	}}

	for i := 0; i < 32; i++ {
		s.Step(core.NewInputFrame())
	}

	if len(s.Vehicles()) != 1 {
		t.Fatalf("vehicles = %d, want 1", len(s.Vehicles()))
	}
	if got := s.Vehicles()[0].X; got != 0 {
		t.Errorf("tuk-tuk x = %v after 32 ticks, want 0", got)
	}
}

func TestRecycleReplacesSameKind(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	s.vehicles = []Obstacle{{Kind: ObstacleVehicle, X: 799, Y: 200, W: 60, H: 40, VX: 2}}
	s.dogs = []Obstacle{{Kind: ObstacleDog, X: -29, Y: 200, W: 30, H: 20, VX: -2}}

	s.Step(core.NewInputFrame())

	if len(s.Vehicles()) != 1 || len(s.Dogs()) != 1 {
		t.Fatalf("counts = %d vehicles, %d dogs, want 1 and 1", len(s.Vehicles()), len(s.Dogs()))
	}

	v := s.Vehicles()[0]
	if v.Kind != ObstacleVehicle {
		t.Errorf("replacement kind = %v, want vehicle", v.Kind)
	}
	if (v.VX > 0 && v.X != -v.W) || (v.VX < 0 && v.X != 800) {
		t.Errorf("replacement vehicle at x=%v vx=%v, want just outside the field", v.X, v.VX)
	}

	d := s.Dogs()[0]
	if d.Kind != ObstacleDog || d.W != 30 {
		t.Errorf("replacement = %+v, want a dog", d)
	}
}

func TestRecycleKeepsFloor(t *testing.T) {
	s := NewSession(config.DefaultCrossingConfig(), 7)
	s.Start()

	for i := 0; i < 5000; i++ {
		s.Step(core.NewInputFrame())
		if len(s.Vehicles()) < 3 {
			t.Fatalf("tick %d: vehicles = %d, dropped below 3", i, len(s.Vehicles()))
		}
		if len(s.Dogs()) < 2 {
			t.Fatalf("tick %d: dogs = %d, dropped below 2", i, len(s.Dogs()))
		}
	}
}

func TestSoftCapOnlyGatesExtraSpawns(t *testing.T) {
	leaving := func(n int) []Obstacle {
		out := make([]Obstacle, n)
		for i := range out {
			out[i] = Obstacle{Kind: ObstacleVehicle, X: 800, Y: 150, W: 60, H: 40, VX: 1}
		}
		return out
	}

	cfg := quietConfig()
	cfg.Vehicles.SpawnChance = 1

	// Ten recycled vehicles stay ten: replacements ignore the cap and the
	// extra spawn is refused.
	s := emptyStreet(t, cfg)
	s.vehicles = leaving(10)
	s.Step(core.NewInputFrame())
	if got := len(s.Vehicles()); got != 10 {
		t.Errorf("over cap: vehicles = %d, want 10", got)
	}

	// Below the cap the extra spawn goes through.
	s = emptyStreet(t, cfg)
	s.vehicles = leaving(5)
	s.Step(core.NewInputFrame())
	if got := len(s.Vehicles()); got != 6 {
		t.Errorf("under cap: vehicles = %d, want 6", got)
	}
}

func TestCollisionResetsPlayer(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	s.dogs = []Obstacle{
		{Kind: ObstacleDog, X: 380, Y: 505, W: 30, H: 20, VX: 0.5},
		{Kind: ObstacleDog, X: 390, Y: 510, W: 30, H: 20, VX: 0.5},
	}

	res := s.Step(press(core.ActionLeft))

	if !res.Hit {
		t.Error("expected a hit")
	}
	if p := s.Player(); p.X != 375 || p.Y != 500 {
		t.Errorf("player at (%v,%v), want spawn (375,500)", p.X, p.Y)
	}
	if s.Hits() != 1 {
		t.Errorf("Hits() = %d, want 1 for simultaneous collisions", s.Hits())
	}
}

func TestTouchingIsNotCollision(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	// Right edge lands exactly on the player's left edge after one tick.
	s.vehicles = []Obstacle{{Kind: ObstacleVehicle, X: 294, Y: 500, W: 80, H: 40, VX: 1}}

	res := s.Step(core.NewInputFrame())

	if res.Hit {
		t.Error("touching edges should not collide")
	}
}

func TestWinTransition(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	for i := 0; i < 30; i++ {
		s.Step(core.NewInputFrame())
	}
	s.player.Y = 90

	res := s.Step(core.NewInputFrame())

	if !res.Won || res.State != StateWin || s.State() != StateWin {
		t.Fatalf("result = %+v, state = %v, want win", res, s.State())
	}
	want := 31 * time.Second / TicksPerSecond
	if s.FinalTime() != want {
		t.Errorf("FinalTime() = %v, want %v", s.FinalTime(), want)
	}
	if s.Loop().Active() {
		t.Error("loop should stop on win")
	}

	// Further ticks change nothing.
	for i := 0; i < 100; i++ {
		s.Step(press(core.ActionDown))
	}
	if s.State() != StateWin {
		t.Error("win state reverted without restart")
	}
	if s.FinalTime() != want {
		t.Errorf("FinalTime() drifted to %v", s.FinalTime())
	}
	if s.Player().Y != 90 {
		t.Error("player moved after win")
	}
}

func TestRestartAfterWin(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	gen := s.Loop().Generation()
	s.player.Y = 90
	s.Step(core.NewInputFrame())

	if !s.Restart() {
		t.Fatal("Restart() = false after win")
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, want playing", s.State())
	}
	if p := s.Player(); p.X != 375 || p.Y != 500 {
		t.Errorf("player at (%v,%v), want spawn", p.X, p.Y)
	}
	if s.Elapsed() != 0 || s.FinalTime() != 0 || s.Hits() != 0 {
		t.Error("timer and hit counter should reset")
	}
	if len(s.Vehicles()) != 3 || len(s.Dogs()) != 2 {
		t.Errorf("counts = %d/%d, want 3/2", len(s.Vehicles()), len(s.Dogs()))
	}
	if !s.Loop().Accepts(s.Loop().Generation()) || s.Loop().Accepts(gen) {
		t.Error("restart should hand out a new loop generation")
	}
}

func TestPauseFreezesRun(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	s.dogs = []Obstacle{{Kind: ObstacleDog, X: 100, Y: 200, W: 30, H: 20, VX: 1}}

	res := s.Step(press(core.ActionPause, core.ActionUp))
	if !res.Paused || !s.Paused() {
		t.Fatal("expected paused")
	}
	s.Step(press(core.ActionUp))

	if s.Ticks() != 0 || s.Player().Y != 500 || s.Dogs()[0].X != 100 {
		t.Error("paused session should not advance")
	}

	s.Step(press(core.ActionPause))
	if s.Paused() {
		t.Fatal("expected resumed")
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", s.Ticks())
	}
}

func TestElapsed(t *testing.T) {
	s := emptyStreet(t, quietConfig())
	for i := 0; i < 90; i++ {
		s.Step(core.NewInputFrame())
	}

	if s.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", s.Elapsed())
	}
	if got := FormatSeconds(s.Elapsed()); got != "1.5" {
		t.Errorf("FormatSeconds() = %q, want 1.5", got)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0"},
		{time.Second, "1.0"},
		{12340 * time.Millisecond, "12.3"},
		{ticksToDuration(1), "0.0"},
		{ticksToDuration(125), "2.1"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.d); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(config.DefaultCrossingConfig(), 12345)
		s.Start()
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			switch i % 7 {
			case 0:
				in.Set(core.ActionUp)
			case 3:
				in.Set(core.ActionLeft)
			case 5:
				in.Set(core.ActionRight)
			}
			s.Step(in)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input produced different sessions:\n%+v\n%+v", a, b)
	}
}
