package crossing

import "github.com/vovakirdan/bondi-dash/internal/core"

// autopilotLookahead is how many ticks ahead the autopilot checks traffic.
const autopilotLookahead = 12

// Autopilot returns the input a cautious player would give this tick: step
// up when the spot above stays clear for a while, hold still when only the
// current spot is clear, and back off otherwise. It is used by the headless
// simulator.
func (s *Session) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	if s.state != StatePlaying || s.paused {
		return in
	}

	p := s.player
	up := p.Rect().Translate(0, -p.Speed)
	here := p.Rect()

	switch {
	case s.clearFor(up, autopilotLookahead):
		in.Set(core.ActionUp)
	case s.clearFor(here, autopilotLookahead):
	case p.Y+p.Speed <= s.cfg.Field.Height-p.H:
		in.Set(core.ActionDown)
	}
	return in
}

// clearFor reports whether no obstacle overlaps r during the next ticks,
// assuming every obstacle keeps its velocity.
func (s *Session) clearFor(r core.Rect, ticks int) bool {
	for _, list := range [][]Obstacle{s.vehicles, s.dogs} {
		for _, o := range list {
			for t := 0; t <= ticks; t++ {
				if core.Collide(r, o.Rect().Translate(o.VX*float64(t), 0)) {
					return false
				}
			}
		}
	}
	return true
}
