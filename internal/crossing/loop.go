package crossing

// Loop is the handle of the single tick scheduler driving a session.
//
// Platforms schedule ticks tagged with the generation current when they were
// scheduled and only run a tick that Accepts its tag. Starting an inactive
// loop bumps the generation, so ticks left over from a stopped scheduler are
// dropped and at most one scheduler drives the session at any time.
type Loop struct {
	active bool
	gen    uint64
}

// Start activates the loop. It returns true if a loop was already active,
// in which case nothing changes and the caller must not schedule again.
func (l *Loop) Start() (alreadyActive bool) {
	if l.active {
		return true
	}
	l.active = true
	l.gen++
	return false
}

// Stop deactivates the loop and reports whether it was active.
func (l *Loop) Stop() (wasActive bool) {
	wasActive = l.active
	l.active = false
	return wasActive
}

// Active reports whether ticks are currently wanted.
func (l *Loop) Active() bool {
	return l.active
}

// Generation returns the tag for ticks scheduled now.
func (l *Loop) Generation() uint64 {
	return l.gen
}

// Accepts reports whether a tick tagged with gen should run.
func (l *Loop) Accepts(gen uint64) bool {
	return l.active && gen == l.gen
}
