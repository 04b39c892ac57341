package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bondi-dash/internal/core"
)

// Held movement keys repeat like keyboard auto-repeat: one step on the
// first tick, then one step every repeatInterval ticks after repeatDelay.
const (
	repeatDelay    = 15
	repeatInterval = 2
)

// moveKeys maps window keys to movement actions.
var moveKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
}

// commandKeys fire once per press.
var commandKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
}

// keyState abstracts the keyboard so input mapping can be tested.
type keyState interface {
	// PressDuration returns how many ticks the key has been held, 0 if up.
	PressDuration(k ebiten.Key) int
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) PressDuration(k ebiten.Key) int {
	return inpututil.KeyPressDuration(k)
}

// repeats reports whether a key held for d ticks produces a step this tick.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// readInput builds the input frame for one tick.
func readInput(keys keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range moveKeys {
		if repeats(keys.PressDuration(b.key)) {
			frame.Set(b.action)
		}
	}
	for _, b := range commandKeys {
		if keys.PressDuration(b.key) == 1 {
			frame.Set(b.action)
		}
	}
	return frame
}
