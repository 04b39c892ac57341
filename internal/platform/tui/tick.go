// Package tui provides the Bubble Tea frontend of Bondi Backpackers.
// It handles the terminal UI loop, input mapping, and the three screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen is the loop
// generation the tick was scheduled under; ticks from an older generation
// are dropped so only one tick chain ever drives a session.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// one interval at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
