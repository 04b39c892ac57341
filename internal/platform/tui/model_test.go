package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bondi-dash/internal/assets"
	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
	"github.com/vovakirdan/bondi-dash/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// emptyStreetConfig has no obstacles at all, so a run is only input driven.
func emptyStreetConfig() config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Vehicles.Initial = 0
	cfg.Vehicles.SpawnChance = 0
	cfg.Dogs.Initial = 0
	cfg.Dogs.SpawnChance = 0
	return cfg
}

func testModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Game:    emptyStreetConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Store:   store,
		Player:  "tester",
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, spritesLoadedMsg{sheet: assets.DefaultSheet()})
	return m
}

func TestModelStartWaitsForSprites(t *testing.T) {
	m := testModel(t, nil)

	if !strings.Contains(m.View(), "Loading sprites") {
		t.Error("start screen should show the loading spinner")
	}

	m, cmd := update(t, m, keyEnter)
	if m.Session().State() != crossing.StateStart || cmd != nil {
		t.Error("start must be disabled while sprites load")
	}

	m = loaded(t, m)
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("start screen should invite the player once loaded")
	}

	m, cmd = update(t, m, keyEnter)
	if m.Session().State() != crossing.StatePlaying {
		t.Errorf("state = %v, want playing", m.Session().State())
	}
	if cmd == nil {
		t.Error("starting should schedule the first tick")
	}
}

func TestModelSpriteLoadFailureFallsBack(t *testing.T) {
	m := testModel(t, nil)
	m, _ = update(t, m, spritesLoadedMsg{err: errTest})

	m, _ = update(t, m, keyEnter)
	if m.Session().State() != crossing.StatePlaying {
		t.Error("a failed sprite load should still allow playing")
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := loaded(t, testModel(t, nil))
	m, _ = update(t, m, keyEnter)
	gen := m.Session().Loop().Generation()

	m, cmd := update(t, m, TickMsg{Gen: gen + 1})
	if cmd != nil || m.Session().Ticks() != 0 {
		t.Error("tick from another generation should be dropped")
	}

	m, cmd = update(t, m, TickMsg{Gen: gen})
	if cmd == nil || m.Session().Ticks() != 1 {
		t.Error("current tick should run and reschedule")
	}
}

func TestModelInputAppliedOnTick(t *testing.T) {
	m := loaded(t, testModel(t, nil))
	m, _ = update(t, m, keyEnter)
	gen := m.Session().Loop().Generation()

	m, _ = update(t, m, keyUp)
	m, _ = update(t, m, runeKey('w'))
	if m.Session().Player().Y != 500 {
		t.Error("input must not move the player before the tick")
	}

	m, _ = update(t, m, TickMsg{Gen: gen})
	if got := m.Session().Player().Y; got != 486 {
		t.Errorf("player y = %v, want 486", got)
	}

	m, _ = update(t, m, TickMsg{Gen: gen})
	if got := m.Session().Player().Y; got != 486 {
		t.Errorf("input should be consumed once, player y = %v", got)
	}
}

// crossStreet walks the player up to the beach one tick at a time.
func crossStreet(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	gen := m.Session().Loop().Generation()
	var cmd tea.Cmd
	for i := 0; i < 100 && m.Session().State() == crossing.StatePlaying; i++ {
		m, _ = update(t, m, keyUp)
		m, cmd = update(t, m, TickMsg{Gen: gen})
	}
	if m.Session().State() != crossing.StateWin {
		t.Fatalf("state = %v after crossing, want win", m.Session().State())
	}
	return m, cmd
}

func TestModelWinStopsTicksAndSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := loaded(t, testModel(t, store))
	m, _ = update(t, m, keyEnter)
	gen := m.Session().Loop().Generation()

	m, cmd := crossStreet(t, m)
	if cmd != nil {
		t.Error("winning tick must not schedule another tick")
	}
	if m.Session().Loop().Active() {
		t.Error("loop should stop on win")
	}

	view := m.View()
	want := crossing.FormatSeconds(m.Session().FinalTime())
	if !strings.Contains(view, want) {
		t.Errorf("win screen should show final time %s", want)
	}
	if !strings.Contains(view, "New personal best") {
		t.Error("first run should be a personal best")
	}

	runs, err := store.BestRuns("", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "tester" || runs[0].Preset != "normal" {
		t.Errorf("stored runs = %+v", runs)
	}

	// A leftover tick from the finished run changes nothing.
	final := m.Session().FinalTime()
	m, cmd = update(t, m, TickMsg{Gen: gen})
	if cmd != nil || m.Session().FinalTime() != final {
		t.Error("tick after win must be dropped")
	}

	m, cmd = update(t, m, runeKey('r'))
	if m.Session().State() != crossing.StatePlaying || cmd == nil {
		t.Error("R should start a new run")
	}
	if m.Session().Loop().Generation() == gen {
		t.Error("restart should use a new loop generation")
	}
}

func TestModelPracticeRateIsNotRecorded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(Options{
		Game:    emptyStreetConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1},
		Store:   store,
		Player:  "tester",
	})
	m = loaded(t, m)
	m, _ = update(t, m, keyEnter)
	m, _ = crossStreet(t, m)

	runs, err := store.BestRuns("", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("run at 10 ticks/s was stored: %+v", runs)
	}
	if !strings.Contains(m.View(), "not recorded") {
		t.Error("win screen should say the practice run was not recorded")
	}
}

func TestModelQuit(t *testing.T) {
	m := loaded(t, testModel(t, nil))
	m, _ = update(t, m, keyEnter)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if m.Session().Loop().Active() {
		t.Error("quitting should stop the loop")
	}
}

func TestModelPlayingView(t *testing.T) {
	m := loaded(t, testModel(t, nil))
	m, _ = update(t, m, keyEnter)

	if view := m.View(); !strings.Contains(view, "Time: 0.0s") {
		t.Error("playing view should show the timer")
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")
