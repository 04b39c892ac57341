package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
)

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type menuItem struct {
	title  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Cross the street", ChoicePlay},
	{"Fastest crossings", ChoiceScores},
	{"Quit", ChoiceQuit},
}

var menuPresets = []config.Preset{config.PresetEasy, config.PresetNormal, config.PresetHard}

// MenuKeyMap defines the key bindings of the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "a", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "d", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	keys   MenuKeyMap
	cursor int
	preset int
	width  int
	height int
	choice MenuChoice
}

// NewMenuModel creates a menu with the given preset preselected.
func NewMenuModel(preset config.Preset, width, height int) MenuModel {
	m := MenuModel{
		keys:   DefaultMenuKeyMap(),
		preset: 1,
		width:  width,
		height: height,
	}
	for i, p := range menuPresets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			m.cursor = core.Clamp(m.cursor-1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = core.Clamp(m.cursor+1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Left):
			m.preset = core.Clamp(m.preset-1, 0, len(menuPresets)-1)
		case key.Matches(msg, m.keys.Right):
			m.preset = core.Clamp(m.preset+1, 0, len(menuPresets)-1)
		case key.Matches(msg, m.keys.Scores):
			m.choice = ChoiceScores
		case key.Matches(msg, m.keys.Select):
			m.choice = menuItems[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  B O N D I   B A C K P A C K E R S  "))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("hostel → street → beach"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		line := item.title
		if i == m.cursor {
			cursor = "> "
			line = accentStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	presets := make([]string, len(menuPresets))
	for i, p := range menuPresets {
		name := string(p)
		if i == m.preset {
			name = accentStyle.Render("[" + name + "]")
		} else {
			name = subtleStyle.Render(" " + name + " ")
		}
		presets[i] = name
	}
	fmt.Fprintf(&b, "Street: %s\n\n", strings.Join(presets, " "))
	b.WriteString(subtleStyle.Render("↑/↓ choose  ·  ←/→ preset  ·  Enter select  ·  Tab scores  ·  Q quit"))

	block := panelStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Choice returns what the player picked, ChoiceNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected preset.
func (m MenuModel) Preset() config.Preset {
	return menuPresets[m.preset]
}

// SessionModel manages a full session flow: menu -> game or scores -> menu.
// It is the top-level model of SSH sessions and of the local menu command.
type SessionModel struct {
	base     config.CrossingConfig // Before presets
	opts     Options
	menu     MenuModel
	game     *Model
	board    *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session starting at the menu. base is the
// configuration presets are applied to; opts.Game and opts.Preset are
// filled in per game from the menu selection.
func NewSessionModel(base config.CrossingConfig, opts Options) SessionModel {
	return SessionModel{
		base: base,
		opts: opts,
		menu: NewMenuModel(opts.Preset, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.board != nil:
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		board := NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		board.embedded = true
		m.board = &board
		return m, board.Init()

	case ChoicePlay:
		opts := m.opts
		opts.Preset = m.menu.Preset()
		opts.Game = m.base
		config.ApplyPreset(&opts.Game, opts.Preset)
		opts.Runtime.Seed = 0 // New street every game
		opts.embedded = true

		game := NewModel(opts)
		m.game = &game
		return m, game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.back {
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateBoard handles updates when showing the scoreboard.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.quitting {
		m.board = nil
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.menu.Preset(), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}

// RunMenu runs a local session starting at the menu.
func RunMenu(base config.CrossingConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(base, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
