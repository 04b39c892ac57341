package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bondi-dash/internal/assets"
	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
	"github.com/vovakirdan/bondi-dash/internal/storage"
)

// Options configures a game model.
type Options struct {
	Game      config.CrossingConfig
	Preset    config.Preset
	Runtime   core.RuntimeConfig
	Store     *storage.Store // May be nil: runs are then not recorded
	Player    string         // Name runs are stored under
	SpriteDir string         // Optional sprite sheet override directory
	Logger    *log.Logger    // May be nil

	embedded bool // Running under a menu: Back returns to it
}

// spritesLoadedMsg carries the result of the background sprite load.
type spritesLoadedMsg struct {
	sheet *assets.Sheet
	err   error
}

// loadSprites loads the terminal sprite sheet off the UI goroutine.
func loadSprites(dir string) tea.Cmd {
	return func() tea.Msg {
		sheet, err := assets.LoadSheet(dir)
		return spritesLoadedMsg{sheet: sheet, err: err}
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 4)
)

// Model is the Bubble Tea model for one player's game: start screen,
// street canvas and win screen.
type Model struct {
	session   *crossing.Session
	screen    *core.Screen
	sprites   *assets.Sheet
	loading   bool
	spinner   spinner.Model
	keys      KeyMap
	help      help.Model
	input     core.InputFrame
	store     *storage.Store
	player    string
	preset    config.Preset
	spriteDir string
	tickRate  int
	practice  bool // Not running at the game rate: runs are not recorded
	logger    *log.Logger
	embedded  bool

	width, height int
	best          time.Duration
	hasBest       bool
	newBest       bool
	quitting      bool
	back          bool
}

// NewModel creates a model showing the start screen.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	defaults := core.DefaultConfig()
	if rt.TickRate <= 0 {
		rt.TickRate = defaults.TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = defaults.ScreenW, defaults.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.PresetNormal
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		session:   crossing.NewSession(opts.Game, rt.Seed),
		loading:   true,
		spinner:   sp,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     core.NewInputFrame(),
		store:     opts.Store,
		player:    opts.Player,
		preset:    preset,
		spriteDir: opts.SpriteDir,
		tickRate:  rt.TickRate,
		practice:  rt.TickRate != crossing.TicksPerSecond,
		logger:    logger,
		embedded:  opts.embedded,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
	}
	m.screen = core.NewScreen(m.canvasSize())
	return m
}

// canvasSize leaves the bottom line for the help bar.
func (m Model) canvasSize() (int, int) {
	return m.width, max(1, m.height-1)
}

// Init starts loading the sprites.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadSprites(m.spriteDir))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(m.canvasSize())
		m.help.Width = msg.Width
		return m, nil

	case spritesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("sprite sheet unavailable, drawing flat colors", "err", msg.err)
			return m, nil
		}
		m.sprites = msg.sheet
		m.logger.Debug("sprite sheet loaded", "sprites", msg.sheet.Len())
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Loop().Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) && m.session.State() != crossing.StatePlaying {
		m.session.Loop().Stop()
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.back = true
		return m, nil
	}

	switch m.session.State() {
	case crossing.StateStart:
		if key.Matches(msg, m.keys.Start) && !m.loading {
			return m.begin(m.session.Start())
		}

	case crossing.StatePlaying:
		if action := m.keys.PlayAction(msg); action != core.ActionNone {
			m.input.Set(action)
		}

	case crossing.StateWin:
		if key.Matches(msg, m.keys.Restart) {
			return m.begin(m.session.Restart())
		}
	}

	return m, nil
}

// begin schedules the first tick of a new run if the transition happened.
func (m Model) begin(started bool) (tea.Model, tea.Cmd) {
	if !started {
		return m, nil
	}
	m.input.Clear()
	m.newBest = false
	m.logger.Debug("run started", "seed", m.session.Seed(), "gen", m.session.Loop().Generation())
	return m, tickCmd(m.tickRate, m.session.Loop().Generation())
}

// handleTick runs one simulation tick and schedules the next one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.session.Loop().Accepts(msg.Gen) {
		return m, nil
	}

	result := m.session.Step(m.input)
	m.input.Clear()

	if result.Won {
		m.recordRun()
		return m, nil
	}

	return m, tickCmd(m.tickRate, msg.Gen)
}

// recordRun stores the finished run and refreshes the personal best.
func (m *Model) recordRun() {
	final := m.session.FinalTime()
	m.logger.Info("beach reached",
		"player", m.player,
		"time", crossing.FormatSeconds(final),
		"hits", m.session.Hits(),
	)

	// Run times count game ticks, so they only match the clock at the
	// game rate.
	if m.practice {
		m.logger.Debug("practice run not recorded", "tick_rate", m.tickRate)
		return
	}
	if m.store == nil || m.player == "" {
		return
	}

	prev, hadPrev, err := m.store.BestTime(m.player, string(m.preset))
	if err != nil {
		m.logger.Warn("could not read best time", "err", err)
	}

	_, err = m.store.SaveRun(storage.Run{
		Player: m.player,
		Time:   final,
		Hits:   m.session.Hits(),
		Seed:   m.session.Seed(),
		Preset: string(m.preset),
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}

	m.newBest = !hadPrev || final.Milliseconds() < prev.Milliseconds()
	if m.newBest {
		m.best, m.hasBest = final, true
	} else {
		m.best, m.hasBest = prev, true
	}
}

// saveScreenshot saves the current street to a text file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen, m.sprites)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".bondi", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", crossing.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.State() {
	case crossing.StateStart:
		return m.startView()
	case crossing.StateWin:
		return m.winView()
	}

	m.session.Render(m.screen, m.sprites)
	return RenderScreen(m.screen) + "\n" + subtleStyle.Render(m.help.View(m.keys))
}

func (m Model) startView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(crossing.Title)))
	b.WriteString("\n\n")
	b.WriteString("Cross the street from the hostel to the beach.\n")
	b.WriteString("Dodge the tuk-tuks, scooters and stray dogs:\n")
	b.WriteString("one touch and you are back at the door.\n\n")
	b.WriteString(subtleStyle.Render("Arrows/WASD move  ·  P pause  ·  Q quit"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading sprites...")
	} else {
		b.WriteString(accentStyle.Render("Press Enter to start"))
	}
	if m.preset != config.PresetNormal {
		b.WriteString("\n" + subtleStyle.Render("Preset: "+string(m.preset)))
	}

	return m.place(panelStyle.Render(b.String()))
}

func (m Model) winView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("YOU MADE IT TO THE BEACH!"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Your time: %s seconds\n", accentStyle.Render(crossing.FormatSeconds(m.session.FinalTime())))
	fmt.Fprintf(&b, "Sent back: %d times\n", m.session.Hits())
	if m.practice {
		fmt.Fprintf(&b, "\n%s\n", subtleStyle.Render(fmt.Sprintf("Practice at %d ticks/s: not recorded", m.tickRate)))
	}

	if m.hasBest {
		if m.newBest {
			b.WriteString("\n" + accentStyle.Render("New personal best!") + "\n")
		} else {
			fmt.Fprintf(&b, "\nPersonal best: %ss\n", crossing.FormatSeconds(m.best))
		}
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("R play again  ·  B back  ·  Q quit"))

	return m.place(panelStyle.Render(b.String()))
}

// place centers a block in the terminal.
func (m Model) place(block string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Session returns the session driven by this model.
func (m Model) Session() *crossing.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
