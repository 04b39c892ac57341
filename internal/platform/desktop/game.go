// Package desktop runs the street crossing game in a window using Ebitengine.
// It draws the PNG sprites when they are available and falls back to the
// same flat-color scenery as the terminal frontend otherwise.
package desktop

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bondi-dash/internal/assets"
	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
	"github.com/vovakirdan/bondi-dash/internal/storage"
)

// Options configures the window game.
type Options struct {
	Game     config.CrossingConfig
	Preset   config.Preset
	Seed     int64            // 0 means time-based
	AssetDir string           // Directory holding the PNG sprites
	Store    *storage.Store   // May be nil: runs are then not recorded
	Player   string           // Name runs are stored under
	Settings *SettingsManager // May be nil: defaults, nothing saved
	Logger   *log.Logger      // May be nil
}

// Game implements ebiten.Game on top of a crossing session.
type Game struct {
	session  *crossing.Session
	images   *assets.ImageSet
	textures map[crossing.SpriteKind]*ebiten.Image
	sign     *ebiten.Image
	keys     keyState
	settings *SettingsManager
	store    *storage.Store
	player   string
	preset   config.Preset
	logger   *log.Logger
	cancel   context.CancelFunc

	best    time.Duration
	hasBest bool
	newBest bool
}

// NewGame creates a game on the start screen and begins loading sprites.
// Close releases the loader.
func NewGame(opts Options) *Game {
	return newGame(opts, ebitenKeys{})
}

func newGame(opts Options, keys keyState) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.PresetNormal
	}
	settings := opts.Settings
	if settings == nil {
		settings = NewSettingsManager(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Game{
		session:  crossing.NewSession(opts.Game, seed),
		images:   assets.LoadImages(ctx, os.DirFS(opts.AssetDir), logger),
		textures: make(map[crossing.SpriteKind]*ebiten.Image),
		keys:     keys,
		settings: settings,
		store:    opts.Store,
		player:   opts.Player,
		preset:   preset,
		logger:   logger,
		cancel:   cancel,
	}
}

// Close stops any image decoding still in flight.
func (g *Game) Close() {
	g.cancel()
}

// Session returns the underlying game session.
func (g *Game) Session() *crossing.Session {
	return g.session
}

// Update reads the keyboard and advances the session by one tick.
func (g *Game) Update() error {
	g.uploadTextures()

	in := readInput(g.keys)
	if in.Has(core.ActionQuit) {
		g.session.Loop().Stop()
		return ebiten.Termination
	}
	if g.keys.PressDuration(ebiten.KeyF11) == 1 {
		g.toggleFullscreen()
	}

	switch g.session.State() {
	case crossing.StateStart:
		if in.Has(core.ActionConfirm) && g.images.Settled() {
			g.begin(g.session.Start())
		}

	case crossing.StatePlaying:
		// The loop is the only thing allowed to step the session.
		if !g.session.Loop().Active() {
			return nil
		}
		if g.session.Step(in).Won {
			g.recordRun()
		}

	case crossing.StateWin:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.begin(g.session.Restart())
		}
	}

	return nil
}

// Layout keeps the logical field size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.session.Config().Field
	return int(f.Width), int(f.Height)
}

func (g *Game) begin(started bool) {
	if !started {
		return
	}
	g.newBest = false
	g.logger.Debug("run started", "seed", g.session.Seed(), "gen", g.session.Loop().Generation())
}

// uploadTextures turns decoded images into GPU images as they arrive.
func (g *Game) uploadTextures() {
	if len(g.textures) == g.images.Loaded() {
		return
	}
	for _, kind := range crossing.SpriteKinds() {
		if _, ok := g.textures[kind]; ok {
			continue
		}
		if img, ok := g.images.Image(kind); ok {
			g.textures[kind] = ebiten.NewImageFromImage(img)
		}
	}
}

func (g *Game) texture(kind crossing.SpriteKind) (*ebiten.Image, bool) {
	img, ok := g.textures[kind]
	return img, ok
}

func (g *Game) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	g.settings.SetFullscreen(on)
	if err := g.settings.Save(); err != nil {
		g.logger.Warn("could not save window settings", "err", err)
	}
}

// recordRun stores the finished run and refreshes the personal best.
func (g *Game) recordRun() {
	final := g.session.FinalTime()
	g.logger.Info("beach reached",
		"player", g.player,
		"time", crossing.FormatSeconds(final),
		"hits", g.session.Hits(),
	)

	if g.store == nil || g.player == "" {
		return
	}

	prev, hadPrev, err := g.store.BestTime(g.player, string(g.preset))
	if err != nil {
		g.logger.Warn("could not read best time", "err", err)
	}
	_, err = g.store.SaveRun(storage.Run{
		Player: g.player,
		Time:   final,
		Hits:   g.session.Hits(),
		Seed:   g.session.Seed(),
		Preset: string(g.preset),
	})
	if err != nil {
		g.logger.Warn("could not save run", "err", err)
		return
	}

	g.newBest = !hadPrev || final.Milliseconds() < prev.Milliseconds()
	g.best, g.hasBest = prev, true
	if g.newBest {
		g.best = final
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Settings == nil {
		opts.Settings = NewSettingsManager(nil)
	}
	ws := opts.Settings.Settings()
	f := opts.Game.Field

	ebiten.SetWindowSize(int(f.Width*ws.Scale), int(f.Height*ws.Scale))
	ebiten.SetWindowTitle(crossing.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(ws.Fullscreen)
	ebiten.SetTPS(crossing.TicksPerSecond)

	g := NewGame(opts)
	defer g.Close()

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
