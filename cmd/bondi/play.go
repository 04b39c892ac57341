package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/platform/tui"
)

var (
	flagPlayer    string
	flagSpriteDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Cross the street in the terminal.

Controls:
  Arrows/WASD  - Move one step per press
  Enter        - Start
  P/Esc        - Pause
  R            - Play again (on the beach)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Preset options:
  easy   - Slower traffic, fewer extra spawns
  normal - The street as configured
  hard   - Faster traffic, more extra spawns

Examples:
  bondi play
  bondi play --preset hard
  bondi play --seed 42 --player tess
  bondi play --config ./my-street.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (default: current user)")
	playCmd.Flags().StringVar(&flagSpriteDir, "sprites", "", "Directory with a sprites.yaml override")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("bondi", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, preset, err := loadGame()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.Run(tui.Options{
		Game:   game,
		Preset: preset,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:     store,
		Player:    playerName(flagPlayer),
		SpriteDir: flagSpriteDir,
		Logger:    logger,
	})
}
