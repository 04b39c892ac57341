package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu to pick a preset",
	Long: `Start in interactive menu mode.

Use Up/Down to choose, Left/Right to change the preset, Enter to select.
After reaching the beach, B returns to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change preset
  Tab            - Fastest crossings
  Enter/Space    - Select
  Q              - Quit

Examples:
  bondi menu
  bondi menu --fps 30
  bondi menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (default: current user)")
	menuCmd.Flags().StringVar(&flagSpriteDir, "sprites", "", "Directory with a sprites.yaml override")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("bondi", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	// Presets are applied per game from the menu selection.
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.RunMenu(base, tui.Options{
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
