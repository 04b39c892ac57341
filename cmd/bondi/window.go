package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bondi-dash/internal/platform/desktop"
)

var (
	flagAssetDir   string
	flagScale      float64
	flagFullscreen bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Cross the street in an 800x600 window.

Sprites are read from PNG files in --assets (backpacker.png, tuktuk.png,
scooter.png, dog.png, palm-tree.png, beach-background.png,
street-background.png). Missing files are drawn as flat colors.

Window size and fullscreen are remembered between runs.

Controls:
  Arrows/WASD  - Move (hold to keep walking)
  Enter        - Start
  P            - Pause
  R            - Play again (on the beach)
  F11          - Toggle fullscreen
  Esc          - Quit

Examples:
  bondi window
  bondi window --assets ./images --scale 1.5
  bondi window --fullscreen`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssetDir, "assets", "images", "Directory with the PNG sprites")
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (default: current user)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (saved for next time)")
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen (saved for next time)")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("bondi", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, preset, err := loadGame()
	if err != nil {
		return err
	}

	settings, err := desktop.OpenSettings("bondi")
	if err != nil {
		logger.Warn("window settings will not be saved", "error", err)
	}
	changed := false
	if cmd.Flags().Changed("scale") {
		settings.SetScale(flagScale)
		changed = true
	}
	if cmd.Flags().Changed("fullscreen") {
		settings.SetFullscreen(flagFullscreen)
		changed = true
	}
	if changed {
		if err := settings.Save(); err != nil {
			logger.Warn("could not save window settings", "error", err)
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return desktop.Run(desktop.Options{
		Game:     game,
		Preset:   preset,
		Seed:     flagSeed,
		AssetDir: flagAssetDir,
		Store:    store,
		Player:   playerName(flagPlayer),
		Settings: settings,
		Logger:   logger,
	})
}
