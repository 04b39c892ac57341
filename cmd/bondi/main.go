// bondi is the Bondi Backpackers street crossing game: get from the hostel
// to the beach without being flattened by tuk-tuks, scooters or stray dogs.
//
// Usage:
//
//	bondi play             - Play in the terminal
//	bondi menu             - Menu with presets and the scoreboard
//	bondi window           - Play in a desktop window
//	bondi serve            - Start SSH server for remote play
//	bondi scores           - Show the fastest crossings
//	bondi sim              - Run a headless crossing with the autopilot
//	bondi config           - Print the default street config
//
// Global flags:
//
//	--fps <rate>        - Terminal tick rate; runs off 60 are practice (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.bondi/runs.db)
//	--config <path>     - Custom street config YAML
//	--preset <name>     - easy, normal or hard
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
	"github.com/vovakirdan/bondi-dash/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bondi",
	Short: "Bondi Backpackers - cross the street to the beach",
	Long: `Bondi Backpackers is a street crossing game. Walk from the hostel
to the beach as fast as you can; any tuk-tuk, scooter or dog that touches
you sends you back to the door.

Available commands:
  play     - Play in the terminal
  menu     - Pick a preset and browse the scoreboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the fastest crossings
  sim      - Headless crossing driven by the autopilot
  config   - Print the default street config

Examples:
  bondi play
  bondi play --preset hard
  bondi window
  bondi serve --ssh :2222
  bondi sim --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", crossing.TicksPerSecond, "Terminal tick rate; runs at any other rate than 60 are not recorded")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bondi/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom street config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "normal", "Street preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGame reads the street configuration and applies the preset.
func loadGame() (config.CrossingConfig, config.Preset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.CrossingConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.CrossingConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLogger builds the logger. Interactive terminal commands pass
// io.Discard as fallback since stdout belongs to the renderer; everything
// else logs to stderr. --log-file always wins.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the runs database. A broken database is not fatal: the
// game still works, runs just are not recorded.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// terminalSize returns the size of the controlling terminal or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// playerName is the name local runs are stored under.
func playerName(flag string) string {
	if name := strings.TrimSpace(flag); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return filepath.Base(u.Username)
	}
	return "player"
}
