package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bondi-dash/internal/crossing"
	"github.com/vovakirdan/bondi-dash/internal/storage"
)

var (
	flagTicks     int
	flagSave      bool
	flagSimPlayer string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless crossing with the autopilot",
	Long: `Run one crossing without a screen. The autopilot steps up when the
way is clear, waits for traffic and backs off from oncoming obstacles.
The final state is printed as YAML.

The same --seed and --config always produce the same run.

Examples:
  bondi sim --seed 42
  bondi sim --seed 42 --preset hard --ticks 20000
  bondi sim --seed 42 --save --player robot`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10*60*crossing.TicksPerSecond, "Give up after this many ticks")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run if the autopilot reaches the beach")
	simCmd.Flags().StringVar(&flagSimPlayer, "player", "autopilot", "Name to record runs under")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("bondi-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, preset, err := loadGame()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := crossing.NewSession(game, seed)
	s.Start()
	for i := 0; i < flagTicks && s.State() == crossing.StatePlaying; i++ {
		res := s.Step(s.Autopilot())
		if res.Hit {
			logger.Debug("sent back", "tick", s.Ticks(), "hits", s.Hits())
		}
	}

	logger.Info("simulation finished",
		"seed", seed,
		"preset", preset,
		"state", s.State(),
		"ticks", s.Ticks(),
		"hits", s.Hits(),
	)

	out, err := yaml.Marshal(struct {
		Seed     int64             `yaml:"seed"`
		Preset   string            `yaml:"preset"`
		Snapshot crossing.Snapshot `yaml:"snapshot"`
	}{seed, string(preset), s.Snapshot()})
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	cmd.OutOrStdout().Write(out)

	if !flagSave || s.State() != crossing.StateWin {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Player: playerName(flagSimPlayer),
		Time:   s.FinalTime(),
		Hits:   s.Hits(),
		Seed:   seed,
		Preset: string(preset),
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id)
	return nil
}
