package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
	"github.com/vovakirdan/bondi-dash/internal/platform/tui"
	"github.com/vovakirdan/bondi-dash/internal/storage"
)

var (
	flagPlain       bool
	flagClear       bool
	flagLimit       int
	flagScoresOwner string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest crossings",
	Long: `Display the fastest crossings.

Without --plain an interactive scoreboard opens with one tab per preset.
With --plain the top runs for --preset are printed as text.

Examples:
  bondi scores
  bondi scores --plain
  bondi scores --plain --preset hard --limit 20
  bondi scores --player tess
  bondi scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to print")
	scoresCmd.Flags().StringVar(&flagScoresOwner, "player", "", "Print the latest runs of one player")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagScoresOwner != "" {
		return printPlayerRuns(cmd.OutOrStdout(), store, flagScoresOwner, flagLimit)
	}

	if !flagPlain {
		width, height := terminalSize()
		return tui.RunScoreboard(store, width, height)
	}

	preset := ""
	if cmd.Flags().Changed("preset") {
		p, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		preset = string(p)
	}
	return printScores(cmd.OutOrStdout(), store, preset, flagLimit)
}

// printScores writes the fastest runs for preset ("" for all) as a table.
func printScores(w io.Writer, store *storage.Store, preset string, limit int) error {
	runs, err := store.BestRuns(preset, limit)
	if err != nil {
		return err
	}

	title := "all presets"
	if preset != "" {
		title = preset
	}
	fmt.Fprintf(w, "Fastest crossings - %s\n", title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'bondi play' to set the first time!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-4s  %-6s  %s\n", "Rank", "Player", "Time", "Hits", "Preset", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-4s  %-6s  %s\n", "----", "------", "----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-16s  %-8s  %-4d  %-6s  %s\n",
			i+1,
			r.Player,
			crossing.FormatSeconds(r.Time)+"s",
			r.Hits,
			r.Preset,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Players: %d  Best: %ss  Average: %ss\n",
			stats.Runs, stats.Players,
			crossing.FormatSeconds(stats.BestTime),
			crossing.FormatSeconds(stats.AvgTime),
		)
	}
	return nil
}

// printPlayerRuns writes the latest runs of one player, newest first.
func printPlayerRuns(w io.Writer, store *storage.Store, player string, limit int) error {
	runs, err := store.PlayerRuns(player, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Latest crossings - %s\n", player)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-8s  %-4s  %-6s  %s\n", "Time", "Hits", "Preset", "Date")
	fmt.Fprintf(w, "  %-8s  %-4s  %-6s  %s\n", "----", "----", "------", "----")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-8s  %-4d  %-6s  %s\n",
			crossing.FormatSeconds(r.Time)+"s",
			r.Hits,
			r.Preset,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
