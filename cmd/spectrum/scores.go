package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
	"github.com/vovakirdan/infinity-spectrum/internal/logging"
	"github.com/vovakirdan/infinity-spectrum/internal/platform/tui"
	"github.com/vovakirdan/infinity-spectrum/internal/storage"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

var (
	flagBrowse     bool
	flagReset      bool
	flagClearRuns  bool
	flagRecentRuns int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the highscore ledger and run history",
	Long: `Display the top-5 ledger, the latest runs and per-difficulty statistics.

Examples:
  spectrum scores
  spectrum scores --browse
  spectrum scores --ledger sqlite
  spectrum scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive run history")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the highscore ledger")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear-runs", false, "Delete the run history")
	scoresCmd.Flags().IntVar(&flagRecentRuns, "recent", 10, "Number of recent runs to list")
}

func runScores(_ *cobra.Command, _ []string) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagBrowse {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: run history database is not available")
			os.Exit(1)
		}
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ledger, source, err := openLedger(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReset {
		if err := ledger.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting ledger: %v\n", err)
			os.Exit(1)
		}
		color.Green("Highscore ledger cleared.")
	}
	if flagClearRuns && store != nil {
		if err := store.ClearRuns(storage.AllDifficulties); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		color.Green("Run history cleared.")
	}

	printLedger(ledger, source)
	if store != nil {
		printRecentRuns(store)
		printStats(store)
	}
}

func printLedger(ledger *highscore.Ledger, source string) {
	title := color.New(color.FgHiYellow, color.Bold)
	title.Println("Highscores")
	color.New(color.FgHiBlack).Printf("  %s\n", source)
	fmt.Println()

	scores, err := ledger.Scores()
	if err != nil {
		if !errors.Is(err, highscore.ErrMalformed) {
			fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
			return
		}
		color.Yellow("  (ledger repaired: %v)", err)
	}

	rankColors := []*color.Color{
		color.New(color.FgHiYellow, color.Bold),
		color.New(color.FgHiWhite),
		color.New(color.FgYellow),
		color.New(color.FgWhite),
		color.New(color.FgWhite),
	}
	for i, s := range scores {
		rankColors[i].Printf("  %d. %8d\n", i+1, s)
	}

	if scores.Best() == 0 {
		fmt.Println()
		fmt.Println("No highscores yet. Run 'spectrum play' to set one!")
	}
}

func printRecentRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagRecentRuns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	color.New(color.FgHiCyan, color.Bold).Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-8s  %s\n", "Level", "Score", "Rings", "Time", "Date")
	fmt.Printf("  %-8s  %-8s  %-6s  %-8s  %s\n", "-----", "-----", "-----", "----", "----")
	for _, r := range runs {
		levelColor(r.Difficulty).Printf("  %-8s", tunnel.Difficulty(r.Difficulty))
		fmt.Printf("  %-8d  %-6d  %-8s  %s\n",
			r.Score, r.Passed, r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		return
	}

	fmt.Println()
	color.New(color.FgHiMagenta, color.Bold).Println("Per difficulty")
	fmt.Println()
	for _, d := range []tunnel.Difficulty{tunnel.DifficultyEasy, tunnel.DifficultyNormal, tunnel.DifficultyHard} {
		st, ok := stats[int(d)]
		if !ok {
			continue
		}
		levelColor(int(d)).Printf("  %-8s", d)
		fmt.Printf("  runs %-4d  best %-8d  avg %-8.0f  rings %-6d  longest %s\n",
			st.RunsCount, st.HighScore, st.AvgScore, st.TotalPassed, st.LongestRun.Round(100*time.Millisecond))
	}
}

func levelColor(level int) *color.Color {
	switch tunnel.Difficulty(level) {
	case tunnel.DifficultyEasy:
		return color.New(color.FgGreen)
	case tunnel.DifficultyNormal:
		return color.New(color.FgYellow)
	case tunnel.DifficultyHard:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}
