package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
	"github.com/vovakirdan/infinity-spectrum/internal/logging"
	"github.com/vovakirdan/infinity-spectrum/internal/storage"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

var (
	flagSimRuns       int
	flagSimDifficulty string
	flagSimDuration   time.Duration
	flagSimSubmit     bool
	flagSimRecord     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless",
	Long: `Fly the tunnel without a terminal, steering with the built-in autopilot.

Time is simulated at the --fps frame rate, so runs finish as fast as the CPU
allows. Scores go to a throwaway ledger unless --submit is given.

Examples:
  spectrum sim
  spectrum sim --runs 20 --difficulty hard
  spectrum sim --seed 42 --duration 5m
  spectrum sim --submit --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "easy", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 2*time.Minute, "Simulated time cap per run")
	simCmd.Flags().BoolVar(&flagSimSubmit, "submit", false, "Submit scores to the real highscore ledger")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record runs in the run history database")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Score    int
	Passed   int
	Duration time.Duration
	Crashed  bool
	Rank     int
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := config.ParseDifficulty(flagSimDifficulty)
	if err != nil || level == 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid difficulty %q\n", flagSimDifficulty)
		os.Exit(1)
	}
	if flagSimRuns < 1 {
		fmt.Fprintln(os.Stderr, "Error: --runs must be at least 1")
		os.Exit(1)
	}
	if flagFPS < 1 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be at least 1")
		os.Exit(1)
	}
	tunnelCfg := loadConfig()

	var store *storage.Store
	if flagSimRecord || (flagSimSubmit && flagLedger == ledgerSQLite) {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	var ledger tunnel.Ledger = highscore.NewLedger(highscore.NewMemoryStore(highscore.Scores{}))
	if flagSimSubmit {
		shared, _, err := openLedger(store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ledger = shared
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	difficulty := tunnel.Difficulty(level)
	frame := time.Second / time.Duration(flagFPS)
	results := make([]simResult, 0, flagSimRuns)

	for i := 0; i < flagSimRuns; i++ {
		session := tunnel.NewSession(tunnelCfg,
			tunnel.WithSeed(seed+int64(i)),
			tunnel.WithLedger(ledger),
			tunnel.WithLogger(logger),
		)
		res, err := simulate(session, difficulty, frame, flagSimDuration)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("run finished", "run", i+1, "score", res.Score, "passed", res.Passed, "crashed", res.Crashed)

		if flagSimRecord && store != nil {
			recordSimRun(store, logger, difficulty, res)
		}
		results = append(results, res)
	}

	printSimSummary(difficulty, seed, results)
}

// simulate flies one run with the autopilot until it crashes or the time cap is hit.
func simulate(session *tunnel.Session, d tunnel.Difficulty, frame, limit time.Duration) (simResult, error) {
	if err := session.SelectDifficulty(d); err != nil {
		return simResult{}, err
	}

	res := simResult{Rank: -1}
	for elapsed := time.Duration(0); elapsed < limit; elapsed += frame {
		tick := session.Tick(frame, tunnel.Autopilot(session.Snapshot()))
		for _, e := range tick.Events {
			if e.Kind == tunnel.EventNewHighscore {
				res.Rank = e.Rank
			}
		}
		if tick.Collided() {
			res.Crashed = true
			break
		}
	}

	snap := session.Snapshot()
	res.Score = snap.Score
	res.Passed = snap.Passed
	res.Duration = snap.RunTime
	return res, nil
}

func recordSimRun(store *storage.Store, logger *log.Logger, d tunnel.Difficulty, res simResult) {
	_, err := store.SaveRun(storage.RunEntry{
		Difficulty: int(d),
		Score:      res.Score,
		Passed:     res.Passed,
		Duration:   res.Duration,
	})
	if err != nil {
		logger.Warn("Failed to record run", "err", err)
	}
}

func printSimSummary(d tunnel.Difficulty, seed int64, results []simResult) {
	color.New(color.FgHiYellow, color.Bold).Printf("Autopilot - %s\n", d)
	fmt.Printf("Seed %d, %d run(s)\n\n", seed, len(results))

	best, total, crashes := 0, 0, 0
	for i, r := range results {
		status := color.New(color.FgGreen).Sprint("survived")
		if r.Crashed {
			status = color.New(color.FgRed).Sprint("crashed")
			crashes++
		}
		fmt.Printf("  %3d. %8d  rings %-5d  %-9s  %s", i+1, r.Score, r.Passed, r.Duration.Round(100*time.Millisecond), status)
		if r.Rank >= 0 {
			color.New(color.FgHiYellow).Printf("  #%d", r.Rank+1)
		}
		fmt.Println()

		total += r.Score
		if r.Score > best {
			best = r.Score
		}
	}

	fmt.Println()
	fmt.Printf("Best %d, average %.0f, crashes %d/%d\n", best, float64(total)/float64(len(results)), crashes, len(results))
}
