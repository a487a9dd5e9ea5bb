package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
	"github.com/vovakirdan/infinity-spectrum/internal/core"
	"github.com/vovakirdan/infinity-spectrum/internal/logging"
	"github.com/vovakirdan/infinity-spectrum/internal/platform/tui"
	"github.com/vovakirdan/infinity-spectrum/internal/storage"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the tunnel",
	Long: `Start the tunnel. Pick a difficulty in the menu, or pass --difficulty to
start a run at once.

Controls:
  Left/A, Right/D  - Rotate (hold to keep turning)
  1 / 2 / 3        - Easy / Normal / Hard (menu)
  Enter            - Back to menu after a crash
  P/Esc            - Pause
  Tab              - Run history (menu)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Dense rings, slow approach, 100 points per ring
  normal - Faster approach, 130 points per ring
  hard   - Sparse rings rushing in, 160 points per ring

Examples:
  spectrum play
  spectrum play --difficulty hard
  spectrum play --config ./tunnel.ini --ledger sqlite`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (skips the menu)")
}

func runPlay(_ *cobra.Command, _ []string) {
	level, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tunnelCfg := loadConfig()

	// The TUI owns the terminal, so logs go to a file
	logger, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger.Logger)
	ledger, source, err := openLedger(store)
	if err != nil {
		logger.Error("no highscore ledger", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeAll(store, logger)
		os.Exit(1)
	}
	logger.Info("Highscore ledger", "source", source)

	width, height := terminalSize()
	runErr := tui.Run(tui.Options{
		Tunnel: tunnelCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Ledger:     ledger,
		Store:      store,
		Logger:     logger.Logger,
		Difficulty: tunnel.Difficulty(level),
	})

	if runErr != nil {
		logger.Error("tui failed", "err", runErr)
	}
	closeAll(store, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func closeAll(store *storage.Store, logger *logging.File) {
	if store != nil {
		store.Close()
	}
	logger.Close()
}
