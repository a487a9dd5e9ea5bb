// spectrum is a terminal rendition of the Infinity Spectrum tunnel game.
//
// Usage:
//
//	spectrum play            - Fly the tunnel
//	spectrum scores          - Show the highscore ledger and run history
//	spectrum serve           - Start SSH server for remote play
//	spectrum sim             - Run the autopilot headless
//	spectrum config          - Print the effective tunnel configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible obstacle patterns
//	--db <path>             - Set run history database (default: ~/.spectrum/runs.db)
//	--scores-file <path>    - Set highscore file (default: ~/.spectrum/highscores.txt)
//	--ledger <file|sqlite>  - Where the top-5 ledger is kept
//	--config <path>         - Tunnel config (YAML or INI)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresFile string
	flagLedger     string
	flagConfig     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Infinity Spectrum - dodge walls in a spinning hexagonal tunnel",
	Long: `Infinity Spectrum rotates you around a hexagonal tunnel while rings of
walls rush toward you. Line up with a gap to pass a ring; touch a wall and
the run is over.

Available commands:
  play     - Fly the tunnel
  scores   - Show the highscore ledger and run history
  serve    - Start SSH server for remote play
  sim      - Run the autopilot headless
  config   - Print the effective tunnel configuration

Examples:
  spectrum play
  spectrum play --difficulty hard
  spectrum scores --browse
  spectrum serve --ssh :2222
  spectrum sim --runs 10 --difficulty normal`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spectrum/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "~/.spectrum/highscores.txt", "Path to highscore file")
	rootCmd.PersistentFlags().StringVar(&flagLedger, "ledger", ledgerFile, "Highscore ledger backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tunnel config (YAML or INI)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.spectrum/spectrum.log", "Log file for interactive play")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
