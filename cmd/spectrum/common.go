package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
	"github.com/vovakirdan/infinity-spectrum/internal/storage"
)

// Ledger backends.
const (
	ledgerFile   = "file"
	ledgerSQLite = "sqlite"
)

// loadConfig loads the tunnel config or exits.
func loadConfig() config.TunnelConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the run history. Failure is reported and nil returned;
// callers continue without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openLedger builds the highscore ledger for the selected backend and
// describes where it is kept.
func openLedger(store *storage.Store) (*highscore.Ledger, string, error) {
	switch flagLedger {
	case ledgerFile:
		fs, err := highscore.NewFileStore(flagScoresFile)
		if err != nil {
			return nil, "", err
		}
		return highscore.NewLedger(fs), fs.Path(), nil
	case ledgerSQLite:
		if store == nil {
			return nil, "", fmt.Errorf("sqlite ledger needs the run history database %s", flagDBPath)
		}
		return highscore.NewLedger(store.Ledger()), "sqlite:" + flagDBPath, nil
	default:
		return nil, "", fmt.Errorf("unknown ledger backend %q (want %s or %s)", flagLedger, ledgerFile, ledgerSQLite)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
