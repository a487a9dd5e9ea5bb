package storage

import (
	"fmt"

	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
)

// LedgerStore keeps the top-5 ledger in the database.
// It implements highscore.Store.
type LedgerStore struct {
	store *Store
}

var _ highscore.Store = (*LedgerStore)(nil)

// Ledger returns the ledger table of this database as a highscore store.
func (s *Store) Ledger() *LedgerStore {
	return &LedgerStore{store: s}
}

// Load reads the ledger. Missing ranks are 0; out of range ranks, negative
// scores and out of order entries are repaired and reported as malformed.
func (l *LedgerStore) Load() (highscore.Scores, error) {
	rows, err := l.store.db.Query("SELECT rank, score FROM ledger ORDER BY rank")
	if err != nil {
		return highscore.Scores{}, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var (
		scores highscore.Scores
		bad    int
	)
	for rows.Next() {
		var rank, score int
		if err := rows.Scan(&rank, &score); err != nil {
			return highscore.Scores{}, fmt.Errorf("storage: cannot scan ledger row: %w", err)
		}
		if rank < 0 || rank >= highscore.Size || score < 0 {
			bad++
			continue
		}
		scores[rank] = score
	}
	if err := rows.Err(); err != nil {
		return highscore.Scores{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if !scores.Sorted() {
		scores = scores.Normalized()
		bad++
	}
	if bad > 0 {
		return scores, fmt.Errorf("storage: %w: %d ledger rows repaired", highscore.ErrMalformed, bad)
	}
	return scores, nil
}

// Save replaces the ledger in one transaction.
func (l *LedgerStore) Save(scores highscore.Scores) error {
	tx, err := l.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin ledger update: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec("DELETE FROM ledger"); err != nil {
		return fmt.Errorf("storage: cannot clear ledger: %w", err)
	}
	for rank, score := range scores {
		if _, err := tx.Exec("INSERT INTO ledger (rank, score) VALUES (?, ?)", rank, score); err != nil {
			return fmt.Errorf("storage: cannot write ledger rank %d: %w", rank, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ledger: %w", err)
	}
	return nil
}
