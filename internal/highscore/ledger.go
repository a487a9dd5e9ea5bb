package highscore

import (
	"errors"
	"fmt"
	"sync"
)

// Ledger is the process-wide top-5 table. It is safe for concurrent use so
// that several hosts (SSH sessions) can share one ledger.
type Ledger struct {
	mu    sync.Mutex
	store Store
}

// NewLedger creates a ledger on top of store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Scores reads the ledger. On ErrMalformed the repaired scores are still returned.
func (l *Ledger) Scores() (Scores, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Load()
}

// Submit offers a finished run's score. The ledger is re-read first so that
// concurrent writers are not overwritten. It returns the 0-based rank the
// score took, or -1 if it did not qualify and nothing was written.
// Malformed stored data is repaired by the write; an unreadable store is an
// error and is left untouched.
func (l *Ledger) Submit(score int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.store.Load()
	if err != nil && !errors.Is(err, ErrMalformed) {
		return -1, err
	}

	updated, rank := current.Insert(score)
	if rank < 0 {
		return -1, nil
	}
	if err := l.store.Save(updated); err != nil {
		return -1, fmt.Errorf("highscore: submit %d: %w", score, err)
	}
	return rank, nil
}

// Reset clears every entry.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Save(Scores{})
}
