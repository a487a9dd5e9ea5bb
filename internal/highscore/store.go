package highscore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/infinity-spectrum/internal/core"
)

// Store loads and saves the ledger.
// Load must return usable scores alongside ErrMalformed-wrapping errors.
type Store interface {
	Load() (Scores, error)
	Save(Scores) error
}

// FileStore keeps the ledger in a plain text file.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given path; a leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := core.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("highscore: %w", err)
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the ledger. A missing file is an empty ledger.
func (f *FileStore) Load() (Scores, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Scores{}, nil
	}
	if err != nil {
		return Scores{}, fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Save writes the ledger atomically: a temp file in the same directory is
// renamed over the old one.
func (f *FileStore) Save(s Scores) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if err := Encode(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// MemoryStore keeps the ledger in memory. Used when nothing should touch disk.
type MemoryStore struct {
	scores Scores
}

// NewMemoryStore creates a store seeded with the given scores.
func NewMemoryStore(seed Scores) *MemoryStore {
	return &MemoryStore{scores: seed}
}

// Load returns the stored scores.
func (m *MemoryStore) Load() (Scores, error) {
	return m.scores, nil
}

// Save replaces the stored scores.
func (m *MemoryStore) Save(s Scores) error {
	m.scores = s
	return nil
}
