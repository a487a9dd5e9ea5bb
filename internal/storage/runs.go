package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// AllDifficulties selects runs of every difficulty in queries.
const AllDifficulties = 0

// RunEntry is one finished run.
type RunEntry struct {
	ID         int64
	Difficulty int
	Score      int
	Passed     int // Obstacles passed
	Duration   time.Duration
	CreatedAt  time.Time
}

// RunStats contains aggregated statistics for one difficulty.
type RunStats struct {
	Difficulty  int
	RunsCount   int
	HighScore   int
	AvgScore    float64
	TotalPassed int64
	LongestRun  time.Duration
	LastPlayed  time.Time
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (difficulty, score, passed, duration_ms) VALUES (?, ?, ?, ?)",
		run.Difficulty, run.Score, run.Passed, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for the given difficulty (AllDifficulties for every level).
// Results are ordered by score descending.
func (s *Store) TopRuns(difficulty, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, passed, duration_ms, created_at
		 FROM runs
		 WHERE ? = 0 OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs of any difficulty, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, passed, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e          RunEntry
			durationMs int64
			createdAt  any
		)
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &e.Passed, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes the run history of one difficulty, or all of it for AllDifficulties.
func (s *Store) ClearRuns(difficulty int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = 0 OR difficulty = ?", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every difficulty that has been played.
func (s *Store) Stats() (map[int]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(passed), MAX(duration_ms), MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*RunStats)
	for rows.Next() {
		var (
			st         RunStats
			longestMs  int64
			lastPlayed any
		)
		if err := rows.Scan(&st.Difficulty, &st.RunsCount, &st.HighScore, &st.AvgScore, &st.TotalPassed, &longestMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LongestRun = time.Duration(longestMs) * time.Millisecond
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
