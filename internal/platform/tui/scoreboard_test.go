package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/infinity-spectrum/internal/storage"
)

func scoreboardWithRuns(t *testing.T, runs ...storage.RunEntry) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return NewScoreboardModel(store, 100, 30)
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ScoreboardModel", next)
	}
	return sb
}

func TestScoreboardTabsFilterByDifficulty(t *testing.T) {
	m := scoreboardWithRuns(t,
		storage.RunEntry{Difficulty: 1, Score: 300, Passed: 3, Duration: time.Second},
		storage.RunEntry{Difficulty: 3, Score: 960, Passed: 6, Duration: time.Second},
	)
	if len(m.runs) != 2 {
		t.Fatalf("All tab has %d runs, expected 2", len(m.runs))
	}

	tests := []struct {
		tab   int
		score int
	}{
		{1, 300},
		{3, 960},
	}
	for _, tc := range tests {
		sb := m
		for range tc.tab {
			sb = updateScoreboard(t, sb, tea.KeyMsg{Type: tea.KeyTab})
		}
		if len(sb.runs) != 1 || sb.runs[0].Score != tc.score {
			t.Errorf("tab %d runs = %+v, expected one run scoring %d", tc.tab, sb.runs, tc.score)
		}
	}

	// Normal has no runs
	sb := updateScoreboard(t, updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab}), tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(sb.View(), "No runs recorded yet") {
		t.Errorf("empty tab view = %q, expected the empty message", sb.View())
	}
}

func TestScoreboardOrderToggle(t *testing.T) {
	m := scoreboardWithRuns(t,
		storage.RunEntry{Difficulty: 2, Score: 900, Duration: time.Second},
		storage.RunEntry{Difficulty: 2, Score: 100, Duration: time.Second},
	)
	if m.runs[0].Score != 900 {
		t.Fatalf("best order first score = %d, expected 900", m.runs[0].Score)
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	if m.order != orderRecent {
		t.Fatalf("order = %v, expected %v", m.order, orderRecent)
	}
	if len(m.runs) != 2 {
		t.Fatalf("latest order has %d runs, expected 2", len(m.runs))
	}
	if !strings.Contains(m.View(), "(latest)") {
		t.Error("title does not show the latest order")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := scoreboardWithRuns(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc did not set going back")
	}
	if cmd == nil {
		t.Error("standalone scoreboard should quit on back")
	}

	m.embedded = true
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("embedded scoreboard should not quit the program on back")
	}
}
