package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/infinity-spectrum/internal/core"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"1", runeKey("1"), core.ActionEasy},
		{"2", runeKey("2"), core.ActionNormal},
		{"3", runeKey("3"), core.ActionHard},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runeKey("p"), core.ActionPause},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapForState(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		state    tunnel.State
		paused   bool
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"rotation ignored in menu", tunnel.StateMenu, false, tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone},
		{"difficulty in menu", tunnel.StateMenu, false, runeKey("2"), core.ActionNormal},
		{"difficulty ignored while playing", tunnel.StatePlaying, false, runeKey("2"), core.ActionNone},
		{"rotation while playing", tunnel.StatePlaying, false, tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"rotation ignored while paused", tunnel.StatePlaying, true, tea.KeyMsg{Type: tea.KeyRight}, core.ActionNone},
		{"unpause while paused", tunnel.StatePlaying, true, runeKey("p"), core.ActionPause},
		{"confirm only after game over", tunnel.StatePlaying, false, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"confirm after game over", tunnel.StateGameOver, false, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"quit everywhere", tunnel.StateGameOver, false, runeKey("q"), core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := keys.ForState(tc.state, tc.paused).Action(tc.msg)
			if got != tc.expected {
				t.Errorf("Action() = %v, expected %v", got, tc.expected)
			}
		})
	}

	// ForState must not mutate the base key map
	if !keys.Left.Enabled() || !keys.Easy.Enabled() {
		t.Error("ForState() changed the original bindings")
	}
}
