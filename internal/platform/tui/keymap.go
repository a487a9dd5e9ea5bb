package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/infinity-spectrum/internal/core"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

// KeyMap defines the key bindings of the tunnel screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Easy    key.Binding
	Normal  key.Binding
	Hard    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "rotate right"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Normal: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "normal"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scoreboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the enabled bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Easy, k.Normal, k.Hard, k.Confirm, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause},
		{k.Easy, k.Normal, k.Hard},
		{k.Confirm, k.Scores, k.Quit},
	}
}

// ForState enables only the bindings that do something in the given state.
func (k KeyMap) ForState(state tunnel.State, paused bool) KeyMap {
	inMenu := state == tunnel.StateMenu
	inRun := state == tunnel.StatePlaying

	k.Left.SetEnabled(inRun && !paused)
	k.Right.SetEnabled(inRun && !paused)
	k.Easy.SetEnabled(inMenu)
	k.Normal.SetEnabled(inMenu)
	k.Hard.SetEnabled(inMenu)
	k.Confirm.SetEnabled(state == tunnel.StateGameOver)
	k.Pause.SetEnabled(inRun)
	k.Scores.SetEnabled(inMenu)
	return k
}

// Action translates a key message to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Easy):
		return core.ActionEasy
	case key.Matches(msg, k.Normal):
		return core.ActionNormal
	case key.Matches(msg, k.Hard):
		return core.ActionHard
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	}
	return core.ActionNone
}
