package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - rotate counter-clockwise
	ActionRight          // D, Right arrow - rotate clockwise
	ActionEasy           // 1 - select difficulty 1 in the menu
	ActionNormal         // 2 - select difficulty 2 in the menu
	ActionHard           // 3 - select difficulty 3 in the menu
	ActionConfirm        // Enter, Space - acknowledge game over
	ActionPause          // P - pause/unpause the run
	ActionScores         // Tab - open the scoreboard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEasy:
		return "Easy"
	case ActionNormal:
		return "Normal"
	case ActionHard:
		return "Hard"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state collected during one host frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction folds the rotation actions into -1, 0 or +1.
// Left and right together cancel out.
func (f InputFrame) Direction() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

// DifficultyLevel returns the difficulty chosen this frame (1..3), or 0.
func (f InputFrame) DifficultyLevel() int {
	switch {
	case f.Has(ActionEasy):
		return 1
	case f.Has(ActionNormal):
		return 2
	case f.Has(ActionHard):
		return 3
	}
	return 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
