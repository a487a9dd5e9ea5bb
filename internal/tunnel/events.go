package tunnel

import "fmt"

// EventKind identifies a discrete signal the host may map to a sound or effect.
type EventKind int

const (
	EventDifficultySelected EventKind = iota + 1
	EventObstaclePassed
	EventCollided
	EventNewHighscore
)

func (k EventKind) String() string {
	switch k {
	case EventDifficultySelected:
		return "difficulty_selected"
	case EventObstaclePassed:
		return "obstacle_passed"
	case EventCollided:
		return "collided"
	case EventNewHighscore:
		return "new_highscore"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is raised by the session. Fields beyond Kind are filled where they apply:
// Score after a pass or collision, Slot on collision, Rank (0-based) for a new highscore.
type Event struct {
	Kind       EventKind
	Difficulty Difficulty
	Score      int
	Slot       int
	Rank       int
}
