package tunnel

import (
	"time"

	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
)

// Snapshot is a read-only copy of the session for renderers and bots.
type Snapshot struct {
	State      State
	Difficulty Difficulty
	Speed      float64
	Rotation   float64
	Slot       int
	Score      int
	Passed     int
	RunTime    time.Duration
	LastRank   int // Ledger rank of the last finished run, -1 if it did not qualify
	Obstacles  []Obstacle
	Highscores highscore.Scores
	NearZone   float64
	Despawn    float64
}

// Snapshot copies the current state. Obstacles are in queue (spawn) order.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)

	return Snapshot{
		State:      s.state,
		Difficulty: s.difficulty,
		Speed:      s.params.Speed,
		Rotation:   s.rotation,
		Slot:       SlotOf(s.rotation),
		Score:      s.score,
		Passed:     s.passed,
		RunTime:    s.runTime,
		LastRank:   s.lastRank,
		Obstacles:  obstacles,
		Highscores: s.highscores,
		NearZone:   s.cfg.Obstacles.NearZoneDistance,
		Despawn:    s.cfg.Obstacles.DespawnDistance,
	}
}

// Nearest returns the closest obstacle not yet behind the camera.
func (s Snapshot) Nearest() (Obstacle, bool) {
	return s.nearestAfter(s.Despawn, -1)
}

// nearestAfter returns the closest obstacle at or beyond minDist, skipping index skip.
func (s Snapshot) nearestAfter(minDist float64, skip int) (Obstacle, bool) {
	best := -1
	for i, o := range s.Obstacles {
		if i == skip || o.Distance < minDist {
			continue
		}
		if best < 0 || o.Distance < s.Obstacles[best].Distance {
			best = i
		}
	}
	if best < 0 {
		return Obstacle{}, false
	}
	return s.Obstacles[best], true
}
