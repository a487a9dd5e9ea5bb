package tunnel

import "testing"

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name      string
		slot      int
		obstacles []Obstacle
		expected  Direction
	}{
		{"no obstacles", 0, nil, RotateNone},
		{"current slot open", 0, []Obstacle{walls(5, 1, 2, 3, 4, 5)}, RotateNone},
		{"open to the right", 0, []Obstacle{walls(5, 0, 2, 3, 4, 5)}, RotateRight},
		{"open to the left", 0, []Obstacle{walls(5, 0, 1, 2, 3, 4)}, RotateLeft},
		{"opposite goes right", 0, []Obstacle{walls(5, 0, 1, 2, 4, 5)}, RotateRight},
		{"left wraps from slot 1", 1, []Obstacle{walls(5, 0, 1, 2, 3, 4)}, RotateLeft},
		{"nearest obstacle wins", 0, []Obstacle{
			walls(20, 0, 2, 3, 4, 5),
			walls(5, 0, 1, 2, 3, 4),
		}, RotateLeft},
		{"passed obstacles ignored", 0, []Obstacle{
			walls(-2, 1, 2, 3, 4, 5),
			walls(5, 0, 2, 3, 4, 5),
		}, RotateRight},
		{"tie broken by next obstacle", 0, []Obstacle{
			walls(5, 0, 2, 3, 4),
			walls(15, 1, 2, 3),
		}, RotateLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := Snapshot{
				State:     StatePlaying,
				Slot:      tc.slot,
				Rotation:  float64(tc.slot) * SlotWidth,
				Obstacles: tc.obstacles,
				NearZone:  1,
				Despawn:   -1,
			}
			if got := Autopilot(snap); got != tc.expected {
				t.Errorf("Autopilot() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAutopilotIdleOutsideRun(t *testing.T) {
	snap := Snapshot{State: StateMenu, Obstacles: []Obstacle{walls(1, 0)}}
	if got := Autopilot(snap); got != RotateNone {
		t.Errorf("Autopilot() in menu = %v, expected %v", got, RotateNone)
	}
}
