package tunnel

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestWrap360(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{-720.5, 359.5},
		{1080, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tc := range tests {
		got := Wrap360(tc.in)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Wrap360(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestWrap360Range(t *testing.T) {
	inputs := []float64{-1e-20, 1e-20, -359.9999999, 1e12, -1e12, 360 * 64, -360*64 - 0.5}
	for _, in := range inputs {
		got := Wrap360(in)
		if got < 0 || got >= 360 {
			t.Errorf("Wrap360(%v) = %v, outside [0, 360)", in, got)
		}
	}
}

func TestSlotOf(t *testing.T) {
	tests := []struct {
		rotation float64
		expected int
	}{
		{0, 0},
		{29.9, 0},
		{30, 1},
		{89.9, 1},
		{90, 2},
		{120, 2},
		{180, 3},
		{269.9, 4},
		{330, 0},
		{359.9, 0},
		{-30, 0},
		{-31, 5},
		{390, 1},
	}

	for _, tc := range tests {
		if got := SlotOf(tc.rotation); got != tc.expected {
			t.Errorf("SlotOf(%v) = %d, expected %d", tc.rotation, got, tc.expected)
		}
	}
}

func TestSideSlot(t *testing.T) {
	for side := 0; side < SlotCount; side++ {
		if got := SideSlot(side); got != side {
			t.Errorf("SideSlot(%d) = %d, expected %d", side, got, side)
		}
	}
}

func TestRotationStaysWrapped(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(7))

	s := NewSession(cfg, WithSeed(7))
	if err := s.SelectDifficulty(DifficultyHard); err != nil {
		t.Fatalf("SelectDifficulty() failed: %v", err)
	}
	// Keep the run alive so only rotation is exercised
	s.obstacles = []Obstacle{{Distance: 1e9}}

	for i := 0; i < 5000; i++ {
		dir := Direction(rng.Intn(7) - 3)
		elapsed := time.Duration(rng.Int63n(int64(300*time.Millisecond))) - 50*time.Millisecond
		s.Tick(elapsed, dir)

		if r := s.Rotation(); r < 0 || r >= 360 {
			t.Fatalf("tick %d: rotation %v outside [0, 360)", i, r)
		}
	}
}
