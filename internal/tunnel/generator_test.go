package tunnel

import (
	"testing"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
)

func TestPatternCatalog(t *testing.T) {
	seen := make(map[uint8]bool)
	for p := 0; p < PatternCount; p++ {
		walls := 0
		for _, wall := range PatternSides(p) {
			if wall {
				walls++
			}
		}
		if walls == 0 || walls == SlotCount {
			t.Errorf("pattern %d has %d walls, expected between 1 and %d", p, walls, SlotCount-1)
		}
		if seen[patterns[p]] {
			t.Errorf("pattern %d duplicates an earlier entry", p)
		}
		seen[patterns[p]] = true
	}
}

func TestMirrors(t *testing.T) {
	tests := []struct {
		p, last  int
		expected bool
	}{
		{5, 5, true},
		{8, 5, true},
		{2, 5, true},
		{4, 5, false},
		{6, 5, false},
		{1, 9, true},  // 9+3 wraps to 1
		{10, 2, true}, // 2-3 wraps to 10
		{0, 10, false},
	}

	for _, tc := range tests {
		if got := mirrors(tc.p, tc.last); got != tc.expected {
			t.Errorf("mirrors(%d, %d) = %v, expected %v", tc.p, tc.last, got, tc.expected)
		}
	}
}

func TestDifficultyTable(t *testing.T) {
	table := NewTable(config.DefaultTunnelConfig())

	tests := []struct {
		d         Difficulty
		spacing   float64
		base      float64
		speed     float64
		passScore int
	}{
		{DifficultyEasy, 11, 16, 1.0, 100},
		{DifficultyNormal, 16, 40, 1.3, 130},
		{DifficultyHard, 28, 58, 1.6, 160},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			p, ok := table[tc.d]
			if !ok {
				t.Fatalf("table has no entry for %v", tc.d)
			}
			if p.Spacing != tc.spacing || p.Base != tc.base || p.Speed != tc.speed {
				t.Errorf("params = %+v, expected spacing %v base %v speed %v", p, tc.spacing, tc.base, tc.speed)
			}
			if p.PassScore != tc.passScore {
				t.Errorf("PassScore = %d, expected %d", p.PassScore, tc.passScore)
			}
		})
	}
}

func TestGenerateDistances(t *testing.T) {
	p := NewTable(config.DefaultTunnelConfig())[DifficultyNormal]
	g := NewGenerator(1)

	obstacles := g.Generate(nil, 4, 0, p)
	for i, o := range obstacles {
		if expected := float64(i)*16 + 40; o.Distance != expected {
			t.Errorf("obstacle %d distance = %v, expected %v", i, o.Distance, expected)
		}
		if o.Sides != PatternSides(o.Pattern) {
			t.Errorf("obstacle %d sides do not match pattern %d", i, o.Pattern)
		}
	}

	obstacles = g.Generate(obstacles, 1, 2.5, p)
	if got := obstacles[4].Distance; got != 2.5*16+40 {
		t.Errorf("offset spawn distance = %v, expected %v", got, 2.5*16+40)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	p := NewTable(config.DefaultTunnelConfig())[DifficultyEasy]

	a := NewGenerator(12345).Generate(nil, 200, 0, p)
	b := NewGenerator(12345).Generate(nil, 200, 0, p)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs between runs with the same seed", i)
		}
	}
}

func TestGeneratorAntiRepeat(t *testing.T) {
	p := NewTable(config.DefaultTunnelConfig())[DifficultyEasy]
	g := NewGenerator(99)

	if g.last != noPattern {
		t.Fatalf("new generator last = %d, expected noPattern", g.last)
	}

	const n = 20000
	obstacles := g.Generate(nil, n, 0, p)
	repeats := 0
	for i := 1; i < n; i++ {
		if mirrors(obstacles[i].Pattern, obstacles[i-1].Pattern) {
			repeats++
		}
	}

	// Unconstrained picks would repeat or mirror 3/11 of the time; one
	// resample brings that down to about (3/11)^2.
	if rate := float64(repeats) / n; rate > 0.15 {
		t.Errorf("repeat/mirror rate = %.3f, expected well below 0.27", rate)
	}

	g.Restart()
	if g.last != noPattern {
		t.Errorf("Restart() left last = %d, expected noPattern", g.last)
	}
}
