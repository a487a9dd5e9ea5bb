package tunnel

import "math/rand"

// Generator produces obstacle batches from the pattern catalog.
type Generator struct {
	rng  *rand.Rand
	last int // Previous pattern, noPattern at the start of a run
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		last: noPattern,
	}
}

// Restart forgets the previous pattern so a new run starts unconstrained.
// The RNG stream continues.
func (g *Generator) Restart() {
	g.last = noPattern
}

// Generate appends count obstacles to dst, spaced by p from the given offset.
// Obstacle i lands at (i+offset)*p.Spacing + p.Base.
func (g *Generator) Generate(dst []Obstacle, count int, offset float64, p Params) []Obstacle {
	for i := 0; i < count; i++ {
		dst = append(dst, NewObstacle(g.nextPattern(), p.SpawnDistance(i, offset)))
	}
	return dst
}

// nextPattern picks a catalog index, resampling once if it repeats or mirrors
// the previous pick. The first pick after Restart is never resampled.
func (g *Generator) nextPattern() int {
	p := g.rng.Intn(PatternCount)
	if g.last != noPattern && mirrors(p, g.last) {
		p = g.rng.Intn(PatternCount)
	}
	g.last = p
	return p
}
