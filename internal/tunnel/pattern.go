package tunnel

// PatternCount is the size of the wall pattern catalog.
const PatternCount = 11

// noPattern marks a generator that has not picked a pattern yet.
const noPattern = -1

// patterns holds the wall layouts; bit i set means side i is blocked.
// Every layout leaves at least one side open and blocks at least one.
var patterns = [PatternCount]uint8{
	0b011111, // five walls, gap on side 5
	0b010101, // alternating, even sides
	0b101010, // alternating, odd sides
	0b011011, // two opposite gaps
	0b001001, // two opposite walls
	0b000111, // sides 0-2
	0b111000, // sides 3-5
	0b001111, // four walls, two gaps together
	0b111110, // five walls, gap on side 0
	0b101101, // gaps on sides 1 and 4
	0b110011, // gap pair around sides 2-3
}

// PatternSides expands catalog entry p into per-side wall flags.
func PatternSides(p int) [SlotCount]bool {
	var sides [SlotCount]bool
	mask := patterns[p]
	for i := range sides {
		sides[i] = mask&(1<<i) != 0
	}
	return sides
}

// mirrors reports whether pattern p repeats or mirrors the previous pick.
// The relation wraps around the catalog.
func mirrors(p, last int) bool {
	return p == last ||
		p == (last+3)%PatternCount ||
		p == (last-3+PatternCount)%PatternCount
}
