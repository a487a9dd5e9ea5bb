package tunnel

// Obstacle is one ring of walls travelling toward the player.
// Sides never change after creation; Distance shrinks every tick.
type Obstacle struct {
	Sides    [SlotCount]bool
	Distance float64
	Pattern  int // Catalog index the sides came from
}

// NewObstacle creates an obstacle from a catalog pattern at the given distance.
func NewObstacle(pattern int, distance float64) Obstacle {
	return Obstacle{
		Sides:    PatternSides(pattern),
		Distance: distance,
		Pattern:  pattern,
	}
}

// Blocks reports whether any wall of the ring occupies the given slot.
func (o Obstacle) Blocks(slot int) bool {
	for i, wall := range o.Sides {
		if wall && SideSlot(i) == slot {
			return true
		}
	}
	return false
}

// OpenSlots returns the slots the ring leaves free.
func (o Obstacle) OpenSlots() []int {
	open := make([]int, 0, SlotCount)
	for slot := 0; slot < SlotCount; slot++ {
		if !o.Blocks(slot) {
			open = append(open, slot)
		}
	}
	return open
}
