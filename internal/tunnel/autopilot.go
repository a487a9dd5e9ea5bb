package tunnel

// Autopilot picks a rotation input from a snapshot. It steers toward the open
// slot of the nearest threatening obstacle that is closest to the player,
// preferring on ties a slot that the obstacle after it also leaves open.
func Autopilot(snap Snapshot) Direction {
	if snap.State != StatePlaying {
		return RotateNone
	}
	target, ok := snap.Nearest()
	if !ok {
		return RotateNone
	}
	if !target.Blocks(snap.Slot) {
		return RotateNone
	}
	next, hasNext := snap.nearestAfter(target.Distance, indexOf(snap.Obstacles, target))

	best, bestDist := -1, SlotCount
	for _, slot := range target.OpenSlots() {
		d := slotDistance(snap.Slot, slot)
		switch {
		case d < bestDist:
			best, bestDist = slot, d
		case d == bestDist && hasNext && next.Blocks(best) && !next.Blocks(slot):
			best = slot
		}
	}
	if best < 0 {
		return RotateNone
	}
	return steer(snap.Slot, best)
}

// steer returns the rotation that reaches target by the shorter way round.
func steer(from, target int) Direction {
	delta := (target - from + SlotCount) % SlotCount
	switch {
	case delta == 0:
		return RotateNone
	case delta <= SlotCount/2:
		return RotateRight
	default:
		return RotateLeft
	}
}

// slotDistance is the circular distance between two slots.
func slotDistance(a, b int) int {
	d := (a - b + SlotCount) % SlotCount
	if d > SlotCount-d {
		return SlotCount - d
	}
	return d
}

func indexOf(obstacles []Obstacle, o Obstacle) int {
	for i, candidate := range obstacles {
		if candidate == o {
			return i
		}
	}
	return -1
}
