package tunnel

import "math"

// Tunnel geometry: the ring is split into SlotCount sectors of SlotWidth degrees.
const (
	SlotCount = 6
	SlotWidth = 360.0 / SlotCount
)

// wrapLimit bounds the add/subtract loop in Wrap360; larger inputs are reduced first.
const wrapLimit = 360 * 64

// Direction is the player's rotation input for one tick.
type Direction int

const (
	RotateLeft  Direction = -1
	RotateNone  Direction = 0
	RotateRight Direction = 1
)

// normalize maps any value onto -1, 0 or +1.
func (d Direction) normalize() Direction {
	switch {
	case d < 0:
		return RotateLeft
	case d > 0:
		return RotateRight
	default:
		return RotateNone
	}
}

// Wrap360 maps an angle in degrees into [0, 360) by adding or subtracting full
// turns. NaN and infinities map to 0.
func Wrap360(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	if math.Abs(deg) > wrapLimit {
		deg = math.Mod(deg, 360)
	}
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// SlotOf returns the sector (0..5) an angle falls into.
// Sectors are centered on multiples of SlotWidth, so slot 0 spans [330, 30).
func SlotOf(rotation float64) int {
	return int(math.Floor((Wrap360(rotation)+SlotWidth/2)/SlotWidth)) % SlotCount
}

// SideSlot returns the sector occupied by wall side i of an obstacle ring.
func SideSlot(side int) int {
	return SlotOf(float64(side) * SlotWidth)
}
