package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for tunnel elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// spectrum is the hue cycle used to tint consecutive obstacle rings.
var spectrum = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// SpectrumColor returns the i-th color of the ring hue cycle.
// Negative indices wrap around like positive ones.
func SpectrumColor(i int) Color {
	n := len(spectrum)
	return spectrum[((i%n)+n)%n]
}
