package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/infinity-spectrum/internal/core"
)

// palette holds the ANSI 256 code for every core.Color, indexed by the color.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Painter turns a screen buffer into styled terminal output.
// Each SSH session gets its own painter bound to that client's color profile.
type Painter struct {
	styles []lipgloss.Style
	dim    lipgloss.Style
}

// NewPainter builds the styles on r, or on the default renderer when r is nil.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{
		styles: make([]lipgloss.Style, len(palette)),
		dim:    r.NewStyle().Foreground(lipgloss.Color(palette[core.ColorGray])).Faint(true),
	}
	for c, code := range palette {
		style := r.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		p.styles[c] = style
	}
	return p
}

// Paint renders s row by row. Runs of equal color share one escape sequence.
// With a non-nil focus every cell outside it is drawn in faint gray.
func (p *Painter) Paint(s *core.Screen, focus *core.Rect) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			style := p.cellStyle(s, focus, x, y)
			run.Reset()
			for ; x < s.Width(); x++ {
				if x > 0 && !p.sameStyle(s, focus, x-1, x, y) {
					break
				}
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func (p *Painter) cellStyle(s *core.Screen, focus *core.Rect, x, y int) lipgloss.Style {
	if focus != nil && !focus.Contains(x, y) {
		return p.dim
	}
	c := s.GetCell(x, y).Color
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// sameStyle reports whether cells a and b on row y are painted alike.
func (p *Painter) sameStyle(s *core.Screen, focus *core.Rect, a, b, y int) bool {
	if focus != nil {
		inA, inB := focus.Contains(a, y), focus.Contains(b, y)
		if inA != inB {
			return false
		}
		if !inA {
			return true
		}
	}
	return s.GetCell(a, y).Color == s.GetCell(b, y).Color
}
