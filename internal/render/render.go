// Package render draws tunnel snapshots into a core.Screen.
//
// Rings are projected with a simple pinhole model: a ring at distance d has
// radius Near*Focus/(d+Focus), so the player plane (d=0) sits on the near
// hexagon and the ring grows past it while it despawns. Terminal cells are
// about twice as tall as wide, so x is stretched by CellAspect.
package render

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/infinity-spectrum/internal/core"
	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

// Render constants.
const (
	WallChar   = '█'
	GuideChar  = '·'
	PlayerChar = '▲'
	CellAspect = 2.0

	// DefaultVisibleDistance is how far ahead rings are drawn.
	DefaultVisibleDistance = 80.0
	// Focus controls how quickly rings shrink with distance.
	Focus = 3.0

	Title = "INFINITY SPECTRUM"
)

// Renderer draws snapshots. The zero value is not usable; use New.
type Renderer struct {
	VisibleDistance float64
}

// New creates a renderer with default settings.
func New() *Renderer {
	return &Renderer{VisibleDistance: DefaultVisibleDistance}
}

// Render draws the full frame for the snapshot's state.
func (r *Renderer) Render(dst *core.Screen, snap tunnel.Snapshot) {
	dst.Clear()

	switch snap.State {
	case tunnel.StateMenu:
		r.drawMenu(dst, snap)
	case tunnel.StatePlaying:
		r.drawTunnel(dst, snap)
		r.drawHUD(dst, snap)
	case tunnel.StateGameOver:
		r.drawTunnel(dst, snap)
		r.drawHUD(dst, snap)
		r.drawGameOver(dst, snap)
	}
}

// DrawPaused overlays the pause message on an already rendered frame and
// returns the area it covers.
func DrawPaused(dst *core.Screen) core.Rect {
	return drawCenteredMessage(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
}

// nearRadius is the vertical radius of the player-plane hexagon in rows.
func nearRadius(dst *core.Screen) float64 {
	byHeight := float64(dst.Height())/2 - 3
	byWidth := float64(dst.Width())/(2*CellAspect) - 2
	return math.Max(1, math.Min(byHeight, byWidth))
}

// projectRadius returns the on-screen radius of a ring at the given distance.
func projectRadius(near, distance float64) float64 {
	return near * Focus / (distance + Focus)
}

// vertex returns the screen position of hexagon corner k for the given rotation.
// Side i spans corners i and i+1; the player's slot faces down.
func vertex(cx, cy, radius, rotation float64, k int) (float64, float64) {
	angle := (float64(k)*tunnel.SlotWidth - tunnel.SlotWidth/2 - rotation) * math.Pi / 180
	return cx + math.Sin(angle)*radius*CellAspect, cy + math.Cos(angle)*radius
}

func (r *Renderer) drawTunnel(dst *core.Screen, snap tunnel.Snapshot) {
	cx := float64(dst.Width()-1) / 2
	cy := float64(dst.Height()-1) / 2
	near := nearRadius(dst)

	// Player plane guide
	for side := 0; side < tunnel.SlotCount; side++ {
		drawSide(dst, cx, cy, near, snap.Rotation, side, GuideChar, core.ColorGray)
	}

	// Far rings first so nearer ones overwrite them
	visible := make([]tunnel.Obstacle, 0, len(snap.Obstacles))
	for _, o := range snap.Obstacles {
		if o.Distance >= snap.Despawn && o.Distance <= r.VisibleDistance {
			visible = append(visible, o)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Distance > visible[j].Distance
	})

	for _, o := range visible {
		radius := projectRadius(near, o.Distance)
		if radius < 1 {
			continue
		}
		color := core.SpectrumColor(o.Pattern)
		if o.Distance <= snap.NearZone {
			color = core.ColorBrightWhite
		}
		for side, wall := range o.Sides {
			if wall {
				drawSide(dst, cx, cy, radius, snap.Rotation, side, WallChar, color)
			}
		}
	}

	// The player sits just outside the near hexagon, facing its slot
	dst.SetColored(int(math.Round(cx)), int(math.Round(cy+near+1)), PlayerChar, core.ColorBrightCyan)
}

// drawSide rasterizes one hexagon edge by sampling along it.
func drawSide(dst *core.Screen, cx, cy, radius, rotation float64, side int, ch rune, c core.Color) {
	x0, y0 := vertex(cx, cy, radius, rotation, side)
	x1, y1 := vertex(cx, cy, radius, rotation, side+1)

	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		dst.SetColored(int(math.Round(x)), int(math.Round(y)), ch, c)
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, snap tunnel.Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	level := fmt.Sprintf(" %s x%.1f ", strings.ToUpper(snap.Difficulty.String()), snap.Speed)
	dst.DrawText(dst.Width()-len(level)-2, 0, level, core.SpectrumColor(int(snap.Difficulty)-1))

	status := fmt.Sprintf(" Passed: %d  Time: %s  Best: %d ",
		snap.Passed, formatRunTime(snap.RunTime), snap.Highscores.Best())
	dst.DrawText(2, dst.Height()-1, status, core.ColorGray)
}

func (r *Renderer) drawMenu(dst *core.Screen, snap tunnel.Snapshot) {
	top := core.Clamp(dst.Height()/2-8, 0, dst.Height())

	// Title in spectrum colors
	x := (dst.Width() - len(Title)) / 2
	for i, ch := range Title {
		dst.SetColored(x+i, top, ch, core.SpectrumColor(i))
	}

	dst.DrawTextCentered(top+2, "Select difficulty", core.ColorWhite)
	options := []string{"1  Easy  ", "2  Normal", "3  Hard  "}
	for i, opt := range options {
		dst.DrawTextCentered(top+4+i, opt, core.SpectrumColor(i*2))
	}

	dst.DrawTextCentered(top+8, "Highscores", core.ColorBrightYellow)
	for i, line := range HighscoreLines(snap.Highscores) {
		dst.DrawTextCentered(top+10+i, line, core.ColorWhite)
	}

	dst.DrawTextCentered(top+16, "Tab: scoreboard   Q: quit", core.ColorGray)
}

func (r *Renderer) drawGameOver(dst *core.Screen, snap tunnel.Snapshot) {
	subtitle := fmt.Sprintf("Score: %d  |  Enter to continue", snap.Score)
	if snap.LastRank >= 0 {
		drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("NEW HIGHSCORE #%d", snap.LastRank+1), subtitle)
		return
	}
	drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER", subtitle)
}

// HighscoreLines formats the ledger as ranked lines.
func HighscoreLines(scores highscore.Scores) []string {
	lines := make([]string, 0, highscore.Size)
	for i, s := range scores {
		lines = append(lines, fmt.Sprintf("%d. %8d", i+1, s))
	}
	return lines
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) core.Rect {
	boxW := len([]rune(title)) + 8
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l))+6)
	}
	boxH := 4 + len(lines)

	box := dst.Bounds().Centered(boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
	return box
}

func formatRunTime(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	return fmt.Sprintf("%d:%04.1f", int(d.Minutes()), math.Mod(d.Seconds(), 60))
}
