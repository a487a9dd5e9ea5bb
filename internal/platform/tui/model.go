package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
	"github.com/vovakirdan/infinity-spectrum/internal/core"
	"github.com/vovakirdan/infinity-spectrum/internal/render"
	"github.com/vovakirdan/infinity-spectrum/internal/storage"
	"github.com/vovakirdan/infinity-spectrum/internal/tunnel"
)

// keyHold is how long a rotation key counts as held after a press.
// Terminals report no key-up, and auto-repeat presses extend the hold.
const keyHold = 200 * time.Millisecond

// Options configures a tunnel host.
type Options struct {
	Tunnel     config.TunnelConfig
	Runtime    core.RuntimeConfig
	Ledger     tunnel.Ledger
	Store      *storage.Store     // Run history, optional
	Logger     *log.Logger        // Optional, discards by default
	Difficulty tunnel.Difficulty  // Start a run at once instead of showing the menu
	Renderer   *lipgloss.Renderer // Color profile of the client, default renderer when nil
}

// hold is the rotation the player is currently holding.
type hold struct {
	dir   tunnel.Direction
	until time.Time
}

// Model is the Bubble Tea model hosting one tunnel session.
type Model struct {
	session    *tunnel.Session
	renderer   *render.Renderer
	painter    *Painter
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	hold       hold
	lastTick   time.Time
	clock      func() time.Time
	scoreboard *ScoreboardModel
	paused     bool
	quitting   bool
}

// NewModel creates a host model and its session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionOpts := []tunnel.Option{tunnel.WithSeed(cfg.Seed), tunnel.WithLogger(logger)}
	if opts.Ledger != nil {
		sessionOpts = append(sessionOpts, tunnel.WithLedger(opts.Ledger))
	}
	session := tunnel.NewSession(opts.Tunnel, sessionOpts...)

	if opts.Difficulty != tunnel.DifficultyNone {
		if err := session.SelectDifficulty(opts.Difficulty); err != nil {
			logger.Warn("Ignoring preset difficulty", "difficulty", opts.Difficulty, "err", err)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		renderer:   render.New(),
		painter:    NewPainter(opts.Renderer),
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		clock:      time.Now,
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateScoreboard(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.ForState(m.session.State(), m.paused).Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionScores:
		m.openScoreboard()
	case core.ActionLeft:
		m.hold = hold{dir: tunnel.RotateLeft, until: m.clock().Add(keyHold)}
	case core.ActionRight:
		m.hold = hold{dir: tunnel.RotateRight, until: m.clock().Add(keyHold)}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the frame's input and advances the session by the time
// measured since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}

	switch m.session.State() {
	case tunnel.StateMenu:
		if level := m.inputFrame.DifficultyLevel(); level != 0 {
			if err := m.session.SelectDifficulty(tunnel.Difficulty(level)); err != nil {
				m.logger.Warn("Difficulty selection rejected", "level", level, "err", err)
			}
		}
	case tunnel.StatePlaying:
		if m.inputFrame.Has(core.ActionPause) {
			m.paused = !m.paused
			m.logger.Debug("Pause toggled", "paused", m.paused)
		}
	case tunnel.StateGameOver:
		if m.inputFrame.Has(core.ActionConfirm) {
			if err := m.session.ConfirmGameOver(); err != nil {
				m.logger.Warn("Confirm rejected", "err", err)
			}
		}
	}
	m.inputFrame.Clear()

	// While paused the session is not ticked; the first tick after resuming
	// is clamped by the session.
	if !m.paused {
		res := m.session.Tick(elapsed, m.direction(now))
		m.handleEvents(res.Events)
		m.lastTick = now
	}

	return m, tickCmd(m.config.TickRate)
}

// direction returns the held rotation at the given time.
func (m Model) direction(now time.Time) tunnel.Direction {
	if now.Before(m.hold.until) {
		return m.hold.dir
	}
	return tunnel.RotateNone
}

func (m Model) handleEvents(events []tunnel.Event) {
	for _, e := range events {
		m.logger.Debug("Event", "kind", e.Kind, "score", e.Score)
		if e.Kind == tunnel.EventCollided {
			m.recordRun()
		}
	}
}

// recordRun stores the finished run in the history database.
func (m Model) recordRun() {
	if m.store == nil {
		return
	}
	snap := m.session.Snapshot()
	_, err := m.store.SaveRun(storage.RunEntry{
		Difficulty: int(snap.Difficulty),
		Score:      snap.Score,
		Passed:     snap.Passed,
		Duration:   snap.RunTime,
	})
	if err != nil {
		m.logger.Warn("Failed to record run", "err", err)
	}
}

func (m *Model) openScoreboard() {
	if m.store == nil {
		m.logger.Debug("Scoreboard unavailable without run history")
		return
	}
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	sb.embedded = true
	m.scoreboard = &sb
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		next, _ := m.handleResize(wsm)
		m = next.(Model)
	}

	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.session.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".spectrum", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("spectrum_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.renderer.Render(m.screen, m.session.Snapshot())
	var focus *core.Rect
	if m.paused {
		banner := render.DrawPaused(m.screen)
		focus = &banner
	}

	return m.painter.Paint(m.screen, focus) + "\n" + m.help.View(m.keys.ForState(m.session.State(), m.paused))
}

// Session returns the hosted session.
func (m Model) Session() *tunnel.Session {
	return m.session
}

// Paused reports whether the host has paused the run.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
