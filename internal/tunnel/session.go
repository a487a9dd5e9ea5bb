package tunnel

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infinity-spectrum/internal/config"
	"github.com/vovakirdan/infinity-spectrum/internal/highscore"
)

// State is the session's game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrInvalidDifficulty is returned when a level outside 1..3 is selected.
	ErrInvalidDifficulty = errors.New("tunnel: invalid difficulty")
	// ErrWrongState is returned when an operation does not apply to the current state.
	ErrWrongState = errors.New("tunnel: not allowed in current state")
)

// Ledger is the highscore table a session reports finished runs to.
type Ledger interface {
	Scores() (highscore.Scores, error)
	Submit(score int) (int, error)
}

// TickResult is what the host gets back from every Tick.
type TickResult struct {
	State  State
	Score  int
	Events []Event
}

// Collided reports whether the run ended during this tick.
func (r TickResult) Collided() bool {
	for _, e := range r.Events {
		if e.Kind == EventCollided {
			return true
		}
	}
	return false
}

// Option configures a Session.
type Option func(*Session)

// WithLedger makes the session read highscores from l and submit finished runs to it.
func WithLedger(l Ledger) Option {
	return func(s *Session) {
		s.ledger = l
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed fixes the obstacle generator seed.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session is one player's tunnel run: rotation, obstacle queue, score and state.
// It is not safe for concurrent use; the host drives it from a single goroutine.
type Session struct {
	cfg    config.TunnelConfig
	table  Table
	gen    *Generator
	ledger Ledger
	logger *log.Logger
	seed   int64

	state      State
	difficulty Difficulty
	params     Params
	rotation   float64
	score      int
	passed     int
	runTime    time.Duration
	lastRank   int
	obstacles  []Obstacle
	highscores highscore.Scores

	// Raised outside Tick, delivered with the next one
	pending []Event
}

// NewSession creates a session in the menu state. The config is expected to be validated.
func NewSession(cfg config.TunnelConfig, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		table:    NewTable(cfg),
		logger:   log.New(io.Discard),
		seed:     time.Now().UnixNano(),
		state:    StateMenu,
		lastRank: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gen = NewGenerator(s.seed)
	s.obstacles = make([]Obstacle, 0, cfg.Obstacles.SeedCount)
	s.loadHighscores()
	return s
}

// SelectDifficulty starts a run. It is only valid in the menu; an unknown
// level is rejected without touching the session.
func (s *Session) SelectDifficulty(d Difficulty) error {
	if s.state != StateMenu {
		return fmt.Errorf("%w: select difficulty in %s", ErrWrongState, s.state)
	}
	p, ok := s.table[d]
	if !d.Valid() || !ok {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}

	s.difficulty = d
	s.params = p
	s.rotation = 0
	s.score = 0
	s.passed = 0
	s.runTime = 0
	s.lastRank = -1
	s.gen.Restart()
	s.obstacles = s.gen.Generate(s.obstacles[:0], s.cfg.Obstacles.SeedCount, 0, p)
	s.state = StatePlaying

	s.pending = append(s.pending, Event{Kind: EventDifficultySelected, Difficulty: d})
	s.logger.Info("Run started", "difficulty", d, "speed", p.Speed, "obstacles", len(s.obstacles))
	return nil
}

// ConfirmGameOver acknowledges a finished run and returns to the menu.
func (s *Session) ConfirmGameOver() error {
	if s.state != StateGameOver {
		return fmt.Errorf("%w: confirm in %s", ErrWrongState, s.state)
	}
	s.obstacles = s.obstacles[:0]
	s.state = StateMenu
	s.loadHighscores()
	return nil
}

// Tick advances the run by elapsed host time with the given rotation input.
// Elapsed time is clamped to [0, MaxFrame] and simulated in sub-steps of at
// most MaxStep, so an obstacle can never cross the near zone untested.
// Outside the playing state only pending events are delivered.
func (s *Session) Tick(elapsed time.Duration, dir Direction) TickResult {
	events := s.pending
	s.pending = nil

	if s.state != StatePlaying {
		return TickResult{State: s.state, Score: s.score, Events: events}
	}

	elapsed = s.clamp(elapsed)
	steps := s.stepCount(elapsed)
	dt := elapsed.Seconds() / float64(steps)
	dir = dir.normalize()

	for i := 0; i < steps && s.state == StatePlaying; i++ {
		events = s.step(dt, dir, events)
	}
	s.runTime += elapsed

	return TickResult{State: s.state, Score: s.score, Events: events}
}

func (s *Session) clamp(elapsed time.Duration) time.Duration {
	switch {
	case elapsed < 0:
		s.logger.Debug("Negative elapsed time ignored", "elapsed", elapsed)
		return 0
	case elapsed > s.cfg.Timing.MaxFrame:
		s.logger.Debug("Elapsed time clamped", "elapsed", elapsed, "max", s.cfg.Timing.MaxFrame)
		return s.cfg.Timing.MaxFrame
	default:
		return elapsed
	}
}

// stepCount splits elapsed into sub-steps; a zero frame still gets one collision pass.
func (s *Session) stepCount(elapsed time.Duration) int {
	maxStep := s.cfg.Timing.MaxStep
	if elapsed <= 0 || maxStep <= 0 {
		return 1
	}
	return int((elapsed + maxStep - 1) / maxStep)
}

// step runs rotate, advance, collide and commit for one sub-step.
func (s *Session) step(dt float64, dir Direction, events []Event) []Event {
	s.rotate(dt, dir)
	s.advance(dt)

	if i, hit := s.collision(); hit {
		return s.collide(i, events)
	}
	return s.commit(events)
}

func (s *Session) rotate(dt float64, dir Direction) {
	delta := dt * s.cfg.Rotation.DegreesPerSecond * float64(dir) * s.params.Speed
	s.rotation = Wrap360(s.rotation + delta)
}

func (s *Session) advance(dt float64) {
	delta := dt * s.cfg.Obstacles.AdvancePerSecond * s.params.Advance
	for i := range s.obstacles {
		s.obstacles[i].Distance -= delta
	}
}

// collision tests every obstacle inside the near zone against the player slot
// and returns the first one that blocks it. Nothing is removed before this pass.
func (s *Session) collision() (int, bool) {
	slot := SlotOf(s.rotation)
	for i, o := range s.obstacles {
		if !s.inNearZone(o.Distance) {
			continue
		}
		if o.Blocks(slot) {
			return i, true
		}
	}
	return -1, false
}

func (s *Session) inNearZone(distance float64) bool {
	return distance >= s.cfg.Obstacles.DespawnDistance && distance <= s.cfg.Obstacles.NearZoneDistance
}

// commit removes passed obstacles in one compaction pass, scores them and
// respawns one replacement per removal at the tail of the queue.
func (s *Session) commit(events []Event) []Event {
	despawn := s.cfg.Obstacles.DespawnDistance
	kept := s.obstacles[:0]
	removed := 0
	for _, o := range s.obstacles {
		if o.Distance < despawn {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept

	for ; removed > 0; removed-- {
		s.score += s.params.PassScore
		s.passed++
		events = append(events, Event{
			Kind:       EventObstaclePassed,
			Difficulty: s.difficulty,
			Score:      s.score,
		})
		s.respawn()
	}
	return events
}

// respawn appends one obstacle exactly one spacing beyond the farthest queued one.
func (s *Session) respawn() {
	offset := 0.0
	if len(s.obstacles) > 0 {
		tail := math.Inf(-1)
		for _, o := range s.obstacles {
			tail = math.Max(tail, o.Distance)
		}
		offset = (tail-s.params.Base)/s.params.Spacing + 1
	}
	s.obstacles = s.gen.Generate(s.obstacles, 1, offset, s.params)
}

// collide ends the run and offers the score to the ledger.
func (s *Session) collide(index int, events []Event) []Event {
	slot := SlotOf(s.rotation)
	s.state = StateGameOver
	events = append(events, Event{
		Kind:       EventCollided,
		Difficulty: s.difficulty,
		Score:      s.score,
		Slot:       slot,
	})
	s.logger.Info("Collision",
		"difficulty", s.difficulty,
		"score", s.score,
		"passed", s.passed,
		"slot", slot,
		"distance", s.obstacles[index].Distance,
	)

	if s.ledger == nil {
		return events
	}
	rank, err := s.ledger.Submit(s.score)
	if err != nil {
		s.logger.Warn("Failed to submit score", "score", s.score, "err", err)
		return events
	}
	s.lastRank = rank
	if rank >= 0 {
		events = append(events, Event{
			Kind:       EventNewHighscore,
			Difficulty: s.difficulty,
			Score:      s.score,
			Rank:       rank,
		})
		s.logger.Info("New highscore", "score", s.score, "rank", rank+1)
	}
	return events
}

func (s *Session) loadHighscores() {
	if s.ledger == nil {
		return
	}
	scores, err := s.ledger.Scores()
	if err != nil {
		s.logger.Warn("Highscores could not be read cleanly", "err", err)
		if !errors.Is(err, highscore.ErrMalformed) {
			return
		}
	}
	s.highscores = scores
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.score
}

// Difficulty returns the difficulty of the current or last run.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Rotation returns the tunnel rotation in degrees, always in [0, 360).
func (s *Session) Rotation() float64 {
	return s.rotation
}

// Slot returns the sector the player currently occupies.
func (s *Session) Slot() int {
	return SlotOf(s.rotation)
}

// Highscores returns the cached ledger, refreshed on load and menu entry.
func (s *Session) Highscores() highscore.Scores {
	return s.highscores
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.TunnelConfig {
	return s.cfg
}
