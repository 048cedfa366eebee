// Package racer implements Dodge Racer: steer a car down a scrolling road
// and dodge falling obstacles while the game speeds up through six levels.
//
// The package holds no display code. A host drives the session by calling
// Tick once per frame and Render with any core.Surface.
package racer

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-racer/internal/config"
	"github.com/vovakirdan/dodge-racer/internal/core"
)

var (
	// ErrNotAuthenticated is returned by Start when nobody is signed in.
	ErrNotAuthenticated = errors.New("racer: not authenticated")

	// ErrInvalidTransition is returned when a command is not allowed in the
	// current phase.
	ErrInvalidTransition = errors.New("racer: invalid transition")
)

// Options configures a new session.
type Options struct {
	Config   config.RacerConfig
	Seed     int64 // Seed for obstacle placement; each run derives its own
	Accounts core.Accounts
	Scores   core.ScoreStore // Optional; nil disables persistence
	Notifier core.Notifier   // Optional
	Logger   *log.Logger     // Optional
}

// Session is a Dodge Racer game: the Menu, Playing and GameOver state
// machine plus everything a run owns. It is not safe for concurrent use.
type Session struct {
	cfg      config.RacerConfig
	levels   LevelTable
	detector CollisionDetector

	accounts core.Accounts
	scores   core.ScoreStore
	notifier core.Notifier
	logger   *log.Logger
	events   *core.Dispatcher

	clock   *Clock
	input   InputState
	player  *Player
	spawner *Spawner
	road    *RoadScroller

	phase core.Phase
	score float64
	level int
	best  int
	user  core.User

	seed int64
	runs int64

	sprite        image.Image
	width, height float64 // Car size, kept across runs
}

// NewSession validates the configuration and returns a session in the Menu
// phase.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	levels, err := NewLevelTable(opts.Config.Levels)
	if err != nil {
		return nil, err
	}
	if opts.Accounts == nil {
		return nil, fmt.Errorf("racer: accounts are required")
	}

	s := &Session{
		cfg:    opts.Config,
		levels: levels,
		detector: CollisionDetector{
			Padding:    opts.Config.Obstacles.HitboxPadding,
			MinOverlap: opts.Config.Collision.MinOverlap,
		},
		accounts: opts.Accounts,
		scores:   opts.Scores,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		events:   core.NewDispatcher(),
		clock:    NewClock(opts.Config.Timing.MaxStep),
		phase:    core.PhaseMenu,
		level:    1,
		seed:     opts.Seed,
		width:    opts.Config.Player.Width,
		height:   opts.Config.Player.Height,
	}
	if s.notifier == nil {
		s.notifier = core.Discard
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.resetRun()

	if u, ok := s.accounts.CurrentUser(); ok {
		s.best = s.loadBest(u.ID)
	}
	return s, nil
}

// resetRun rebuilds every piece of per-run state.
func (s *Session) resetRun() {
	s.score = 0
	s.level = 1
	s.input.Reset()
	s.player = NewPlayer(s.cfg, s.width, s.height)
	s.spawner = NewSpawner(s.cfg, s.seed+s.runs)
	s.road = NewRoadScroller(s.cfg.Road.DashLength, s.cfg.Road.GapLength, s.cfg.Road.ScrollFactor)
	s.clock.Reset()
}

// Subscribe registers a listener for session events.
func (s *Session) Subscribe(l core.Listener) {
	s.events.Subscribe(l)
}

// Start begins a run from the Menu or restarts one after GameOver.
// Without a signed-in user it returns ErrNotAuthenticated and the phase is
// left unchanged.
func (s *Session) Start() error {
	if s.phase == core.PhasePlaying {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, s.phase)
	}

	u, ok := s.accounts.CurrentUser()
	if !ok {
		s.notifier.Notify(core.Notice{
			Severity: core.SeverityError,
			Title:    "Not signed in",
			Message:  "Log in to play Dodge Racer.",
		})
		return ErrNotAuthenticated
	}

	s.user = u
	s.runs++
	s.resetRun()
	s.best = s.loadBest(u.ID)
	s.setPhase(core.PhasePlaying)
	s.events.Dispatch(core.ScoreChanged{Score: 0})
	s.events.Dispatch(core.LivesChanged{Lives: s.player.Lives})
	s.events.Dispatch(core.LevelChanged{Level: s.level})
	s.logger.Debug("run started", "user", u.ID, "best", s.best)
	return nil
}

// Cancel returns to the Menu. Cancelling a run in progress abandons it
// without recording a score.
func (s *Session) Cancel() error {
	switch s.phase {
	case core.PhasePlaying:
		s.logger.Debug("run abandoned", "score", s.Score())
		s.spawner.Clear()
		s.input.Reset()
	case core.PhaseGameOver:
	default:
		return fmt.Errorf("%w: cancel while %s", ErrInvalidTransition, s.phase)
	}
	s.setPhase(core.PhaseMenu)
	return nil
}

// Press marks a steering direction as held.
func (s *Session) Press(a core.Action) {
	s.input.Press(a)
}

// Release marks a steering direction as no longer held.
func (s *Session) Release(a core.Action) {
	s.input.Release(a)
}

// Tick advances the simulation by the wall time elapsed since the previous
// Tick, bounded by the configured maximum step. It returns the step used.
func (s *Session) Tick(now time.Time) float64 {
	dt := s.clock.Advance(now)
	s.Update(dt)
	return dt
}

// Update advances the simulation by dt seconds. It does nothing outside the
// Playing phase. Callers are expected to bound dt; Tick does.
func (s *Session) Update(dt float64) {
	if s.phase != core.PhasePlaying {
		return
	}
	if dt < 0 {
		dt = 0
	}

	p := s.player
	p.CoolDown(dt)
	p.Update(dt, s.cfg.Canvas.Width, s.input)

	entry := s.levels.At(s.level)
	s.road.Advance(entry.Speed, dt)
	s.spawner.Update(dt, s.level, entry)

	if s.moveObstacles(entry.Speed, dt) {
		return
	}

	prevScore := s.Score()
	s.score += s.cfg.Scoring.PointsPerSecond * dt
	if sc := s.Score(); sc != prevScore {
		s.events.Dispatch(core.ScoreChanged{Score: sc})
	}
	if lv := LevelForScore(s.score, s.cfg.Scoring.LevelUpScore); lv > s.level {
		s.level = lv
		s.logger.Debug("level up", "level", lv, "speed", s.levels.At(lv).Speed)
		s.events.Dispatch(core.LevelChanged{Level: lv})
	}
}

// moveObstacles advances, culls and collides every obstacle. It reports
// whether the run ended, in which case the remaining obstacles are left
// untouched.
func (s *Session) moveObstacles(speed, dt float64) bool {
	p := s.player
	obs := s.spawner.obstacles
	kept := obs[:0]
	for i := 0; i < len(obs); i++ {
		o := obs[i]
		o.Advance(speed, dt)
		if o.Gone(s.cfg.Canvas.Height, s.cfg.Obstacles.DespawnMargin) {
			continue
		}
		if p.Invulnerable <= 0 && s.detector.Hit(p.Hitbox(), o) {
			p.TakeDamage()
			p.Invulnerable = s.cfg.Player.InvulnerableSeconds
			s.events.Dispatch(core.LivesChanged{Lives: p.Lives})
			if !p.IsAlive() {
				s.spawner.obstacles = append(kept, obs[i+1:]...)
				s.endRun()
				return true
			}
			continue
		}
		kept = append(kept, o)
	}
	s.spawner.obstacles = kept
	return false
}

// endRun moves to GameOver and records the final score.
func (s *Session) endRun() {
	final := s.Score()
	s.setPhase(core.PhaseGameOver)

	if s.scores != nil {
		if err := s.scores.RecordScore(s.user.ID, final); err != nil {
			s.logger.Warn("score not recorded", "user", s.user.ID, "score", final, "error", err)
		}
	}
	if final > s.best {
		s.best = final
		s.notifier.Notify(core.Notice{
			Severity: core.SeveritySuccess,
			Title:    "New best!",
			Message:  fmt.Sprintf("%d points", final),
		})
	} else {
		s.notifier.Notify(core.Notice{
			Severity: core.SeverityInfo,
			Title:    "Game over",
			Message:  fmt.Sprintf("%d points, best %d", final, s.best),
		})
	}
	s.events.Dispatch(core.SessionEnded{FinalScore: final, Best: s.best})
}

// loadBest reads the user's best score, treating storage failures as 0.
func (s *Session) loadBest(userID string) int {
	if s.scores == nil {
		return 0
	}
	best, err := s.scores.BestScore(userID)
	if err != nil {
		s.logger.Warn("best score unavailable", "user", userID, "error", err)
		return 0
	}
	return best
}

func (s *Session) setPhase(to core.Phase) {
	from := s.phase
	s.phase = to
	s.events.Dispatch(core.PhaseChanged{From: from, To: to})
}

// AttachSprite installs the car image and derives the car size from its
// aspect ratio. A nil or empty image is ignored.
func (s *Session) AttachSprite(img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	ratio := float64(b.Dx()) / float64(b.Dy())
	h := math.Round(s.cfg.Canvas.Height * s.cfg.Player.SpriteHeightRatio)
	w := math.Round(h * ratio)

	s.sprite = img
	s.width, s.height = w, h
	s.player.Resize(w, h, s.cfg.Canvas.Width, s.cfg.Canvas.Height)
	if s.phase != core.PhasePlaying {
		s.player.Park(s.cfg.Canvas.Width, s.cfg.Canvas.Height)
	}
}

// SpriteLoaded reports whether a car image is attached.
func (s *Session) SpriteLoaded() bool {
	return s.sprite != nil
}

// Score returns the displayed score, the floor of the simulated score.
func (s *Session) Score() int {
	return int(math.Floor(s.score))
}

// Phase returns the current phase.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// State returns a snapshot for the UI.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score: s.Score(),
		Best:  s.best,
		Lives: s.player.Lives,
		Level: s.level,
		Phase: s.phase,
	}
}

// Canvas returns the logical canvas size.
func (s *Session) Canvas() (w, h float64) {
	return s.cfg.Canvas.Width, s.cfg.Canvas.Height
}
