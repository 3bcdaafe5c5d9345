package flappypac

import (
	"github.com/vovakirdan/flappypac/internal/core"
	"github.com/vovakirdan/flappypac/internal/storage"
)

// State is the phase of a session. It alone decides which parts of the
// simulation run on a tick.
type State int

const (
	StateNamingPlayer State = iota // Typing a name
	StateLevelIntro                // Waiting to start the level
	StatePlaying                   // Simulation running
	StateLevelCleared              // Every slot passed
	StateDead                      // Hit an obstacle or the screen edge
	StateVictory                   // All levels cleared, scoreboard shown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNamingPlayer:
		return "naming"
	case StateLevelIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateLevelCleared:
		return "cleared"
	case StateDead:
		return "dead"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Transition describes the state change caused by one Update.
type Transition struct {
	From, To State
}

// Changed reports whether the state moved.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Session owns all mutable game state for one process: the current
// player, score, level, avatar, obstacle field and leaderboard.
type Session struct {
	state           State
	level           int
	name            []byte
	score           int
	levelStartScore int
	lastResult      CollisionResult

	avatar Avatar
	field  *Field
	board  *storage.Leaderboard
	rng    RandSource

	classic     bool
	jumpImpulse float64
}

// Option configures a Session.
type Option func(*Session)

// WithClassicMode skips name entry and the leaderboard: the session starts
// at the first level intro and loops back to it after victory.
func WithClassicMode() Option {
	return func(s *Session) {
		s.classic = true
		s.jumpImpulse = ClassicJumpImpulse
	}
}

// WithJumpImpulse overrides the jump velocity.
func WithJumpImpulse(v float64) Option {
	return func(s *Session) {
		s.jumpImpulse = v
	}
}

// NewSession creates a session in its initial state. board may be nil in
// classic mode.
func NewSession(rng RandSource, board *storage.Leaderboard, opts ...Option) *Session {
	maxSlots := 0
	for _, l := range levels {
		maxSlots = max(maxSlots, l.ObstacleCount)
	}

	s := &Session{
		state:       StateNamingPlayer,
		name:        make([]byte, 0, NameMaxLen),
		field:       NewField(maxSlots),
		board:       board,
		rng:         rng,
		jumpImpulse: JumpImpulse,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.avatar = NewAvatar(s.jumpImpulse)

	if s.classic {
		s.startLevel(0)
	}
	return s
}

// Update advances the session by one frame.
func (s *Session) Update(in core.InputFrame) Transition {
	from := s.state
	s.lastResult = CollisionResult{}

	switch s.state {
	case StateNamingPlayer:
		s.updateNaming(in)
	case StateLevelIntro:
		if advancePressed(in) {
			s.avatar.Jump()
			s.state = StatePlaying
		}
	case StatePlaying:
		s.updatePlaying(in)
	case StateLevelCleared:
		if advancePressed(in) {
			s.nextLevel()
		}
	case StateDead:
		if advancePressed(in) {
			s.score = s.levelStartScore
			s.startLevel(s.level)
		}
	case StateVictory:
		if advancePressed(in) {
			s.restart()
		}
	}

	return Transition{From: from, To: s.state}
}

// advancePressed reports the confirm/jump action used outside name entry.
func advancePressed(in core.InputFrame) bool {
	return in.Has(core.ActionJump) || in.Has(core.ActionConfirm)
}

func (s *Session) updateNaming(in core.InputFrame) {
	for _, r := range in.Chars {
		if r >= nameFirstChar && r <= nameLastChar && len(s.name) < NameMaxLen {
			s.name = append(s.name, byte(r))
		}
	}

	if in.Has(core.ActionDelete) && len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}

	if in.Has(core.ActionConfirm) && len(s.name) > 0 {
		s.score = 0
		s.levelStartScore = 0
		s.startLevel(0)
	}
}

func (s *Session) updatePlaying(in core.InputFrame) {
	spec := Level(s.level)

	s.avatar.Integrate(spec, in.Has(core.ActionJump), in.Delta)
	died := s.avatar.OutOfBounds()

	s.field.Advance(in.Elapsed)
	res := Check(s.avatar, s.field)
	s.score += res.Points()
	s.lastResult = res

	switch {
	case s.field.AllPassed():
		s.state = StateLevelCleared
	case died || res.Died:
		s.state = StateDead
	}
}

func (s *Session) nextLevel() {
	if s.level+1 >= LevelCount() {
		if !s.classic && s.board != nil {
			s.board.Insert(s.Name(), s.score)
		}
		s.state = StateVictory
		return
	}

	s.levelStartScore = s.score
	s.startLevel(s.level + 1)
}

func (s *Session) restart() {
	s.score = 0
	s.levelStartScore = 0
	if s.classic {
		s.startLevel(0)
		return
	}
	s.name = s.name[:0]
	s.level = 0
	s.state = StateNamingPlayer
}

// startLevel resets the avatar and field for level and shows its intro.
func (s *Session) startLevel(level int) {
	s.level = level
	s.avatar.Reset()
	s.field.Generate(Level(level), s.rng)
	s.state = StateLevelIntro
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Level returns the zero-based active level index.
func (s *Session) Level() int { return s.level }

// LevelSpec returns the parameters of the active level.
func (s *Session) LevelSpec() LevelSpec { return Level(s.level) }

// Score returns the session score.
func (s *Session) Score() int { return s.score }

// LevelStartScore returns the score a death rolls back to.
func (s *Session) LevelStartScore() int { return s.levelStartScore }

// LastResult returns the collision result of the latest playing tick.
func (s *Session) LastResult() CollisionResult { return s.lastResult }

// Name returns the player name typed so far.
func (s *Session) Name() string { return string(s.name) }

// Classic reports whether the session skips naming and the leaderboard.
func (s *Session) Classic() bool { return s.classic }

// Avatar returns a copy of the avatar.
func (s *Session) Avatar() Avatar { return s.avatar }

// Field returns the obstacle field. Callers must treat it as read-only.
func (s *Session) Field() *Field { return s.field }

// Leaderboard returns the board finished sessions are recorded on.
func (s *Session) Leaderboard() *storage.Leaderboard { return s.board }
