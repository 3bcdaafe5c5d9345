// Package flappypac implements Flappy Pac-Man: a side-scroller where Pac-Man
// flies through gaps in moving pipes and eats orbs, across a fixed set of
// levels, with an in-memory leaderboard of named players.
package flappypac

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappypac/internal/core"
	"github.com/vovakirdan/flappypac/internal/registry"
	"github.com/vovakirdan/flappypac/internal/storage"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	id      string
	title   string
	classic bool
	board   *storage.Leaderboard // Outlives Reset for the process lifetime
	session *Session
	elapsed float64
}

// New creates the scoreboard edition with name entry and leaderboard.
func New() *Game {
	return &Game{
		id:    "flappypac",
		title: "Flappy Pac-Man",
		board: storage.NewLeaderboard(storage.DefaultCapacity),
	}
}

// NewClassic creates the classic edition without names or leaderboard.
func NewClassic() *Game {
	return &Game{
		id:      "flappypac_classic",
		title:   "Flappy Pac-Man Classic",
		classic: true,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description summarizes how the variant plays.
func (g *Game) Description() string {
	if g.classic {
		return fmt.Sprintf("%d levels, straight into play, no scoreboard", LevelCount())
	}
	return fmt.Sprintf("%d levels, name entry, top %d scoreboard", LevelCount(), g.board.Cap())
}

// Reset starts a fresh session seeded from cfg.Seed (0 = time-based).
// The leaderboard is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var opts []Option
	if g.classic {
		opts = append(opts, WithClassicMode())
	}
	g.session = NewSession(rng, g.board, opts...)
	g.elapsed = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.elapsed = in.Elapsed
	tr := g.session.Update(in)
	res := g.session.LastResult()
	return core.StepResult{
		State:     g.State(),
		PrevPhase: tr.From.String(),
		Passed:    len(res.Passed),
		Pickups:   len(res.Pickups),
	}
}

// Render draws the current game state.
func (g *Game) Render(dst core.Canvas) {
	Render(dst, g.session, g.elapsed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		Level:     g.session.Level(),
		Phase:     g.session.State().String(),
		TextInput: g.session.State() == StateNamingPlayer,
	}
}

// WorldSize returns the dimensions of the world the game draws in.
func (g *Game) WorldSize() (float64, float64) {
	return ScreenWidth, ScreenHeight
}

// Leaderboard returns the board kept across resets, or nil for classic.
func (g *Game) Leaderboard() *storage.Leaderboard {
	return g.board
}

// Session exposes the underlying session to the platform.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game variants with the registry
func init() {
	registry.Register("flappypac", func() registry.Game {
		return New()
	})
	registry.Register("flappypac_classic", func() registry.Game {
		return NewClassic()
	})
}
