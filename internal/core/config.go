package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current session score
	Level     int    // Zero-based active level
	Phase     string // Name of the current game phase
	TextInput bool   // Whether the game is accepting typed characters
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	PrevPhase string // Phase before this tick; equals State.Phase if unchanged
	Passed    int    // Obstacles passed this tick
	Pickups   int    // Bonus items collected this tick
}

// PhaseChanged reports whether the tick moved the game to another phase.
func (r StepResult) PhaseChanged() bool {
	return r.PrevPhase != r.State.Phase
}
