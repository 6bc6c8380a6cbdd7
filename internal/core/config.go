package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	BestScore int   // Best score known to the platform (from storage)

	// KeyBindings adds or replaces in-game key bindings. ActionNone unbinds.
	KeyBindings map[string]Action
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
	Score     int  // Current score
	BestScore int  // Best of stored and current score
	MaxTile   int  // Highest tile on the board
	Moves     int  // Board-changing moves this run
	GameOver  bool // Whether the run has ended (lost or won)
	Won       bool // Whether the run ended by reaching the target
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the board changed this tick
}
