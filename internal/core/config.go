package core

// RuntimeConfig is passed to game modes at initialization. Modes use it
// to adapt to the terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Seed override; 0 means mode-specific default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-visible status of a running mode, returned
// by Game.State() after every tick.
type GameState struct {
	Score    int  // Accumulated score
	Level    int  // Current level number (1-based)
	Lives    int  // Remaining lives (0 in modes without lives)
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
