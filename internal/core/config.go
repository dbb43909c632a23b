package core

// RuntimeConfig contains configuration passed to the game at initialization.
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

// FrameDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) FrameDuration() Millis {
	if c.TickRate <= 0 {
		return Millis(1000 / 60)
	}
	return Millis(1000 / c.TickRate)
}

// Effect names a fire-and-forget presentation side effect (sound, flash).
type Effect string

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the player is dead
	Paused   bool // Whether the game is paused
}

// StepResult is returned by each simulation tick.
type StepResult struct {
	State   GameState
	Effects []Effect // Effects fired during this tick
}
