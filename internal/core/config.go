package core

// RuntimeConfig contains configuration passed to the session at creation.
// The seed drives every random draw in the simulation, so identical seeds
// and inputs reproduce identical runs.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means pick from current time in the cmd layer
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Score      int     // Current score from completed deliveries
	Deliveries int     // Correct deliveries so far
	Misses     int     // Deliveries with the wrong color highlighted
	Distance   float64 // Travel-axis distance covered
	GameOver   bool    // Whether the run has ended
	Paused     bool    // Whether the run is paused
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State GameState
}
