package core

// Defaults applied by RuntimeConfig.WithDefaults.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// WithDefaults returns c with unset screen size and tick rate filled in.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// TicksFor converts milliseconds to ticks, rounding up so that any
// positive duration lasts at least one tick.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return (ms*rate + 999) / 1000
}

// GameState is the game status the platform reads after every tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool

	// Play-through details saved with the score.
	Level          int
	Moves          int
	LongestCascade int
	LargestMatch   int
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
