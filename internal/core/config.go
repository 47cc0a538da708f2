package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen size is in terminal cells; the simulated world keeps its own size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed; 0 means derive from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the outward summary of the running scene.
type GameState struct {
	Scene    string // Name of the active scene
	Score    int
	Lives    int
	GameOver bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
	Quit  bool // The scene asked the driver to end the process
}
