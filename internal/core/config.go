package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the shell (default 60)
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
	Length   int  // Current snake length
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something that happened during a single Step.
type Event string

const (
	EventMoved     Event = "moved"
	EventAte       Event = "ate"
	EventCollided  Event = "collided"
	EventPaused    Event = "paused"
	EventResumed   Event = "resumed"
	EventRestarted Event = "restarted"
)

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether e occurred during the step.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
