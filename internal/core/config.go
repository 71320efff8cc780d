// Package core provides fundamental types shared by the scene and the
// platform layer: runtime settings, input frames and the screen buffer.
// It has no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// RuntimeConfig contains settings passed to the scene at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     uint64 // RNG seed for deterministic gameplay
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

// Status is the phase a game is in.
type Status string

const (
	StatusServing  Status = "serving" // Waiting to serve the next ball
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusWon      Status = "won"
	StatusGameOver Status = "game_over"
)

// Finished reports whether the game has ended.
func (s Status) Finished() bool {
	return s == StatusWon || s == StatusGameOver
}

// GameState is the summary the platform shows in the status line.
type GameState struct {
	Status Status
	Score  int
	Lives  int
	Balls  int // Balls in play
	Blocks int // Blocks remaining
	Level  float64
	Tick   int
}

// GameOver reports whether the game has ended, won or lost.
func (g GameState) GameOver() bool {
	return g.Status.Finished()
}

// Paused reports whether the game is paused.
func (g GameState) Paused() bool {
	return g.Status == StatusPaused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
