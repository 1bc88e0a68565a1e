package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // canvas width in characters
	ScreenH  int   // canvas height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 canvas at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Solved   int // outlines completed this run
	GameOver bool
	Paused   bool
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State   GameState
	Message string // short status line, empty when nothing happened
}
