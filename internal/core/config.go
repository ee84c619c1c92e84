package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
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

// FrameTime returns the target duration of one tick.
func (c RuntimeConfig) FrameTime() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState summarizes the session for the platform layer.
type GameState struct {
	Score     int  // Eggs caught since the last restart
	Level     int  // Current level, starting at 1
	Collected int  // Eggs caught in the current level
	Quota     int  // Eggs needed to finish the current level
	GameOver  bool // Whether the game has ended
}

// EventKind identifies a state transition reported by a tick.
type EventKind string

const (
	EventLevelComplete EventKind = "level_complete"
	EventGameOver      EventKind = "game_over"
	EventRestart       EventKind = "restart"
)

// Event describes a transition that happened during a tick.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Level  int    // Level after the transition
	Reason string // Set for game over
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
