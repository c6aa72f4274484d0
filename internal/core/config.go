package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	BoardW   int           // Board width; x == 0 and x == BoardW are walls
	BoardH   int           // Board height; y == 0 and y == BoardH are walls
	Interval time.Duration // Duration of one tick
	Seed     int64         // RNG seed for food placement; equal seeds replay equal games
}

// DefaultConfig returns a RuntimeConfig with the classic board and speed.
// Config values that are unset fall back to these.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:   32,
		BoardH:   16,
		Interval: 200 * time.Millisecond,
		Seed:     0,
	}
}
