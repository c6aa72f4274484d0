package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
// It mirrors defaults/snake.yaml and is used if the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  32,
			Height: 16,
		},
		Timing: TimingConfig{
			IntervalMS: 200,
		},
		Input: InputConfig{
			PollTimeoutMS: 50,
			QueueSize:     64,
		},
		Keys: KeysConfig{
			Left:  []string{"h", "a", "left"},
			Down:  []string{"j", "s", "down"},
			Up:    []string{"k", "w", "up"},
			Right: []string{"l", "d", "right"},
			Pause: []string{"p", "space", "esc"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Glyphs: GlyphConfig{
			Snake:      "@",
			Food:       "a",
			Horizontal: "-",
			Vertical:   "|",
		},
		Colors: ColorConfig{
			Snake:  "green",
			Food:   "red",
			Border: "default",
			Status: "gray",
		},
	}
}
