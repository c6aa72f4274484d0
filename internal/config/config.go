// Package config provides YAML-based configuration for the snake game.
// The YAML is embedded at build time; nothing is read from disk at runtime.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all build-time settings for the game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Keys   KeysConfig   `yaml:"keys"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Colors ColorConfig  `yaml:"colors"`
}

// BoardConfig defines the board bounds.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// InputConfig defines how the input listener polls the terminal.
type InputConfig struct {
	PollTimeoutMS int `yaml:"poll_timeout_ms"`
	QueueSize     int `yaml:"queue_size"` // Buffered key events between listener and loop
}

// KeysConfig lists key names bound to each action.
// Names follow the decoder: single characters, "left", "space", "esc", "ctrl+c", ...
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Down  []string `yaml:"down"`
	Up    []string `yaml:"up"`
	Right []string `yaml:"right"`
	Pause []string `yaml:"pause"`
	Quit  []string `yaml:"quit"`
}

// GlyphConfig defines the characters used to draw the board.
type GlyphConfig struct {
	Snake      string `yaml:"snake"`
	Food       string `yaml:"food"`
	Horizontal string `yaml:"horizontal"`
	Vertical   string `yaml:"vertical"`
}

// ColorConfig names the colors of the board elements.
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
	Status string `yaml:"status"`
}

// Interval returns the tick interval as a duration.
func (c SnakeConfig) Interval() time.Duration {
	return time.Duration(c.Timing.IntervalMS) * time.Millisecond
}

// PollTimeout returns the listener poll timeout as a duration.
func (c SnakeConfig) PollTimeout() time.Duration {
	return time.Duration(c.Input.PollTimeoutMS) * time.Millisecond
}

// Runtime converts the config into the game's runtime parameters.
// Unset board and timing values keep core.DefaultConfig's.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if c.Board.Width > 0 {
		rt.BoardW = c.Board.Width
	}
	if c.Board.Height > 0 {
		rt.BoardH = c.Board.Height
	}
	if c.Timing.IntervalMS > 0 {
		rt.Interval = c.Interval()
	}
	return rt
}

// Bindings flattens the key lists into a key name -> action map.
// A key bound to two different actions is an error.
func (k KeysConfig) Bindings() (map[string]core.Action, error) {
	groups := []struct {
		action core.Action
		keys   []string
	}{
		{core.ActionLeft, k.Left},
		{core.ActionDown, k.Down},
		{core.ActionUp, k.Up},
		{core.ActionRight, k.Right},
		{core.ActionPause, k.Pause},
		{core.ActionQuit, k.Quit},
	}

	bindings := make(map[string]core.Action)
	for _, g := range groups {
		for _, key := range g.keys {
			if key == "" {
				return nil, fmt.Errorf("config: empty key name bound to %s", g.action)
			}
			if prev, ok := bindings[key]; ok && prev != g.action {
				return nil, fmt.Errorf("config: key %q bound to both %s and %s", key, prev, g.action)
			}
			bindings[key] = g.action
		}
	}
	return bindings, nil
}

// Rune returns the single rune of a glyph string.
func Rune(glyph string) (rune, error) {
	if utf8.RuneCountInString(glyph) != 1 {
		return 0, fmt.Errorf("config: glyph %q must be exactly one character", glyph)
	}
	r, _ := utf8.DecodeRuneInString(glyph)
	return r, nil
}

// ParseColor resolves a color name from the config.
func ParseColor(name string) (core.Color, error) {
	c, ok := core.ColorByName(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("config: unknown color %q", name)
	}
	return c, nil
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	// The interior must hold the three-segment starting snake below the centre
	if c.Board.Width < 4 || c.Board.Height < 8 {
		return fmt.Errorf("config: board %dx%d is too small", c.Board.Width, c.Board.Height)
	}
	if c.Timing.IntervalMS <= 0 {
		return fmt.Errorf("config: interval_ms must be positive, got %d", c.Timing.IntervalMS)
	}
	if c.Input.PollTimeoutMS <= 0 {
		return fmt.Errorf("config: poll_timeout_ms must be positive, got %d", c.Input.PollTimeoutMS)
	}
	if c.Input.QueueSize <= 0 {
		return fmt.Errorf("config: queue_size must be positive, got %d", c.Input.QueueSize)
	}
	for _, glyph := range []string{c.Glyphs.Snake, c.Glyphs.Food, c.Glyphs.Horizontal, c.Glyphs.Vertical} {
		if _, err := Rune(glyph); err != nil {
			return err
		}
	}
	for _, name := range []string{c.Colors.Snake, c.Colors.Food, c.Colors.Border, c.Colors.Status} {
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	if _, err := c.Keys.Bindings(); err != nil {
		return err
	}
	return nil
}
