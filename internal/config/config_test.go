package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded YAML and DefaultSnakeConfig differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnake(t *testing.T) {
	cfg, err := LoadSnake()
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	rt := cfg.Runtime()
	if rt.BoardW != 32 || rt.BoardH != 16 {
		t.Errorf("board = %dx%d, expected 32x16", rt.BoardW, rt.BoardH)
	}
	if rt.Interval != 200*time.Millisecond {
		t.Errorf("interval = %v, expected 200ms", rt.Interval)
	}
	if cfg.PollTimeout() != 50*time.Millisecond {
		t.Errorf("poll timeout = %v, expected 50ms", cfg.PollTimeout())
	}
}

func TestRuntimeFallsBackToCoreDefaults(t *testing.T) {
	if got := (SnakeConfig{}).Runtime(); got != core.DefaultConfig() {
		t.Errorf("empty config Runtime() = %+v, expected %+v", got, core.DefaultConfig())
	}

	var cfg SnakeConfig
	cfg.Board.Width = 20
	cfg.Timing.IntervalMS = 50
	rt := cfg.Runtime()
	if rt.BoardW != 20 || rt.BoardH != 16 || rt.Interval != 50*time.Millisecond {
		t.Errorf("Runtime() = %+v, expected 20x16 at 50ms", rt)
	}
}

func TestParseSnakeKeepsDefaults(t *testing.T) {
	cfg, err := ParseSnake([]byte("timing:\n  interval_ms: 120\n"))
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v", err)
	}
	if cfg.Timing.IntervalMS != 120 {
		t.Errorf("interval_ms = %d, expected 120", cfg.Timing.IntervalMS)
	}
	if cfg.Board.Width != 32 {
		t.Errorf("board width should keep default, got %d", cfg.Board.Width)
	}
}

func TestParseSnakeInvalid(t *testing.T) {
	if _, err := ParseSnake([]byte("board: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

func TestBindings(t *testing.T) {
	bindings, err := DefaultSnakeConfig().Keys.Bindings()
	if err != nil {
		t.Fatalf("Bindings() failed: %v", err)
	}

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"h", core.ActionLeft},
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"j", core.ActionDown},
		{"s", core.ActionDown},
		{"down", core.ActionDown},
		{"k", core.ActionUp},
		{"w", core.ActionUp},
		{"up", core.ActionUp},
		{"l", core.ActionRight},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"p", core.ActionPause},
		{"space", core.ActionPause},
		{"esc", core.ActionPause},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := bindings[tc.key]; got != tc.expected {
				t.Errorf("bindings[%q] = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}

	if _, ok := bindings["Q"]; ok {
		t.Error("bindings should be case-sensitive")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"default", func(*SnakeConfig) {}, ""},
		{"tiny board", func(c *SnakeConfig) { c.Board.Width = 3 }, "too small"},
		{"short board", func(c *SnakeConfig) { c.Board.Height = 7 }, "too small"},
		{"zero interval", func(c *SnakeConfig) { c.Timing.IntervalMS = 0 }, "interval_ms"},
		{"zero poll", func(c *SnakeConfig) { c.Input.PollTimeoutMS = 0 }, "poll_timeout_ms"},
		{"zero queue", func(c *SnakeConfig) { c.Input.QueueSize = 0 }, "queue_size"},
		{"wide glyph", func(c *SnakeConfig) { c.Glyphs.Snake = "@@" }, "exactly one character"},
		{"unknown color", func(c *SnakeConfig) { c.Colors.Food = "chartreuse" }, "unknown color"},
		{"conflicting key", func(c *SnakeConfig) { c.Keys.Quit = append(c.Keys.Quit, "p") }, "bound to both"},
		{"empty key", func(c *SnakeConfig) { c.Keys.Up = []string{""} }, "empty key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %v, expected containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestRune(t *testing.T) {
	r, err := Rune("█")
	if err != nil || r != '█' {
		t.Errorf("Rune(█) = %q, %v", r, err)
	}
	if _, err := Rune(""); err == nil {
		t.Error("empty glyph should fail")
	}
}
