// Package tui runs the snake game on an ANSI terminal: raw mode, the input
// listener goroutine, incremental rendering and the fixed-tick game loop.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Run plays one game on the process's terminal.
func Run(ctx context.Context, cfg config.SnakeConfig, logger *log.Logger) (snake.Snapshot, error) {
	return RunOn(ctx, os.Stdin, os.Stdout, cfg, logger)
}

// RunOn plays one game on the given terminal files.
// The terminal is restored on every return path, including panics in the loop.
func RunOn(ctx context.Context, in, out *os.File, cfg config.SnakeConfig, logger *log.Logger) (snap snake.Snapshot, err error) {
	keys, err := NewKeyMapper(cfg.Keys)
	if err != nil {
		return snap, err
	}

	// Board plus the status line
	needW, needH := cfg.Board.Width+1, cfg.Board.Height+2
	if w, h, sizeErr := WindowSize(out); sizeErr == nil && logger != nil && (w < needW || h < needH) {
		logger.Warn("terminal is smaller than the board",
			"need", fmt.Sprintf("%dx%d", needW, needH),
			"have", fmt.Sprintf("%dx%d", w, h))
	}

	t, err := Enter(in, out, cfg.Board.Height+2)
	if err != nil {
		return snap, err
	}
	defer func() {
		if exitErr := t.Exit(); exitErr != nil && err == nil {
			err = exitErr
		}
	}()

	renderer, err := NewRenderer(out, cfg)
	if err != nil {
		return snap, err
	}

	events := make(chan Event, cfg.Input.QueueSize)
	listenCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewListener(in, cfg.PollTimeout()).Run(listenCtx, events)
	}()
	defer func() {
		cancel()
		// Let the listener leave its poll before cooked mode comes back
		select {
		case <-done:
		case <-time.After(2 * cfg.PollTimeout()):
		}
	}()

	rt := cfg.Runtime()
	rt.Seed = time.Now().UnixNano()
	game := snake.New(rt)

	return NewLoop(game, renderer, keys, events, rt.Interval).Run(ctx)
}
