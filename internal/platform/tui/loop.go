package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Loop drives the game at a fixed tick, reading input between ticks.
type Loop struct {
	game     *snake.Game
	renderer *Renderer
	keys     *KeyMapper
	events   <-chan Event
	interval time.Duration
}

// NewLoop wires a game to its renderer and input events.
func NewLoop(game *snake.Game, renderer *Renderer, keys *KeyMapper, events <-chan Event, interval time.Duration) *Loop {
	return &Loop{
		game:     game,
		renderer: renderer,
		keys:     keys,
		events:   events,
		interval: interval,
	}
}

// Run plays until the game is won, lost or quit and returns the final snapshot.
// Cancelling ctx quits the game. An error means the terminal or the listener failed.
func (l *Loop) Run(ctx context.Context) (snake.Snapshot, error) {
	if err := l.renderer.DrawBoard(l.game.Body(), l.game.Food()); err != nil {
		return l.game.Snapshot(), err
	}
	if err := l.renderer.DrawStatus(l.game.Len(), false); err != nil {
		return l.game.Snapshot(), err
	}

	for {
		length := l.game.Len()
		res := l.game.Step()
		if err := l.renderer.DrawStep(res); err != nil {
			return l.game.Snapshot(), err
		}
		if l.game.Len() != length {
			if err := l.renderer.DrawStatus(l.game.Len(), false); err != nil {
				return l.game.Snapshot(), err
			}
		}
		if l.game.Over() {
			return l.game.Snapshot(), nil
		}

		if err := l.wait(ctx); err != nil {
			return l.game.Snapshot(), err
		}
		if l.game.Over() {
			return l.game.Snapshot(), nil
		}
	}
}

// wait spends the rest of the tick draining input. It returns early once a turn is
// accepted, so the turn takes effect on the next step right away.
func (l *Loop) wait(ctx context.Context) error {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.game.Quit()
			return nil

		case <-timer.C:
			return nil

		case ev := <-l.events:
			done, err := l.handle(ctx, ev)
			if err != nil || done {
				return err
			}
		}
	}
}

// handle applies one input event. It reports whether the tick is over.
func (l *Loop) handle(ctx context.Context, ev Event) (bool, error) {
	if ev.Err != nil {
		return true, fmt.Errorf("tui: input listener failed: %w", ev.Err)
	}

	action := l.keys.Action(ev.Key)
	switch {
	case action == core.ActionQuit:
		l.game.Quit()
		return true, nil

	case action == core.ActionPause:
		err := l.pause(ctx)
		return l.game.Over(), err

	case action.IsMovement():
		dir, _ := snake.DirectionFor(action)
		if l.game.Turn(dir) {
			// One turn per tick: the rest of the batch is dropped
			return true, l.discard(ctx)
		}
	}
	return false, nil
}

// pause blocks until the pause key is pressed again or the game is quit.
func (l *Loop) pause(ctx context.Context) error {
	if !l.game.Pause() {
		return nil
	}
	if err := l.renderer.DrawStatus(l.game.Len(), true); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			l.game.Quit()
			return nil

		case ev := <-l.events:
			if ev.Err != nil {
				return fmt.Errorf("tui: input listener failed: %w", ev.Err)
			}
			switch l.keys.Action(ev.Key) {
			case core.ActionPause:
				l.game.Resume()
				return l.renderer.DrawStatus(l.game.Len(), false)
			case core.ActionQuit:
				l.game.Quit()
				return nil
			}
		}
	}
}

// discard empties the queue without blocking. Movement keys are dropped;
// pause and quit are still honored.
func (l *Loop) discard(ctx context.Context) error {
	for {
		select {
		case ev := <-l.events:
			if ev.Err != nil {
				return fmt.Errorf("tui: input listener failed: %w", ev.Err)
			}
			switch l.keys.Action(ev.Key) {
			case core.ActionQuit:
				l.game.Quit()
				return nil
			case core.ActionPause:
				if err := l.pause(ctx); err != nil || l.game.Over() {
					return err
				}
			}
		default:
			return nil
		}
	}
}
