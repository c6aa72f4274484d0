package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Event is a message from the input listener to the game loop:
// either a key press or the error that stopped the listener.
type Event struct {
	Key Key
	Err error
}

// Listener pumps key presses from the terminal into a channel.
// It keeps no game state.
type Listener struct {
	in      *os.File
	timeout time.Duration
	decoder KeyDecoder
}

// NewListener creates a listener that polls in with the given timeout.
func NewListener(in *os.File, timeout time.Duration) *Listener {
	return &Listener{
		in:      in,
		timeout: timeout,
	}
}

// Run polls the input until ctx is cancelled, sending every key press to events
// in the order it was typed. A poll or read failure is sent as an error event
// and ends the listener.
func (l *Listener) Run(ctx context.Context, events chan<- Event) {
	defer func() {
		if r := recover(); r != nil {
			l.send(ctx, events, Event{Err: fmt.Errorf("tui: input listener panic: %v", r)})
		}
	}()

	buf := make([]byte, 256)
	fd := int(l.in.Fd())

	for ctx.Err() == nil {
		ready, err := waitReadable(fd, l.timeout)
		if err != nil {
			l.send(ctx, events, Event{Err: fmt.Errorf("tui: poll input: %w", err)})
			return
		}

		if !ready {
			// Quiet input resolves a pending standalone ESC
			if k := l.decoder.Flush(); k != KeyNone {
				if !l.send(ctx, events, Event{Key: k}) {
					return
				}
			}
			continue
		}

		n, err := l.in.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			l.send(ctx, events, Event{Err: fmt.Errorf("tui: read input: %w", err)})
			return
		}

		for _, k := range l.decoder.Feed(buf[:n]) {
			if !l.send(ctx, events, Event{Key: k}) {
				return
			}
		}
	}
}

// send delivers ev unless ctx is cancelled first.
func (l *Listener) send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
