package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("tui: not an interactive terminal")

// Terminal is a raw-mode session on a terminal device.
// Exit restores the previous state; it is safe to call more than once.
type Terminal struct {
	in      *os.File
	out     io.Writer
	state   *term.State
	parkRow int // 0-based row the cursor is left on after Exit

	once    sync.Once
	exitErr error
}

// Enter switches the terminal to raw mode, hides the cursor and clears the screen.
func Enter(in, out *os.File, parkRow int) (*Terminal, error) {
	if !term.IsTerminal(int(out.Fd())) || !term.IsTerminal(int(in.Fd())) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("tui: cannot enable raw mode: %w", err)
	}

	t := &Terminal{
		in:      in,
		out:     out,
		state:   state,
		parkRow: parkRow,
	}

	if _, err := io.WriteString(out, ansi.HideCursor+ansi.EraseEntireScreen); err != nil {
		//nolint:errcheck // Already failing, restore is best-effort
		t.Exit()
		return nil, fmt.Errorf("tui: cannot prepare screen: %w", err)
	}

	return t, nil
}

// Exit resets styling, parks the cursor below the board, shows it again and
// restores cooked mode.
func (t *Terminal) Exit() error {
	t.once.Do(func() {
		seq := ansi.ResetStyle + ansi.CursorPosition(1, t.parkRow+1) + ansi.ShowCursor
		_, writeErr := io.WriteString(t.out, seq)
		restoreErr := term.Restore(int(t.in.Fd()), t.state)

		if writeErr != nil {
			writeErr = fmt.Errorf("tui: cannot reset screen: %w", writeErr)
		}
		if restoreErr != nil {
			restoreErr = fmt.Errorf("tui: cannot restore terminal mode: %w", restoreErr)
		}
		t.exitErr = errors.Join(writeErr, restoreErr)
	})
	return t.exitErr
}

// WindowSize returns the size of the terminal attached to f in cells.
func WindowSize(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
