// snek is a snake game for ANSI terminals.
//
// Usage:
//
//	snek
//
// Steer with h/j/k/l, WASD or the arrow keys. p, space or Esc pauses,
// q or Ctrl+C quits. The board, speed, keys and colors come from the
// built-in defaults.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snek",
})

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Play snake in your terminal",
	Long: `Play snake in your terminal.

Controls:
  h/a/Left   - Turn left
  j/s/Down   - Turn down
  k/w/Up     - Turn up
  l/d/Right  - Turn right
  p/Space/Esc - Pause
  q/Ctrl+C   - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func main() {
	// Window close arrives as SIGHUP and ends the game like a quit
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, tui.ErrNotTerminal) {
			logger.Error("snek needs an interactive terminal on stdin and stdout")
		} else {
			logger.Error("game failed", "err", err)
		}
		stop()
		os.Exit(1)
	}
	stop()
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake()
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"board", cfg.Board,
		"interval", cfg.Interval())

	snap, err := tui.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("game over",
		"status", snap.Status,
		"cause", snap.Cause,
		"length", snap.SnakeLen)
	return nil
}
