package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type testLoop struct {
	loop   *Loop
	game   *snake.Game
	events chan Event
	out    *bytes.Buffer
}

func newTestLoop(t *testing.T, interval time.Duration, keys ...Key) *testLoop {
	t.Helper()
	cfg := config.DefaultSnakeConfig()

	var out bytes.Buffer
	renderer, err := NewRenderer(&out, cfg)
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	km, err := NewKeyMapper(cfg.Keys)
	if err != nil {
		t.Fatalf("NewKeyMapper() failed: %v", err)
	}

	events := make(chan Event, 16)
	for _, k := range keys {
		events <- Event{Key: k}
	}

	rt := cfg.Runtime()
	rt.Seed = 1
	game := snake.New(rt)

	return &testLoop{
		loop:   NewLoop(game, renderer, km, events, interval),
		game:   game,
		events: events,
		out:    &out,
	}
}

type runResult struct {
	snap snake.Snapshot
	err  error
}

func (tl *testLoop) start(ctx context.Context) <-chan runResult {
	done := make(chan runResult, 1)
	go func() {
		snap, err := tl.loop.Run(ctx)
		done <- runResult{snap, err}
	}()
	return done
}

func waitResult(t *testing.T, done <-chan runResult) runResult {
	t.Helper()
	select {
	case r := <-done:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not finish")
		return runResult{}
	}
}

func TestLoopQuit(t *testing.T) {
	tl := newTestLoop(t, time.Minute, "q")

	snap, err := tl.loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.Status != snake.StatusQuit {
		t.Errorf("status = %v, expected quit", snap.Status)
	}
	if snap.Tick != 1 {
		t.Errorf("tick = %d, expected 1", snap.Tick)
	}
}

func TestLoopFirstTick(t *testing.T) {
	tl := newTestLoop(t, time.Minute, "q")

	snap, err := tl.loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.HeadX != 17 || snap.HeadY != 8 || snap.SnakeLen != 3 {
		t.Errorf("head = (%d, %d) len %d, expected (17, 8) len 3", snap.HeadX, snap.HeadY, snap.SnakeLen)
	}

	out := tl.out.String()
	if !strings.Contains(out, at(17, 11, " ")) {
		t.Error("vacated tail should be erased")
	}
	if !strings.Contains(ansi.Strip(out), "length: 3") {
		t.Error("status line should show the length")
	}
}

func TestLoopTurnDiscardsRestOfBatch(t *testing.T) {
	// Moving up: Down is a reversal, Left is accepted, Up is dropped, quit still counts
	tl := newTestLoop(t, time.Minute, "j", "h", "k", "q")

	snap, err := tl.loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.Dir != snake.DirLeft {
		t.Errorf("direction = %v, expected left", snap.Dir)
	}
	if snap.Status != snake.StatusQuit {
		t.Errorf("status = %v, expected quit", snap.Status)
	}
	if snap.HeadX != 17 || snap.HeadY != 8 {
		t.Errorf("head = (%d, %d), the turn must wait for the next tick", snap.HeadX, snap.HeadY)
	}
}

func TestLoopTurnAppliesNextTick(t *testing.T) {
	tl := newTestLoop(t, time.Minute, KeyLeft)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := tl.start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	r := waitResult(t, done)

	if r.err != nil {
		t.Fatalf("Run() failed: %v", r.err)
	}
	// The accepted turn ends the tick early, so the second step follows at once
	if r.snap.Tick != 2 {
		t.Errorf("tick = %d, expected 2", r.snap.Tick)
	}
	if r.snap.HeadX != 16 || r.snap.HeadY != 8 {
		t.Errorf("head = (%d, %d), expected (16, 8)", r.snap.HeadX, r.snap.HeadY)
	}
	if r.snap.Status != snake.StatusQuit {
		t.Errorf("status = %v, expected quit on cancel", r.snap.Status)
	}
}

func TestLoopPauseFreezes(t *testing.T) {
	tl := newTestLoop(t, time.Millisecond, "p")

	done := tl.start(context.Background())
	time.Sleep(50 * time.Millisecond)
	select {
	case r := <-done:
		t.Fatalf("paused loop finished early: %+v", r.snap)
	default:
	}

	tl.events <- Event{Key: "q"}
	r := waitResult(t, done)

	if r.err != nil {
		t.Fatalf("Run() failed: %v", r.err)
	}
	if r.snap.Status != snake.StatusQuit {
		t.Errorf("status = %v, expected quit", r.snap.Status)
	}
	if r.snap.Tick != 1 {
		t.Errorf("tick = %d, paused loop should not advance", r.snap.Tick)
	}
	if !strings.Contains(ansi.Strip(tl.out.String()), "[paused]") {
		t.Error("status line should show the pause")
	}
}

func TestLoopPauseResume(t *testing.T) {
	tl := newTestLoop(t, time.Millisecond, KeySpace, KeyEscape)

	r := waitResult(t, tl.start(context.Background()))

	if r.err != nil {
		t.Fatalf("Run() failed: %v", r.err)
	}
	// Resumed snake keeps going up until it reaches the top wall
	if r.snap.Status != snake.StatusLost || r.snap.Cause != snake.CauseWall {
		t.Errorf("status = %v/%v, expected lost/wall", r.snap.Status, r.snap.Cause)
	}
	if r.snap.Tick != 9 {
		t.Errorf("tick = %d, expected 9", r.snap.Tick)
	}
}

func TestLoopWallDrawsHead(t *testing.T) {
	tl := newTestLoop(t, time.Millisecond)

	r := waitResult(t, tl.start(context.Background()))

	if r.snap.Status != snake.StatusLost {
		t.Fatalf("status = %v, expected lost", r.snap.Status)
	}
	if !strings.Contains(tl.out.String(), at(17, 0, "@")) {
		t.Error("head should be drawn on the wall it hit")
	}
}

func TestLoopListenerError(t *testing.T) {
	tl := newTestLoop(t, time.Minute)
	tl.events <- Event{Err: io.ErrUnexpectedEOF}

	_, err := tl.loop.Run(context.Background())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Run() error = %v, expected listener error", err)
	}
}

func TestLoopListenerErrorWhilePaused(t *testing.T) {
	tl := newTestLoop(t, time.Minute, "p")
	tl.events <- Event{Err: io.ErrUnexpectedEOF}

	_, err := tl.loop.Run(context.Background())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Run() error = %v, expected listener error", err)
	}
}

func TestLoopCancelledContext(t *testing.T) {
	tl := newTestLoop(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := tl.loop.Run(ctx)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.Status != snake.StatusQuit {
		t.Errorf("status = %v, expected quit", snap.Status)
	}
}

func TestLoopQuitWhilePaused(t *testing.T) {
	tl := newTestLoop(t, time.Minute, "p", "h", "q")

	snap, err := tl.loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if snap.Status != snake.StatusQuit {
		t.Errorf("status = %v, expected quit", snap.Status)
	}
	if snap.Dir != snake.DirUp {
		t.Errorf("direction = %v, turns while paused must be ignored", snap.Dir)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestLoopWriteError(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	renderer, err := NewRenderer(failingWriter{}, cfg)
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	km, err := NewKeyMapper(cfg.Keys)
	if err != nil {
		t.Fatalf("NewKeyMapper() failed: %v", err)
	}
	loop := NewLoop(snake.New(cfg.Runtime()), renderer, km, make(chan Event), time.Minute)

	if _, err := loop.Run(context.Background()); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("Run() error = %v, expected write error", err)
	}
}
