package snake

import (
	"math/rand"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirUp
	DirRight
)

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Opposite returns the reverse direction on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Point is a cell on the board. The top-left corner of the border is (0, 0).
type Point struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	switch d {
	case DirLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case DirDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirUp:
		return Point{X: p.X, Y: p.Y - 1}
	default:
		return Point{X: p.X + 1, Y: p.Y}
	}
}

// Status is the state of the game's state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusWon
	StatusLost
	StatusQuit
)

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusQuit
}

// Cause explains a loss.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

// StepResult describes what changed during one tick, for the renderer.
type StepResult struct {
	Moved bool // False if the game was not running

	Head      Point // New head; on a loss this is the cell that was hit
	Tail      Point // Cell vacated by the tail
	TailFreed bool  // False when the snake grew or did not move
	Grew      bool
	Food      Point // Food position after the tick
	Status    Status
}

// Game holds the snake, its direction and the food.
// It is owned by the game loop; nothing else mutates it.
type Game struct {
	rng  *rand.Rand
	cfg  core.RuntimeConfig
	tick uint64

	// Snake state
	body      deque.Deque[Point] // Head at the front
	direction Direction

	food   Point
	status Status
	cause  Cause
}

// New creates a game ready to run.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// Reset places a three-segment snake just below the centre of the board heading up,
// with the food in the upper-left quadrant.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.status = StatusRunning
	g.cause = CauseNone

	head := Point{X: cfg.BoardW/2 + 1, Y: cfg.BoardH/2 + 1}
	g.body.Clear()
	g.body.PushBack(head)
	g.body.PushBack(Point{X: head.X, Y: head.Y + 1})
	g.body.PushBack(Point{X: head.X, Y: head.Y + 2})
	g.direction = DirUp

	g.food = Point{X: cfg.BoardW / 4, Y: cfg.BoardH / 4}
}

// Step advances the game by one tick: the head moves one cell in the current direction,
// the tail follows unless food was eaten.
func (g *Game) Step() StepResult {
	if g.status != StatusRunning || g.body.Len() == 0 {
		return StepResult{Food: g.food, Status: g.status}
	}
	g.tick++

	next := g.body.Front().Step(g.direction)
	result := StepResult{Moved: true, Head: next, Food: g.food}

	if g.onBoundary(next) {
		g.lose(CauseWall)
		result.Status = g.status
		return result
	}

	grow := next == g.food

	// The tail leaves its cell this tick unless the snake grows
	checkLen := g.body.Len()
	if !grow {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.body.At(i) == next {
			g.lose(CauseSelf)
			result.Status = g.status
			return result
		}
	}

	g.body.PushFront(next)
	if grow {
		result.Grew = true
		g.spawnFood()
	} else {
		result.Tail = g.body.PopBack()
		result.TailFreed = true
	}

	result.Food = g.food
	result.Status = g.status
	return result
}

// Turn changes the direction for the next step.
// Only turns onto the other axis are accepted; reversals and repeats are rejected.
func (g *Game) Turn(d Direction) bool {
	if g.status != StatusRunning {
		return false
	}
	if d.Horizontal() == g.direction.Horizontal() {
		return false
	}
	g.direction = d
	return true
}

// Pause stops ticks from advancing the game.
func (g *Game) Pause() bool {
	if g.status != StatusRunning {
		return false
	}
	g.status = StatusPaused
	return true
}

// Resume continues a paused game.
func (g *Game) Resume() bool {
	if g.status != StatusPaused {
		return false
	}
	g.status = StatusRunning
	return true
}

// Quit ends the game at the player's request.
func (g *Game) Quit() {
	if g.status.Terminal() {
		return
	}
	g.status = StatusQuit
}

// onBoundary reports whether p lies on the wall ring (or outside it).
func (g *Game) onBoundary(p Point) bool {
	return p.X <= 0 || p.Y <= 0 || p.X >= g.cfg.BoardW || p.Y >= g.cfg.BoardH
}

func (g *Game) lose(cause Cause) {
	g.status = StatusLost
	g.cause = cause
}

// spawnFood places food on a uniformly random free interior cell.
// A snake covering the whole interior wins.
func (g *Game) spawnFood() {
	occupied := make(map[Point]bool, g.body.Len())
	for i, n := 0, g.body.Len(); i < n; i++ {
		occupied[g.body.At(i)] = true
	}

	var free []Point
	for y := 1; y < g.cfg.BoardH; y++ {
		for x := 1; x < g.cfg.BoardW; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		g.status = StatusWon
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// Status returns the current state machine status.
func (g *Game) Status() Status {
	return g.status
}

// Cause returns why the game was lost, CauseNone otherwise.
func (g *Game) Cause() Cause {
	return g.cause
}

// Over reports whether the game reached a terminal state.
func (g *Game) Over() bool {
	return g.status.Terminal()
}

// Len returns the number of snake segments.
func (g *Game) Len() int {
	return g.body.Len()
}

// Head returns the head position.
func (g *Game) Head() Point {
	return g.body.Front()
}

// Food returns the food position. Negative coordinates mean there is no food.
func (g *Game) Food() Point {
	return g.food
}

// Direction returns the current movement direction.
func (g *Game) Direction() Direction {
	return g.direction
}

// Body returns a copy of the segments, head first.
func (g *Game) Body() []Point {
	out := make([]Point, g.body.Len())
	for i := range out {
		out[i] = g.body.At(i)
	}
	return out
}

// --- String representations ---

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}
