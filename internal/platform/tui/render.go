package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ansiColors maps core.Color to lipgloss ANSI color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorGray:    lipgloss.Color("245"),
}

// Renderer draws the board with cursor-addressed writes.
// The border is painted once; each tick only touches the cells that changed.
type Renderer struct {
	w      io.Writer
	width  int
	height int
	buf    strings.Builder

	snake  string // Pre-rendered glyphs
	food   string
	hRule  string
	vRule  string
	status lipgloss.Style
}

// NewRenderer creates a renderer writing to w.
// Colors are degraded to what w supports; a plain writer gets no escape codes for color.
func NewRenderer(w io.Writer, cfg config.SnakeConfig) (*Renderer, error) {
	lr := lipgloss.NewRenderer(w)

	style := func(name string) (lipgloss.Style, error) {
		c, err := config.ParseColor(name)
		if err != nil {
			return lipgloss.Style{}, err
		}
		s := lr.NewStyle()
		if fg, ok := ansiColors[c]; ok {
			s = s.Foreground(fg)
		}
		return s, nil
	}

	snakeStyle, err := style(cfg.Colors.Snake)
	if err != nil {
		return nil, err
	}
	foodStyle, err := style(cfg.Colors.Food)
	if err != nil {
		return nil, err
	}
	borderStyle, err := style(cfg.Colors.Border)
	if err != nil {
		return nil, err
	}
	statusStyle, err := style(cfg.Colors.Status)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		w:      w,
		width:  cfg.Board.Width,
		height: cfg.Board.Height,
		snake:  snakeStyle.Render(cfg.Glyphs.Snake),
		food:   foodStyle.Render(cfg.Glyphs.Food),
		hRule:  borderStyle.Render(strings.Repeat(cfg.Glyphs.Horizontal, cfg.Board.Width+1)),
		vRule:  borderStyle.Render(cfg.Glyphs.Vertical),
		status: statusStyle,
	}, nil
}

// DrawBoard clears the screen and paints the border, the snake and the food.
func (r *Renderer) DrawBoard(body []snake.Point, food snake.Point) error {
	r.buf.WriteString(ansi.EraseEntireScreen)

	r.moveTo(0, 0)
	r.buf.WriteString(r.hRule)
	for y := 1; y < r.height; y++ {
		r.moveTo(0, y)
		r.buf.WriteString(r.vRule)
		r.moveTo(r.width, y)
		r.buf.WriteString(r.vRule)
	}
	r.moveTo(0, r.height)
	r.buf.WriteString(r.hRule)

	for _, seg := range body {
		r.put(seg, r.snake)
	}
	r.putFood(food)

	return r.flush()
}

// DrawStep applies one tick: erase the vacated tail, then draw the food and the new head.
// The tail goes first because the head may move into the cell it just left.
func (r *Renderer) DrawStep(res snake.StepResult) error {
	if !res.Moved {
		return nil
	}
	if res.TailFreed {
		r.put(res.Tail, " ")
	}
	r.putFood(res.Food)
	r.put(res.Head, r.snake)
	return r.flush()
}

// DrawStatus rewrites the line below the board.
func (r *Renderer) DrawStatus(length int, paused bool) error {
	text := fmt.Sprintf("length: %d", length)
	if paused {
		text += "  [paused]"
	}
	r.moveTo(0, r.height+1)
	r.buf.WriteString(ansi.EraseEntireLine)
	r.buf.WriteString(r.status.Render(text))
	return r.flush()
}

func (r *Renderer) putFood(p snake.Point) {
	if p.X < 0 || p.Y < 0 {
		return // No food left
	}
	r.put(p, r.food)
}

func (r *Renderer) put(p snake.Point, glyph string) {
	r.moveTo(p.X, p.Y)
	r.buf.WriteString(glyph)
}

// moveTo positions the cursor on a 0-based board cell.
func (r *Renderer) moveTo(x, y int) {
	r.buf.WriteString(ansi.CursorPosition(x+1, y+1))
}

// flush sends the buffered frame in a single write.
func (r *Renderer) flush() error {
	defer r.buf.Reset()
	if _, err := io.WriteString(r.w, r.buf.String()); err != nil {
		return fmt.Errorf("tui: write to terminal: %w", err)
	}
	return nil
}
