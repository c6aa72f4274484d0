package snake

// Snapshot captures the game state for determinism testing and diagnostics.
type Snapshot struct {
	Tick     uint64
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Status   Status
	Cause    Cause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if g.body.Len() > 0 {
		head := g.body.Front()
		headX = head.X
		headY = head.Y
	}

	return Snapshot{
		Tick:     g.tick,
		SnakeLen: g.body.Len(),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Status:   g.status,
		Cause:    g.cause,
	}
}
