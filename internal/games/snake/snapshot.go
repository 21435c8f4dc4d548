package snake

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Moves   uint64
	Variant string
	Length  int
	HeadX   int
	HeadY   int
	Dir     string
	FoodX   int
	FoodY   int
	HasFood bool
	Phase   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Moves:   g.moves,
		Variant: g.id,
	}
	if g.board == nil {
		return s
	}

	head := g.board.Head()
	food, ok := g.board.Food()
	s.Length = g.board.Len()
	s.HeadX, s.HeadY = head.X, head.Y
	s.Dir = DirectionName(g.board.Direction())
	s.FoodX, s.FoodY = food.X, food.Y
	s.HasFood = ok
	s.Phase = g.board.Phase().String()
	return s
}
