package life

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Pattern    int
	Generation int
	Population int
	Cells      Grid
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Pattern:    g.pattern,
		Generation: g.generation,
		Population: g.cells.Population(),
		Cells:      g.cells,
	}
}
