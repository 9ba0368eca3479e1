package snake

import "github.com/vovakirdan/led-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Length   int
	Head     core.Dot
	Dir      core.Dot
	Food     core.Dot
	GameOver bool
	Body     [MaxLength]core.Dot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Length:   g.length,
		Head:     g.body[0],
		Dir:      g.dir,
		Food:     g.food,
		GameOver: g.gameOver,
		Body:     g.body,
	}
}
