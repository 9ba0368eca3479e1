package tetris

import "github.com/vovakirdan/led-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Clears   int
	Level    int
	Piece    int
	X, Y     int
	Next     int
	GameOver bool
	Board    core.Frame
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Clears:   g.clears,
		Level:    g.cfg.Level(g.score),
		Piece:    g.kind,
		X:        g.x,
		Y:        g.y,
		Next:     g.next,
		GameOver: g.gameOver,
		Board:    g.board.Snapshot(),
	}
}
