package tanks

import "github.com/vovakirdan/led-arcade/internal/core"

// TankSnapshot is the visible state of one tank.
type TankSnapshot struct {
	Pos      core.Dot
	Dir      core.Dot
	Alive    bool
	Missiles int // missiles in flight
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	Invuln   int
	Player   TankSnapshot
	Enemies  [MaxEnemies]TankSnapshot
	Bricks   [BrickCount]bool
	GameOver bool
}

func snapTank(t *tank) TankSnapshot {
	n := 0
	for _, m := range t.missiles {
		if m.live {
			n++
		}
	}
	return TankSnapshot{Pos: t.pos, Dir: t.dir, Alive: t.alive, Missiles: n}
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lives:    g.lives,
		Invuln:   g.invuln,
		Player:   snapTank(&g.player),
		Bricks:   g.bricks,
		GameOver: g.gameOver,
	}
	for i := range g.enemies {
		s.Enemies[i] = snapTank(&g.enemies[i])
	}
	return s
}
