package races

import "github.com/vovakirdan/led-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	Ammo        int
	Invuln      int
	Car         core.Dot
	Rival       core.Dot
	RivalAlive  bool
	RivalHealth int
	Obstacles   [MaxObstacles]core.Dot // zero Dot for empty slots
	Bullets     int
	PowerUp     core.Dot
	PowerLive   bool
	RoadOffset  int
	GameOver    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Lives:       g.lives,
		Ammo:        g.ammo,
		Invuln:      g.invuln,
		Car:         g.car,
		Rival:       g.rival.pos,
		RivalAlive:  g.rival.alive,
		RivalHealth: g.rival.health,
		PowerUp:     g.powerUp,
		PowerLive:   g.powerLive,
		RoadOffset:  g.roadOffset,
		GameOver:    g.gameOver,
	}
	for i, o := range g.obstacles {
		if o.live {
			s.Obstacles[i] = o.pos
		}
	}
	for _, b := range g.bullets {
		if b.live {
			s.Bullets++
		}
	}
	return s
}
