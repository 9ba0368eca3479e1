// Package life runs Conway's Game of Life on the play area as an ambient
// screen. Player input is ignored and the game never ends on its own.
package life

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

func init() {
	registry.Register(registry.GameInfo{
		ID:       "life",
		Title:    "Life",
		Kind:     core.KindLife,
		Controls: "watch; exit returns to the menu",
	})
}

// Game implements Life. The zero value is inactive; call Reset.
type Game struct {
	cfg  Config
	rng  core.Rand
	tick uint64

	cells      Grid
	next       Grid
	pattern    int
	generation int
	clock      int
}

// Reset seeds the board with the configured pattern.
func (g *Game) Reset(cfg Config, seed uint64) {
	*g = Game{
		cfg: cfg.Normalize(),
		rng: core.NewRand(seed),
	}
	g.pattern, _ = PatternIndex(g.cfg.Pattern)

	if cells := patterns[g.pattern].cells; cells != nil {
		for _, c := range cells {
			g.cells.Set(c.X, c.Y, true)
		}
		return
	}
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			g.cells[y][x] = g.rng.Chance(g.cfg.Density)
		}
	}
}

// Advance runs one tick. Input is not consulted.
func (g *Game) Advance(_ *core.InputState, dt uint32) core.Outcome {
	g.tick += uint64(dt)
	g.clock += int(dt)
	for g.clock >= g.cfg.GenerationInterval {
		g.clock -= g.cfg.GenerationInterval
		Step(&g.next, &g.cells)
		g.cells, g.next = g.next, g.cells
		g.generation++
	}
	return core.Continue
}

// Generation returns the number of generations computed since Reset.
func (g *Game) Generation() int {
	return g.generation
}

// Grid returns a copy of the current board.
func (g *Game) Grid() Grid {
	return g.cells
}

// Render draws the HUD (pattern number and generation tens) and the board.
func (g *Game) Render(fb *core.Framebuffer) {
	fb.Clear()
	core.DrawDigit(fb, 0, 0, g.pattern, core.Green)
	core.DrawDigit(fb, 5, 0, g.generation/10, core.Green)
	core.DrawSeparator(fb, core.Pink)

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if g.cells[y][x] {
				fb.Set(x, core.HUDHeight+y, core.Green)
			}
		}
	}
}

// State returns the current game state. Life has no score.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.generation}
}
