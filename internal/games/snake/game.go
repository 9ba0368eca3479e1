// Package snake implements Snake on the LED play area.
package snake

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// MaxLength is the capacity of the body array. Eating at full length scores
// without growing.
const MaxLength = 64

// StartRow is the row the snake spawns on, heading right.
const StartRow = 15

func init() {
	registry.Register(registry.GameInfo{
		ID:       "snake",
		Title:    "Snake",
		Kind:     core.KindSnake,
		Controls: "stick steers, hold the current heading to speed up",
	})
}

// Game implements the Snake game. The zero value is inactive; call Reset.
type Game struct {
	cfg  Config
	rng  core.Rand
	tick uint64

	body   [MaxLength]core.Dot // head at index 0
	length int
	dir    core.Dot
	next   core.Dot // buffered heading, applied on the next step
	food   core.Dot

	score     int
	moveTimer int

	gameOver  bool
	overTicks int
}

// Reset starts a new game.
func (g *Game) Reset(cfg Config, seed uint64) {
	*g = Game{
		cfg: cfg.Normalize(),
		rng: core.NewRand(seed),
		dir: core.DirRight,
	}
	g.next = g.dir
	g.length = g.cfg.InitialLength
	for i := 0; i < g.length; i++ {
		g.body[i] = core.Dot{X: g.length - i, Y: StartRow}
	}
	g.placeFood()
}

// Advance runs one tick.
func (g *Game) Advance(in *core.InputState, dt uint32) core.Outcome {
	steps := int(dt)
	g.tick += uint64(dt)

	if g.gameOver {
		g.overTicks += steps
		return core.GameOver
	}

	if d := in.Direction(); !d.IsZero() {
		g.next = d
	}

	g.moveTimer += steps
	if g.moveTimer >= g.interval(in.Direction()) {
		g.moveTimer = 0
		g.move()
	}

	if g.gameOver {
		return core.GameOver
	}
	return core.Continue
}

// interval is the current step period: faster with score, and faster still
// while the stick is held in the direction of travel.
func (g *Game) interval(held core.Dot) int {
	iv := max(g.cfg.MinInterval, g.cfg.MoveInterval-g.score/g.cfg.SpeedupScore)
	if held == g.dir {
		iv = min(iv, g.cfg.FastInterval)
	}
	return iv
}

func (g *Game) move() {
	dir := g.next
	// Turning back onto the neck is ignored; the snake keeps its heading.
	if g.length > 1 && g.body[0].Add(dir) == g.body[1] {
		dir = g.dir
	}
	g.dir = dir
	g.next = dir

	head := g.body[0].Add(dir)
	if !core.PlayArea.ContainsDot(head) {
		if !g.cfg.Wrap {
			g.gameOver = true
			return
		}
		head = head.Wrap(core.PlayArea)
	}

	eating := head == g.food
	grows := eating && g.length < MaxLength

	// The tail moves out of the way unless the snake grows this step.
	check := g.length
	if !grows {
		check--
	}
	for i := 0; i < check; i++ {
		if g.body[i] == head {
			g.gameOver = true
			return
		}
	}

	if grows {
		g.length++
	}
	for i := g.length - 1; i > 0; i-- {
		g.body[i] = g.body[i-1]
	}
	g.body[0] = head

	if eating {
		g.score++
		g.placeFood()
	}
}

func (g *Game) occupied(d core.Dot) bool {
	for i := 0; i < g.length; i++ {
		if g.body[i] == d {
			return true
		}
	}
	return false
}

// placeFood puts the food on a random free cell: a few random probes, then a
// scan from a random start so placement always terminates. A board with no
// free cell ends the game.
func (g *Game) placeFood() {
	g.placeFoodIn(core.PlayArea)
}

func (g *Game) placeFoodIn(area core.Rect) {
	cells := area.W * area.H

	for range 16 {
		d := core.Dot{X: area.X + g.rng.Intn(area.W), Y: area.Y + g.rng.Intn(area.H)}
		if !g.occupied(d) {
			g.food = d
			return
		}
	}

	start := g.rng.Intn(cells)
	for i := 0; i < cells; i++ {
		idx := (start + i) % cells
		d := core.Dot{X: area.X + idx%area.W, Y: area.Y + idx/area.W}
		if !g.occupied(d) {
			g.food = d
			return
		}
	}
	g.gameOver = true
}

// Render draws the snake, the food and the HUD.
func (g *Game) Render(fb *core.Framebuffer) {
	fb.Clear()
	core.DrawScore(fb, g.score, core.Green)
	core.DrawSeparator(fb, core.Pink)

	fb.Set(g.food.X, g.food.Y, core.Red)

	if g.gameOver && (g.overTicks/g.cfg.BlinkInterval)%2 == 1 {
		return
	}
	for i := g.length - 1; i >= 0; i-- {
		c := core.Green
		switch i {
		case 0:
			c = core.LightGreen
		case g.length - 1:
			c = core.DarkGreen
		}
		fb.Set(g.body[i].X, g.body[i].Y, c)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
