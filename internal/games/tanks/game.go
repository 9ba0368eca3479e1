// Package tanks implements a top-down tank battle against AI tanks.
package tanks

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// MaxEnemies is the capacity of the enemy array.
const MaxEnemies = 4

// PlayerStart is where the player tank (re)spawns.
var PlayerStart = core.Dot{X: 3, Y: 16}

// spawnPoints are the four corners of the play area.
var spawnPoints = [MaxEnemies]core.Dot{
	{X: 0, Y: core.HUDHeight},
	{X: core.Width - TankSize, Y: core.HUDHeight},
	{X: 0, Y: core.Height - TankSize},
	{X: core.Width - TankSize, Y: core.Height - TankSize},
}

// brickLayout is the destructible wall map.
var brickLayout = [...]core.Dot{
	{X: 3, Y: 10}, {X: 4, Y: 10},
	{X: 0, Y: 21}, {X: 1, Y: 21},
	{X: 6, Y: 21}, {X: 7, Y: 21},
	{X: 3, Y: 26}, {X: 4, Y: 26},
}

// BrickCount is the number of wall cells in the layout.
const BrickCount = len(brickLayout)

func init() {
	registry.Register(registry.GameInfo{
		ID:       "tanks",
		Title:    "Tanks",
		Kind:     core.KindTanks,
		Controls: "stick turns then drives, fire shoots",
	})
}

// Game implements Tanks. The zero value is inactive; call Reset.
type Game struct {
	cfg  Config
	rng  core.Rand
	tick uint64

	player  tank
	enemies [MaxEnemies]tank
	bricks  [BrickCount]bool

	score      int
	lives      int
	invuln     int
	moveTimer  int
	missileClk int
	aiClk      int

	gameOver  bool
	overTicks int
}

// Reset starts a new round.
func (g *Game) Reset(cfg Config, seed uint64) {
	*g = Game{
		cfg: cfg.Normalize(),
		rng: core.NewRand(seed),
	}
	g.lives = g.cfg.Lives
	g.player = tank{pos: PlayerStart, dir: core.DirUp, alive: true}
	if g.cfg.Bricks {
		for i := range g.bricks {
			g.bricks[i] = true
		}
	}
}

// Advance runs one tick.
func (g *Game) Advance(in *core.InputState, dt uint32) core.Outcome {
	steps := int(dt)
	g.tick += uint64(dt)

	if g.gameOver {
		g.overTicks += steps
		return core.GameOver
	}

	if g.invuln > 0 {
		g.invuln = max(0, g.invuln-steps)
	}

	g.drivePlayer(in, steps)
	if in.Pressed(core.ButtonConfirm) {
		if i := g.player.fire(); i >= 0 {
			g.resolvePlayerMissile(&g.player.missiles[i])
		}
	}

	g.aiClk += steps
	if g.aiClk >= g.cfg.AIInterval {
		g.aiClk = 0
		g.think()
	}

	g.missileClk += steps
	if g.missileClk >= g.cfg.MissileInterval {
		g.missileClk = 0
		g.flyMissiles()
	}

	if g.cfg.TimeLimit > 0 && g.tick >= uint64(g.cfg.TimeLimit) {
		g.gameOver = true
	}

	if g.gameOver {
		return core.GameOver
	}
	return core.Continue
}

// drivePlayer turns the tank toward the stick on a fresh press and drives it
// forward while the stick keeps pointing the way the tank faces.
func (g *Game) drivePlayer(in *core.InputState, steps int) {
	d := in.Direction()
	if d.IsZero() {
		g.moveTimer = 0
		return
	}
	if in.DirectionPressed() {
		g.moveTimer = 0
	} else {
		g.moveTimer += steps
		if g.moveTimer < g.cfg.MoveInterval {
			return
		}
		g.moveTimer = 0
	}

	if d != g.player.dir {
		g.player.dir = d
		return
	}
	if next := g.player.pos.Add(d); g.free(next, &g.player) {
		g.player.pos = next
	}
}

// free reports whether a tank may occupy the square at p. self is ignored.
func (g *Game) free(p core.Dot, self *tank) bool {
	r := rectAt(p)
	if !core.PlayArea.Inside(r) {
		return false
	}
	for i, alive := range g.bricks {
		if alive && r.ContainsDot(brickLayout[i]) {
			return false
		}
	}
	if self != &g.player && g.player.alive && r.Intersects(g.player.rect()) {
		return false
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if e != self && e.alive && r.Intersects(e.rect()) {
			return false
		}
	}
	return true
}

// think runs one AI decision round: refill the field and move or fire each
// enemy.
func (g *Game) think() {
	alive := 0
	for i := range g.enemies {
		if g.enemies[i].alive {
			alive++
		}
	}
	for i := range g.enemies {
		if alive >= g.cfg.ActiveEnemies {
			break
		}
		e := &g.enemies[i]
		if e.alive {
			continue
		}
		p := spawnPoints[g.rng.Intn(len(spawnPoints))]
		if !g.free(p, e) {
			continue
		}
		dir := core.DirDown
		if p.Y > core.PlayArea.Y+core.PlayArea.H/2 {
			dir = core.DirUp
		}
		e.pos, e.dir, e.alive, e.steps = p, dir, true, 0
		alive++
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.alive {
			continue
		}
		if g.rng.Chance(g.cfg.FireChance) {
			if m := e.fire(); m >= 0 {
				g.resolveEnemyMissile(&e.missiles[m])
			}
		}
		if e.steps == 0 {
			if g.rng.Chance(g.cfg.TurnChance) {
				e.dir = core.Directions[g.rng.Intn(len(core.Directions))]
			}
			if g.rng.Chance(g.cfg.MoveChance) {
				e.steps = 1 + g.rng.Intn(5)
			}
		}
		if e.steps > 0 {
			if next := e.pos.Add(e.dir); g.free(next, e) {
				e.pos = next
				e.steps--
			} else {
				e.dir = e.dir.RotateCW()
				e.steps = 0
			}
		}
	}
}

func (g *Game) flyMissiles() {
	for i := range g.player.missiles {
		m := &g.player.missiles[i]
		if m.live {
			m.pos = m.pos.Add(m.dir)
			g.resolvePlayerMissile(m)
		}
	}
	for i := range g.enemies {
		for j := range g.enemies[i].missiles {
			m := &g.enemies[i].missiles[j]
			if m.live {
				m.pos = m.pos.Add(m.dir)
				g.resolveEnemyMissile(m)
			}
		}
	}
}

// hitWall retires missiles that left the field or struck a brick, removing
// the brick.
func (g *Game) hitWall(m *missile) bool {
	if !core.PlayArea.ContainsDot(m.pos) {
		m.live = false
		return true
	}
	for i, alive := range g.bricks {
		if alive && brickLayout[i] == m.pos {
			g.bricks[i] = false
			m.live = false
			return true
		}
	}
	return false
}

func (g *Game) resolvePlayerMissile(m *missile) {
	if g.hitWall(m) {
		return
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.alive && e.rect().ContainsDot(m.pos) {
			e.alive = false
			m.live = false
			g.score++
			return
		}
	}
}

func (g *Game) resolveEnemyMissile(m *missile) {
	if g.hitWall(m) {
		return
	}
	if !g.player.rect().ContainsDot(m.pos) {
		return
	}
	m.live = false
	if g.invuln > 0 {
		return
	}
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.player.pos = PlayerStart
	g.player.dir = core.DirUp
	g.invuln = g.cfg.InvulnerableTicks
}

// Render draws the field and the HUD: score digits, lives and remaining time.
func (g *Game) Render(fb *core.Framebuffer) {
	fb.Clear()
	core.DrawScore(fb, g.score, core.Yellow)
	core.DrawPips(fb, 3, g.lives, core.Pink)
	if g.cfg.TimeLimit > 0 {
		left := max(0, g.cfg.TimeLimit-int(g.tick))
		core.DrawPips(fb, 4, (left*5+g.cfg.TimeLimit-1)/g.cfg.TimeLimit, core.LightBlue)
	}
	core.DrawSeparator(fb, core.Pink)

	for i, alive := range g.bricks {
		if alive {
			fb.Set(brickLayout[i].X, brickLayout[i].Y, core.Brick)
		}
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if e.alive {
			e.draw(fb, core.Blue, core.LightBlue)
		}
		for _, m := range e.missiles {
			if m.live {
				fb.Set(m.pos.X, m.pos.Y, core.Red)
			}
		}
	}

	for _, m := range g.player.missiles {
		if m.live {
			fb.Set(m.pos.X, m.pos.Y, core.Yellow)
		}
	}

	blink := g.invuln > 0 || g.gameOver
	if !blink || (int(g.tick)/g.cfg.BlinkInterval)%2 == 0 {
		g.player.draw(fb, core.DarkGreen, core.LightGreen)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
