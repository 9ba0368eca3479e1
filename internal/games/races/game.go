// Package races implements a vertical scrolling road race with a rival car,
// obstacles and a limited gun.
package races

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// Capacities of the fixed entity arrays.
const (
	MaxObstacles = 8
	MaxBullets   = 4
)

// Road geometry: brick kerbs on columns 0 and 7, cars drive between them.
const (
	LeftKerb  = 0
	RightKerb = core.Width - 1
	MinCarX   = LeftKerb + 1
	MaxCarX   = RightKerb - 3
	MinCarY   = core.HUDHeight
	MaxCarY   = core.Height - 4
)

// StartPos is the player car's top-left cell at the start of a race.
var StartPos = core.Dot{X: 3, Y: MaxCarY}

var (
	carSprite   = core.ParseFigure(".#.", "###", ".#.", "#.#")
	rivalSprite = core.ParseFigure("#.#", ".#.", "###", ".#.")
	obstacleBox = core.ParseFigure("##", "##")
)

func init() {
	registry.Register(registry.GameInfo{
		ID:       "races",
		Title:    "Races",
		Kind:     core.KindRaces,
		Controls: "stick steers, fire shoots while ammo lasts",
	})
}

type obstacle struct {
	pos  core.Dot
	live bool
}

type bullet struct {
	pos  core.Dot
	live bool
}

type rival struct {
	pos     core.Dot
	alive   bool
	health  int
	respawn int
}

// Game implements Races. The zero value is inactive; call Reset.
type Game struct {
	cfg  Config
	rng  core.Rand
	tick uint64

	car       core.Dot
	obstacles [MaxObstacles]obstacle
	bullets   [MaxBullets]bullet
	rival     rival
	powerUp   core.Dot
	powerLive bool

	score  int
	ammo   int
	lives  int
	invuln int

	roadClk    int
	roadOffset int
	bulletClk  int
	rivalClk   int
	steerTimer int

	gameOver  bool
	overTicks int
}

// Reset starts a new race.
func (g *Game) Reset(cfg Config, seed uint64) {
	*g = Game{
		cfg: cfg.Normalize(),
		rng: core.NewRand(seed),
		car: StartPos,
	}
	g.ammo = g.cfg.MaxAmmo
	g.lives = g.cfg.Lives
	g.rival.respawn = g.cfg.RivalRespawn
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

	g.steer(in, steps)
	if in.Pressed(core.ButtonConfirm) {
		g.fire()
	}

	g.bulletClk += steps
	if g.bulletClk >= g.cfg.BulletInterval {
		g.bulletClk = 0
		for i := range g.bullets {
			b := &g.bullets[i]
			if b.live {
				b.pos.Y--
				g.resolveBullet(b)
			}
		}
	}

	g.roadClk += steps
	if g.roadClk >= g.cfg.Interval(g.score) {
		g.roadClk = 0
		g.scroll()
	}

	g.driveRival(steps)
	g.collide()

	if g.cfg.TimeLimit > 0 && g.tick >= uint64(g.cfg.TimeLimit) {
		g.gameOver = true
	}
	if g.gameOver {
		return core.GameOver
	}
	return core.Continue
}

func (g *Game) steer(in *core.InputState, steps int) {
	d := in.Direction()
	if d.IsZero() {
		g.steerTimer = 0
		return
	}
	if in.DirectionPressed() {
		g.steerTimer = 0
	} else {
		g.steerTimer += steps
		if g.steerTimer < g.cfg.SteerInterval {
			return
		}
		g.steerTimer = 0
	}
	next := g.car.Add(d)
	next.X = core.Clamp(next.X, MinCarX, MaxCarX)
	next.Y = core.Clamp(next.Y, MinCarY, MaxCarY)
	g.car = next
}

func (g *Game) fire() {
	if g.ammo <= 0 {
		return
	}
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.live {
			*b = bullet{pos: core.Dot{X: g.car.X + 1, Y: g.car.Y - 1}, live: true}
			g.ammo--
			g.resolveBullet(b)
			return
		}
	}
}

func covers(f core.Figure, at, cell core.Dot) bool {
	return f.At(cell.X-at.X, cell.Y-at.Y)
}

func (g *Game) resolveBullet(b *bullet) {
	if !core.PlayArea.ContainsDot(b.pos) {
		b.live = false
		return
	}
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if o.live && covers(obstacleBox, o.pos, b.pos) {
			o.live = false
			b.live = false
			return
		}
	}
	if g.rival.alive && covers(rivalSprite, g.rival.pos, b.pos) {
		b.live = false
		g.rival.health--
		if g.rival.health <= 0 {
			g.score++
			g.retireRival()
		}
	}
}

func (g *Game) retireRival() {
	g.rival.alive = false
	g.rival.respawn = g.cfg.RivalRespawn
	g.rivalClk = 0
}

// scroll moves the road one row down and spawns new traffic at the top.
func (g *Game) scroll() {
	g.roadOffset++

	for i := range g.obstacles {
		o := &g.obstacles[i]
		if o.live {
			o.pos.Y++
			if o.pos.Y >= core.Height {
				o.live = false
			}
		}
	}
	if g.powerLive {
		g.powerUp.Y++
		if g.powerUp.Y >= core.Height {
			g.powerLive = false
		}
	}

	if g.rng.Chance(g.cfg.SpawnChance) {
		g.spawnObstacle()
	}
	if !g.powerLive && g.rng.Chance(g.cfg.PowerUpChance) {
		g.powerUp = core.Dot{X: MinCarX + g.rng.Intn(RightKerb-MinCarX), Y: core.HUDHeight}
		g.powerLive = true
	}
}

func (g *Game) spawnObstacle() {
	p := core.Dot{X: MinCarX + g.rng.Intn(RightKerb-MinCarX-1), Y: core.HUDHeight}
	box := core.NewRect(p.X, p.Y, 2, 2)
	free := -1
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if !o.live {
			if free < 0 {
				free = i
			}
			continue
		}
		if box.Intersects(core.NewRect(o.pos.X, o.pos.Y, 2, 2)) {
			return
		}
	}
	if free >= 0 {
		g.obstacles[free] = obstacle{pos: p, live: true}
	}
}

// driveRival spawns the rival after its respawn delay and moves it down the
// road, drifting toward the player's lane.
func (g *Game) driveRival(steps int) {
	r := &g.rival
	if !r.alive {
		r.respawn -= steps
		if r.respawn <= 0 {
			*r = rival{
				pos:    core.Dot{X: MinCarX + g.rng.Intn(MaxCarX-MinCarX+1), Y: core.HUDHeight},
				alive:  true,
				health: g.cfg.RivalHealth,
			}
		}
		return
	}

	g.rivalClk += steps
	if g.rivalClk < g.cfg.RivalInterval {
		return
	}
	g.rivalClk = 0
	r.pos.Y++
	if g.rng.Chance(3) {
		r.pos.X = core.Clamp(r.pos.X+core.Sign(g.car.X-r.pos.X), MinCarX, MaxCarX)
	}
	if r.pos.Y >= core.Height {
		g.retireRival()
	}
}

// collide handles crashes and power-up pickup.
func (g *Game) collide() {
	if g.powerLive && covers(carSprite, g.car, g.powerUp) {
		g.powerLive = false
		g.ammo = min(g.cfg.MaxAmmo, g.ammo+g.cfg.PowerUpAmmo)
	}

	if g.invuln > 0 {
		return
	}
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if o.live && g.overlaps(obstacleBox, o.pos) {
			o.live = false
			g.crash()
			return
		}
	}
	if g.rival.alive && g.overlaps(rivalSprite, g.rival.pos) {
		g.retireRival()
		g.crash()
	}
}

// overlaps reports whether figure f at p shares a cell with the player car.
func (g *Game) overlaps(f core.Figure, p core.Dot) bool {
	for y := 0; y < int(f.H); y++ {
		for x := 0; x < int(f.W); x++ {
			if f.At(x, y) && covers(carSprite, g.car, core.Dot{X: p.X + x, Y: p.Y + y}) {
				return true
			}
		}
	}
	return false
}

func (g *Game) crash() {
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.invuln = g.cfg.InvulnerableTicks
}

// Render draws the road, traffic and the HUD: score, lives and ammo.
func (g *Game) Render(fb *core.Framebuffer) {
	fb.Clear()
	core.DrawScore(fb, g.score, core.Yellow)
	core.DrawPips(fb, 3, g.lives, core.Green)
	core.DrawPips(fb, 4, g.ammo, core.Pink)
	core.DrawSeparator(fb, core.Pink)

	for y := core.HUDHeight; y < core.Height; y++ {
		if core.Mod(y-g.roadOffset, 4) < 2 {
			fb.Set(LeftKerb, y, core.Brick)
			fb.Set(RightKerb, y, core.Brick)
		}
	}

	for _, o := range g.obstacles {
		if o.live {
			fb.DrawFigure(o.pos.X, o.pos.Y, obstacleBox, core.Red)
		}
	}
	if g.powerLive {
		fb.Set(g.powerUp.X, g.powerUp.Y, core.Pink)
	}
	if g.rival.alive {
		fb.DrawFigure(g.rival.pos.X, g.rival.pos.Y, rivalSprite, core.Blue)
	}
	for _, b := range g.bullets {
		if b.live {
			fb.Set(b.pos.X, b.pos.Y, core.Yellow)
		}
	}

	blink := g.invuln > 0 || g.gameOver
	if !blink || (int(g.tick)/g.cfg.BlinkInterval)%2 == 0 {
		fb.DrawFigure(g.car.X, g.car.Y, carSprite, core.LightGreen)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
