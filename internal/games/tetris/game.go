// Package tetris implements the falling-block puzzle on the 8x32 LED board.
package tetris

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// Spawn position and the row below which the next piece is previewed.
const (
	SpawnX     = 3
	SpawnY     = core.HUDHeight
	PreviewRow = 11
)

// Piece kinds, in the order of the Pieces table.
const (
	PieceO = iota
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
	PieceI
	PieceCount
)

// Pieces are the seven tetrominoes in spawn orientation.
var Pieces = [PieceCount]core.Figure{
	core.ParseFigure("##", "##"),
	core.ParseFigure(".#.", "###"),
	core.ParseFigure("..#", "###"),
	core.ParseFigure("#..", "###"),
	core.ParseFigure(".##", "##."),
	core.ParseFigure("##.", ".##"),
	core.ParseFigure("####"),
}

// PieceColors are the colours pieces keep after they lock.
var PieceColors = [PieceCount]core.Pixel{
	core.Yellow,
	core.Pink,
	core.Brick,
	core.Blue,
	core.Green,
	core.Red,
	core.LightBlue,
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "tetris",
		Title:    "Tetris",
		Kind:     core.KindTetris,
		Controls: "left/right move, down soft drop, fire/A rotate, B hard drop",
	})
}

// Game is the Tetris state machine. The zero value is an inactive game;
// call Reset before Advance.
type Game struct {
	cfg  Config
	rng  core.Rand
	tick uint64

	board core.Framebuffer // locked cells, play area rows only

	kind  int
	piece core.Figure
	x, y  int
	next  int

	score  int
	lines  int
	clears int // row-clear events, one per tick that removed rows

	gravity   int
	moveDir   int
	moveTimer int

	gameOver  bool
	overTicks int
}

// Reset starts a new game.
func (g *Game) Reset(cfg Config, seed uint64) {
	*g = Game{
		cfg: cfg.Normalize(),
		rng: core.NewRand(seed),
	}
	g.next = g.rng.Intn(PieceCount)
	g.spawn()
}

// Advance runs one tick. dt is the number of ticks elapsed, normally 1.
func (g *Game) Advance(in *core.InputState, dt uint32) core.Outcome {
	steps := int(dt)
	g.tick += uint64(dt)

	if g.gameOver {
		g.overTicks += steps
		return core.GameOver
	}

	g.clearRows()

	if in.Pressed(core.ButtonConfirm) || in.Pressed(core.ButtonA) {
		g.rotate()
	}

	g.shift(in.AxisX(), steps)

	if in.Pressed(core.ButtonB) {
		for g.fits(g.x, g.y+1, g.piece) {
			g.y++
		}
		g.lock()
		return g.outcome()
	}

	interval := g.cfg.Interval(g.score)
	if in.AxisY() > 0 {
		interval = min(interval, g.cfg.SoftDropInterval)
	}
	g.gravity += steps
	if g.gravity >= interval {
		g.gravity = 0
		if g.fits(g.x, g.y+1, g.piece) {
			g.y++
		} else {
			g.lock()
		}
	}

	return g.outcome()
}

func (g *Game) outcome() core.Outcome {
	if g.gameOver {
		return core.GameOver
	}
	return core.Continue
}

// shift moves the piece one column on the onset of sideways input and then
// every MoveRepeat ticks while the input is held.
func (g *Game) shift(dir, steps int) {
	if dir == 0 {
		g.moveDir = 0
		g.moveTimer = 0
		return
	}
	if dir != g.moveDir {
		g.moveDir = dir
		g.moveTimer = 0
	} else {
		g.moveTimer += steps
		if g.moveTimer < g.cfg.MoveRepeat {
			return
		}
		g.moveTimer = 0
	}
	if g.fits(g.x+dir, g.y, g.piece) {
		g.x += dir
	}
}

// rotate turns the piece clockwise, pulling it left when the rotated shape
// would stick out past the right edge.
func (g *Game) rotate() {
	r := g.piece.Rotate()
	x := g.x
	if x+int(r.W) > core.Width {
		x = core.Width - int(r.W)
	}
	if g.fits(x, g.y, r) {
		g.piece = r
		g.x = x
	}
}

func (g *Game) fits(x, y int, f core.Figure) bool {
	return y >= core.HUDHeight && !g.board.Collides(x, y, f)
}

func (g *Game) lock() {
	g.board.DrawFigure(g.x, g.y, g.piece, PieceColors[g.kind])
	g.spawn()
}

func (g *Game) spawn() {
	g.kind = g.next
	g.next = g.rng.Intn(PieceCount)
	g.piece = Pieces[g.kind]
	g.x, g.y = SpawnX, SpawnY
	g.gravity = 0
	if !g.fits(g.x, g.y, g.piece) {
		g.gameOver = true
	}
}

// clearRows removes every full row, shifting the rows above down, and scores
// them as one event.
func (g *Game) clearRows() {
	k := 0
	for y := core.Height - 1; y >= core.HUDHeight; {
		if !g.board.RowFull(y) {
			y--
			continue
		}
		for yy := y; yy > core.HUDHeight; yy-- {
			g.board.CopyRow(yy, yy-1)
		}
		g.board.ClearRow(core.HUDHeight)
		k++
	}
	if k > 0 {
		g.score += g.cfg.Scoring.Points(k)
		g.lines += k
		g.clears++
	}
}

// Render draws the board, the falling piece and the HUD.
func (g *Game) Render(fb *core.Framebuffer) {
	fb.Clear()
	core.DrawScore(fb, g.score, core.LightBlue)
	core.DrawSeparator(fb, core.Pink)
	fb.Overlay(&g.board)

	if g.gameOver {
		if (g.overTicks/g.cfg.BlinkInterval)%2 == 0 {
			fb.DrawFigure(g.x, g.y, g.piece, PieceColors[g.kind])
		}
		return
	}

	if g.y > PreviewRow {
		fb.DrawFigure(SpawnX, SpawnY, Pieces[g.next], core.DarkGreen)
	}
	fb.DrawFigure(g.x, g.y, g.piece, PieceColors[g.kind])
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
