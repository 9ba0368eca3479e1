// Package dispatch owns the menu and the five game state machines and routes
// each tick to whichever one is active.
package dispatch

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/games/life"
	"github.com/vovakirdan/led-arcade/internal/games/races"
	"github.com/vovakirdan/led-arcade/internal/games/snake"
	"github.com/vovakirdan/led-arcade/internal/games/tanks"
	"github.com/vovakirdan/led-arcade/internal/games/tetris"
)

// DefaultHoldTicks is how long a finished game's last frame stays up before
// the menu returns.
const DefaultHoldTicks = 3 * core.DefaultTickRate

// Config carries the tuning for every game and the dispatcher itself.
type Config struct {
	HoldTicks int
	Tetris    tetris.Config
	Snake     snake.Config
	Tanks     tanks.Config
	Races     races.Config
	Life      life.Config
}

// DefaultConfig returns the default tuning for all games.
func DefaultConfig() Config {
	return Config{
		HoldTicks: DefaultHoldTicks,
		Tetris:    tetris.DefaultConfig(),
		Snake:     snake.DefaultConfig(),
		Tanks:     tanks.DefaultConfig(),
		Races:     races.DefaultConfig(),
		Life:      life.DefaultConfig(),
	}
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger that receives start, game over and menu events.
func WithLogger(l core.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// Dispatcher is the top-level state machine. Its state is the active
// GameKind; the menu is active initially.
type Dispatcher struct {
	cfg Config
	rng core.Rand
	log core.Logger

	kind     core.GameKind
	selected int // index into core.GameKinds
	seed     uint64
	next     uint64 // seed of the next game
	over     bool
	hold     int

	tetris tetris.Game
	snake  snake.Game
	tanks  tanks.Game
	races  races.Game
	life   life.Game
}

// New creates a dispatcher showing the menu. The first game is started with
// seed itself and later games with seeds drawn from a generator seeded with
// it, so a session is reproducible from its seed and input stream, and a
// single game from the seed it reports.
func New(cfg Config, seed uint64, opts ...Option) *Dispatcher {
	if cfg.HoldTicks < 0 {
		cfg.HoldTicks = 0
	}
	d := &Dispatcher{
		cfg:  cfg,
		rng:  core.NewRand(seed),
		next: seed,
		log:  core.NopLogger{},
		kind: core.KindMenu,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Kind returns the active screen.
func (d *Dispatcher) Kind() core.GameKind {
	return d.kind
}

// Selected returns the game highlighted in the menu.
func (d *Dispatcher) Selected() core.GameKind {
	return core.GameKinds[d.selected]
}

// Seed returns the seed the active game was started with.
func (d *Dispatcher) Seed() uint64 {
	return d.seed
}

// Activate stops the current game and starts kind. KindMenu returns to the
// menu.
func (d *Dispatcher) Activate(kind core.GameKind) {
	if d.kind != core.KindMenu {
		d.deactivate()
	}
	if kind == core.KindMenu {
		d.kind = core.KindMenu
		return
	}

	seed := d.next
	switch kind {
	case core.KindTetris:
		d.tetris.Reset(d.cfg.Tetris, seed)
	case core.KindSnake:
		d.snake.Reset(d.cfg.Snake, seed)
	case core.KindTanks:
		d.tanks.Reset(d.cfg.Tanks, seed)
	case core.KindRaces:
		d.races.Reset(d.cfg.Races, seed)
	case core.KindLife:
		d.life.Reset(d.cfg.Life, seed)
	default:
		d.kind = core.KindMenu
		return
	}

	d.kind = kind
	d.seed = seed
	d.next = d.rng.Uint64()
	d.over = false
	d.hold = 0
	for i, k := range core.GameKinds {
		if k == kind {
			d.selected = i
		}
	}
	d.log.Info("game started", "game", kind, "seed", seed)
}

// deactivate zeroes the active game so no state leaks into the next run.
func (d *Dispatcher) deactivate() {
	switch d.kind {
	case core.KindTetris:
		d.tetris = tetris.Game{}
	case core.KindSnake:
		d.snake = snake.Game{}
	case core.KindTanks:
		d.tanks = tanks.Game{}
	case core.KindRaces:
		d.races = races.Game{}
	case core.KindLife:
		d.life = life.Game{}
	}
	d.over = false
	d.hold = 0
}

func (d *Dispatcher) toMenu(reason string) {
	d.log.Info("back to menu", "game", d.kind, "score", d.State().Score, "reason", reason)
	d.deactivate()
	d.kind = core.KindMenu
}

// Advance runs one tick of the active screen.
func (d *Dispatcher) Advance(in *core.InputState, dt uint32) {
	if d.kind == core.KindMenu {
		d.advanceMenu(in)
		return
	}

	if in.Pressed(core.ButtonExit) {
		d.toMenu("exit")
		return
	}

	if d.advanceGame(in, dt) != core.GameOver {
		return
	}
	if !d.over {
		d.over = true
		d.hold = 0
		d.log.Info("game over", "game", d.kind, "score", d.State().Score)
		return
	}
	d.hold += int(dt)
	if d.hold >= d.cfg.HoldTicks {
		d.toMenu("game over")
	}
}

func (d *Dispatcher) advanceMenu(in *core.InputState) {
	if in.DirectionPressed() {
		if dx := in.Direction().X; dx != 0 {
			d.selected = core.Mod(d.selected+dx, len(core.GameKinds))
			d.log.Debug("menu", "selected", core.GameKinds[d.selected])
		}
	}
	if in.Pressed(core.ButtonConfirm) {
		d.Activate(core.GameKinds[d.selected])
	}
}

func (d *Dispatcher) advanceGame(in *core.InputState, dt uint32) core.Outcome {
	switch d.kind {
	case core.KindTetris:
		return d.tetris.Advance(in, dt)
	case core.KindSnake:
		return d.snake.Advance(in, dt)
	case core.KindTanks:
		return d.tanks.Advance(in, dt)
	case core.KindRaces:
		return d.races.Advance(in, dt)
	case core.KindLife:
		return d.life.Advance(in, dt)
	}
	return core.Continue
}

// Render draws the active screen into fb.
func (d *Dispatcher) Render(fb *core.Framebuffer) {
	switch d.kind {
	case core.KindTetris:
		d.tetris.Render(fb)
	case core.KindSnake:
		d.snake.Render(fb)
	case core.KindTanks:
		d.tanks.Render(fb)
	case core.KindRaces:
		d.races.Render(fb)
	case core.KindLife:
		d.life.Render(fb)
	default:
		renderMenu(fb, d.Selected())
	}
}

// State returns the active game's state; the menu reports a zero state.
func (d *Dispatcher) State() core.GameState {
	switch d.kind {
	case core.KindTetris:
		return d.tetris.State()
	case core.KindSnake:
		return d.snake.State()
	case core.KindTanks:
		return d.tanks.State()
	case core.KindRaces:
		return d.races.State()
	case core.KindLife:
		return d.life.State()
	}
	return core.GameState{}
}
