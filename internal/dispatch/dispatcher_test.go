package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/games/snake"
)

type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Debug(interface{}, ...interface{}) {}

func (l *recordingLogger) Info(msg interface{}, _ ...interface{}) {
	l.msgs = append(l.msgs, msg.(string))
}

type driver struct {
	d  *Dispatcher
	in core.InputState
}

func newDriver(cfg Config, seed uint64, opts ...Option) *driver {
	return &driver{d: New(cfg, seed, opts...), in: core.NewInputState(core.DefaultDeadZone)}
}

func (dr *driver) step(raw core.RawInput) {
	dr.in.Sample(raw)
	dr.d.Advance(&dr.in, 1)
}

// tap presses raw for one tick and releases it for one.
func (dr *driver) tap(raw core.RawInput) {
	dr.step(raw)
	dr.step(core.RawInput{})
}

var (
	idle    = core.RawInput{}
	left    = core.RawInput{X: -127}
	right   = core.RawInput{X: 127}
	confirm = core.RawInput{}.Press(core.ButtonConfirm)
	exit    = core.RawInput{}.Press(core.ButtonExit)
)

func TestStartsInMenu(t *testing.T) {
	d := New(DefaultConfig(), 1)
	assert.Equal(t, core.KindMenu, d.Kind())
	assert.Equal(t, core.KindTetris, d.Selected())
	assert.Equal(t, core.GameState{}, d.State())
}

func TestMenuCyclesTitles(t *testing.T) {
	dr := newDriver(DefaultConfig(), 1)

	want := []core.GameKind{core.KindSnake, core.KindTanks, core.KindRaces, core.KindLife, core.KindTetris}
	for _, k := range want {
		dr.tap(right)
		assert.Equal(t, k, dr.d.Selected())
	}

	dr.tap(left)
	assert.Equal(t, core.KindLife, dr.d.Selected(), "left from the first title wraps to the last")
	assert.Equal(t, core.KindMenu, dr.d.Kind())
}

func TestHeldStickMovesOnce(t *testing.T) {
	dr := newDriver(DefaultConfig(), 1)
	for range 30 {
		dr.step(right)
	}
	assert.Equal(t, core.KindSnake, dr.d.Selected())
}

func TestConfirmStartsSelectedGame(t *testing.T) {
	dr := newDriver(DefaultConfig(), 1)
	dr.tap(right)
	dr.tap(confirm)

	require.Equal(t, core.KindSnake, dr.d.Kind())
	assert.NotZero(t, dr.d.Seed())
	assert.False(t, dr.d.State().GameOver)
}

func TestExitReturnsToMenu(t *testing.T) {
	dr := newDriver(DefaultConfig(), 1)
	dr.d.Activate(core.KindSnake)
	for range 10 {
		dr.step(idle)
	}

	dr.tap(exit)

	assert.Equal(t, core.KindMenu, dr.d.Kind())
	assert.Equal(t, core.KindSnake, dr.d.Selected(), "menu keeps the last played title")
	assert.Equal(t, snake.Game{}, dr.d.snake, "deactivated game should be zeroed")
}

func TestExitIgnoredInMenu(t *testing.T) {
	dr := newDriver(DefaultConfig(), 1)
	dr.tap(exit)
	assert.Equal(t, core.KindMenu, dr.d.Kind())
}

func TestGameOverHoldsThenReturns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoldTicks = 20
	dr := newDriver(cfg, 1)
	dr.d.Activate(core.KindSnake)

	// The snake starts heading right and runs into the wall.
	ticks := 0
	for !dr.d.State().GameOver {
		dr.step(idle)
		ticks++
		require.Less(t, ticks, 1000, "snake should hit the wall")
	}

	for i := 0; i < cfg.HoldTicks; i++ {
		require.Equal(t, core.KindSnake, dr.d.Kind(), "tick %d of the hold", i)
		dr.step(idle)
	}
	assert.Equal(t, core.KindMenu, dr.d.Kind())
}

func TestGameKeepsRenderingDuringHold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoldTicks = 1000
	dr := newDriver(cfg, 1)
	dr.d.Activate(core.KindSnake)
	for !dr.d.State().GameOver {
		dr.step(idle)
	}

	var fb core.Framebuffer
	frames := map[core.Frame]bool{}
	for range 60 {
		dr.step(idle)
		dr.d.Render(&fb)
		frames[fb.Snapshot()] = true
	}
	assert.Greater(t, len(frames), 1, "final frame should blink during the hold")
}

func TestActivateSeedsAreReproducible(t *testing.T) {
	run := func() core.Frame {
		dr := newDriver(DefaultConfig(), 99)
		dr.d.Activate(core.KindTetris)
		for i := 0; i < 500; i++ {
			raw := idle
			if i%7 == 0 {
				raw = left
			}
			dr.step(raw)
		}
		var fb core.Framebuffer
		dr.d.Render(&fb)
		return fb.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestFirstGameUsesSessionSeed(t *testing.T) {
	d := New(DefaultConfig(), 77)
	d.Activate(core.KindTetris)
	assert.Equal(t, uint64(77), d.Seed())

	d.Activate(core.KindSnake)
	assert.NotEqual(t, uint64(77), d.Seed())

	// A game started from the reported seed plays the same as the original.
	again := New(DefaultConfig(), d.Seed())
	again.Activate(core.KindSnake)
	var a, b core.Framebuffer
	d.Render(&a)
	again.Render(&b)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestActivateAllGames(t *testing.T) {
	for _, kind := range core.GameKinds {
		t.Run(kind.String(), func(t *testing.T) {
			dr := newDriver(DefaultConfig(), 5)
			dr.d.Activate(kind)
			require.Equal(t, kind, dr.d.Kind())

			var fb core.Framebuffer
			for range 120 {
				dr.step(idle)
				dr.d.Render(&fb)
			}
			assert.Zero(t, fb.Dropped())
		})
	}
}

func TestActivateMenu(t *testing.T) {
	dr := newDriver(DefaultConfig(), 1)
	dr.d.Activate(core.KindTanks)
	dr.d.Activate(core.KindMenu)
	assert.Equal(t, core.KindMenu, dr.d.Kind())
}

func TestMenuRendersTitle(t *testing.T) {
	d := New(DefaultConfig(), 1)
	var fb core.Framebuffer
	fb.Fill(core.Red)
	d.Render(&fb)

	want := titles[core.KindTetris]
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if want.At(x, y) {
				assert.Equal(t, TitleColor, fb.Get(x, y), "pixel (%d, %d)", x, y)
			} else {
				assert.True(t, fb.Get(x, y).IsOff(), "pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestEveryGameHasTitle(t *testing.T) {
	for _, kind := range core.GameKinds {
		_, ok := titles[kind]
		assert.True(t, ok, "missing title for %s", kind)
	}
}

func TestLoggerEvents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoldTicks = 1
	l := &recordingLogger{}
	dr := newDriver(cfg, 1, WithLogger(l))

	dr.tap(right)
	dr.tap(confirm)
	for dr.d.Kind() != core.KindMenu {
		dr.step(idle)
	}

	assert.Equal(t, []string{"game started", "game over", "back to menu"}, l.msgs)
}
