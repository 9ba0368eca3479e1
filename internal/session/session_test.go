package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/platform"
	"github.com/vovakirdan/led-arcade/internal/platform/headless"
	"github.com/vovakirdan/led-arcade/internal/scheduler"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

var (
	idle    = core.RawInput{}
	left    = core.RawInput{X: -127}
	up      = core.RawInput{Y: -127}
	confirm = core.RawInput{}.Press(core.ButtonConfirm)
)

func script() []core.RawInput {
	var in []core.RawInput
	for range 3 {
		in = append(in, left, left, idle, confirm, idle, up, idle, idle)
	}
	for range 200 {
		in = append(in, idle)
	}
	return in
}

// record plays inputs through a live-style scheduler with a recorder, the way
// the terminal host does.
func record(t *testing.T, setup Setup, inputs []core.RawInput) (storage.Replay, core.Frame) {
	t.Helper()
	machine, err := setup.Machine()
	require.NoError(t, err)

	rec := platform.NewRecorder(headless.NewScript(inputs...))
	sched := scheduler.New(machine, &headless.Display{}, rec, &headless.Timer{}, scheduler.Options{
		TickRate: setup.Config.TickRate,
	})
	for range inputs {
		require.NoError(t, sched.Tick(context.Background()))
	}

	r, err := setup.Replay(sched, rec.Samples())
	require.NoError(t, err)
	return r, sched.Frame()
}

func TestMachineStartsGame(t *testing.T) {
	m, err := Setup{Config: config.DefaultConfig(), Seed: 1, Game: "tanks"}.Machine()
	require.NoError(t, err)
	assert.Equal(t, core.KindTanks, m.Kind())

	m, err = Setup{Config: config.DefaultConfig(), Seed: 1}.Machine()
	require.NoError(t, err)
	assert.Equal(t, core.KindMenu, m.Kind())

	_, err = Setup{Config: config.DefaultConfig(), Game: "pacman"}.Machine()
	assert.ErrorContains(t, err, "pacman")
}

func TestReplayVerifies(t *testing.T) {
	for _, game := range []string{"tetris", "snake", "tanks", "races", "life", ""} {
		t.Run(game, func(t *testing.T) {
			setup := Setup{Config: config.DefaultConfig(), Seed: 99, Game: game}
			r, last := record(t, setup, script())

			assert.Equal(t, setup.GameID(), r.GameID)
			assert.Equal(t, "normal", r.Difficulty)

			frame, err := Verify(context.Background(), &r)
			require.NoError(t, err)
			assert.Equal(t, last, frame)
		})
	}
}

func TestReplayKeepsPresetConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	setup := Setup{Config: cfg, Difficulty: config.DifficultyHard, Seed: 5, Game: "tetris"}

	r, _ := record(t, setup, script())
	assert.Equal(t, "hard", r.Difficulty)

	restored, err := FromReplay(&r)
	require.NoError(t, err)
	assert.Equal(t, cfg.Tetris, restored.Config.Tetris)
	assert.Equal(t, setup.Seed, restored.Seed)

	_, err = Verify(context.Background(), &r)
	assert.NoError(t, err)
}

func TestVerifyDetectsDivergence(t *testing.T) {
	r, _ := record(t, Setup{Config: config.DefaultConfig(), Seed: 3, Game: "snake"}, script())
	r.FrameHash ^= 1

	_, err := Verify(context.Background(), &r)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestReplayRejectsShortRecording(t *testing.T) {
	setup := Setup{Config: config.DefaultConfig(), Seed: 3, Game: "life"}
	machine, err := setup.Machine()
	require.NoError(t, err)
	sched := scheduler.New(machine, &headless.Display{}, headless.NewScript(), &headless.Timer{}, scheduler.Options{})
	require.NoError(t, sched.Tick(context.Background()))

	_, err = setup.Replay(sched, nil)
	assert.Error(t, err)
}

func TestRerunCancelled(t *testing.T) {
	r, _ := record(t, Setup{Config: config.DefaultConfig(), Seed: 3, Game: "races"}, script())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Rerun(ctx, &r)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoredReplayVerifies(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	r, _ := record(t, Setup{Config: config.DefaultConfig(), Seed: 1<<63 | 11, Game: "tetris"}, script())
	id, err := store.SaveReplay(r)
	require.NoError(t, err)

	loaded, err := store.Replay(id)
	require.NoError(t, err)
	_, err = Verify(context.Background(), loaded)
	assert.NoError(t, err)
}
