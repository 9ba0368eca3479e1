// Package session ties a configuration, a seed and a starting game into a
// running machine, and turns recorded runs into replays that can be checked
// for determinism.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/dispatch"
	"github.com/vovakirdan/led-arcade/internal/platform/headless"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/scheduler"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

// Menu is the game ID of sessions that start at the menu.
const Menu = "menu"

// ErrMismatch is returned when a replay does not end on its recorded frame.
var ErrMismatch = errors.New("session: replay diverged")

// Setup is everything that decides how a session plays out besides input.
type Setup struct {
	Config     config.Config
	Difficulty config.DifficultyPreset
	Seed       uint64
	Game       string // registered game ID; empty or Menu starts at the menu
}

// GameID returns the ID the session is recorded under.
func (s Setup) GameID() string {
	if s.Game == "" {
		return Menu
	}
	return s.Game
}

// Machine creates the dispatcher and starts the configured game.
func (s Setup) Machine(opts ...dispatch.Option) (*dispatch.Dispatcher, error) {
	kind := core.KindMenu
	if id := s.GameID(); id != Menu {
		info, err := registry.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		kind = info.Kind
	}

	machine := dispatch.New(s.Config.Dispatch(), s.Seed, opts...)
	if kind != core.KindMenu {
		machine.Activate(kind)
	}
	return machine, nil
}

// Replay packs a finished run of sched, driven by inputs, into a replay.
func (s Setup) Replay(sched *scheduler.Scheduler, inputs []core.RawInput) (storage.Replay, error) {
	if uint64(len(inputs)) != sched.Ticks() {
		return storage.Replay{}, fmt.Errorf("session: %d inputs recorded for %d ticks", len(inputs), sched.Ticks())
	}

	doc, err := config.Marshal(s.Config)
	if err != nil {
		return storage.Replay{}, err
	}

	frame := sched.Frame()
	difficulty := string(s.Difficulty)
	if difficulty == "" {
		difficulty = string(config.DifficultyNormal)
	}

	return storage.Replay{
		GameID:     s.GameID(),
		Seed:       s.Seed,
		TickRate:   s.Config.TickRate,
		Difficulty: difficulty,
		Config:     string(doc),
		Ticks:      len(inputs),
		Score:      sched.Dispatcher().State().Score,
		FrameHash:  storage.HashFrame(&frame),
		Inputs:     inputs,
	}, nil
}

// FromReplay restores the setup a replay was recorded with.
func FromReplay(r *storage.Replay) (Setup, error) {
	cfg := config.EmbeddedConfig()
	if r.Config != "" {
		var err error
		if cfg, err = config.Parse([]byte(r.Config), fmt.Sprintf("replay %d", r.ID)); err != nil {
			return Setup{}, err
		}
	}
	return Setup{
		Config:     cfg,
		Difficulty: config.DifficultyPreset(r.Difficulty),
		Seed:       r.Seed,
		Game:       r.GameID,
	}, nil
}

// Rerun plays a replay headless, as fast as possible, and returns the final
// frame.
func Rerun(ctx context.Context, r *storage.Replay) (core.Frame, error) {
	setup, err := FromReplay(r)
	if err != nil {
		return core.Frame{}, err
	}
	machine, err := setup.Machine()
	if err != nil {
		return core.Frame{}, err
	}

	display := &headless.Display{}
	sched := scheduler.New(machine, display, headless.NewScript(r.Inputs...), &headless.Timer{}, scheduler.Options{
		TickRate: setup.Config.TickRate,
		DeadZone: setup.Config.DeadZone,
	})
	for range r.Ticks {
		if err := sched.Tick(ctx); err != nil {
			return core.Frame{}, err
		}
	}
	return display.Last(), nil
}

// Verify reruns a replay and checks it ends on the recorded frame.
func Verify(ctx context.Context, r *storage.Replay) (core.Frame, error) {
	frame, err := Rerun(ctx, r)
	if err != nil {
		return frame, err
	}
	if got := storage.HashFrame(&frame); got != r.FrameHash {
		return frame, fmt.Errorf("%w: replay %d ended on %016x, recorded %016x", ErrMismatch, r.ID, got, r.FrameHash)
	}
	return frame, nil
}
