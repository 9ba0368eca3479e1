// Package scheduler runs the arcade one tick at a time: read input, advance
// the dispatcher, render, show, then wait for the next tick.
package scheduler

import (
	"context"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/dispatch"
	"github.com/vovakirdan/led-arcade/internal/platform"
)

// Options configures a Scheduler. Zero values select the defaults.
type Options struct {
	TickRate int // ticks per second
	DeadZone int // stick dead zone, 0 for core.DefaultDeadZone
	Logger   core.Logger
}

// Scheduler owns the input state and framebuffer and drives a dispatcher
// through the host's capabilities. It is not safe for concurrent use.
type Scheduler struct {
	machine    *dispatch.Dispatcher
	display    platform.Display
	controller platform.Controller
	timer      platform.Timer
	log        core.Logger

	interval time.Duration
	input    core.InputState
	fb       core.Framebuffer
	ticks    uint64
}

// New creates a scheduler for machine. A nil timer is replaced by a
// platform.SleepTimer; hosts that only call Tick never use it.
func New(machine *dispatch.Dispatcher, display platform.Display, controller platform.Controller, timer platform.Timer, opts Options) *Scheduler {
	if opts.DeadZone <= 0 {
		opts.DeadZone = core.DefaultDeadZone
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}
	if timer == nil {
		timer = platform.NewSleepTimer()
	}
	return &Scheduler{
		machine:    machine,
		display:    display,
		controller: controller,
		timer:      timer,
		log:        opts.Logger,
		interval:   core.TickInterval(opts.TickRate),
		input:      core.NewInputState(opts.DeadZone),
	}
}

// Tick runs exactly one input, logic, render and display step. It does not
// wait. Hosts with their own clock call Tick directly.
func (s *Scheduler) Tick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.input.Sample(s.controller.Read())
	s.machine.Advance(&s.input, 1)
	s.machine.Render(&s.fb)
	s.display.Show(s.fb.Frame())
	s.ticks++
	return nil
}

// Run calls Tick and then sleeps for one tick interval, forever. It returns
// the error from the timer (or ctx) that stopped it.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info("scheduler started", "interval", s.interval)
	for {
		if err := s.Tick(ctx); err != nil {
			s.log.Info("scheduler stopped", "ticks", s.ticks, "err", err)
			return err
		}
		if err := s.timer.Sleep(ctx, s.interval); err != nil {
			s.log.Info("scheduler stopped", "ticks", s.ticks, "err", err)
			return err
		}
	}
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Frame returns a copy of the last rendered frame.
func (s *Scheduler) Frame() core.Frame {
	return s.fb.Snapshot()
}

// Interval returns the wall-clock period of one tick.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Dispatcher returns the driven state machine.
func (s *Scheduler) Dispatcher() *dispatch.Dispatcher {
	return s.machine
}

// Dropped returns the number of out-of-range pixel writes since start.
func (s *Scheduler) Dropped() uint32 {
	return s.fb.Dropped()
}
