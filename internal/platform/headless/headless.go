// Package headless provides in-memory capabilities for tests, replays and
// benchmarks: a display that keeps frames, a scripted controller and a timer
// that never waits.
package headless

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ErrLimit is returned by Timer once its sleep budget is spent.
var ErrLimit = errors.New("headless: tick limit reached")

// Display records the frames it is shown.
type Display struct {
	Keep int // frames of history to keep; 0 keeps only the last

	last    core.Frame
	history []core.Frame
	shown   int
}

// Show copies frame.
func (d *Display) Show(frame *core.Frame) {
	d.last = *frame
	d.shown++
	if d.Keep > 0 {
		if len(d.history) == d.Keep {
			copy(d.history, d.history[1:])
			d.history = d.history[:d.Keep-1]
		}
		d.history = append(d.history, *frame)
	}
}

// Last returns the most recent frame.
func (d *Display) Last() core.Frame {
	return d.last
}

// History returns up to Keep most recent frames, oldest first.
func (d *Display) History() []core.Frame {
	return d.history
}

// Shown returns the number of frames shown.
func (d *Display) Shown() int {
	return d.shown
}

// Script is a Controller that replays a fixed input sequence and then
// reports an idle stick.
type Script struct {
	inputs []core.RawInput
	pos    int
}

// NewScript creates a controller for inputs.
func NewScript(inputs ...core.RawInput) *Script {
	return &Script{inputs: inputs}
}

// Read returns the next scripted input.
func (s *Script) Read() core.RawInput {
	if s.pos >= len(s.inputs) {
		return core.RawInput{}
	}
	raw := s.inputs[s.pos]
	s.pos++
	return raw
}

// Done reports whether every scripted input has been read.
func (s *Script) Done() bool {
	return s.pos >= len(s.inputs)
}

// Remaining returns the number of inputs not yet read.
func (s *Script) Remaining() int {
	return len(s.inputs) - s.pos
}

// Timer returns immediately. With a positive Limit it fails with ErrLimit
// after Limit sleeps, which stops a scheduler's Run loop.
type Timer struct {
	Limit int

	slept int
	total time.Duration
}

// Sleep records d without waiting.
func (t *Timer) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.Limit > 0 && t.slept >= t.Limit {
		return ErrLimit
	}
	t.slept++
	t.total += d
	return nil
}

// Slept returns the number of completed sleeps.
func (t *Timer) Slept() int {
	return t.slept
}

// Elapsed returns the simulated time spent sleeping.
func (t *Timer) Elapsed() time.Duration {
	return t.total
}
