// Package platform defines the capabilities a host hands to the scheduler:
// somewhere to show frames, somewhere to read raw input and a way to wait for
// the next tick. Host packages live in the subdirectories.
package platform

import (
	"context"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Display shows one complete frame per call. The frame is only valid until
// the call returns.
type Display interface {
	Show(frame *core.Frame)
}

// Controller reports the raw stick axes and held buttons. Edges are computed
// by the core.
type Controller interface {
	Read() core.RawInput
}

// Timer suspends the game loop between ticks. It returns a non-nil error,
// usually ctx.Err(), when the host wants the loop to stop.
type Timer interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(frame *core.Frame)

// Show calls f(frame).
func (f DisplayFunc) Show(frame *core.Frame) { f(frame) }

// ControllerFunc adapts a function to Controller.
type ControllerFunc func() core.RawInput

// Read calls f().
func (f ControllerFunc) Read() core.RawInput { return f() }

// Displays fans one frame out to several displays, in order.
type Displays []Display

// Show shows frame on every display.
func (ds Displays) Show(frame *core.Frame) {
	for _, d := range ds {
		d.Show(frame)
	}
}
