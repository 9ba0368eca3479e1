// Package browser holds the parts of the browser host that do not touch
// syscall/js: key state from keydown/keyup events, RGBA conversion for a
// canvas and the fixed-step clock driven by requestAnimationFrame.
package browser

import (
	"sync"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Keys is a Controller fed by DOM keyboard events. Browsers report key-up,
// so held state is exact. A key pressed since the last Read counts as held
// for that sample, so a tap shorter than a tick still reaches the game.
type Keys struct {
	mu      sync.Mutex
	held    [keyCount]bool
	pressed [keyCount]bool
}

// Inputs a DOM key can drive.
const (
	keyLeft = iota
	keyRight
	keyUp
	keyDown
	keyConfirm
	keyA
	keyB
	keyExit
	keyCount
)

var keyButtons = [...]struct {
	key    int
	button core.Button
}{
	{keyConfirm, core.ButtonConfirm},
	{keyA, core.ButtonA},
	{keyB, core.ButtonB},
	{keyExit, core.ButtonExit},
}

func lookup(key string) (int, bool) {
	switch key {
	case "ArrowLeft", "a", "A":
		return keyLeft, true
	case "ArrowRight", "d", "D":
		return keyRight, true
	case "ArrowUp", "w", "W":
		return keyUp, true
	case "ArrowDown", "s", "S":
		return keyDown, true
	case "Enter", " ":
		return keyConfirm, true
	case "z", "Z", "j", "J":
		return keyA, true
	case "x", "X", "k", "K":
		return keyB, true
	case "Escape", "Backspace":
		return keyExit, true
	}
	return 0, false
}

// Down handles a keydown event's key value. It reports whether the key is
// bound, so the page can cancel the default action.
func (k *Keys) Down(key string) bool {
	i, ok := lookup(key)
	if !ok {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[i] = true
	k.pressed[i] = true
	return true
}

// Up handles a keyup event's key value.
func (k *Keys) Up(key string) bool {
	i, ok := lookup(key)
	if !ok {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[i] = false
	return true
}

// Release drops every key, for blur events where key-ups are lost.
func (k *Keys) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held = [keyCount]bool{}
	k.pressed = [keyCount]bool{}
}

// Read returns the keys held or pressed since the previous Read as a raw
// sample. Opposite keys cancel out.
func (k *Keys) Read() core.RawInput {
	k.mu.Lock()
	defer k.mu.Unlock()

	var on [keyCount]bool
	for i := range on {
		on[i] = k.held[i] || k.pressed[i]
	}
	k.pressed = [keyCount]bool{}

	var raw core.RawInput
	raw.X = axis(on[keyLeft], on[keyRight])
	raw.Y = axis(on[keyUp], on[keyDown])
	for _, kb := range keyButtons {
		raw.Buttons[kb.button] = on[kb.key]
	}
	return raw
}

func axis(neg, pos bool) int8 {
	switch {
	case neg && !pos:
		return -127
	case pos && !neg:
		return 127
	}
	return 0
}

// RGBA writes frame into dst as canvas ImageData bytes, row-major, and
// returns dst. dst is grown when shorter than Size*4.
func RGBA(dst []byte, frame *core.Frame) []byte {
	if cap(dst) < core.Size*4 {
		dst = make([]byte, core.Size*4)
	}
	dst = dst[:core.Size*4]
	for i, p := range frame {
		dst[i*4] = p.R
		dst[i*4+1] = p.G
		dst[i*4+2] = p.B
		dst[i*4+3] = 0xff
	}
	return dst
}

// MaxCatchUp limits how many ticks one animation frame may run after the tab
// was hidden.
const MaxCatchUp = 4

// Clock converts animation frame timestamps into whole ticks.
type Clock struct {
	interval time.Duration
	last     time.Duration
	acc      time.Duration
	started  bool
}

// NewClock creates a clock for the given tick rate.
func NewClock(tickRate int) *Clock {
	return &Clock{interval: core.TickInterval(tickRate)}
}

// Frame takes a requestAnimationFrame timestamp in milliseconds and returns
// how many ticks to run. The first call only starts the clock.
func (c *Clock) Frame(ms float64) int {
	now := time.Duration(ms * float64(time.Millisecond))
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	if now > c.last {
		c.acc += now - c.last
	}
	c.last = now

	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	if n > MaxCatchUp {
		n = MaxCatchUp
		c.acc = 0
	}
	return n
}
