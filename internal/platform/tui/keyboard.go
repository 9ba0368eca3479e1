package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Terminals only report key presses, so a held arrow is seen as a first
// press followed by auto-repeat events. A first press deflects the stick for
// TapTicks samples, shorter than any game's repeat period, so a tap moves
// one cell. A repeat of the same arrow arriving while the stick is still
// deflected is auto-repeat and holds it for AxisHoldTicks samples, bridging
// the gaps between repeat events.
const (
	TapTicks      = 3
	AxisHoldTicks = 20
)

// axisFull is the deflection reported for a pressed arrow key.
const axisFull = 127

// KeyAction is what a key press means to the host.
type KeyAction int

const (
	KeyIgnored KeyAction = iota
	KeyInput             // fed to the controller
	KeyQuit              // leave the program
	KeyHelp              // toggle the help footer
)

// Keyboard is a Controller fed by terminal key events. Button keys latch for
// exactly one sample; arrow keys deflect an axis for TapTicks samples, or
// AxisHoldTicks while auto-repeat keeps arriving.
// HandleKey and Read may be called from different goroutines.
type Keyboard struct {
	keys KeyMap

	mu      sync.Mutex
	x, y    int8
	hold    int
	latched [core.ButtonCount]bool
}

// NewKeyboard creates a keyboard controller with the given bindings.
func NewKeyboard(keys KeyMap) *Keyboard {
	return &Keyboard{keys: keys}
}

// HandleKey folds one key event into the controller.
func (k *Keyboard) HandleKey(msg tea.KeyMsg) KeyAction {
	switch {
	case key.Matches(msg, k.keys.Quit):
		return KeyQuit
	case key.Matches(msg, k.keys.Help):
		return KeyHelp
	case key.Matches(msg, k.keys.Up):
		k.deflect(0, -axisFull)
	case key.Matches(msg, k.keys.Down):
		k.deflect(0, axisFull)
	case key.Matches(msg, k.keys.Left):
		k.deflect(-axisFull, 0)
	case key.Matches(msg, k.keys.Right):
		k.deflect(axisFull, 0)
	case key.Matches(msg, k.keys.Confirm):
		k.press(core.ButtonConfirm)
	case key.Matches(msg, k.keys.A):
		k.press(core.ButtonA)
	case key.Matches(msg, k.keys.B):
		k.press(core.ButtonB)
	case key.Matches(msg, k.keys.Exit):
		k.press(core.ButtonExit)
	default:
		return KeyIgnored
	}
	return KeyInput
}

func (k *Keyboard) deflect(x, y int8) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.hold > 0 && k.x == x && k.y == y {
		k.hold = AxisHoldTicks
		return
	}
	k.x, k.y = x, y
	k.hold = TapTicks
}

func (k *Keyboard) press(b core.Button) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.latched[b] = true
}

// Read returns the current sample and ages it: latched buttons release and
// the axis hold counts down by one.
func (k *Keyboard) Read() core.RawInput {
	k.mu.Lock()
	defer k.mu.Unlock()

	raw := core.RawInput{Buttons: k.latched}
	k.latched = [core.ButtonCount]bool{}

	if k.hold > 0 {
		raw.X, raw.Y = k.x, k.y
		k.hold--
		if k.hold == 0 {
			k.x, k.y = 0, 0
		}
	}
	return raw
}

// Release drops every held key, for example when the window loses focus.
func (k *Keyboard) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.x, k.y, k.hold = 0, 0, 0
	k.latched = [core.ButtonCount]bool{}
}
