package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/games/races"
	"github.com/vovakirdan/led-arcade/internal/games/tetris"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyboardButtonLatchesOneSample(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())

	assert.Equal(t, KeyInput, kb.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))

	first := kb.Read()
	assert.True(t, first.Buttons[core.ButtonConfirm])
	assert.False(t, kb.Read().Buttons[core.ButtonConfirm], "released on the next sample")
}

func TestKeyboardButtons(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.Button
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ButtonConfirm},
		{runeKey('z'), core.ButtonA},
		{runeKey('j'), core.ButtonA},
		{runeKey('x'), core.ButtonB},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ButtonExit},
		{tea.KeyMsg{Type: tea.KeyBackspace}, core.ButtonExit},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			kb := NewKeyboard(DefaultKeyMap())
			kb.HandleKey(tt.msg)
			assert.Equal(t, core.RawInput{}.Press(tt.want), kb.Read())
		})
	}
}

func TestKeyboardTapDeflectsBriefly(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})

	for i := range TapTicks {
		raw := kb.Read()
		assert.Equal(t, int8(-axisFull), raw.X, "sample %d", i)
		assert.Equal(t, int8(0), raw.Y)
	}
	assert.Equal(t, core.RawInput{}, kb.Read(), "centred once the tap runs out")
}

func TestKeyboardRepeatExtendsHold(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(runeKey('s'))
	kb.Read()

	// Auto-repeat arrives while the first press is still held.
	kb.HandleKey(runeKey('s'))
	for range AxisHoldTicks {
		assert.Equal(t, int8(axisFull), kb.Read().Y)
	}
	assert.Equal(t, int8(0), kb.Read().Y)
}

func TestKeyboardLatePressIsNewTap(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(runeKey('s'))
	for range TapTicks + 1 {
		kb.Read()
	}

	kb.HandleKey(runeKey('s'))
	for range TapTicks {
		assert.Equal(t, int8(axisFull), kb.Read().Y)
	}
	assert.Equal(t, int8(0), kb.Read().Y)
}

// feed runs n ticks of kb through an InputState into advance.
func feed(kb *Keyboard, n int, advance func(*core.InputState)) {
	in := core.NewInputState(core.DefaultDeadZone)
	for range n {
		in.Sample(kb.Read())
		advance(&in)
	}
}

func TestKeyboardTapMovesTetrisPieceOneColumn(t *testing.T) {
	var g tetris.Game
	g.Reset(tetris.DefaultConfig(), 1)
	start := g.Snapshot().X

	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	feed(kb, 30, func(in *core.InputState) { g.Advance(in, 1) })

	assert.Equal(t, start-1, g.Snapshot().X)
}

func TestKeyboardTapSteersRaceCarOneColumn(t *testing.T) {
	var g races.Game
	g.Reset(races.DefaultConfig(), 1)
	start := g.Snapshot().Car

	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	feed(kb, 30, func(in *core.InputState) { g.Advance(in, 1) })

	assert.Equal(t, start.X-1, g.Snapshot().Car.X)
}

func TestKeyboardRepeatMovesTetrisPieceToWall(t *testing.T) {
	var g tetris.Game
	g.Reset(tetris.DefaultConfig(), 1)

	kb := NewKeyboard(DefaultKeyMap())
	in := core.NewInputState(core.DefaultDeadZone)
	for i := range 40 {
		if i%2 == 0 {
			kb.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
		}
		in.Sample(kb.Read())
		g.Advance(&in, 1)
	}

	assert.Equal(t, 0, g.Snapshot().X, "a held arrow keeps shifting")
}

func TestKeyboardNewDirectionReplacesOld(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	kb.HandleKey(tea.KeyMsg{Type: tea.KeyRight})

	raw := kb.Read()
	assert.Equal(t, int8(axisFull), raw.X)
	assert.Equal(t, int8(0), raw.Y, "only one axis is deflected at a time")
}

func TestKeyboardHostKeys(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())

	assert.Equal(t, KeyQuit, kb.HandleKey(runeKey('q')))
	assert.Equal(t, KeyQuit, kb.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, KeyHelp, kb.HandleKey(runeKey('?')))
	assert.Equal(t, KeyIgnored, kb.HandleKey(runeKey('m')))
	assert.Equal(t, core.RawInput{}, kb.Read(), "host keys never reach the controller")
}

func TestKeyboardRelease(t *testing.T) {
	kb := NewKeyboard(DefaultKeyMap())
	kb.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	kb.HandleKey(runeKey('x'))

	kb.Release()
	assert.Equal(t, core.RawInput{}, kb.Read())
}
