package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/platform"
)

var _ platform.Controller = (*Keys)(nil)

func TestKeysHeldUntilReleased(t *testing.T) {
	var k Keys
	require.True(t, k.Down("ArrowLeft"))
	require.True(t, k.Down(" "))

	for range 3 {
		raw := k.Read()
		assert.Equal(t, int8(-127), raw.X)
		assert.True(t, raw.Buttons[core.ButtonConfirm])
	}

	k.Up("ArrowLeft")
	k.Up(" ")
	assert.Equal(t, core.RawInput{}, k.Read())
}

func TestKeysOppositeCancel(t *testing.T) {
	var k Keys
	k.Down("w")
	k.Down("S")
	assert.Equal(t, int8(0), k.Read().Y)

	k.Up("w")
	assert.Equal(t, int8(127), k.Read().Y)
}

func TestKeysTapBetweenReadsIsSeen(t *testing.T) {
	var k Keys
	in := core.NewInputState(core.DefaultDeadZone)
	in.Sample(k.Read())

	k.Down(" ")
	k.Up(" ")
	k.Down("ArrowRight")
	k.Up("ArrowRight")

	in.Sample(k.Read())
	assert.True(t, in.Pressed(core.ButtonConfirm), "a tap inside one tick still produces an edge")
	assert.True(t, in.DirectionPressed())

	in.Sample(k.Read())
	assert.False(t, in.Held(core.ButtonConfirm), "released on the following sample")
	assert.Equal(t, 0, in.AxisX())
}

func TestKeysBindings(t *testing.T) {
	tests := []struct {
		key  string
		want core.RawInput
	}{
		{"ArrowRight", core.RawInput{X: 127}},
		{"d", core.RawInput{X: 127}},
		{"ArrowUp", core.RawInput{Y: -127}},
		{"Enter", core.RawInput{}.Press(core.ButtonConfirm)},
		{"z", core.RawInput{}.Press(core.ButtonA)},
		{"K", core.RawInput{}.Press(core.ButtonB)},
		{"Escape", core.RawInput{}.Press(core.ButtonExit)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var k Keys
			require.True(t, k.Down(tt.key))
			assert.Equal(t, tt.want, k.Read())
		})
	}

	var k Keys
	assert.False(t, k.Down("F5"), "unbound keys keep their default action")
}

func TestKeysRelease(t *testing.T) {
	var k Keys
	k.Down("ArrowDown")
	k.Down("x")
	k.Release()
	assert.Equal(t, core.RawInput{}, k.Read())
}

func TestRGBA(t *testing.T) {
	var fb core.Framebuffer
	fb.Set(1, 0, core.RGB(1, 2, 3))
	fb.Set(7, 31, core.Red)

	out := RGBA(nil, fb.Frame())
	require.Len(t, out, core.Size*4)
	assert.Equal(t, []byte{0, 0, 0, 0xff}, out[0:4])
	assert.Equal(t, []byte{1, 2, 3, 0xff}, out[4:8])
	assert.Equal(t, []byte{126, 0, 0, 0xff}, out[len(out)-4:])

	again := RGBA(out, fb.Frame())
	assert.Same(t, &out[0], &again[0], "a large enough buffer is reused")
}

func TestClock(t *testing.T) {
	c := NewClock(50) // 20ms ticks

	assert.Equal(t, 0, c.Frame(1000), "first frame starts the clock")
	assert.Equal(t, 0, c.Frame(1010))
	assert.Equal(t, 1, c.Frame(1025))
	assert.Equal(t, 1, c.Frame(1040), "remainder carries over")
	assert.Equal(t, 0, c.Frame(1030), "time going backwards runs nothing")
	assert.Equal(t, MaxCatchUp, c.Frame(5000), "a hidden tab does not replay every missed tick")
	assert.Equal(t, 0, c.Frame(5010), "the backlog is dropped")
}
