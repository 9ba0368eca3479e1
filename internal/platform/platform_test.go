package platform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/led-arcade/internal/core"
)

func TestRecorderKeepsSamples(t *testing.T) {
	seq := []core.RawInput{
		{X: 10},
		core.RawInput{}.Press(core.ButtonConfirm),
		{Y: -100},
	}
	i := 0
	rec := NewRecorder(ControllerFunc(func() core.RawInput {
		raw := seq[i%len(seq)]
		i++
		return raw
	}))

	for _, want := range seq {
		assert.Equal(t, want, rec.Read())
	}
	assert.Equal(t, seq, rec.Samples())
	assert.Equal(t, 3, rec.Len())
}

func TestDisplayFunc(t *testing.T) {
	var got *core.Frame
	var fb core.Framebuffer
	DisplayFunc(func(f *core.Frame) { got = f }).Show(fb.Frame())
	assert.Same(t, fb.Frame(), got)
}

func TestDisplaysFanOut(t *testing.T) {
	var order []string
	var fb core.Framebuffer
	fb.Set(0, 0, core.Red)

	ds := Displays{
		DisplayFunc(func(f *core.Frame) { order = append(order, "first:"+string(f.At(0, 0).Char())) }),
		DisplayFunc(func(f *core.Frame) { order = append(order, "second:"+string(f.At(0, 0).Char())) }),
	}
	ds.Show(fb.Frame())

	assert.Equal(t, []string{"first:R", "second:R"}, order)
}

func TestSleepTimerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSleepTimer().Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleepTimerStopsMidWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := NewSleepTimer().Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestSleepTimerKeepsCadence(t *testing.T) {
	const d = time.Millisecond
	now := time.Unix(0, 0)
	timer := &SleepTimer{now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, timer.Sleep(ctx, d))
	assert.Equal(t, now.Add(d), timer.next)

	// A tick that used up its whole slot sleeps zero and keeps the cadence.
	now = timer.next.Add(d)
	require.NoError(t, timer.Sleep(ctx, d))
	assert.Equal(t, now, timer.next)

	// Falling further behind resynchronises to now.
	now = now.Add(10 * d)
	require.NoError(t, timer.Sleep(ctx, d))
	assert.Equal(t, now.Add(d), timer.next)
}
