package platform

import (
	"context"
	"time"
)

// SleepTimer waits on the wall clock. Each Sleep is measured from the end of
// the previous one so that time spent in a tick does not slow the game down.
type SleepTimer struct {
	next time.Time
	now  func() time.Time
}

// NewSleepTimer returns a wall-clock timer.
func NewSleepTimer() *SleepTimer {
	return &SleepTimer{now: time.Now}
}

// Sleep blocks until d after the previous deadline, or until ctx is done.
// A loop that falls more than one period behind resynchronises instead of
// running a burst of catch-up ticks.
func (t *SleepTimer) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.now == nil {
		t.now = time.Now
	}

	now := t.now()
	if t.next.IsZero() || now.Sub(t.next) > d {
		t.next = now
	}
	t.next = t.next.Add(d)

	wait := t.next.Sub(now)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
