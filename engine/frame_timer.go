package engine

import "time"

// FrameTimer measures wall-clock time between frames.
type FrameTimer struct {
	now  func() time.Time
	last time.Time
	dt   time.Duration
}

// NewFrameTimer starts timing from now. A nil clock uses time.Now.
func NewFrameTimer(clock func() time.Time) *FrameTimer {
	if clock == nil {
		clock = time.Now
	}
	return &FrameTimer{now: clock, last: clock()}
}

// Tick marks the start of a frame and returns the time since the previous Tick.
func (ft *FrameTimer) Tick() time.Duration {
	now := ft.now()
	ft.dt = now.Sub(ft.last)
	ft.last = now
	return ft.dt
}

// Delta returns the duration measured by the last Tick, in seconds.
func (ft *FrameTimer) Delta() float64 {
	return ft.dt.Seconds()
}
