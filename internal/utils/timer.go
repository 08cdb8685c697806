package utils

import "time"

// Timer measures the wall-clock time between a start and a stop.
// [NewTimer] starts it immediately.
type Timer struct {
	startTime time.Time
	duration  time.Duration
}

// NewTimer returns a running Timer.
func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Start restarts the measurement.
func (t *Timer) Start() {
	t.startTime = time.Now()
}

// Stop captures the time elapsed since the last start and returns it.
func (t *Timer) Stop() time.Duration {
	t.duration = time.Since(t.startTime)
	return t.duration
}

// GetDuration returns the duration captured by the last [Timer.Stop], or zero.
func (t *Timer) GetDuration() time.Duration {
	return t.duration
}
