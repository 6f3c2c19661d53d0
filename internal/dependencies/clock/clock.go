package clock

import "time"

// Clock provides the current time; sessions use it for start and finish stamps
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Elapsed returns the duration between start and the clock's current time
func Elapsed(c Clock, start time.Time) time.Duration {
	if start.IsZero() {
		return 0
	}
	return c.Now().Sub(start)
}
