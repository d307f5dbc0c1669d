package clock

import "time"

// Clock abstracts wall time so command timestamps stay testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock serves tests that need a stable notion of now.
type FixedClock struct {
	t time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	return c.t
}

// Advance shifts the clock forward for ordering-sensitive scenarios.
func (c *FixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
