package game

import "time"

// MaxCatchUpTicks bounds how many ticks a single long frame can produce.
const MaxCatchUpTicks = 5

// Clock turns frame time into a whole number of fixed-length ticks, so the
// snake's speed does not depend on the display refresh rate.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Clock{interval: interval}
}

// Advance adds elapsed frame time and returns how many ticks are due. Time
// beyond MaxCatchUpTicks ticks is dropped.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := int(c.acc / c.interval)
	if n > MaxCatchUpTicks {
		c.acc = 0
		return MaxCatchUpTicks
	}
	c.acc -= time.Duration(n) * c.interval
	return n
}
