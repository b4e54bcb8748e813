package state

import "time"

// Clock measures the active play time of a round. Time spent paused is not counted.
// Elapsed time is computed on demand; nothing ticks in the background.
type Clock struct {
	now         func() time.Time
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
	stopped     bool
	stoppedAt   time.Time
}

// NewClock creates a running clock. now may be nil to use time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Now returns the clock's current time
func (c *Clock) Now() time.Time {
	return c.now()
}

// Reset restarts the clock from zero, unpaused
func (c *Clock) Reset() {
	c.start = c.now()
	c.pausedAt = time.Time{}
	c.pausedTotal = 0
	c.paused = false
	c.stopped = false
	c.stoppedAt = time.Time{}
}

// Stop freezes the elapsed time until the next Reset
func (c *Clock) Stop() {
	if c.stopped {
		return
	}
	c.stoppedAt = c.now()
	if c.paused {
		c.stoppedAt = c.pausedAt
	}
	c.stopped = true
}

// Stopped returns true once Stop has been called
func (c *Clock) Stopped() bool {
	return c.stopped
}

// Pause stops the clock. Pausing a paused or stopped clock does nothing.
func (c *Clock) Pause() {
	if c.paused || c.stopped {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume restarts a paused clock. Resuming a running clock does nothing.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

// Paused returns true while the clock is paused
func (c *Clock) Paused() bool {
	return c.paused
}

// Elapsed returns the time since Reset minus every paused interval
func (c *Clock) Elapsed() time.Duration {
	end := c.now()
	switch {
	case c.stopped:
		end = c.stoppedAt
	case c.paused:
		end = c.pausedAt
	}
	elapsed := end.Sub(c.start) - c.pausedTotal
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
