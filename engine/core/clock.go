package core

// Clock tracks the frame timestamps handed to the loop by the host and the
// elapsed time between them. Timestamps are milliseconds on a monotonic scale.
type Clock struct {
	timestamp    float64
	hasTimestamp bool
	delta        float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Tick records a frame timestamp and returns the delta since the previous one.
// The first tick always yields 0. A timestamp older than the previous one also
// yields 0 so the delta never goes negative.
func (c *Clock) Tick(timestamp float64) float64 {
	if c.hasTimestamp {
		c.delta = timestamp - c.timestamp
		if c.delta < 0 {
			c.delta = 0
		}
	}
	c.timestamp = timestamp
	c.hasTimestamp = true
	return c.delta
}

// Reset forgets the last timestamp so the next tick yields 0.
func (c *Clock) Reset() {
	c.timestamp = 0
	c.hasTimestamp = false
	c.delta = 0
}

func (c *Clock) Delta() float64 {
	return c.delta
}
