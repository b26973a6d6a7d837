package status

// Counter is an integer metric owned by the frame goroutine
type Counter struct {
	n int64
}

// Add increments the counter by delta
func (c *Counter) Add(delta int64) {
	c.n += delta
}

// Store overwrites the counter value
func (c *Counter) Store(v int64) {
	c.n = v
}

// Load returns the current value
func (c *Counter) Load() int64 {
	return c.n
}

// Gauge is a float metric holding the last sampled value
type Gauge struct {
	v float64
}

// Set records a new sample
func (g *Gauge) Set(v float64) {
	g.v = v
}

// Get returns the last sample
func (g *Gauge) Get() float64 {
	return g.v
}
