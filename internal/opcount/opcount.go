// Package opcount provides abstract work and space counters for the
// detector implementations. Counters measure loop iterations and stored
// cells up to a constant, so that algorithms can be compared independently
// of wall-clock noise.
package opcount

// Counter accumulates a single abstract cost figure.
type Counter struct {
	n int
}

// Inc adds one to the counter.
func (c *Counter) Inc() { c.n++ }

// Add adds n to the counter.
func (c *Counter) Add(n int) { c.n += n }

// Get returns the accumulated count.
func (c *Counter) Get() int { return c.n }
