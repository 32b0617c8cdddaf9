package arith

// Counter is a monotonically increasing tally. The count is private; the
// only way to observe it is through Next (which advances it) and Value.
//
// The zero value is ready to use and starts at 0. A Counter is not safe
// for concurrent use.
type Counter struct {
	count int
}

// NewCounter returns a Counter starting at 0.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the count and returns the new value: 1, 2, 3, ...
func (c *Counter) Next() int {
	c.count++
	return c.count
}

// Value returns the current count without advancing it.
func (c *Counter) Value() int {
	return c.count
}
