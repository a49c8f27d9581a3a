package ui

import "time"

// Carousel is a circular cursor over n entries with optional autoplay.
type Carousel struct {
	n        int
	index    int
	interval time.Duration
	last     time.Time
}

func NewCarousel(n int, interval time.Duration) *Carousel {
	return &Carousel{n: n, interval: interval}
}

func (c *Carousel) Len() int   { return c.n }
func (c *Carousel) Index() int { return c.index }

// SetLen resizes the ring, keeping the cursor in range.
func (c *Carousel) SetLen(n int) {
	c.n = n
	if n <= 0 {
		c.index = 0
		return
	}
	c.index %= n
}

func (c *Carousel) Next() { c.Move(1) }
func (c *Carousel) Prev() { c.Move(-1) }

// Move shifts the cursor by delta, wrapping in both directions.
func (c *Carousel) Move(delta int) {
	if c.n <= 0 {
		return
	}
	c.index = ((c.index+delta)%c.n + c.n) % c.n
}

// Window returns k indices centered on the cursor, wrapping around. Fewer
// are returned when the ring is smaller than k.
func (c *Carousel) Window(k int) []int {
	if c.n <= 0 || k <= 0 {
		return nil
	}
	if k > c.n {
		k = c.n
	}
	out := make([]int, k)
	start := c.index - k/2
	for i := range out {
		out[i] = ((start+i)%c.n + c.n) % c.n
	}
	return out
}

// Hold restarts the autoplay interval, e.g. after manual navigation.
func (c *Carousel) Hold(now time.Time) { c.last = now }

// Advance steps forward once per elapsed interval and reports whether it moved.
func (c *Carousel) Advance(now time.Time) bool {
	if c.interval <= 0 || c.n <= 1 {
		return false
	}
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	c.Next()
	return true
}
