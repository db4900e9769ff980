package utils

import (
	"sync"
	"time"
)

// MonotonicClock hands out strictly increasing millisecond timestamps, so two
// uploads in the same millisecond still get distinct names.
type MonotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewMonotonicClock(now func() time.Time) *MonotonicClock {
	if now == nil {
		now = time.Now
	}
	return &MonotonicClock{now: now}
}

func (c *MonotonicClock) NextMillis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}
