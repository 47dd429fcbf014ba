package main

import (
	"sync"
	"time"
)

// Clock abstracts the simulated refresh latency so tests don't sleep on the
// wall clock.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// manualClock is a test clock. After returns a channel that fires only when
// Advance is called.
type manualClock struct {
	mu      sync.Mutex
	waiters []chan time.Time
}

func newManualClock() *manualClock { return &manualClock{} }

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.mu.Lock()
	c.waiters = append(c.waiters, ch)
	c.mu.Unlock()
	return ch
}

// Advance fires every pending waiter.
func (c *manualClock) Advance() {
	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()
	for _, ch := range waiters {
		ch <- time.Now()
	}
}

// Waiters reports how many After calls are still pending.
func (c *manualClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}
