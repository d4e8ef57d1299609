package session

import (
	"sync"
	"sync/atomic"
)

// Capture tracks the desktop-wide pointer listeners a session installs so
// that motion keeps reaching the session after the pointer leaves the
// handle it grabbed. The program's motion filter consults it.
type Capture struct {
	listeners atomic.Int32
}

// Install adds a listener and returns its release function. Release is
// idempotent.
func (c *Capture) Install() (release func()) {
	c.listeners.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { c.listeners.Add(-1) })
	}
}

// Listeners returns the number of installed listeners.
func (c *Capture) Listeners() int {
	return int(c.listeners.Load())
}

// Active reports whether any listener is installed.
func (c *Capture) Active() bool {
	return c.listeners.Load() > 0
}
