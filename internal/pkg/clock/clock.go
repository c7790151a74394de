// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/damn090909-boop/Simple-Game/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant. Useful in tests that only need a
// stable timestamp.
type Fixed struct {
	T time.Time
}

func (c *Fixed) Now() time.Time { return c.T }

// Advance moves the fixed instant forward.
func (c *Fixed) Advance(d time.Duration) { c.T = c.T.Add(d) }
