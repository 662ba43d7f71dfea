// Package capacity holds the bounded counter behind every capacity-limited
// resource: event seats, fest-event seats and merch size buckets.
package capacity

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity must not be negative")
	ErrInvalidUsage    = errors.New("usage must be between zero and capacity")
	ErrExhausted       = errors.New("no capacity left")
	ErrNothingClaimed  = errors.New("nothing to release")
	ErrBelowClaimed    = errors.New("capacity cannot drop below claimed units")
)

// Counter is an immutable value; every mutation returns a new Counter.
// Invariant: 0 <= used <= capacity. A zero capacity counter is always full.
type Counter struct {
	capacity int
	used     int
}

func NewCounter(capacity, used int) (Counter, error) {
	if capacity < 0 {
		return Counter{}, ErrInvalidCapacity
	}
	if used < 0 || used > capacity {
		return Counter{}, ErrInvalidUsage
	}
	return Counter{capacity: capacity, used: used}, nil
}

// FromAvailable builds a counter from the "units left" view used by stock buckets.
func FromAvailable(capacity, available int) (Counter, error) {
	return NewCounter(capacity, capacity-available)
}

func (c Counter) Claim() (Counter, error) {
	if c.used >= c.capacity {
		return c, ErrExhausted
	}
	return Counter{capacity: c.capacity, used: c.used + 1}, nil
}

func (c Counter) Release() (Counter, error) {
	if c.used <= 0 {
		return c, ErrNothingClaimed
	}
	return Counter{capacity: c.capacity, used: c.used - 1}, nil
}

func (c Counter) Resize(capacity int) (Counter, error) {
	if capacity < 0 {
		return c, ErrInvalidCapacity
	}
	if capacity < c.used {
		return c, ErrBelowClaimed
	}
	return Counter{capacity: capacity, used: c.used}, nil
}

func (c Counter) Capacity() int  { return c.capacity }
func (c Counter) Used() int      { return c.used }
func (c Counter) Remaining() int { return c.capacity - c.used }
func (c Counter) IsFull() bool   { return c.used >= c.capacity }
