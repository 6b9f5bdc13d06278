package appstate

import (
	"errors"
	"sync"
)

// ErrPoisoned is returned by Cell.Do after an earlier Do panicked. The
// guarded value may be half-updated; the process should restart.
var ErrPoisoned = errors.New("state guard poisoned by an earlier panic")

// Cell owns a value and hands it out one caller at a time.
type Cell[T any] struct {
	mu       sync.Locker
	v        T
	poisoned bool
}

// NewCell guards v with mu.
func NewCell[T any](v T, mu sync.Locker) *Cell[T] {
	return &Cell[T]{mu: mu, v: v}
}

// Do runs fn with exclusive access to the value and returns its error. The
// lock is held for all of fn. If fn panics the cell is poisoned, the lock
// released and the panic continues.
func (c *Cell[T]) Do(fn func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return ErrPoisoned
	}

	ok := false
	defer func() {
		if !ok {
			c.poisoned = true
		}
	}()
	err := fn(c.v)
	ok = true
	return err
}
