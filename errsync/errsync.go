// Package errsync provides synchronization primitives that deal in errors.
package errsync

import "sync"

// Once is like sync.Once but for functions that can fail. The first call to
// Do runs the function; later calls return the error it produced without
// running anything until Reset is called.
type Once struct {
	mu   sync.Mutex
	done bool
	err  error
}

// Do calls fn if, and only if, Do has not been called since the Once was
// created or last reset.
func (o *Once) Do(fn func() error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done {
		return o.err
	}

	o.err = fn()
	o.done = true

	return o.err
}

// Reset allows the next call to Do to run its function again.
func (o *Once) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.done = false
	o.err = nil
}
