// Package runlock guards a state directory so that only one long-running
// watcher writes results into it at a time.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld is returned when another process already holds the lock.
var ErrHeld = errors.New("lock is held by another wordmatch watcher")

// Lock is an advisory file lock.
type Lock struct {
	path string
	fl   *flock.Flock
}

// New returns an unacquired lock at path.
func New(path string) *Lock {
	return &Lock{path: path, fl: flock.New(path)}
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. It returns ErrHeld when another
// holder exists.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("ensure lock directory: %w", err)
	}
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrHeld
	}
	return nil
}

// Release drops the lock. Releasing an unheld lock is a no-op.
func (l *Lock) Release() error {
	if !l.fl.Locked() {
		return nil
	}
	return l.fl.Unlock()
}
