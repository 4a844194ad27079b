// Package lockfile enforces single-instance execution. Synthetic input is
// a process-wide channel on most desktops, so two concurrent captures
// would interleave keystrokes into each other's windows.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another instance already holds the lock.
var ErrLocked = errors.New("another savectl instance is running")

// Lock is a held instance lock. Release it on every exit path.
type Lock struct {
	fl *flock.Flock
}

// DefaultPath returns the lock file location under the system temp dir.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "savectl.lock")
}

// Acquire takes the lock without blocking. The lock file is created if
// missing and left in place on release; only the advisory lock matters.
func Acquire(path string) (*Lock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call more than once.
func (l *Lock) Release() {
	if l == nil || l.fl == nil {
		return
	}
	_ = l.fl.Unlock()
	l.fl = nil
}
