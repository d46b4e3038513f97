// Single-instance guard. Two processes mutating the same registry file
// would race each other's read-modify-write cycles, so only one may run.

package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned when the lock is held by another process.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Guard is an acquired single-instance lock.
type Guard struct {
	flock *flock.Flock
}

// Acquire attempts to take an exclusive non-blocking lock on the given
// file. It fails fast with ErrAlreadyRunning when the lock is held
// elsewhere, without waiting.
func Acquire(path string) (*Guard, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to attempt lock on %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock file: %s)", ErrAlreadyRunning, path)
	}

	return &Guard{flock: fl}, nil
}

// Release unlocks the guard. Releasing an already released guard is a no-op,
// so it is safe to call from both a defer and a signal handler.
func (g *Guard) Release() error {
	if g == nil || g.flock == nil {
		return nil
	}
	return g.flock.Unlock()
}
