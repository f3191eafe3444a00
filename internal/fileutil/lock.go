package fileutil

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLockHeld means another process owns the lock.
var ErrLockHeld = errors.New("lock held by another process")

// Lock is an advisory lock on a sidecar file next to the guarded path.
type Lock struct {
	path string
	lock *flock.Flock
}

// LockPath returns the sidecar lock file used for target.
func LockPath(target string) string {
	return target + ".lock"
}

// TryLock acquires the lock for target without waiting.
func TryLock(target string) (*Lock, error) {
	path := LockPath(target)
	l := &Lock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLockHeld, path)
	}
	return l, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Unlock releases the lock. The sidecar file is left in place; removing it
// would race with a process that is about to open it.
func (l *Lock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
