package shared

import (
	"fmt"

	"github.com/gofrs/flock"
)

// InstanceLock guards a library database against a second interactive session.
type InstanceLock struct {
	lock *flock.Flock
}

// LockPath returns the lock file used for the database at dbPath.
func LockPath(dbPath string) string {
	return dbPath + ".lock"
}

// AcquireInstanceLock takes the lock beside dbPath without blocking.
// Returns [ErrLocked] when another process holds it.
func AcquireInstanceLock(dbPath string) (*InstanceLock, error) {
	l := flock.New(LockPath(dbPath))

	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, l.Path())
	}
	return &InstanceLock{lock: l}, nil
}

// Release unlocks the lock file.
func (l *InstanceLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
