package storage

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process already holds the database lock.
var ErrLocked = errors.New("database is in use by another process")

// Lock is an exclusive advisory lock next to the database file.
type Lock struct {
	path string
	lock *flock.Flock
}

// AcquireLock takes the lock for the database at dbPath without blocking.
func AcquireLock(dbPath string) (*Lock, error) {
	path := dbPath + ".lock"
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	return &Lock{path: path, lock: l}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. It is safe to call more than once.
func (l *Lock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
