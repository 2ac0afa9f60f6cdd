// Package vaultlock guards a vault against concurrent modifying runs.
package vaultlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/starford/ansuz/internal/apperr"
)

// LockFileName sits at the vault root while a modifying run holds the lock.
const LockFileName = ".ansuz.lock"

// Lock wraps an advisory file lock on the vault's lock file.
type Lock struct {
	fl   *flock.Flock
	path string
}

// New creates a lock for the vault rooted at dir. Nothing is acquired yet.
func New(dir string) *Lock {
	path := filepath.Join(dir, LockFileName)
	return &Lock{fl: flock.New(path), path: path}
}

// Acquire takes the lock without blocking. A vault already locked by another
// run yields apperr.ErrVaultLocked.
func (l *Lock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("vaultlock: acquire %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("vaultlock: %s: %w", l.path, apperr.ErrVaultLocked)
	}
	return nil
}

// Release drops the lock. The lock file itself is left in place.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("vaultlock: release %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
