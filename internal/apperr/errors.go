// Package apperr defines sentinel errors shared across the application.
package apperr

import "errors"

var (
	// ErrVaultNotFound means the vault path does not exist on disk.
	ErrVaultNotFound = errors.New("vault path does not exist")
	// ErrNotDirectory means the vault path exists but is not a directory.
	ErrNotDirectory = errors.New("vault path is not a directory")
	// ErrVaultLocked means another run is already modifying the vault.
	ErrVaultLocked = errors.New("vault is locked by another process")
)
