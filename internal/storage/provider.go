// Package storage defines the vault file-system abstraction.
package storage

// BackupSuffix is appended to a file's name for its pre-modification copy.
const BackupSuffix = ".bak"

// Provider is the interface for vault file operations.
type Provider interface {
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to vault root).
	Write(path string, content []byte) error
	// Backup copies the file at path byte-for-byte to path + BackupSuffix.
	Backup(path string) error
}
