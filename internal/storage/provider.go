// Package storage defines the target-directory abstraction.
package storage

import (
	"io"

	"github.com/starford/seqren/internal/models"
)

// Provider is the interface for operations on the direct children of one
// directory. Every name is a bare child name, never a path.
type Provider interface {
	// Root returns the absolute path of the directory.
	Root() string
	// List returns every direct child, sorted by name.
	List() ([]models.Entry, error)
	// Exists reports whether any entry (file, dir, symlink) occupies name.
	Exists(name string) (bool, error)
	// Move renames oldName to newName with a single rename call.
	Move(oldName, newName string) error
	// Open opens name for reading.
	Open(name string) (io.ReadCloser, error)
}
