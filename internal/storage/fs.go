package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the target directory
}

// NewFS creates a new FS provider rooted at the given directory.
// A missing path or a non-directory yields apperr.ErrDirectoryNotFound.
func NewFS(root string) (*FS, error) {
	if root == "" {
		return nil, fmt.Errorf("storage: %w: empty path", apperr.ErrDirectoryNotFound)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage: %w: %s", apperr.ErrDirectoryNotFound, root)
		}
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: %w: not a directory: %s", apperr.ErrDirectoryNotFound, root)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute directory path.
func (f *FS) Root() string { return f.root }

// safePath joins a bare child name to the root and rejects anything
// that could address another directory.
func (f *FS) safePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsRune(name, '/') ||
		strings.ContainsRune(name, filepath.Separator) ||
		strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("storage: %w: %q", apperr.ErrInvalidName, name)
	}
	return filepath.Join(f.root, name), nil
}

// List returns every direct child of the root, sorted by name.
// Entries removed between the directory read and their stat are skipped.
func (f *FS) List() ([]models.Entry, error) {
	dirents, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	out := make([]models.Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("storage: stat %s: %w", d.Name(), err)
		}
		e := models.Entry{
			Name:    d.Name(),
			Kind:    kindOf(info.Mode()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if e.Kind == models.KindSymlink {
			if target, err := os.Stat(filepath.Join(f.root, d.Name())); err == nil {
				e.TargetRegular = target.Mode().IsRegular()
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func kindOf(mode fs.FileMode) models.EntryKind {
	switch {
	case mode.IsRegular():
		return models.KindRegular
	case mode.IsDir():
		return models.KindDir
	case mode&fs.ModeSymlink != 0:
		return models.KindSymlink
	default:
		return models.KindOther
	}
}

// Exists uses Lstat so a dangling symlink still counts as occupied.
func (f *FS) Exists(name string) (bool, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return false, err
	}
	if _, err := os.Lstat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("storage: stat %s: %w", name, err)
	}
	return true, nil
}

// Move renames a child of the root.
func (f *FS) Move(oldName, newName string) error {
	absOld, err := f.safePath(oldName)
	if err != nil {
		return err
	}
	absNew, err := f.safePath(newName)
	if err != nil {
		return err
	}
	if err := os.Rename(absOld, absNew); err != nil {
		return fmt.Errorf("storage: move: %w", err)
	}
	return nil
}

// Open opens a child of the root for reading.
func (f *FS) Open(name string) (io.ReadCloser, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", name, err)
	}
	return file, nil
}
