// Package renameservice exposes the renamer to network-facing callers,
// confining every request to one configured root directory.
package renameservice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/renamer"
)

// Service coordinates path resolution and renamer runs.
type Service struct {
	root     string // absolute
	realRoot string // root with symlinks resolved
	opts     []renamer.Option

	// Batches run one at a time; the algorithm assumes it is the only
	// actor in a directory.
	mu sync.Mutex
}

// NewService creates a service confined to root. root must be a directory.
func NewService(root string, opts ...renamer.Option) (*Service, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("renameservice: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("renameservice: %w: %s", apperr.ErrDirectoryNotFound, root)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("renameservice: resolve root: %w", err)
	}
	return &Service{root: abs, realRoot: resolved, opts: opts}, nil
}

// Root returns the absolute root directory.
func (s *Service) Root() string { return s.root }

// Resolve maps a caller path (relative to the root) to an absolute path
// and rejects anything that escapes the root.
func (s *Service) Resolve(rel string) (string, error) {
	if rel == "" || rel == "." {
		return s.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute paths not allowed: %s", apperr.ErrForbiddenPath, rel)
	}
	abs := filepath.Join(s.root, cleaned)
	if !within(s.root, abs) {
		return "", fmt.Errorf("%w: %s", apperr.ErrForbiddenPath, rel)
	}
	// A symlinked directory inside the root must not lead out of it.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil && !within(s.realRoot, resolved) {
		return "", fmt.Errorf("%w: %s resolves outside the root", apperr.ErrForbiddenPath, rel)
	}
	return abs, nil
}

func within(root, path string) bool {
	return path == root || strings.HasPrefix(path, root+string(os.PathSeparator))
}

func (s *Service) renamer(extra ...renamer.Option) *renamer.Renamer {
	opts := make([]renamer.Option, 0, len(s.opts)+len(extra))
	opts = append(opts, s.opts...)
	opts = append(opts, extra...)
	return renamer.New(opts...)
}

// List returns the files a batch in path would rename, in order.
func (s *Service) List(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	files, err := s.renamer().List(dir)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []string{}
	}
	return files, nil
}

// Plan previews a batch in path.
func (s *Service) Plan(ctx context.Context, path string) (*models.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	return s.renamer().Plan(dir)
}

// Rename runs a batch in path. verify forces content verification on top
// of the configured options. ctx is only checked before the batch starts;
// a started batch always runs to completion or to its first error.
func (s *Service) Rename(ctx context.Context, path string, verify bool) (*models.Result, error) {
	dir, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var extra []renamer.Option
	if verify {
		extra = append(extra, renamer.WithVerify(true))
	}
	return s.renamer(extra...).Rename(dir)
}
