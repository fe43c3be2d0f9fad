// Package apperr defines the error taxonomy shared by the renamer and the
// layers that present its results.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryNotFound  = errors.New("directory not found")
	ErrIOFailure          = errors.New("i/o failure")
	ErrVerificationFailed = errors.New("verification failed")
	ErrForbiddenPath      = errors.New("path outside allowed root")
	ErrInvalidName        = errors.New("invalid file name")
)

// OpError records which step of a batch failed and on which name.
// It matches both ErrIOFailure and the underlying cause with errors.Is.
type OpError struct {
	Op   string // "list", "quarantine", "finalize", ...
	Name string
	Err  error
}

func (e *OpError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *OpError) Unwrap() []error {
	return []error{ErrIOFailure, e.Err}
}

// Kind classifies an error for callers that branch on outcome.
type Kind string

const (
	KindNone               Kind = ""
	KindDirectoryNotFound  Kind = "directory_not_found"
	KindIOFailure          Kind = "io_failure"
	KindVerificationFailed Kind = "verification_failed"
	KindForbiddenPath      Kind = "forbidden_path"
	KindInvalidName        Kind = "invalid_name"
	KindUnknown            Kind = "unknown"
)

// KindOf maps err onto the taxonomy. Order matters: a missing directory
// reported through an OpError is still a missing directory.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDirectoryNotFound):
		return KindDirectoryNotFound
	case errors.Is(err, ErrForbiddenPath):
		return KindForbiddenPath
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	case errors.Is(err, ErrVerificationFailed):
		return KindVerificationFailed
	case errors.Is(err, ErrIOFailure):
		return KindIOFailure
	default:
		return KindUnknown
	}
}
