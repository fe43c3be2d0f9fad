package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestOpError_MatchesBothSentinelAndCause(t *testing.T) {
	err := fmt.Errorf("batch: %w", &OpError{Op: "finalize", Name: "a.txt", Err: fs.ErrPermission})

	if !errors.Is(err, ErrIOFailure) {
		t.Error("expected ErrIOFailure")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected underlying fs.ErrPermission")
	}
	var op *OpError
	if !errors.As(err, &op) || op.Op != "finalize" {
		t.Errorf("errors.As = %+v", op)
	}
}

func TestOpError_Message(t *testing.T) {
	e := &OpError{Op: "quarantine", Name: "b.jpg", Err: errors.New("boom")}
	if got, want := e.Error(), `quarantine "b.jpg": boom`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	e = &OpError{Op: "list", Err: errors.New("boom")}
	if got, want := e.Error(), "list: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"not found", fmt.Errorf("x: %w", ErrDirectoryNotFound), KindDirectoryNotFound},
		{"io", &OpError{Op: "finalize", Err: errors.New("disk")}, KindIOFailure},
		{"verification", ErrVerificationFailed, KindVerificationFailed},
		{"forbidden", ErrForbiddenPath, KindForbiddenPath},
		{"invalid name", ErrInvalidName, KindInvalidName},
		{"other", errors.New("other"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
