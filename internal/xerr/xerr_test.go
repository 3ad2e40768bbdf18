package xerr

import (
	"errors"
	"testing"
)

func TestErrorf(t *testing.T) {
	err := Errorf("no error: %w", nil)
	if err != nil {
		t.Errorf("expected no error to be returned. got: %s", err)
	}
	err = Errorf("no error: %w", errors.New("xerr"))
	if err == nil {
		t.Errorf("expected error. got none")
	}
}

// TestErrorf_TypedNil covers the case the teacher's isxerrors.Errorf
// doesn't: a concrete error-implementing type whose value is a nil
// pointer, boxed into a non-nil interface{} (the classic Go typed-nil
// gotcha). The type assertion to error still succeeds here since the
// interface carries type information, so this still wraps rather than
// being swallowed like a literal nil argument is.
type nilError struct{}

func (*nilError) Error() string { return "nilError" }

func TestErrorf_TypedNil(t *testing.T) {
	var p *nilError
	err := Errorf("wrap: %w", p)
	if err == nil {
		t.Errorf("expected a wrapped error for a typed-nil error value")
	}
}
