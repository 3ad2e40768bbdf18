package abi

import (
	"fmt"
	"strings"

	"github.com/indexsupply/ethabi/abi/schema"
)

// ErrKind re-exports schema.ErrKind so callers of the abi package don't
// need to import abi/schema just to match on a subkind.
type ErrKind = schema.ErrKind

const (
	ErrUnknownType          = schema.ErrUnknownType
	ErrInvalidTypeString    = schema.ErrInvalidTypeString
	ErrParameterOutOfRange  = schema.ErrParameterOutOfRange
	ErrValueOutOfRange      = schema.ErrValueOutOfRange
	ErrLengthMismatch       = schema.ErrLengthMismatch
	ErrInvalidAddressFormat = schema.ErrInvalidAddressFormat
	ErrInvalidUTF8          = schema.ErrInvalidUTF8
	ErrFractionalLoss       = schema.ErrFractionalLoss
	ErrTypeMismatch         = schema.ErrTypeMismatch
	ErrInsufficientData     = schema.ErrInsufficientData
	ErrInvalidOffset        = schema.ErrInvalidOffset
	ErrNonCanonicalPadding  = schema.ErrNonCanonicalPadding
	ErrInvalidBool          = schema.ErrInvalidBool
)

// ParseError re-exports schema.ParseError, returned by ParseType.
type ParseError = schema.ParseError

// EncodeError is returned by Validate and Encode. Path identifies the
// component that failed, innermost segment last, e.g. []string{"tuple[2]",
// "array[5]"} for the third tuple field's sixth array element.
type EncodeError struct {
	Kind ErrKind
	Path []string
	Msg  string
	Err  error
}

func (e *EncodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("abi: encode: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("abi: encode %s: %s: %s", strings.Join(e.Path, "."), e.Kind, e.Msg)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newEncodeErr(kind ErrKind, msg string) *EncodeError {
	return &EncodeError{Kind: kind, Msg: msg}
}

// DecodeError is returned by Decode.
type DecodeError struct {
	Kind ErrKind
	Path []string
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("abi: decode: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("abi: decode %s: %s: %s", strings.Join(e.Path, "."), e.Kind, e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeErr(kind ErrKind, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Msg: msg}
}

// prependPath attaches seg as the outermost path segment of err, if err is
// an *EncodeError or *DecodeError produced by this package.
func prependPath(err error, seg string) error {
	switch e := err.(type) {
	case *EncodeError:
		e.Path = append([]string{seg}, e.Path...)
		return e
	case *DecodeError:
		e.Path = append([]string{seg}, e.Path...)
		return e
	default:
		return err
	}
}
