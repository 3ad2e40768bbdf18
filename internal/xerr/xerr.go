// Package xerr wraps golang.org/x/xerrors for CLI-level plumbing errors
// (flag parsing, hex/json decoding of user input). The abi package's own
// Encode/Decode/Parse errors carry structured Kind/Path fields and are
// returned as-is rather than wrapped here.
package xerr

import "golang.org/x/xerrors"

// Errorf wraps xerrors.Errorf but returns nil if none of args is a
// non-nil error. This lets callers write:
//
//	return result, xerr.Errorf("decoding %s: %w", path, err)
//
// without an explicit if err != nil guard. Matches isxerrors.Errorf's
// nil-swallowing behavior. The e != nil check never changes the result: a
// nil interface already fails the type assertion, and a typed-nil error
// value boxed in an interface is non-nil, so it is wrapped.
func Errorf(format string, args ...interface{}) error {
	for i := range args {
		if e, ok := args[i].(error); ok && e != nil {
			return xerrors.Errorf(format, args...)
		}
	}
	return nil
}
