// Package ferr classifies the errors that can escape simplesat's external
// boundary (CLI argument handling, DIMACS parsing, file I/O) so that
// cmd/simplesat can pick the right exit code without re-parsing error
// strings.
package ferr

import "github.com/pkg/errors"

// Kind distinguishes the three error categories from the failure
// semantics in the specification's error-handling design: malformed
// command lines, malformed CNF input, and I/O failures.
type Kind int

const (
	// InvalidUsage marks a malformed command line.
	InvalidUsage Kind = iota
	// InvalidFormat marks a DIMACS CNF parse error.
	InvalidFormat
	// FileAccess marks a failure to open, read or write input or output.
	FileAccess
)

func (k Kind) String() string {
	switch k {
	case InvalidUsage:
		return "usage error"
	case InvalidFormat:
		return "format error"
	case FileAccess:
		return "file access error"
	default:
		return "error"
	}
}

// ExitCode returns the process exit code conventionally associated with
// the error kind.
func (k Kind) ExitCode() int {
	switch k {
	case InvalidUsage:
		return 2
	case InvalidFormat:
		return 3
	case FileAccess:
		return 4
	default:
		return 1
	}
}

// Error is a classified error, wrapping the pkg/errors-produced cause (if
// any) so Error() and Unwrap() delegate to it instead of re-deriving its
// text or chain by hand.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// New builds a classified error from a message, with no further cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, err: errors.New(msg)}
}

// Newf builds a classified error from a formatted message, with a stack
// trace attached the way errors.Errorf does.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, err: errors.Errorf(format, args...)}
}

// Wrap classifies cause under kind, attaching msg as additional context via
// errors.Wrap, so the result carries both the original cause (reachable
// through Unwrap/errors.As) and a stack trace recorded at the wrap site.
func Wrap(kind Kind, cause error, msg string) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, err: errors.Wrap(cause, msg)}
}

// As reports whether err (or something it wraps) is a classified *Error,
// returning it if so.
func As(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
