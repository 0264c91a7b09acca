package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed .reg text
	ErrKindNotFound                   // missing key/value/index
	ErrKindUnsupported                // valid request we can't serve on this platform
	ErrKindIO                         // filesystem or registry I/O failure
	ErrKindState                      // invalid operation for current state (e.g., not elevated)
)

// String returns a short, stable name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not found"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindIO:
		return "io"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind and message, so the sentinels
// below work with errors.Is even after being re-wrapped with a cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels commonly returned by implementations.
var (
	// ErrUnsupported indicates a recognized request this build cannot serve.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported on this platform"}
	// ErrNotFound indicates a missing key/value/path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// Wrap returns an *Error of the given kind carrying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
