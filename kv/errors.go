package kv

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by sequence operations.
//
// Use [errors.Is] for comparisons; the concrete error is usually an [*Error]
// carrying the offending inputs:
//
//	_, err := arr.FirstOrFail(kv.Empty[int]())
//	if errors.Is(err, kv.ErrEmptyNotAllowed) {
//	    // nothing to take
//	}
var (
	// ErrEmptyNotAllowed is returned when an operation that needs at least
	// one element receives an empty sequence.
	ErrEmptyNotAllowed = errors.New("kv: empty sequence not allowed")

	// ErrNoMatchFound is returned when a predicate-driven lookup finds no
	// element where at least one was required.
	ErrNoMatchFound = errors.New("kv: no element matched the condition")

	// ErrIndexOutOfBounds is returned when a resolved position falls outside
	// [0, Len()).
	ErrIndexOutOfBounds = errors.New("kv: index out of bounds")

	// ErrInvalidKey is returned for keys of the wrong type or keys that must
	// exist but do not.
	ErrInvalidKey = errors.New("kv: invalid key")

	// ErrMissingKey is returned when requested keys are absent.
	ErrMissingKey = errors.New("kv: missing key")

	// ErrExcessKey is returned when keys are present that were not expected.
	ErrExcessKey = errors.New("kv: excess key")

	// ErrDuplicateKey is returned when an insertion collides with an
	// existing key.
	ErrDuplicateKey = errors.New("kv: duplicate key")

	// ErrTypeMismatch is returned when a list-only operation receives a map
	// or two operands have incompatible kinds.
	ErrTypeMismatch = errors.New("kv: sequence kind mismatch")

	// ErrInvalidElement is returned when a numeric reduction produces NaN.
	ErrInvalidElement = errors.New("kv: invalid element")

	// ErrInvalidArgument is returned for malformed parameters such as a
	// non-positive chunk size.
	ErrInvalidArgument = errors.New("kv: invalid argument")

	// ErrUnreachable marks an internal invariant violation. It is only ever
	// raised through panic.
	ErrUnreachable = errors.New("kv: unreachable")
)

// Error describes a failed sequence operation.
type Error struct {
	// Op is the name of the operation that failed, e.g. "Chunk".
	Op string
	// Err is one of the package sentinel errors.
	Err error
	// Context holds the offending inputs (sequence, key, index, value...).
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Op != "" {
		b.WriteString(" (")
		b.WriteString(e.Op)
		b.WriteString(")")
	}
	if len(e.Context) > 0 {
		names := make([]string, 0, len(e.Context))
		for name := range e.Context {
			names = append(names, name)
		}
		sort.Strings(names)
		for i, name := range names {
			if i == 0 {
				b.WriteString(": ")
			} else {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", name, e.Context[name])
		}
	}
	return b.String()
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error { return e.Err }

// NewError builds an [*Error] from alternating context name/value pairs.
//
//	return kv.NewError("Chunk", kv.ErrInvalidArgument, "size", size)
func NewError(op string, sentinel error, kvs ...any) *Error {
	return newError(op, sentinel, kvs...)
}

func newError(op string, sentinel error, kvs ...any) *Error {
	e := &Error{Op: op, Err: sentinel}
	if len(kvs) > 0 {
		e.Context = make(map[string]any, len(kvs)/2)
		for i := 0; i+1 < len(kvs); i += 2 {
			e.Context[fmt.Sprint(kvs[i])] = kvs[i+1]
		}
	}
	return e
}
