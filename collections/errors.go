package collections

import (
	"errors"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Sentinel errors returned by Collection operations. Apart from
// ErrMacroNotFound they are the kv sentinels under collection-flavoured
// names, so errors.Is works with either.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = kv.ErrEmptyNotAllowed

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = kv.ErrIndexOutOfBounds

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = kv.ErrNoMatchFound

	// ErrInvalidChunkSize is returned when Chunk, Sliding or Split is called
	// with a size below 1.
	ErrInvalidChunkSize = kv.ErrInvalidArgument

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = kv.ErrInvalidArgument

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
