package collections

import (
	"iter"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every value as a plain Go slice.
	All() []T

	// AnyEntries yields every key with its value boxed.
	AnyEntries() iter.Seq2[kv.Key, any]

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, key) for every item.
	Each(fn func(T, kv.Key))

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T, kv.Key) bool) *Collection[T]

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T, kv.Key) bool) (T, bool)

	// Get returns the item stored under key.
	Get(key kv.Key) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection contains at least one item.
	IsNotEmpty() bool

	// Keys returns the keys in order.
	Keys() []kv.Key

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T, kv.Key) bool) (T, bool)

	// Reject returns a new collection with items for which fn returns
	// true removed.
	Reject(fn func(T, kv.Key) bool) *Collection[T]

	// ToSlice is an alias for All.
	ToSlice() []T
}

var _ Enumerable[int] = (*Collection[int])(nil)
