package collections

import (
	"math"

	"github.com/hasbyte1/go-seq-utils/arr"
	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/lazy"
)

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Filter(func(n int, _ kv.Key) bool { return n%2 == 0 }),
//	    func(n int, _ kv.Key) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Collection[U] with the
// same keys.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ kv.Key) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, kv.Key) U) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single list Collection[U].
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ kv.Key) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, kv.Key) []U) *Collection[U] {
	return wrap(arr.FlatMap(c.items, fn))
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n int, _ kv.Key) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, kv.Key) U, initial U) U {
	return arr.Fold(c.items, initial, fn)
}

// Pluck extracts a single field U from every item T and returns a new
// Collection[U].
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(v T, _ kv.Key) U { return fn(v) })
}

// GroupBy groups items by the integer or string key extracted by fn.
// Groups appear in order of first occurrence.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K kv.KeyLike](c *Collection[T], fn func(T) K) *kv.Seq[*Collection[T]] {
	groups := arr.GroupBy(c.items, func(v T, _ kv.Key) K { return fn(v) }, kv.Auto)
	return arr.Map(groups, func(g *kv.Seq[T], _ kv.Key) *Collection[T] { return wrap(g) })
}

// KeyBy rekeys the collection by the value extracted by fn.
// When multiple items share the same key, the last one wins.
//
//	byID := collections.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K kv.KeyLike](c *Collection[T], fn func(T) K) *Collection[T] {
	s, _ := arr.KeyBy(c.items, func(v T, _ kv.Key) K { return fn(v) }, true)
	return wrap(s)
}

// Zip combines two collections position by position into Pairs. The
// result is as long as the longer input; the missing side of a pair is
// absent.
//
//	pairs := collections.Zip(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2),
//	) // → [(a, 1), (b, 2), (c, <none>)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	ca, cb := lazy.Pull(lazy.Of(a.items)), lazy.Pull(lazy.Of(b.items))
	defer ca.Stop()
	defer cb.Stop()
	out := kv.Empty[Pair[A, B]]()
	for {
		_, va, oka := ca.Next()
		_, vb, okb := cb.Next()
		if !oka && !okb {
			return wrap(out)
		}
		out.Append(Pair[A, B]{
			First:  arr.Opt[A]{Value: va, Ok: oka},
			Second: arr.Opt[B]{Value: vb, Ok: okb},
		})
	}
}

// Combine creates a Collection from equal-length key and value slices.
// Returns an error wrapping [ErrMismatchedLengths] if
// len(keys) != len(values).
//
//	c, _ := collections.Combine([]string{"a", "b"}, []int{1, 2})
//	// → {"a":1, "b":2}
func Combine[K kv.KeyLike, V any](keys []K, values []V) (*Collection[V], error) {
	ks := make([]kv.Key, len(keys))
	for i, k := range keys {
		ks[i] = kv.KeyOf(k)
	}
	s, err := arr.Combine(ks, values)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return FlatMap(c, func(chunk []T, _ kv.Key) []T { return chunk })
}

// Flatten is an alias for [Collapse]; it flattens one level of nesting.
func Flatten[T any](c *Collection[[]T]) *Collection[T] { return Collapse(c) }

// FlattenDeep recursively flattens a Collection[any] that may contain nested
// slices, sequences, or *Collection values of arbitrary depth.
//
// The result type is Collection[any]; use type assertions on individual
// elements as needed.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	s, _ := arr.Flatten(c.items, math.MaxInt)
	return wrap(s)
}
