// Package collections provides a generic, fluent Collection type over
// ordered key-value sequences, inspired by Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][T], an immutable wrapper around a
// *kv.Seq[T] that exposes a chainable API. Every method is backed by the
// helpers in package arr:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n int, _ kv.Key) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Pop, Shift and Pull return the removed item together with the
// remaining collection.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int, _ kv.Key) any { return n * 2 })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int, _ kv.Key) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [Reduce], [Pluck], [GroupBy],
// [KeyBy], [Zip], [Combine], [Collapse], [Flatten], [FlattenDeep].
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) (any, error) {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int, _ kv.Key) bool { return n%2 == 0 }), nil
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// # Debugging
//
// Collections implement slog.LogValuer; [Collection.Dump] logs one at debug
// level and returns it unchanged.
package collections
