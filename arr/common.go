package arr

import (
	"reflect"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Order selects ascending or descending sorts.
type Order int

const (
	// Ascending sorts smallest first.
	Ascending Order = iota
	// Descending sorts largest first.
	Descending
)

// resolveIndex turns a possibly negative position into a 0-based one
// against the materialized length n. ok is false when it falls outside
// [0, n).
func resolveIndex(n, index int) (int, bool) {
	if index < 0 {
		index += n
	}
	return index, index >= 0 && index < n
}

// matcher returns the optional predicate or one that accepts everything.
func matcher[V any](fns []func(V, kv.Key) bool) func(V, kv.Key) bool {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return func(V, kv.Key) bool { return true }
}

// isNil reports whether v is nil, including typed nil pointers, maps,
// slices, channels, funcs and interfaces.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// assemble builds the output of a filtering pass from the positions in
// keep, renumbering when reindex is true.
func assemble[V any](s *kv.Seq[V], keep func(V, kv.Key) bool, reindex bool) *kv.Seq[V] {
	out := kv.Empty[V]()
	for k, v := range s.All() {
		if keep(v, k) {
			out.Put(reindex, k, v)
		}
	}
	return out
}
