package arr

import (
	"iter"

	"github.com/hasbyte1/go-seq-utils/identity"
	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/lazy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(value, key) to each entry. Keys are kept.
func Map[V, U any](s *kv.Seq[V], fn func(V, kv.Key) U) *kv.Seq[U] {
	return kv.Collect(lazy.Map(lazy.Of(s), fn))
}

// MapWithKey builds a new sequence from the key-value pair fn returns for
// each entry. Later pairs overwrite earlier ones with the same key.
func MapWithKey[V, U any](s *kv.Seq[V], fn func(V, kv.Key) kv.Pair[U]) *kv.Seq[U] {
	out := kv.WithCapacity[U](s.Len())
	for k, v := range s.All() {
		p := fn(v, k)
		out.Set(p.Key, p.Value)
	}
	return out
}

// FlatMap applies fn to each entry and concatenates the produced values
// into a list.
func FlatMap[V, U any](s *kv.Seq[V], fn func(V, kv.Key) []U) *kv.Seq[U] {
	return kv.Collect(lazy.FlatMap(lazy.Of(s), func(v V, k kv.Key) iter.Seq[U] {
		us := fn(v, k)
		return func(yield func(U) bool) {
			for _, u := range us {
				if !yield(u) {
					return
				}
			}
		}
	}))
}

// Flatten descends depth levels into nested sequences and slices and
// returns the leaves as a list. depth must be at least 1.
func Flatten[V any](s *kv.Seq[V], depth int) (*kv.Seq[any], error) {
	vals, err := lazy.Flatten(lazy.Of(s), depth)
	if err != nil {
		return nil, err
	}
	return kv.CollectList(vals), nil
}

// Filter keeps the entries for which fn returns true.
func Filter[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[V] {
	return kv.Collect(lazy.Filter(lazy.Of(s), fn, kv.Resolve(r, s)))
}

// Reject drops the entries for which fn returns true.
func Reject[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[V] {
	return Filter(s, func(v V, k kv.Key) bool { return !fn(v, k) }, r)
}

// Compact drops nil values.
func Compact[V any](s *kv.Seq[V], r kv.Reindex) *kv.Seq[V] {
	return Filter(s, func(v V, _ kv.Key) bool { return !isNil(v) }, r)
}

// Without drops every value identical to one of values.
func Without[V any](s *kv.Seq[V], r kv.Reindex, values ...V) *kv.Seq[V] {
	drop := make(map[identity.Token]struct{}, len(values))
	for _, v := range values {
		drop[identity.Tokenize(v)] = struct{}{}
	}
	return Filter(s, func(v V, _ kv.Key) bool {
		_, found := drop[identity.Tokenize(v)]
		return !found
	}, r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold reduces s to a single value, starting from initial.
func Fold[V, U any](s *kv.Seq[V], initial U, fn func(U, V, kv.Key) U) U {
	acc := initial
	for k, v := range s.All() {
		acc = fn(acc, v, k)
	}
	return acc
}

// Reduce folds s using its first value as the initial accumulator. It
// fails with [kv.ErrEmptyNotAllowed] on an empty sequence.
func Reduce[V any](s *kv.Seq[V], fn func(V, V, kv.Key) V) (V, error) {
	if s.Len() == 0 {
		var zero V
		return zero, kv.NewError("Reduce", kv.ErrEmptyNotAllowed)
	}
	acc := s.ValueAt(0)
	for i := 1; i < s.Len(); i++ {
		acc = fn(acc, s.ValueAt(i), s.KeyAt(i))
	}
	return acc, nil
}

// Each calls fn for every entry, stopping early when fn returns false.
func Each[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) {
	for k, v := range s.All() {
		if !fn(v, k) {
			return
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys & values
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of s as a list.
func Keys[V any](s *kv.Seq[V]) *kv.Seq[kv.Key] {
	return kv.FromSlice(s.Keys())
}

// Values returns the values of s as a list.
func Values[V any](s *kv.Seq[V]) *kv.Seq[V] {
	return kv.FromSlice(s.Values())
}

// Flip swaps keys and values. Values must be key-shaped (integers or
// strings); anything else fails with [kv.ErrInvalidKey]. Later entries win
// on collisions.
func Flip[V any](s *kv.Seq[V]) (*kv.Seq[kv.Key], error) {
	out := kv.WithCapacity[kv.Key](s.Len())
	for k, v := range s.All() {
		nk, err := kv.ParseKey(v)
		if err != nil {
			return nil, kv.NewError("Flip", kv.ErrInvalidKey, "key", k, "value", v)
		}
		out.Set(nk, k)
	}
	return out, nil
}

// Combine pairs keys with values position by position. Mismatched lengths
// fail with [kv.ErrInvalidArgument].
func Combine[V any](keys []kv.Key, values []V) (*kv.Seq[V], error) {
	if len(keys) != len(values) {
		return nil, kv.NewError("Combine", kv.ErrInvalidArgument, "keys", len(keys), "values", len(values))
	}
	out := kv.WithCapacity[V](len(keys))
	for i, k := range keys {
		out.Set(k, values[i])
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns s back to front.
func Reverse[V any](s *kv.Seq[V], r kv.Reindex) *kv.Seq[V] {
	reindex := kv.Resolve(r, s)
	out := kv.WithCapacity[V](s.Len())
	for i := s.Len() - 1; i >= 0; i-- {
		out.Put(reindex, s.KeyAt(i), s.ValueAt(i))
	}
	return out
}

// Prepend returns values followed by the entries of s, renumbered.
func Prepend[V any](s *kv.Seq[V], values ...V) *kv.Seq[V] {
	out := kv.WithCapacity[V](len(values) + s.Len())
	for _, v := range values {
		out.Append(v)
	}
	for v := range s.AllValues() {
		out.Append(v)
	}
	return out
}

// Append returns a copy of s with values added under new integer keys.
func Append[V any](s *kv.Seq[V], values ...V) *kv.Seq[V] {
	out := s.Clone()
	for _, v := range values {
		out.Append(v)
	}
	return out
}

// Concat appends the values of every sequence into one list.
func Concat[V any](seqs ...*kv.Seq[V]) *kv.Seq[V] {
	out := kv.Empty[V]()
	for _, s := range seqs {
		for v := range s.AllValues() {
			out.Append(v)
		}
	}
	return out
}

// Merge combines sequences of the same kind: lists are concatenated, maps
// are merged with later values overwriting earlier ones. Mixing a list
// with a map fails with [kv.ErrTypeMismatch]; empty inputs fit either.
func Merge[V any](seqs ...*kv.Seq[V]) (*kv.Seq[V], error) {
	out := kv.Empty[V]()
	var kind kv.Kind
	seen := false
	for _, s := range seqs {
		if s.Len() == 0 {
			continue
		}
		if !seen {
			kind, seen = s.Kind(), true
		} else if s.Kind() != kind {
			return nil, kv.NewError("Merge", kv.ErrTypeMismatch, "want", kind, "got", s.Kind())
		}
		for k, v := range s.All() {
			out.Put(kind == kv.KindList, k, v)
		}
	}
	return out, nil
}

// MergeRecursive merges maps of arbitrary values; where both sides hold a
// nested *kv.Seq[any] under the same key, the two are merged recursively.
// Lists are concatenated.
func MergeRecursive(seqs ...*kv.Seq[any]) (*kv.Seq[any], error) {
	out := kv.Empty[any]()
	for _, s := range seqs {
		if s.Len() == 0 {
			continue
		}
		if out.Len() > 0 && out.Kind() != s.Kind() {
			return nil, kv.NewError("MergeRecursive", kv.ErrTypeMismatch, "want", out.Kind(), "got", s.Kind())
		}
		list := s.IsList()
		for k, v := range s.All() {
			if list {
				out.Append(v)
				continue
			}
			cur, exists := out.Get(k)
			a, aok := cur.(*kv.Seq[any])
			b, bok := v.(*kv.Seq[any])
			if exists && aok && bok {
				merged, err := MergeRecursive(a, b)
				if err != nil {
					return nil, err
				}
				out.Set(k, merged)
				continue
			}
			out.Set(k, v)
		}
	}
	return out, nil
}

// WithDefaults returns s with every key of defaults it lacks added at the
// end.
func WithDefaults[V any](s, defaults *kv.Seq[V]) *kv.Seq[V] {
	out := s.Clone()
	for k, v := range defaults.All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return out
}

// Replace returns s with the values of replacements stored over it; keys
// absent from s are appended.
func Replace[V any](s, replacements *kv.Seq[V]) *kv.Seq[V] {
	out := s.Clone()
	for k, v := range replacements.All() {
		out.Set(k, v)
	}
	return out
}

// Repeat concatenates times copies of the values of s into a list.
func Repeat[V any](s *kv.Seq[V], times int) (*kv.Seq[V], error) {
	src, err := lazy.Repeat(lazy.Of(s), times)
	if err != nil {
		return nil, err
	}
	return kv.Collect(src), nil
}

// Wrap returns a single-element list holding v.
func Wrap[V any](v V) *kv.Seq[V] { return kv.List(v) }
