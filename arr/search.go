package arr

import (
	"github.com/hasbyte1/go-seq-utils/identity"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether s holds a value identical to value.
func Contains[V any](s *kv.Seq[V], value V) bool {
	_, ok := IndexOf(s, value)
	return ok
}

// ContainsAll reports whether s holds every one of values.
func ContainsAll[V any](s *kv.Seq[V], values ...V) bool {
	set := tokenSet(s)
	for _, v := range values {
		if _, ok := set[identity.Tokenize(v)]; !ok {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s holds at least one of values.
func ContainsAny[V any](s *kv.Seq[V], values ...V) bool {
	set := tokenSet(s)
	for _, v := range values {
		if _, ok := set[identity.Tokenize(v)]; ok {
			return true
		}
	}
	return false
}

// ContainsNone reports whether s holds none of values.
func ContainsNone[V any](s *kv.Seq[V], values ...V) bool {
	return !ContainsAny(s, values...)
}

// ContainsKey reports whether key is present.
func ContainsKey[V any](s *kv.Seq[V], key kv.Key) bool { return s.Has(key) }

// ContainsAllKeys reports whether every one of keys is present.
func ContainsAllKeys[V any](s *kv.Seq[V], keys ...kv.Key) bool {
	for _, k := range keys {
		if !s.Has(k) {
			return false
		}
	}
	return true
}

// ContainsAnyKeys reports whether at least one of keys is present.
func ContainsAnyKeys[V any](s *kv.Seq[V], keys ...kv.Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// ContainsSlice reports whether the values of needle occur in s as a
// contiguous run. An empty needle is always found.
func ContainsSlice[V any](s, needle *kv.Seq[V]) bool {
	n, m := s.Len(), needle.Len()
	if m == 0 {
		return true
	}
	want := make([]identity.Token, m)
	for i := range m {
		want[i] = identity.Tokenize(needle.ValueAt(i))
	}
	have := make([]identity.Token, n)
	for i := range n {
		have[i] = identity.Tokenize(s.ValueAt(i))
	}
outer:
	for i := 0; i+m <= n; i++ {
		for j := range m {
			if have[i+j] != want[j] {
				continue outer
			}
		}
		return true
	}
	return false
}

// StartsWith reports whether the values of s begin with those of prefix.
func StartsWith[V any](s, prefix *kv.Seq[V]) bool {
	if prefix.Len() > s.Len() {
		return false
	}
	for i := 0; i < prefix.Len(); i++ {
		if !identity.Equal(s.ValueAt(i), prefix.ValueAt(i)) {
			return false
		}
	}
	return true
}

// EndsWith reports whether the values of s end with those of suffix.
func EndsWith[V any](s, suffix *kv.Seq[V]) bool {
	off := s.Len() - suffix.Len()
	if off < 0 {
		return false
	}
	for i := 0; i < suffix.Len(); i++ {
		if !identity.Equal(s.ValueAt(off+i), suffix.ValueAt(i)) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold identical pairs in the same order.
func Equal[V any](a, b *kv.Seq[V]) bool {
	return identity.Tokenize(a) == identity.Tokenize(b)
}

func tokenSet[V any](s *kv.Seq[V]) map[identity.Token]struct{} {
	set := make(map[identity.Token]struct{}, s.Len())
	for v := range s.AllValues() {
		set[identity.Tokenize(v)] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates over every entry
// ─────────────────────────────────────────────────────────────────────────────

// SatisfyAll reports whether fn holds for every entry. True for an empty
// sequence.
func SatisfyAll[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) bool {
	for k, v := range s.All() {
		if !fn(v, k) {
			return false
		}
	}
	return true
}

// SatisfyAny reports whether fn holds for at least one entry.
func SatisfyAny[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) bool {
	_, ok := FirstIndex(s, fn)
	return ok
}

// SatisfyNone reports whether fn holds for no entry.
func SatisfyNone[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) bool {
	return !SatisfyAny(s, fn)
}

// SatisfyOnce reports whether fn holds for exactly one entry.
func SatisfyOnce[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) bool {
	return Count(s, fn) == 1
}

// Count returns the number of entries, or of entries matching fns[0].
func Count[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) int {
	if len(fns) == 0 {
		return s.Len()
	}
	n := 0
	for k, v := range s.All() {
		if fns[0](v, k) {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Assertions
// ─────────────────────────────────────────────────────────────────────────────

// EnsureCountIs fails with [kv.ErrInvalidArgument] unless s holds exactly
// n entries.
func EnsureCountIs[V any](s *kv.Seq[V], n int) error {
	if s.Len() != n {
		return kv.NewError("EnsureCountIs", kv.ErrInvalidArgument, "want", n, "got", s.Len())
	}
	return nil
}

// EnsureCountIsAtLeast fails with [kv.ErrInvalidArgument] unless s holds
// at least n entries.
func EnsureCountIsAtLeast[V any](s *kv.Seq[V], n int) error {
	if s.Len() < n {
		return kv.NewError("EnsureCountIsAtLeast", kv.ErrInvalidArgument, "want", n, "got", s.Len())
	}
	return nil
}

// EnsureExactKeys fails with [kv.ErrMissingKey] when one of keys is absent
// and [kv.ErrExcessKey] when s holds a key not listed.
func EnsureExactKeys[V any](s *kv.Seq[V], keys ...kv.Key) error {
	want := make(map[kv.Key]struct{}, len(keys))
	for _, k := range keys {
		if !s.Has(k) {
			return kv.NewError("EnsureExactKeys", kv.ErrMissingKey, "key", k, "seq", s)
		}
		want[k] = struct{}{}
	}
	for k := range s.All() {
		if _, ok := want[k]; !ok {
			return kv.NewError("EnsureExactKeys", kv.ErrExcessKey, "key", k, "seq", s)
		}
	}
	return nil
}
