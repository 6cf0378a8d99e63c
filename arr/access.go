package arr

import (
	"github.com/hasbyte1/go-seq-utils/identity"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// Lookups come in three flavours, following the Laravel-style naming used
// across this module:
//
//	At(s, i)        (V, bool)   // absent is reported, never confused with a stored zero value
//	AtOr(s, i, def) V
//	AtOrFail(s, i)  (V, error)

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

// At returns the value at position index. A negative index counts from the
// end.
func At[V any](s *kv.Seq[V], index int) (V, bool) {
	if i, ok := resolveIndex(s.Len(), index); ok {
		return s.ValueAt(i), true
	}
	var zero V
	return zero, false
}

// AtOr returns the value at position index, or def when out of range.
func AtOr[V any](s *kv.Seq[V], index int, def V) V {
	if v, ok := At(s, index); ok {
		return v
	}
	return def
}

// AtOrFail returns the value at position index or [kv.ErrIndexOutOfBounds].
func AtOrFail[V any](s *kv.Seq[V], index int) (V, error) {
	v, ok := At(s, index)
	if !ok {
		return v, kv.NewError("At", kv.ErrIndexOutOfBounds, "index", index, "len", s.Len())
	}
	return v, nil
}

// KeyAt returns the key at position index. A negative index counts from
// the end.
func KeyAt[V any](s *kv.Seq[V], index int) (kv.Key, bool) {
	if i, ok := resolveIndex(s.Len(), index); ok {
		return s.KeyAt(i), true
	}
	return kv.Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key.
func Get[V any](s *kv.Seq[V], key kv.Key) (V, bool) { return s.Get(key) }

// GetOr returns the value stored under key, or def.
func GetOr[V any](s *kv.Seq[V], key kv.Key, def V) V {
	if v, ok := s.Get(key); ok {
		return v
	}
	return def
}

// GetOrFail returns the value stored under key or [kv.ErrMissingKey].
func GetOrFail[V any](s *kv.Seq[V], key kv.Key) (V, error) {
	v, ok := s.Get(key)
	if !ok {
		return v, kv.NewError("Get", kv.ErrMissingKey, "key", key)
	}
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// First / Last
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value, optionally the first matching fns[0].
// Returns false when s is empty or nothing matches.
func First[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (V, bool) {
	_, v, ok := firstPair(s, fns)
	return v, ok
}

// FirstOr is [First] with a default.
func FirstOr[V any](s *kv.Seq[V], def V, fns ...func(V, kv.Key) bool) V {
	if v, ok := First(s, fns...); ok {
		return v
	}
	return def
}

// FirstOrFail is [First] failing with [kv.ErrEmptyNotAllowed] on an empty
// sequence or [kv.ErrNoMatchFound] when nothing matches.
func FirstOrFail[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (V, error) {
	v, ok := First(s, fns...)
	if !ok {
		return v, missError("First", s, fns)
	}
	return v, nil
}

// FirstKey returns the key of the first (matching) entry.
func FirstKey[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (kv.Key, bool) {
	k, _, ok := firstPair(s, fns)
	return k, ok
}

// Last returns the last value, optionally the last matching fns[0].
func Last[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (V, bool) {
	_, v, ok := lastPair(s, fns)
	return v, ok
}

// LastOr is [Last] with a default.
func LastOr[V any](s *kv.Seq[V], def V, fns ...func(V, kv.Key) bool) V {
	if v, ok := Last(s, fns...); ok {
		return v
	}
	return def
}

// LastOrFail is [Last] failing like [FirstOrFail].
func LastOrFail[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (V, error) {
	v, ok := Last(s, fns...)
	if !ok {
		return v, missError("Last", s, fns)
	}
	return v, nil
}

// LastKey returns the key of the last (matching) entry.
func LastKey[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (kv.Key, bool) {
	k, _, ok := lastPair(s, fns)
	return k, ok
}

func firstPair[V any](s *kv.Seq[V], fns []func(V, kv.Key) bool) (kv.Key, V, bool) {
	match := matcher(fns)
	for k, v := range s.All() {
		if match(v, k) {
			return k, v, true
		}
	}
	var zero V
	return kv.Key{}, zero, false
}

func lastPair[V any](s *kv.Seq[V], fns []func(V, kv.Key) bool) (kv.Key, V, bool) {
	match := matcher(fns)
	for i := s.Len() - 1; i >= 0; i-- {
		if k, v := s.KeyAt(i), s.ValueAt(i); match(v, k) {
			return k, v, true
		}
	}
	var zero V
	return kv.Key{}, zero, false
}

func missError[V any](op string, s *kv.Seq[V], fns []func(V, kv.Key) bool) error {
	if len(fns) == 0 || s.Len() == 0 {
		return kv.NewError(op, kv.ErrEmptyNotAllowed, "seq", s)
	}
	return kv.NewError(op, kv.ErrNoMatchFound, "seq", s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Index search
// ─────────────────────────────────────────────────────────────────────────────

// FirstIndex returns the position of the first entry satisfying fn.
func FirstIndex[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) (int, bool) {
	for i := 0; i < s.Len(); i++ {
		if fn(s.ValueAt(i), s.KeyAt(i)) {
			return i, true
		}
	}
	return -1, false
}

// LastIndex returns the position of the last entry satisfying fn.
func LastIndex[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) (int, bool) {
	for i := s.Len() - 1; i >= 0; i-- {
		if fn(s.ValueAt(i), s.KeyAt(i)) {
			return i, true
		}
	}
	return -1, false
}

// IndexOf returns the position of the first value identical to value
// (see [identity.Equal]).
func IndexOf[V any](s *kv.Seq[V], value V) (int, bool) {
	return FirstIndex(s, equalTo(value))
}

// LastIndexOf returns the position of the last value identical to value.
func LastIndexOf[V any](s *kv.Seq[V], value V) (int, bool) {
	return LastIndex(s, equalTo(value))
}

// Search returns the key of the first value identical to value.
func Search[V any](s *kv.Seq[V], value V) (kv.Key, bool) {
	k, _, ok := firstPair(s, []func(V, kv.Key) bool{equalTo(value)})
	return k, ok
}

func equalTo[V any](value V) func(V, kv.Key) bool {
	want := identity.Tokenize(value)
	return func(v V, _ kv.Key) bool { return identity.Tokenize(v) == want }
}

// ─────────────────────────────────────────────────────────────────────────────
// Single / Coalesce
// ─────────────────────────────────────────────────────────────────────────────

// Single returns the only value (matching fns[0]). It fails with
// [kv.ErrEmptyNotAllowed] or [kv.ErrNoMatchFound] when there is none, and
// [kv.ErrInvalidArgument] when there is more than one.
func Single[V any](s *kv.Seq[V], fns ...func(V, kv.Key) bool) (V, error) {
	match := matcher(fns)
	var found V
	n := 0
	for k, v := range s.All() {
		if match(v, k) {
			found = v
			n++
		}
	}
	switch {
	case n == 0:
		return found, missError("Single", s, fns)
	case n > 1:
		var zero V
		return zero, kv.NewError("Single", kv.ErrInvalidArgument, "matches", n, "seq", s)
	}
	return found, nil
}

// Coalesce returns the first value that is not nil.
func Coalesce[V any](s *kv.Seq[V]) (V, bool) {
	return First(s, func(v V, _ kv.Key) bool { return !isNil(v) })
}

// CoalesceOrFail is [Coalesce] failing with [kv.ErrEmptyNotAllowed] or
// [kv.ErrNoMatchFound].
func CoalesceOrFail[V any](s *kv.Seq[V]) (V, error) {
	v, ok := Coalesce(s)
	if !ok {
		if s.Len() == 0 {
			return v, kv.NewError("Coalesce", kv.ErrEmptyNotAllowed)
		}
		return v, kv.NewError("Coalesce", kv.ErrNoMatchFound, "seq", s)
	}
	return v, nil
}
