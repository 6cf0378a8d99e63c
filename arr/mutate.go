package arr

import (
	"github.com/hasbyte1/go-seq-utils/identity"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// The functions in this file mutate the sequence they are given and return
// nothing new unless documented otherwise.

// ─────────────────────────────────────────────────────────────────────────────
// Insertion
// ─────────────────────────────────────────────────────────────────────────────

// InsertAt inserts the entries of values before position index. A negative
// index counts from the end with -1 meaning after the last entry, so -2
// inserts before the last one. Out-of-range indexes are clamped.
//
// Into a list, values are inserted as a list and everything is renumbered;
// a map-shaped values fails with [kv.ErrTypeMismatch]. Into a map, keys are
// kept and a key already present fails with [kv.ErrDuplicateKey] unless
// overwrite is true, in which case the old entry is dropped.
func InsertAt[V any](s *kv.Seq[V], index int, values *kv.Seq[V], overwrite bool) error {
	n := s.Len()
	if index < 0 {
		if index == -1 {
			index = n
		} else {
			index = max(0, n+index+1)
		}
	}
	index = min(index, n)

	list := s.IsList()
	if n == 0 {
		list = values.IsList()
	}
	if list {
		if err := kv.RequireList("InsertAt", values); err != nil {
			return err
		}
	} else if !overwrite {
		for k := range values.All() {
			if s.Has(k) {
				return kv.NewError("InsertAt", kv.ErrDuplicateKey, "key", k, "seq", s)
			}
		}
	}

	pairs := s.Pairs()
	s.Reset()
	put := func(p kv.Pair[V]) {
		if list {
			s.Append(p.Value)
			return
		}
		if !values.Has(p.Key) {
			s.Set(p.Key, p.Value)
		}
	}
	for _, p := range pairs[:index] {
		put(p)
	}
	for k, v := range values.All() {
		s.Put(list, k, v)
	}
	for _, p := range pairs[index:] {
		put(p)
	}
	return nil
}

// Push appends values under new integer keys.
func Push[V any](s *kv.Seq[V], values ...V) {
	for _, v := range values {
		s.Append(v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal from the ends
// ─────────────────────────────────────────────────────────────────────────────

// Pop removes and returns the last value.
func Pop[V any](s *kv.Seq[V]) (V, bool) {
	p, ok := s.DeleteLast()
	return p.Value, ok
}

// PopOrFail is [Pop] failing with [kv.ErrEmptyNotAllowed].
func PopOrFail[V any](s *kv.Seq[V]) (V, error) {
	v, ok := Pop(s)
	if !ok {
		return v, kv.NewError("Pop", kv.ErrEmptyNotAllowed)
	}
	return v, nil
}

// PopMany removes up to amount values from the end and returns them in
// their original order. amount must be at least 1.
func PopMany[V any](s *kv.Seq[V], amount int) (*kv.Seq[V], error) {
	if amount < 1 {
		return nil, kv.NewError("PopMany", kv.ErrInvalidArgument, "amount", amount)
	}
	n := min(amount, s.Len())
	popped := make([]V, n)
	for i := n - 1; i >= 0; i-- {
		p, _ := s.DeleteLast()
		popped[i] = p.Value
	}
	return kv.List(popped...), nil
}

// Shift removes and returns the first value. A list is renumbered
// afterwards.
func Shift[V any](s *kv.Seq[V]) (V, bool) {
	if s.Len() == 0 {
		var zero V
		return zero, false
	}
	list := s.IsList()
	v := s.DeleteAt(0).Value
	if list {
		s.Reindex()
	}
	return v, true
}

// ShiftOrFail is [Shift] failing with [kv.ErrEmptyNotAllowed].
func ShiftOrFail[V any](s *kv.Seq[V]) (V, error) {
	v, ok := Shift(s)
	if !ok {
		return v, kv.NewError("Shift", kv.ErrEmptyNotAllowed)
	}
	return v, nil
}

// ShiftMany removes up to amount values from the front and returns them.
// amount must be at least 1.
func ShiftMany[V any](s *kv.Seq[V], amount int) (*kv.Seq[V], error) {
	if amount < 1 {
		return nil, kv.NewError("ShiftMany", kv.ErrInvalidArgument, "amount", amount)
	}
	list := s.IsList()
	out := kv.Empty[V]()
	for i := 0; i < amount && s.Len() > 0; i++ {
		out.Append(s.DeleteAt(0).Value)
	}
	if list {
		s.Reindex()
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal by key or value
// ─────────────────────────────────────────────────────────────────────────────

// Pull removes key and returns its value.
func Pull[V any](s *kv.Seq[V], key kv.Key) (V, bool) {
	v, ok := s.Get(key)
	if ok {
		s.Delete(key)
	}
	return v, ok
}

// PullOr is [Pull] with a default.
func PullOr[V any](s *kv.Seq[V], key kv.Key, def V) V {
	if v, ok := Pull(s, key); ok {
		return v
	}
	return def
}

// PullOrFail is [Pull] failing with [kv.ErrMissingKey].
func PullOrFail[V any](s *kv.Seq[V], key kv.Key) (V, error) {
	v, ok := Pull(s, key)
	if !ok {
		return v, kv.NewError("Pull", kv.ErrMissingKey, "key", key, "seq", s)
	}
	return v, nil
}

// PullMany removes keys and returns the removed entries. Absent keys are
// skipped.
func PullMany[V any](s *kv.Seq[V], keys ...kv.Key) *kv.Seq[V] {
	out := kv.Empty[V]()
	for _, k := range keys {
		if v, ok := Pull(s, k); ok {
			out.Set(k, v)
		}
	}
	return out
}

// Remove deletes entries holding a value identical to value, at most
// limit of them when limit is given, and returns the removed keys. A list
// is renumbered afterwards.
func Remove[V any](s *kv.Seq[V], value V, limit ...int) []kv.Key {
	most := -1
	if len(limit) > 0 {
		most = limit[0]
	}
	list := s.IsList()
	want := identity.Tokenize(value)
	var removed []kv.Key
	for i := 0; i < s.Len() && (most < 0 || len(removed) < most); {
		if identity.Tokenize(s.ValueAt(i)) == want {
			removed = append(removed, s.DeleteAt(i).Key)
			continue
		}
		i++
	}
	if list && len(removed) > 0 {
		s.Reindex()
	}
	return removed
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed writes
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key.
func Set[V any](s *kv.Seq[V], key kv.Key, value V) { s.Set(key, value) }

// SetIfExists overwrites key only when it is present and reports whether
// it did.
func SetIfExists[V any](s *kv.Seq[V], key kv.Key, value V) bool {
	if !s.Has(key) {
		return false
	}
	s.Set(key, value)
	return true
}

// SetIfNotExists stores value only when key is absent and reports whether
// it did.
func SetIfNotExists[V any](s *kv.Seq[V], key kv.Key, value V) bool {
	if s.Has(key) {
		return false
	}
	s.Set(key, value)
	return true
}

// Swap exchanges the values under two keys. An absent key fails with
// [kv.ErrInvalidKey].
func Swap[V any](s *kv.Seq[V], a, b kv.Key) error {
	va, ok := s.Get(a)
	if !ok {
		return kv.NewError("Swap", kv.ErrInvalidKey, "key", a, "seq", s)
	}
	vb, ok := s.Get(b)
	if !ok {
		return kv.NewError("Swap", kv.ErrInvalidKey, "key", b, "seq", s)
	}
	s.Set(a, vb)
	s.Set(b, va)
	return nil
}

// Reindex renumbers s to a list in place.
func Reindex[V any](s *kv.Seq[V]) { s.Reindex() }
