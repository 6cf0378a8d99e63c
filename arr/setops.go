package arr

import (
	"github.com/hasbyte1/go-seq-utils/identity"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
// ─────────────────────────────────────────────────────────────────────────────

// The set operations compare values with a three-way comparator; entries
// compare equal when it returns 0. A nil comparator means identity: two
// values match when their [identity.Token]s are equal, which is decided
// with a hash set instead of pairwise comparison.

// Diff returns the entries of a whose value does not occur in b.
//
// With a nil comparator the int 1 and the float 1.0 are different values.
// Pass [identity.Compare] to match them by their generic ordering instead.
func Diff[V any](a, b *kv.Seq[V], by func(x, y V) int, r kv.Reindex) *kv.Seq[V] {
	in := valueMembership(b, by)
	return assemble(a, func(v V, _ kv.Key) bool { return !in(v) }, kv.Resolve(r, a))
}

// Intersect returns the entries of a whose value also occurs in b.
func Intersect[V any](a, b *kv.Seq[V], by func(x, y V) int, r kv.Reindex) *kv.Seq[V] {
	in := valueMembership(b, by)
	return assemble(a, func(v V, _ kv.Key) bool { return in(v) }, kv.Resolve(r, a))
}

// DiffKeys returns the entries of a whose key does not occur in b.
func DiffKeys[V any](a, b *kv.Seq[V], by func(x, y kv.Key) int, r kv.Reindex) *kv.Seq[V] {
	in := keyMembership(b, by)
	return assemble(a, func(_ V, k kv.Key) bool { return !in(k) }, kv.Resolve(r, a))
}

// IntersectKeys returns the entries of a whose key also occurs in b.
func IntersectKeys[V any](a, b *kv.Seq[V], by func(x, y kv.Key) int, r kv.Reindex) *kv.Seq[V] {
	in := keyMembership(b, by)
	return assemble(a, func(_ V, k kv.Key) bool { return in(k) }, kv.Resolve(r, a))
}

// SymDiff returns the values of a missing from b followed by the values of
// b missing from a, as a list. Both operands must be lists; maps fail with
// [kv.ErrTypeMismatch].
func SymDiff[V any](a, b *kv.Seq[V], by func(x, y V) int) (*kv.Seq[V], error) {
	if err := kv.RequireList("SymDiff", a); err != nil {
		return nil, err
	}
	if err := kv.RequireList("SymDiff", b); err != nil {
		return nil, err
	}
	return Concat(Diff(a, b, by, kv.ForceList), Diff(b, a, by, kv.ForceList)), nil
}

func valueMembership[V any](s *kv.Seq[V], by func(x, y V) int) func(V) bool {
	if by == nil {
		set := make(map[identity.Token]struct{}, s.Len())
		for v := range s.AllValues() {
			set[identity.Tokenize(v)] = struct{}{}
		}
		return func(v V) bool {
			_, ok := set[identity.Tokenize(v)]
			return ok
		}
	}
	return func(v V) bool {
		for w := range s.AllValues() {
			if by(v, w) == 0 {
				return true
			}
		}
		return false
	}
}

func keyMembership[V any](s *kv.Seq[V], by func(x, y kv.Key) int) func(kv.Key) bool {
	if by == nil {
		return s.Has
	}
	return func(k kv.Key) bool {
		for w := range s.All() {
			if by(k, w) == 0 {
				return true
			}
		}
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Key selection
// ─────────────────────────────────────────────────────────────────────────────

// Only returns the entries stored under keys, in the order of s. When safe
// is true a key absent from s fails with [kv.ErrMissingKey]; otherwise it
// is ignored.
func Only[V any](s *kv.Seq[V], keys []kv.Key, safe bool) (*kv.Seq[V], error) {
	want := make(map[kv.Key]struct{}, len(keys))
	for _, k := range keys {
		if safe && !s.Has(k) {
			return nil, kv.NewError("Only", kv.ErrMissingKey, "key", k, "seq", s)
		}
		want[k] = struct{}{}
	}
	return assemble(s, func(_ V, k kv.Key) bool {
		_, ok := want[k]
		return ok
	}, false), nil
}

// Except returns s without the entries stored under keys. safe behaves as
// in [Only]. A list input is renumbered.
func Except[V any](s *kv.Seq[V], keys []kv.Key, safe bool) (*kv.Seq[V], error) {
	drop := make(map[kv.Key]struct{}, len(keys))
	for _, k := range keys {
		if safe && !s.Has(k) {
			return nil, kv.NewError("Except", kv.ErrMissingKey, "key", k, "seq", s)
		}
		drop[k] = struct{}{}
	}
	return assemble(s, func(_ V, k kv.Key) bool {
		_, ok := drop[k]
		return !ok
	}, s.IsList()), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication & grouping
// ─────────────────────────────────────────────────────────────────────────────

// Unique keeps the first entry for every distinct value, or for every
// distinct by(value, key) when by is non-nil.
func Unique[V any](s *kv.Seq[V], by func(V, kv.Key) any, r kv.Reindex) *kv.Seq[V] {
	seen := make(map[identity.Token]struct{}, s.Len())
	return assemble(s, func(v V, k kv.Key) bool {
		t := selectToken(v, k, by)
		if _, dup := seen[t]; dup {
			return false
		}
		seen[t] = struct{}{}
		return true
	}, kv.Resolve(r, s))
}

// Duplicates returns, as a list, each value that occurs more than once,
// once, in order of first occurrence.
func Duplicates[V any](s *kv.Seq[V], by func(V, kv.Key) any) *kv.Seq[V] {
	counts := make(map[identity.Token]int, s.Len())
	var order []identity.Token
	first := make(map[identity.Token]V, s.Len())
	for k, v := range s.All() {
		t := selectToken(v, k, by)
		if counts[t] == 0 {
			order = append(order, t)
			first[t] = v
		}
		counts[t]++
	}
	out := kv.Empty[V]()
	for _, t := range order {
		if counts[t] > 1 {
			out.Append(first[t])
		}
	}
	return out
}

func selectToken[V any](v V, k kv.Key, by func(V, kv.Key) any) identity.Token {
	if by == nil {
		return identity.Tokenize(v)
	}
	return identity.Tokenize(by(v, k))
}

// GroupBy buckets entries under the key fn returns, buckets ordered by
// first appearance.
//
//	GroupBy(kv.List(1, 2, 3, 4), func(n int, _ kv.Key) int { return n % 3 }, kv.Auto)
//	// {1:[1 4] 2:[2] 0:[3]}
func GroupBy[V any, K kv.KeyLike](s *kv.Seq[V], fn func(V, kv.Key) K, r kv.Reindex) *kv.Seq[*kv.Seq[V]] {
	out, _ := GroupByAny(s, func(v V, k kv.Key) any { return kv.KeyOf(fn(v, k)) }, r)
	return out
}

// GroupByAny is [GroupBy] for selectors whose result is only known at run
// time. A result that is not an integer or string fails with
// [kv.ErrInvalidKey].
func GroupByAny[V any](s *kv.Seq[V], fn func(V, kv.Key) any, r kv.Reindex) (*kv.Seq[*kv.Seq[V]], error) {
	reindex := kv.Resolve(r, s)
	out := kv.Empty[*kv.Seq[V]]()
	for k, v := range s.All() {
		gk, err := kv.ParseKey(fn(v, k))
		if err != nil {
			return nil, kv.NewError("GroupBy", kv.ErrInvalidKey, "key", k, "value", v)
		}
		group, ok := out.Get(gk)
		if !ok {
			group = kv.Empty[V]()
			out.Set(gk, group)
		}
		group.Put(reindex, k, v)
	}
	return out, nil
}

// KeyBy rekeys every entry by fn. A key produced twice fails with
// [kv.ErrDuplicateKey] unless overwrite is true, in which case the later
// entry wins.
func KeyBy[V any, K kv.KeyLike](s *kv.Seq[V], fn func(V, kv.Key) K, overwrite bool) (*kv.Seq[V], error) {
	out := kv.WithCapacity[V](s.Len())
	for k, v := range s.All() {
		nk := kv.KeyOf(fn(v, k))
		if !overwrite && out.Has(nk) {
			return nil, kv.NewError("KeyBy", kv.ErrDuplicateKey, "key", nk, "value", v)
		}
		out.Set(nk, v)
	}
	return out, nil
}

// CountBy counts entries per key fn returns.
func CountBy[V any, K kv.KeyLike](s *kv.Seq[V], fn func(V, kv.Key) K) *kv.Seq[int] {
	out := kv.Empty[int]()
	for k, v := range s.All() {
		ck := kv.KeyOf(fn(v, k))
		n, _ := out.Get(ck)
		out.Set(ck, n+1)
	}
	return out
}
