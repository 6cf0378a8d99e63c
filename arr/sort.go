package arr

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-seq-utils/identity"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Every sort is stable: entries that compare equal keep their relative
// order. Sorts never mutate their input.

// Sort orders s by by(value, key). Each entry is sorted by its proxy while
// the original value is carried along.
//
//	Sort(people, func(p Person, _ kv.Key) int { return p.Age }, arr.Ascending, kv.Auto)
func Sort[V any, R cmp.Ordered](s *kv.Seq[V], by func(V, kv.Key) R, order Order, r kv.Reindex) *kv.Seq[V] {
	type proxied struct {
		pair  kv.Pair[V]
		proxy R
	}
	rows := make([]proxied, 0, s.Len())
	for k, v := range s.All() {
		rows = append(rows, proxied{pair: kv.Pair[V]{Key: k, Value: v}, proxy: by(v, k)})
	}
	slices.SortStableFunc(rows, func(a, b proxied) int {
		return directed(cmp.Compare(a.proxy, b.proxy), order)
	})
	reindex := kv.Resolve(r, s)
	out := kv.WithCapacity[V](len(rows))
	for _, row := range rows {
		out.Put(reindex, row.pair.Key, row.pair.Value)
	}
	return out
}

// SortAsc orders s by value, smallest first.
func SortAsc[V cmp.Ordered](s *kv.Seq[V], r kv.Reindex) *kv.Seq[V] {
	return SortWith(s, cmp.Compare[V], r)
}

// SortDesc orders s by value, largest first.
func SortDesc[V cmp.Ordered](s *kv.Seq[V], r kv.Reindex) *kv.Seq[V] {
	return SortWith(s, func(a, b V) int { return cmp.Compare(b, a) }, r)
}

// SortWith orders s by the three-way comparator fn over values. A nil fn
// uses [identity.Compare], which also orders values of mixed types.
func SortWith[V any](s *kv.Seq[V], fn func(a, b V) int, r kv.Reindex) *kv.Seq[V] {
	if fn == nil {
		fn = func(a, b V) int { return identity.Compare(a, b) }
	}
	pairs := s.Pairs()
	slices.SortStableFunc(pairs, func(a, b kv.Pair[V]) int { return fn(a.Value, b.Value) })
	return fromPairs(pairs, kv.Resolve(r, s))
}

// SortByKey orders s by key. Integer keys sort before string keys. Keys
// are always preserved.
func SortByKey[V any](s *kv.Seq[V], order Order) *kv.Seq[V] {
	return SortWithKey(s, func(a, b kv.Key) int { return directed(kv.CompareKeys(a, b), order) })
}

// SortByKeyAsc is SortByKey(s, Ascending).
func SortByKeyAsc[V any](s *kv.Seq[V]) *kv.Seq[V] { return SortByKey(s, Ascending) }

// SortByKeyDesc is SortByKey(s, Descending).
func SortByKeyDesc[V any](s *kv.Seq[V]) *kv.Seq[V] { return SortByKey(s, Descending) }

// SortWithKey orders s by the three-way comparator fn over keys; nil means
// [kv.CompareKeys]. Keys are always preserved.
func SortWithKey[V any](s *kv.Seq[V], fn func(a, b kv.Key) int) *kv.Seq[V] {
	if fn == nil {
		fn = kv.CompareKeys
	}
	pairs := s.Pairs()
	slices.SortStableFunc(pairs, func(a, b kv.Pair[V]) int { return fn(a.Key, b.Key) })
	return fromPairs(pairs, false)
}

func directed(c int, order Order) int {
	if order == Descending {
		return -c
	}
	return c
}

func fromPairs[V any](pairs []kv.Pair[V], reindex bool) *kv.Seq[V] {
	out := kv.WithCapacity[V](len(pairs))
	for _, p := range pairs {
		out.Put(reindex, p.Key, p.Value)
	}
	return out
}
