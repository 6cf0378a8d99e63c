package arr

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/lazy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns up to length entries starting at offset. Negative values
// count from the end; pass [lazy.Rest] as length for "through the end".
func Slice[V any](s *kv.Seq[V], offset, length int, r kv.Reindex) *kv.Seq[V] {
	return kv.Collect(lazy.Slice(lazy.Of(s), offset, length, kv.Resolve(r, s)))
}

// TakeFirst returns the first n entries. n must not be negative.
func TakeFirst[V any](s *kv.Seq[V], n int, r kv.Reindex) (*kv.Seq[V], error) {
	if n < 0 {
		return nil, kv.NewError("TakeFirst", kv.ErrInvalidArgument, "amount", n)
	}
	return Slice(s, 0, n, r), nil
}

// TakeLast returns the last n entries. n must not be negative.
func TakeLast[V any](s *kv.Seq[V], n int, r kv.Reindex) (*kv.Seq[V], error) {
	if n < 0 {
		return nil, kv.NewError("TakeLast", kv.ErrInvalidArgument, "amount", n)
	}
	return Slice(s, max(0, s.Len()-n), lazy.Rest, r), nil
}

// DropFirst returns s without its first n entries. n must not be negative.
func DropFirst[V any](s *kv.Seq[V], n int, r kv.Reindex) (*kv.Seq[V], error) {
	if n < 0 {
		return nil, kv.NewError("DropFirst", kv.ErrInvalidArgument, "amount", n)
	}
	return Slice(s, n, lazy.Rest, r), nil
}

// DropLast returns s without its last n entries. n must not be negative.
func DropLast[V any](s *kv.Seq[V], n int, r kv.Reindex) (*kv.Seq[V], error) {
	if n < 0 {
		return nil, kv.NewError("DropLast", kv.ErrInvalidArgument, "amount", n)
	}
	return Slice(s, 0, max(0, s.Len()-n), r), nil
}

// TakeWhile returns the leading entries for which fn holds.
func TakeWhile[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[V] {
	return kv.Collect(lazy.TakeWhile(lazy.Of(s), fn, kv.Resolve(r, s)))
}

// TakeUntil returns the leading entries before fn first holds.
func TakeUntil[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[V] {
	return kv.Collect(lazy.TakeUntil(lazy.Of(s), fn, kv.Resolve(r, s)))
}

// DropWhile returns s from the first entry for which fn does not hold.
func DropWhile[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[V] {
	return kv.Collect(lazy.DropWhile(lazy.Of(s), fn, kv.Resolve(r, s)))
}

// DropUntil returns s from the first entry for which fn holds.
func DropUntil[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[V] {
	return kv.Collect(lazy.DropUntil(lazy.Of(s), fn, kv.Resolve(r, s)))
}

// TakeEvery returns every nth entry, starting with the first.
func TakeEvery[V any](s *kv.Seq[V], nth int, r kv.Reindex) (*kv.Seq[V], error) {
	src, err := lazy.TakeEvery(lazy.Of(s), nth, kv.Resolve(r, s))
	if err != nil {
		return nil, err
	}
	return kv.Collect(src), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping into windows
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits s into consecutive groups of size entries; the last group
// may be shorter. The outer sequence is always a list.
//
//	Chunk(kv.List(1, 2, 3), 2, kv.Auto) // [[1 2] [3]]
func Chunk[V any](s *kv.Seq[V], size int, r kv.Reindex) (*kv.Seq[*kv.Seq[V]], error) {
	chunks, err := lazy.Chunk(lazy.Of(s), size, kv.Resolve(r, s))
	if err != nil {
		return nil, err
	}
	return kv.CollectList(chunks), nil
}

// Slide returns every window of size consecutive entries.
func Slide[V any](s *kv.Seq[V], size int, r kv.Reindex) (*kv.Seq[*kv.Seq[V]], error) {
	windows, err := lazy.Slide(lazy.Of(s), size, kv.Resolve(r, s))
	if err != nil {
		return nil, err
	}
	return kv.CollectList(windows), nil
}

// SplitEvenly splits s into groups of ceil(n/parts) entries. The result can
// hold fewer than parts groups and its last group can be shorter.
//
//	SplitEvenly(kv.List(1, 2, 3, 4, 5), 3, kv.Auto) // [[1 2] [3 4] [5]]
func SplitEvenly[V any](s *kv.Seq[V], parts int, r kv.Reindex) (*kv.Seq[*kv.Seq[V]], error) {
	if parts < 1 {
		return nil, kv.NewError("SplitEvenly", kv.ErrInvalidArgument, "parts", parts)
	}
	if s.Len() == 0 {
		return kv.Empty[*kv.Seq[V]](), nil
	}
	return Chunk(s, (s.Len()+parts-1)/parts, r)
}

// SplitAfter starts a new group after every entry for which fn holds.
func SplitAfter[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[*kv.Seq[V]] {
	return splitBy(s, r, func(i int) (before, after bool) {
		return false, fn(s.ValueAt(i), s.KeyAt(i))
	})
}

// SplitBefore starts a new group at every entry for which fn holds.
func SplitBefore[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) *kv.Seq[*kv.Seq[V]] {
	return splitBy(s, r, func(i int) (before, after bool) {
		return fn(s.ValueAt(i), s.KeyAt(i)), false
	})
}

// SplitAfterIndex splits s in two after position index.
func SplitAfterIndex[V any](s *kv.Seq[V], index int, r kv.Reindex) *kv.Seq[*kv.Seq[V]] {
	at, _ := resolveIndex(s.Len(), index)
	return splitBy(s, r, func(i int) (before, after bool) { return false, i == at })
}

// SplitBeforeIndex splits s in two before position index.
func SplitBeforeIndex[V any](s *kv.Seq[V], index int, r kv.Reindex) *kv.Seq[*kv.Seq[V]] {
	at, _ := resolveIndex(s.Len(), index)
	return splitBy(s, r, func(i int) (before, after bool) { return i == at, false })
}

// splitBy walks s once; cut reports whether a group boundary falls before
// or after position i. Boundaries never produce an empty group.
func splitBy[V any](s *kv.Seq[V], r kv.Reindex, cut func(i int) (before, after bool)) *kv.Seq[*kv.Seq[V]] {
	reindex := kv.Resolve(r, s)
	out := kv.Empty[*kv.Seq[V]]()
	group := kv.Empty[V]()
	for i := 0; i < s.Len(); i++ {
		before, after := cut(i)
		if before && group.Len() > 0 {
			out.Append(group)
			group = kv.Empty[V]()
		}
		group.Put(reindex, s.KeyAt(i), s.ValueAt(i))
		if after {
			out.Append(group)
			group = kv.Empty[V]()
		}
	}
	if group.Len() > 0 {
		out.Append(group)
	}
	return out
}

// Partition splits s into the entries satisfying fn and the rest, both in
// their original order.
func Partition[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, r kv.Reindex) (pass, fail *kv.Seq[V]) {
	reindex := kv.Resolve(r, s)
	pass, fail = kv.Empty[V](), kv.Empty[V]()
	for k, v := range s.All() {
		if fn(v, k) {
			pass.Put(reindex, k, v)
		} else {
			fail.Put(reindex, k, v)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Rotation & padding
// ─────────────────────────────────────────────────────────────────────────────

// Rotate moves the first count entries to the end. A negative count has
// len(s) added to it once, so -1 moves the last entry to the front. Counts
// that are still negative afterwards, zero, or at least len(s) leave the
// order unchanged.
//
//	Rotate(kv.List(1, 2, 3), 1, kv.Auto)  // [2 3 1]
//	Rotate(kv.List(1, 2, 3), -1, kv.Auto) // [3 1 2]
func Rotate[V any](s *kv.Seq[V], count int, r kv.Reindex) *kv.Seq[V] {
	reindex := kv.Resolve(r, s)
	n := s.Len()
	if count < 0 {
		count += n
	}
	if count <= 0 || count >= n {
		count = 0
	}
	out := kv.WithCapacity[V](n)
	for i := 0; i < n; i++ {
		j := (i + count) % n
		out.Put(reindex, s.KeyAt(j), s.ValueAt(j))
	}
	return out
}

// Pad grows a list to |size| entries with value: at the end for a positive
// size, at the front for a negative one. Maps fail with
// [kv.ErrTypeMismatch].
func Pad[V any](s *kv.Seq[V], size int, value V) (*kv.Seq[V], error) {
	if err := kv.RequireList("Pad", s); err != nil {
		return nil, err
	}
	want := size
	if want < 0 {
		want = -want
	}
	missing := want - s.Len()
	if missing <= 0 {
		return s.Clone(), nil
	}
	out := kv.WithCapacity[V](want)
	if size < 0 {
		for range missing {
			out.Append(value)
		}
	}
	for v := range s.AllValues() {
		out.Append(v)
	}
	if size > 0 {
		for range missing {
			out.Append(value)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Zip
// ─────────────────────────────────────────────────────────────────────────────

// Opt is an optional value: Ok is false when no value is present. It
// encodes to JSON null when absent.
type Opt[V any] struct {
	Value V
	Ok    bool
}

// String renders the value, or null when absent.
func (o Opt[V]) String() string {
	if !o.Ok {
		return "null"
	}
	return fmt.Sprint(o.Value)
}

// MarshalJSON implements [json.Marshaler].
func (o Opt[V]) MarshalJSON() ([]byte, error) {
	if !o.Ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Zip groups the values of every input position by position. The result
// is as long as the longest input; shorter inputs contribute absent
// values.
//
//	Zip(kv.List(1, 2), kv.List(3)) // [[1 3] [2 null]]
func Zip[V any](seqs ...*kv.Seq[V]) *kv.Seq[*kv.Seq[Opt[V]]] {
	cursors := make([]*lazy.Cursor[V], len(seqs))
	for i, s := range seqs {
		cursors[i] = lazy.Pull(lazy.Of(s))
		defer cursors[i].Stop()
	}
	out := kv.Empty[*kv.Seq[Opt[V]]]()
	for {
		row := kv.WithCapacity[Opt[V]](len(cursors))
		more := false
		for _, c := range cursors {
			_, v, ok := c.Next()
			more = more || ok
			row.Append(Opt[V]{Value: v, Ok: ok})
		}
		if !more {
			return out
		}
		out.Append(row)
	}
}
