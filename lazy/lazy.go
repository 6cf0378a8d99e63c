package lazy

import (
	"iter"
	"math"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Source is the minimal input every transformer accepts: something that
// can be walked front to back producing key-value pairs.
type Source[V any] = iter.Seq2[kv.Key, V]

// Of adapts a sequence into a Source. A nil sequence yields nothing.
func Of[V any](s *kv.Seq[V]) Source[V] {
	return s.All()
}

// Values adapts a value iterator into a list-keyed Source.
func Values[V any](src iter.Seq[V]) Source[V] {
	return func(yield func(kv.Key, V) bool) {
		i := 0
		for v := range src {
			if !yield(kv.IntKey(i), v) {
				return
			}
			i++
		}
	}
}

// renumber hands out output keys: the original key, or the next integer
// when reindexing.
type renumber struct {
	reindex bool
	n       int
}

func (r *renumber) key(k kv.Key) kv.Key {
	if !r.reindex {
		return k
	}
	out := kv.IntKey(r.n)
	r.n++
	return out
}

// Count drains src and returns how many pairs it produced.
func Count[V any](src Source[V]) int {
	n := 0
	for range src {
		n++
	}
	return n
}

// Reindexed renumbers the keys of src to 0, 1, 2...
func Reindexed[V any](src Source[V]) Source[V] {
	return func(yield func(kv.Key, V) bool) {
		r := renumber{reindex: true}
		for k, v := range src {
			if !yield(r.key(k), v) {
				return
			}
		}
	}
}

// Keys yields the keys of src.
func Keys[V any](src Source[V]) iter.Seq[kv.Key] {
	return func(yield func(kv.Key) bool) {
		for k := range src {
			if !yield(k) {
				return
			}
		}
	}
}

// ValuesOf yields the values of src.
func ValuesOf[V any](src Source[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range src {
			if !yield(v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Rest is the slice length meaning "through the end".
const Rest = math.MaxInt

// Slice skips offset pairs and yields at most length pairs after them.
//
// A negative offset counts from the end; a negative length stops that many
// pairs before the end. Either one forces a single full pass over src to
// count it (the pairs are buffered, so src is still walked only once).
// Offsets past the end yield nothing.
func Slice[V any](src Source[V], offset, length int, reindex bool) Source[V] {
	return func(yield func(kv.Key, V) bool) {
		in, off, n := src, offset, length
		if off < 0 || n < 0 {
			buf := kv.Collect(in)
			in = buf.All()
			count := buf.Len()
			if off < 0 {
				off = max(0, count+off)
			}
			if n < 0 {
				n = max(0, count+n-off)
			}
		}
		if n == 0 {
			return
		}
		end := off + n
		if end < off {
			end = math.MaxInt
		}
		r := renumber{reindex: reindex}
		i := 0
		for k, v := range in {
			if i >= end {
				return
			}
			if i >= off {
				if !yield(r.key(k), v) {
					return
				}
			}
			i++
		}
	}
}

// TakeEvery yields every nth pair, starting with the first.
func TakeEvery[V any](src Source[V], nth int, reindex bool) (Source[V], error) {
	if nth < 1 {
		return nil, kv.NewError("TakeEvery", kv.ErrInvalidArgument, "nth", nth)
	}
	return func(yield func(kv.Key, V) bool) {
		r := renumber{reindex: reindex}
		i := 0
		for k, v := range src {
			if i%nth == 0 {
				if !yield(r.key(k), v) {
					return
				}
			}
			i++
		}
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & mapping
// ─────────────────────────────────────────────────────────────────────────────

// Filter yields the pairs for which fn returns true.
func Filter[V any](src Source[V], fn func(V, kv.Key) bool, reindex bool) Source[V] {
	return func(yield func(kv.Key, V) bool) {
		r := renumber{reindex: reindex}
		for k, v := range src {
			if fn(v, k) && !yield(r.key(k), v) {
				return
			}
		}
	}
}

// Map yields fn(value, key) under the original key.
func Map[V, U any](src Source[V], fn func(V, kv.Key) U) Source[U] {
	return func(yield func(kv.Key, U) bool) {
		for k, v := range src {
			if !yield(k, fn(v, k)) {
				return
			}
		}
	}
}

// FlatMap yields every value produced by fn, renumbered from 0.
func FlatMap[V, U any](src Source[V], fn func(V, kv.Key) iter.Seq[U]) Source[U] {
	return func(yield func(kv.Key, U) bool) {
		i := 0
		for k, v := range src {
			for u := range fn(v, k) {
				if !yield(kv.IntKey(i), u) {
					return
				}
				i++
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional take / drop
// ─────────────────────────────────────────────────────────────────────────────

// The four variants below scan once and call fn at most once per pair.
// "While" stops (or starts) the moment fn returns false; "Until" the moment
// fn returns true.

// TakeWhile yields pairs until fn first returns false.
func TakeWhile[V any](src Source[V], fn func(V, kv.Key) bool, reindex bool) Source[V] {
	return takeFor(src, fn, true, reindex)
}

// TakeUntil yields pairs until fn first returns true.
func TakeUntil[V any](src Source[V], fn func(V, kv.Key) bool, reindex bool) Source[V] {
	return takeFor(src, fn, false, reindex)
}

// DropWhile skips pairs until fn first returns false, then yields the rest.
func DropWhile[V any](src Source[V], fn func(V, kv.Key) bool, reindex bool) Source[V] {
	return dropFor(src, fn, true, reindex)
}

// DropUntil skips pairs until fn first returns true, then yields the rest.
func DropUntil[V any](src Source[V], fn func(V, kv.Key) bool, reindex bool) Source[V] {
	return dropFor(src, fn, false, reindex)
}

func takeFor[V any](src Source[V], fn func(V, kv.Key) bool, continueOn, reindex bool) Source[V] {
	return func(yield func(kv.Key, V) bool) {
		r := renumber{reindex: reindex}
		for k, v := range src {
			if fn(v, k) != continueOn {
				return
			}
			if !yield(r.key(k), v) {
				return
			}
		}
	}
}

func dropFor[V any](src Source[V], fn func(V, kv.Key) bool, skipOn, reindex bool) Source[V] {
	return func(yield func(kv.Key, V) bool) {
		r := renumber{reindex: reindex}
		dropping := true
		for k, v := range src {
			if dropping {
				if fn(v, k) == skipOn {
					continue
				}
				dropping = false
			}
			if !yield(r.key(k), v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Generators
// ─────────────────────────────────────────────────────────────────────────────

// Range yields start, start+step, ... stopping before end. A negative step
// counts down. A zero step fails with [kv.ErrInvalidArgument].
func Range(start, end, step int) (iter.Seq[int], error) {
	if step == 0 {
		return nil, kv.NewError("Range", kv.ErrInvalidArgument, "step", step)
	}
	return func(yield func(int) bool) {
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}, nil
}

// Repeat yields the pairs of src times times, renumbered from 0.
func Repeat[V any](src Source[V], times int) (Source[V], error) {
	if times < 0 {
		return nil, kv.NewError("Repeat", kv.ErrInvalidArgument, "times", times)
	}
	return func(yield func(kv.Key, V) bool) {
		i := 0
		for range times {
			for _, v := range src {
				if !yield(kv.IntKey(i), v) {
					return
				}
				i++
			}
		}
	}, nil
}
