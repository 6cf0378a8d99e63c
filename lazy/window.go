package lazy

import (
	"iter"
	"reflect"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Chunk groups src into sequences of up to size pairs; the last group may
// be smaller. Each group is an independent sequence, renumbered from 0 when
// reindex is true.
func Chunk[V any](src Source[V], size int, reindex bool) (iter.Seq[*kv.Seq[V]], error) {
	if size < 1 {
		return nil, kv.NewError("Chunk", kv.ErrInvalidArgument, "size", size)
	}
	return func(yield func(*kv.Seq[V]) bool) {
		group := kv.WithCapacity[V](size)
		for k, v := range src {
			group.Put(reindex, k, v)
			if group.Len() == size {
				if !yield(group) {
					return
				}
				group = kv.WithCapacity[V](size)
			}
		}
		if group.Len() > 0 {
			yield(group)
		}
	}, nil
}

// Slide yields every window of size consecutive pairs, advancing one pair
// at a time. When src holds fewer than size pairs, a single short window
// with all of them is yielded; an empty src yields nothing.
//
// The last size pairs are kept in a ring buffer, so advancing is O(1); each
// yielded window is still a fresh, independently owned sequence.
func Slide[V any](src Source[V], size int, reindex bool) (iter.Seq[*kv.Seq[V]], error) {
	if size < 1 {
		return nil, kv.NewError("Slide", kv.ErrInvalidArgument, "size", size)
	}
	return func(yield func(*kv.Seq[V]) bool) {
		ring := make([]kv.Pair[V], size)
		head, filled := 0, 0
		emitted := false
		window := func() *kv.Seq[V] {
			w := kv.WithCapacity[V](filled)
			for i := 0; i < filled; i++ {
				p := ring[(head+i)%size]
				w.Put(reindex, p.Key, p.Value)
			}
			return w
		}
		for k, v := range src {
			ring[(head+filled)%size] = kv.Pair[V]{Key: k, Value: v}
			filled++
			if filled < size {
				continue
			}
			emitted = true
			if !yield(window()) {
				return
			}
			head = (head + 1) % size
			filled--
		}
		if !emitted && filled > 0 {
			yield(window())
		}
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Flatten
// ─────────────────────────────────────────────────────────────────────────────

// nested is implemented by every *kv.Seq instantiation.
type nested interface {
	AnyEntries() iter.Seq2[kv.Key, any]
}

// Flatten yields the values of src, descending depth levels into nested
// sequences and slices. Structural keys are discarded: the output is a
// plain value stream. depth must be at least 1.
func Flatten[V any](src Source[V], depth int) (iter.Seq[any], error) {
	if depth < 1 {
		return nil, kv.NewError("Flatten", kv.ErrInvalidArgument, "depth", depth)
	}
	return func(yield func(any) bool) {
		for _, v := range src {
			if !flattenInto(v, depth, yield) {
				return
			}
		}
	}, nil
}

// flattenInto yields v, or its children when v is a container and depth
// allows descending. It returns false once yield asks to stop.
func flattenInto(v any, depth int, yield func(any) bool) bool {
	if depth > 0 {
		if children, ok := childrenOf(v); ok {
			for c := range children {
				if !flattenInto(c, depth-1, yield) {
					return false
				}
			}
			return true
		}
	}
	return yield(v)
}

func childrenOf(v any) (iter.Seq[any], bool) {
	if n, ok := v.(nested); ok {
		return func(yield func(any) bool) {
			for _, c := range n.AnyEntries() {
				if !yield(c) {
					return
				}
			}
		}, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	return func(yield func(any) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Pull-based consumption
// ─────────────────────────────────────────────────────────────────────────────

// Cursor consumes a Source one pair at a time. It must be stopped when the
// caller is done with it, typically with defer.
//
//	c := lazy.Pull(src)
//	defer c.Stop()
//	for k, v, ok := c.Next(); ok; k, v, ok = c.Next() {
//	    ...
//	}
type Cursor[V any] struct {
	next func() (kv.Key, V, bool)
	stop func()
}

// Pull returns a Cursor positioned before the first pair of src.
func Pull[V any](src Source[V]) *Cursor[V] {
	next, stop := iter.Pull2(src)
	return &Cursor[V]{next: next, stop: stop}
}

// Next returns the next pair, or ok == false once src is exhausted.
func (c *Cursor[V]) Next() (k kv.Key, v V, ok bool) {
	return c.next()
}

// Stop releases the underlying iterator. Calling Stop more than once is
// allowed.
func (c *Cursor[V]) Stop() { c.stop() }
