package kv

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Seq is an ordered key-value sequence: a finite set of unique [Key]s, each
// mapped to a value, iterated in insertion order.
//
// A Seq whose keys are exactly 0..n-1 in order is a List; anything else is
// a Map (see [Classify]). Callers of package arr see lists and maps through
// the same type.
//
// # Creating a sequence
//
//	l := kv.List(1, 2, 3)                          // [0:1 1:2 2:3]
//	m := kv.FromPairs(kv.P("b", 0), kv.P("a", 1))  // {b:0 a:1}
//	e := kv.Empty[string]()
//
// Operations in package arr never mutate their input unless documented as
// in-place; they return new, independently owned sequences.
type Seq[V any] struct {
	keys   []Key
	values []V
	pos    map[Key]int
	next   int
}

// Pair is a single key-value entry.
type Pair[V any] struct {
	Key   Key
	Value V
}

// P builds a [Pair] from any integer- or string-shaped key.
func P[K KeyLike, V any](k K, v V) Pair[V] {
	return Pair[V]{Key: KeyOf(k), Value: v}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty returns an empty sequence.
func Empty[V any]() *Seq[V] {
	return &Seq[V]{pos: map[Key]int{}}
}

// WithCapacity returns an empty sequence with room for n entries.
func WithCapacity[V any](n int) *Seq[V] {
	return &Seq[V]{
		keys:   make([]Key, 0, n),
		values: make([]V, 0, n),
		pos:    make(map[Key]int, n),
	}
}

// List returns a list holding values under keys 0..n-1.
func List[V any](values ...V) *Seq[V] {
	return FromSlice(values)
}

// FromSlice returns a list holding a copy of values under keys 0..n-1.
func FromSlice[V any](values []V) *Seq[V] {
	s := WithCapacity[V](len(values))
	for _, v := range values {
		s.Append(v)
	}
	return s
}

// FromPairs builds a sequence from pairs in order. A repeated key
// overwrites the earlier value in place.
func FromPairs[V any](pairs ...Pair[V]) *Seq[V] {
	s := WithCapacity[V](len(pairs))
	for _, p := range pairs {
		s.Set(p.Key, p.Value)
	}
	return s
}

// FromMap builds a sequence from a Go map. Go maps are unordered, so the
// keys are sorted with [CompareKeys] to make the result deterministic.
func FromMap[K KeyLike, V any](m map[K]V) *Seq[V] {
	keys := make([]Key, 0, len(m))
	byKey := make(map[Key]V, len(m))
	for k, v := range m {
		key := KeyOf(k)
		keys = append(keys, key)
		byKey[key] = v
	}
	sort.Slice(keys, func(i, j int) bool { return CompareKeys(keys[i], keys[j]) < 0 })
	s := WithCapacity[V](len(keys))
	for _, k := range keys {
		s.Set(k, byKey[k])
	}
	return s
}

// Collect drains a key-value iterator into a new sequence. A repeated key
// overwrites the earlier value in place.
func Collect[V any](src iter.Seq2[Key, V]) *Seq[V] {
	s := Empty[V]()
	if src == nil {
		return s
	}
	for k, v := range src {
		s.Set(k, v)
	}
	return s
}

// CollectList drains a value iterator into a new list.
func CollectList[V any](src iter.Seq[V]) *Seq[V] {
	s := Empty[V]()
	if src == nil {
		return s
	}
	for v := range src {
		s.Append(v)
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries. A nil *Seq has length 0.
func (s *Seq[V]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// IsEmpty reports whether s has no entries.
func (s *Seq[V]) IsEmpty() bool { return s.Len() == 0 }

// Get returns the value stored under k.
func (s *Seq[V]) Get(k Key) (V, bool) {
	if s != nil {
		if i, ok := s.pos[k]; ok {
			return s.values[i], true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (s *Seq[V]) Has(k Key) bool {
	if s == nil {
		return false
	}
	_, ok := s.pos[k]
	return ok
}

// IndexOfKey returns the position of k, or -1.
func (s *Seq[V]) IndexOfKey(k Key) int {
	if s != nil {
		if i, ok := s.pos[k]; ok {
			return i
		}
	}
	return -1
}

// KeyAt returns the key at position i (0-based, no negative resolution).
func (s *Seq[V]) KeyAt(i int) Key { return s.keys[i] }

// ValueAt returns the value at position i (0-based, no negative resolution).
func (s *Seq[V]) ValueAt(i int) V { return s.values[i] }

// Keys returns a copy of the keys in order.
func (s *Seq[V]) Keys() []Key {
	out := make([]Key, s.Len())
	if s != nil {
		copy(out, s.keys)
	}
	return out
}

// Values returns a copy of the values in order.
func (s *Seq[V]) Values() []V {
	out := make([]V, s.Len())
	if s != nil {
		copy(out, s.values)
	}
	return out
}

// Pairs returns a copy of the entries in order.
func (s *Seq[V]) Pairs() []Pair[V] {
	out := make([]Pair[V], s.Len())
	for i := range out {
		out[i] = Pair[V]{Key: s.keys[i], Value: s.values[i]}
	}
	return out
}

// All iterates over the entries in order. Mutating s while ranging is not
// supported.
func (s *Seq[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.keys[i], s.values[i]) {
				return
			}
		}
	}
}

// AllValues iterates over the values in order.
func (s *Seq[V]) AllValues() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.values[i]) {
				return
			}
		}
	}
}

// AnyEntries iterates over the entries with values boxed as any. It lets
// code that does not know V (flattening, identity tokens, dot access)
// walk nested sequences.
func (s *Seq[V]) AnyEntries() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.keys[i], s.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent shallow copy of s.
func (s *Seq[V]) Clone() *Seq[V] {
	out := WithCapacity[V](s.Len())
	if s == nil {
		return out
	}
	out.keys = append(out.keys, s.keys...)
	out.values = append(out.values, s.values...)
	for k, i := range s.pos {
		out.pos[k] = i
	}
	out.next = s.next
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place primitives
// ─────────────────────────────────────────────────────────────────────────────

// Set stores v under k. An existing key keeps its position and has its
// value replaced; a new key is appended.
func (s *Seq[V]) Set(k Key, v V) {
	if s.pos == nil {
		s.pos = map[Key]int{}
	}
	if i, ok := s.pos[k]; ok {
		s.values[i] = v
		return
	}
	s.pos[k] = len(s.keys)
	s.keys = append(s.keys, k)
	s.values = append(s.values, v)
	if n, ok := k.Int(); ok && n >= s.next {
		s.next = n + 1
	}
}

// Append stores v under the next integer key: one more than the largest
// integer key ever stored, or 0.
func (s *Seq[V]) Append(v V) Key {
	k := IntKey(s.next)
	s.Set(k, v)
	return k
}

// Delete removes k and reports whether it was present.
func (s *Seq[V]) Delete(k Key) bool {
	i, ok := s.pos[k]
	if !ok {
		return false
	}
	s.deleteAt(i)
	return true
}

// DeleteAt removes the entry at position i and returns it.
func (s *Seq[V]) DeleteAt(i int) Pair[V] {
	p := Pair[V]{Key: s.keys[i], Value: s.values[i]}
	s.deleteAt(i)
	return p
}

// DeleteLast removes the last entry and returns it. When that entry held
// the largest integer key, the next integer key drops back to it, so a
// popped list keeps appending without a gap.
func (s *Seq[V]) DeleteLast() (Pair[V], bool) {
	if len(s.keys) == 0 {
		return Pair[V]{}, false
	}
	p := s.DeleteAt(len(s.keys) - 1)
	if n, ok := p.Key.Int(); ok && n == s.next-1 {
		s.next = n
	}
	return p, true
}

func (s *Seq[V]) deleteAt(i int) {
	delete(s.pos, s.keys[i])
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	s.values = append(s.values[:i], s.values[i+1:]...)
	for j := i; j < len(s.keys); j++ {
		s.pos[s.keys[j]] = j
	}
}

// Reset removes every entry and resets the next integer key.
func (s *Seq[V]) Reset() {
	s.keys = s.keys[:0]
	s.values = s.values[:0]
	s.pos = map[Key]int{}
	s.next = 0
}

// Reindex renumbers the keys to 0..n-1 in place, keeping the order.
func (s *Seq[V]) Reindex() {
	for i := range s.keys {
		s.keys[i] = IntKey(i)
	}
	s.pos = make(map[Key]int, len(s.keys))
	for i, k := range s.keys {
		s.pos[k] = i
	}
	s.next = len(s.keys)
}

// Put stores v under k when reindex is false, or appends it when true. It
// is the single assembly step every reindex-aware operation goes through.
func (s *Seq[V]) Put(reindex bool, k Key, v V) {
	if reindex {
		s.Append(v)
		return
	}
	s.Set(k, v)
}

// String renders the sequence as {k:v ...} for maps and [v ...] for lists.
func (s *Seq[V]) String() string {
	var b strings.Builder
	list := s.IsList()
	if list {
		b.WriteByte('[')
	} else {
		b.WriteByte('{')
	}
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if !list {
			b.WriteString(s.keys[i].String())
			b.WriteByte(':')
		}
		fmt.Fprint(&b, s.values[i])
	}
	if list {
		b.WriteByte(']')
	} else {
		b.WriteByte('}')
	}
	return b.String()
}
