package collections

import (
	"context"
	"encoding/json"
	"iter"
	"log/slog"
	"strings"

	"github.com/hasbyte1/go-seq-utils/arr"
	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/lazy"
	"github.com/hasbyte1/go-seq-utils/random"
)

// Collection is a generic, immutable-by-default wrapper around an ordered
// key-value sequence.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection can be read from multiple
// goroutines without locking.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.FromSeq(kv.FromPairs(kv.P("a", 1), kv.P("b", 2)))
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int, _ kv.Key) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(2)
//
// # Keys
//
// A collection built from a slice is a list (keys 0..n-1). Filtering a list
// renumbers it; filtering a map keeps its keys. Callbacks receive
// (value, key).
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package: [Map], [FlatMap], [Reduce], [Pluck],
// [GroupBy], [KeyBy], [Zip].
type Collection[T any] struct {
	items *kv.Seq[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a list Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: kv.FromSlice(items)}
}

// From creates a list Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return &Collection[T]{items: kv.FromSlice(items)}
}

// FromSeq creates a Collection from a sequence (the sequence is copied).
func FromSeq[T any](s *kv.Seq[T]) *Collection[T] {
	return &Collection[T]{items: s.Clone()}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: kv.Empty[T]()}
}

func wrap[T any](s *kv.Seq[T]) *Collection[T] { return &Collection[T]{items: s} }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the values as a plain Go slice.
func (c *Collection[T]) All() []T { return c.items.Values() }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Seq returns a copy of the underlying sequence.
func (c *Collection[T]) Seq() *kv.Seq[T] { return c.items.Clone() }

// ToJSON serialises the collection: a JSON array for a list, an object for
// a map.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// UnmarshalJSON implements [json.Unmarshaler]. Arrays decode to lists and
// objects to maps, keeping member order.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	s := kv.Empty[T]()
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	c.items = s
	return nil
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return c.items.Len() }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return c.items.Len() == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return c.items.Len() > 0 }

// IsList reports whether the keys are exactly 0..Count()-1.
func (c *Collection[T]) IsList() bool { return c.items.IsList() }

// Get returns the item stored under key together with a presence flag.
func (c *Collection[T]) Get(key kv.Key) (T, bool) { return c.items.Get(key) }

// At returns the item at position index; a negative index counts from the
// end.
func (c *Collection[T]) At(index int) (T, bool) { return arr.At(c.items, index) }

// Has reports whether key is present.
func (c *Collection[T]) Has(key kv.Key) bool { return c.items.Has(key) }

// Keys returns the keys of the collection in order.
func (c *Collection[T]) Keys() []kv.Key { return c.items.Keys() }

// Values returns a renumbered copy of the collection.
// Useful after [Collection.Forget] / [Collection.Pull] to reset the keys.
func (c *Collection[T]) Values() *Collection[T] { return wrap(arr.Values(c.items)) }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return c.items.String()
	}
	return string(b)
}

// MarshalJSON implements [json.Marshaler]; see [Collection.ToJSON].
func (c *Collection[T]) MarshalJSON() ([]byte, error) { return c.items.MarshalJSON() }

// AnyEntries yields every key with its value boxed, which lets nested
// collections take part in flattening and identity comparison.
func (c *Collection[T]) AnyEntries() iter.Seq2[kv.Key, any] { return c.items.AnyEntries() }

// LogValue implements [slog.LogValuer].
func (c *Collection[T]) LogValue() slog.Value { return c.items.LogValue() }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key) for every item.
func (c *Collection[T]) Each(fn func(T, kv.Key)) {
	for k, v := range c.items.All() {
		fn(v, k)
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Dump logs the collection at debug level on logger (slog.Default when
// nil) and returns c for chaining.
func (c *Collection[T]) Dump(logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, "collection dump", slog.Any("collection", c))
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// matches.
func (c *Collection[T]) First(fns ...func(T, kv.Key) bool) (T, bool) {
	return arr.First(c.items, fns...)
}

// FirstOrFail returns the first item matching fn, or an error wrapping
// [ErrNoMatchingItems] ([ErrEmptyCollection] when there are no items).
func (c *Collection[T]) FirstOrFail(fn func(T, kv.Key) bool) (T, error) {
	return arr.FirstOrFail(c.items, fn)
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T, kv.Key) bool) (T, bool) {
	return arr.Last(c.items, fns...)
}

// LastOrFail returns the last item matching fn, like [Collection.FirstOrFail].
func (c *Collection[T]) LastOrFail(fn func(T, kv.Key) bool) (T, error) {
	return arr.LastOrFail(c.items, fn)
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T, kv.Key) bool) bool {
	return arr.SatisfyAny(c.items, fn)
}

// Every reports whether every item satisfies fn.
func (c *Collection[T]) Every(fn func(T, kv.Key) bool) bool {
	return arr.SatisfyAll(c.items, fn)
}

// Search returns the key of the first item for which fn returns true.
func (c *Collection[T]) Search(fn func(T, kv.Key) bool) (kv.Key, bool) {
	return arr.FirstKey(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which
// fn(item, key) returns true.
func (c *Collection[T]) Filter(fn func(T, kv.Key) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, fn, kv.Auto))
}

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, kv.Key) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, fn, kv.Auto))
}

// Where is an alias for [Collection.Filter].
func (c *Collection[T]) Where(fn func(T, kv.Key) bool) *Collection[T] {
	return c.Filter(fn)
}

// WhereNot is an alias for [Collection.Reject].
func (c *Collection[T]) WhereNot(fn func(T, kv.Key) bool) *Collection[T] {
	return c.Reject(fn)
}

// Map returns a new Collection[any] with each item transformed by
// fn(item, key). Keys are kept.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function.
func (c *Collection[T]) Map(fn func(T, kv.Key) any) *Collection[any] {
	return Map(c, fn)
}

// Reduce reduces the collection to a single value of the same type T.
//
// For reductions that change the type, use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	return arr.Fold(c.items, initial, func(acc T, v T, _ kv.Key) T { return fn(acc, v) })
}

// Unique returns a new collection with duplicates removed, keeping the
// first of each. A nil fn compares the items themselves.
func (c *Collection[T]) Unique(fn func(T) any) *Collection[T] {
	var by func(T, kv.Key) any
	if fn != nil {
		by = func(v T, _ kv.Key) any { return fn(v) }
	}
	return wrap(arr.Unique(c.items, by, kv.Auto))
}

// Duplicates returns each item that occurs more than once, once.
func (c *Collection[T]) Duplicates() *Collection[T] {
	return wrap(arr.Duplicates(c.items, nil))
}

// Diff returns items in c whose value is not present in other.
func (c *Collection[T]) Diff(other *Collection[T]) *Collection[T] {
	return wrap(arr.Diff(c.items, other.items, nil, kv.Auto))
}

// Intersect returns items of c whose value is also present in other.
func (c *Collection[T]) Intersect(other *Collection[T]) *Collection[T] {
	return wrap(arr.Intersect(c.items, other.items, nil, kv.Auto))
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return wrap(arr.Reverse(c.items, kv.Auto))
}

// Sort returns a new collection sorted by the three-way comparator cmp.
// The sort is stable: equal elements preserve their original order.
func (c *Collection[T]) Sort(cmp func(a, b T) int) *Collection[T] {
	return wrap(arr.SortWith(c.items, cmp, kv.Auto))
}

// SortBy returns a new collection sorted in ascending order by the float64
// value returned by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return wrap(arr.Sort(c.items, func(v T, _ kv.Key) float64 { return fn(v) }, arr.Ascending, kv.Auto))
}

// SortByDesc returns a new collection sorted in descending order by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return wrap(arr.Sort(c.items, func(v T, _ kv.Key) float64 { return fn(v) }, arr.Descending, kv.Auto))
}

// SortKeys returns a new collection ordered by key.
func (c *Collection[T]) SortKeys() *Collection[T] { return wrap(arr.SortByKeyAsc(c.items)) }

// SortKeysDesc returns a new collection ordered by key, largest first.
func (c *Collection[T]) SortKeysDesc() *Collection[T] { return wrap(arr.SortByKeyDesc(c.items)) }

// Shuffle returns a new collection with items in a random order. A nil r
// uses [random.Default].
func (c *Collection[T]) Shuffle(r random.Randomizer) *Collection[T] {
	return wrap(arr.Shuffle(c.items, r, kv.Auto))
}

// Random returns n distinct items picked at random, in random order. It
// fails with [kv.ErrInvalidArgument] when n exceeds Count().
func (c *Collection[T]) Random(n int, r random.Randomizer) (*Collection[T], error) {
	s, err := arr.SampleMany(c.items, n, false, r)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// Rotate moves the first n items to the end; negative n moves the last
// |n| items to the front.
func (c *Collection[T]) Rotate(n int) *Collection[T] {
	return wrap(arr.Rotate(c.items, n, kv.Auto))
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return wrap(arr.Append(c.items, items...))
}

// Append is an alias for [Collection.Push].
func (c *Collection[T]) Append(items ...T) *Collection[T] { return c.Push(items...) }

// Prepend returns a new list collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	return wrap(arr.Prepend(c.items, items...))
}

// Put returns a new collection with value stored under key.
func (c *Collection[T]) Put(key kv.Key, value T) *Collection[T] {
	out := c.items.Clone()
	arr.Set(out, key, value)
	return wrap(out)
}

// InsertAt returns a new collection with items inserted before position
// index (see [arr.InsertAt] for the index convention).
func (c *Collection[T]) InsertAt(index int, items ...T) (*Collection[T], error) {
	out := c.items.Clone()
	if err := arr.InsertAt(out, index, kv.FromSlice(items), false); err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// Pop removes and returns the last item together with the remaining collection.
// Returns the zero value, c, and false if the collection is empty.
func (c *Collection[T]) Pop() (T, *Collection[T], bool) {
	out := c.items.Clone()
	v, ok := arr.Pop(out)
	if !ok {
		return v, c, false
	}
	return v, wrap(out), true
}

// Shift removes and returns the first item together with the remaining
// collection. Returns the zero value, c, and false if the collection is empty.
func (c *Collection[T]) Shift() (T, *Collection[T], bool) {
	out := c.items.Clone()
	v, ok := arr.Shift(out)
	if !ok {
		return v, c, false
	}
	return v, wrap(out), true
}

// Pull removes and returns the item under key together with the remaining
// collection. Returns the zero value, c, and false if key is absent.
func (c *Collection[T]) Pull(key kv.Key) (T, *Collection[T], bool) {
	out := c.items.Clone()
	v, ok := arr.Pull(out, key)
	if !ok {
		return v, c, false
	}
	return v, wrap(out), true
}

// Forget returns a new collection with the item under key removed.
// Keys are not renumbered; use [Collection.Values] for that.
func (c *Collection[T]) Forget(key kv.Key) *Collection[T] {
	out := c.items.Clone()
	out.Delete(key)
	return wrap(out)
}

// Concat returns a new list collection with the values of other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return wrap(arr.Concat(c.items, other.items))
}

// Merge combines c and other: lists are concatenated, maps merged with
// other winning. Mixing a list and a map fails with [kv.ErrTypeMismatch].
func (c *Collection[T]) Merge(other *Collection[T]) (*Collection[T], error) {
	s, err := arr.Merge(c.items, other.items)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		s, _ := arr.TakeLast(c.items, -n, kv.Auto)
		return wrap(s)
	}
	s, _ := arr.TakeFirst(c.items, n, kv.Auto)
	return wrap(s)
}

// TakeUntil returns items from the start until fn returns true (exclusive).
func (c *Collection[T]) TakeUntil(fn func(T, kv.Key) bool) *Collection[T] {
	return wrap(arr.TakeUntil(c.items, fn, kv.Auto))
}

// TakeWhile returns items from the start while fn returns true.
func (c *Collection[T]) TakeWhile(fn func(T, kv.Key) bool) *Collection[T] {
	return wrap(arr.TakeWhile(c.items, fn, kv.Auto))
}

// Skip returns a new collection skipping the first n items.
// A negative n skips items counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n < 0 {
		s, _ := arr.DropLast(c.items, -n, kv.Auto)
		return wrap(s)
	}
	s, _ := arr.DropFirst(c.items, n, kv.Auto)
	return wrap(s)
}

// SkipUntil skips items until fn returns true, then returns the rest.
func (c *Collection[T]) SkipUntil(fn func(T, kv.Key) bool) *Collection[T] {
	return wrap(arr.DropUntil(c.items, fn, kv.Auto))
}

// SkipWhile skips items while fn returns true, then returns the rest.
func (c *Collection[T]) SkipWhile(fn func(T, kv.Key) bool) *Collection[T] {
	return wrap(arr.DropWhile(c.items, fn, kv.Auto))
}

// Slice returns up to length items starting at offset. Negative values
// count from the end; [lazy.Rest] means "through the end".
func (c *Collection[T]) Slice(offset, length int) *Collection[T] {
	return wrap(arr.Slice(c.items, offset, length, kv.Auto))
}

// ForPage returns page (1-based) of size perPage.
func (c *Collection[T]) ForPage(page, perPage int) *Collection[T] {
	if page < 1 || perPage < 1 {
		return Empty[T]()
	}
	return c.Slice((page-1)*perPage, perPage)
}

// Nth returns every nth item, starting with the first. n must be at least 1.
func (c *Collection[T]) Nth(n int) (*Collection[T], error) {
	s, err := arr.TakeEvery(c.items, n, kv.Auto)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// Chunk splits the collection into consecutive groups of size.
// The last group may contain fewer than size items. A size below 1 fails
// with [ErrInvalidChunkSize].
func (c *Collection[T]) Chunk(size int) ([]*Collection[T], error) {
	chunks, err := arr.Chunk(c.items, size, kv.Auto)
	if err != nil {
		return nil, err
	}
	return unwrapGroups(chunks), nil
}

// Sliding returns every window of size consecutive items.
func (c *Collection[T]) Sliding(size int) ([]*Collection[T], error) {
	windows, err := arr.Slide(c.items, size, kv.Auto)
	if err != nil {
		return nil, err
	}
	return unwrapGroups(windows), nil
}

// Split divides the collection into at most parts groups of equal size
// (the last one may be shorter).
func (c *Collection[T]) Split(parts int) ([]*Collection[T], error) {
	groups, err := arr.SplitEvenly(c.items, parts, kv.Auto)
	if err != nil {
		return nil, err
	}
	return unwrapGroups(groups), nil
}

func unwrapGroups[T any](groups *kv.Seq[*kv.Seq[T]]) []*Collection[T] {
	out := make([]*Collection[T], 0, groups.Len())
	for g := range groups.AllValues() {
		out = append(out, wrap(g))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of fn over the items. A NaN fails with
// [kv.ErrInvalidElement].
func (c *Collection[T]) Sum(fn func(T) float64) (float64, error) {
	return arr.SumBy(c.items, func(v T, _ kv.Key) float64 { return fn(v) })
}

// Average returns the mean of fn over the items. An empty collection
// yields 0.
func (c *Collection[T]) Average(fn func(T) float64) (float64, error) {
	vals := arr.Map(c.items, func(v T, _ kv.Key) float64 { return fn(v) })
	return arr.AverageOr(vals, 0)
}

// Min returns the item with the smallest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Min(fn func(T) float64) (T, bool) {
	return arr.MinBy(c.items, func(v T, _ kv.Key) float64 { return fn(v) })
}

// Max returns the item with the largest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Max(fn func(T) float64) (T, bool) {
	return arr.MaxBy(c.items, func(v T, _ kv.Key) float64 { return fn(v) })
}

// CountBy counts items per string returned by fn.
func (c *Collection[T]) CountBy(fn func(T) string) *kv.Seq[int] {
	return arr.CountBy(c.items, func(v T, _ kv.Key) string { return fn(v) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the collection into items satisfying fn and the rest.
func (c *Collection[T]) Partition(fn func(T, kv.Key) bool) (*Collection[T], *Collection[T]) {
	pass, fail := arr.Partition(c.items, fn, kv.Auto)
	return wrap(pass), wrap(fail)
}

// Implode joins fn(item) for every item with sep.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, 0, c.items.Len())
	for v := range c.items.AllValues() {
		parts = append(parts, fn(v))
	}
	return strings.Join(parts, sep)
}

// Join renders the items with fmt.Sprint, separated by glue.
func (c *Collection[T]) Join(glue string) string {
	return arr.Join(c.items, glue, "", "")
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional
// ─────────────────────────────────────────────────────────────────────────────

// When applies fn when condition is true, otherwise returns c.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless applies fn when condition is false.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}

// WhenEmpty applies fn when the collection is empty.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty applies fn when the collection has items.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy access
// ─────────────────────────────────────────────────────────────────────────────

// Lazy returns a single-pass iterator over the items, for use with the
// steps in package lazy.
func (c *Collection[T]) Lazy() lazy.Source[T] { return lazy.Of(c.items.Clone()) }
