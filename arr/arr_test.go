package arr_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seq-utils/arr"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─── Map / FlatMap / Flatten ─────────────────────────────────────────────────

func TestMapKeepsKeys(t *testing.T) {
	out := arr.Map(users(), func(age int, k kv.Key) string { return k.String() + "=" + strconv.Itoa(age) })
	assert.Equal(t, users().Keys(), out.Keys())
	assert.Equal(t, "ann=31", out.ValueAt(0))
}

func TestMapWithKey(t *testing.T) {
	out := arr.MapWithKey(kv.List("a", "b"), func(v string, k kv.Key) kv.Pair[int] {
		n, _ := k.Int()
		return kv.P(v, n)
	})
	assert.Equal(t, "{a:0 b:1}", out.String())
}

func TestFlatMap(t *testing.T) {
	out := arr.FlatMap(users(), func(age int, _ kv.Key) []int { return []int{age, -age} })
	assert.True(t, out.IsList())
	assert.Equal(t, []int{31, -31, 17, -17, 45, -45, 17, -17}, out.Values())
}

func TestFlatten(t *testing.T) {
	nested := kv.List[any](1, kv.List[any](2, kv.List[any](3)))

	one, err := arr.Flatten(nested, 1)
	require.NoError(t, err)
	assert.Equal(t, "[1 2 [3]]", one.String())

	all, err := arr.Flatten(nested, 100)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, all.Values())

	_, err = arr.Flatten(nested, 0)
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)
}

// ─── Filter family ───────────────────────────────────────────────────────────

func TestFilterReindexPolicy(t *testing.T) {
	list := kv.List(1, 2, 3, 4)

	auto := arr.Filter(list, isEven, kv.Auto)
	assert.Equal(t, intKeys(0, 1), auto.Keys(), "list input is renumbered")

	kept := arr.Filter(list, isEven, kv.PreserveKeys)
	assert.Equal(t, intKeys(1, 3), kept.Keys())

	m := arr.Filter(users(), func(age int, _ kv.Key) bool { return age > 18 }, kv.Auto)
	assert.Equal(t, strKeys("ann", "cyd"), m.Keys(), "map input keeps keys")

	forced := arr.Filter(users(), func(age int, _ kv.Key) bool { return age > 18 }, kv.ForceList)
	assert.True(t, forced.IsList())
}

func TestRejectCompactWithout(t *testing.T) {
	assert.Equal(t, []int{1, 3}, arr.Reject(kv.List(1, 2, 3, 4), isEven, kv.Auto).Values())

	compact := arr.Compact(kv.List[any](1, nil, "x", nil), kv.Auto)
	assert.Equal(t, []any{1, "x"}, compact.Values())

	without := arr.Without(kv.List[any](1, true, "1", 1), kv.Auto, 1)
	assert.Equal(t, []any{true, "1"}, without.Values())
}

// ─── Folding ─────────────────────────────────────────────────────────────────

func TestFoldReduceEach(t *testing.T) {
	joined := arr.Fold(users(), "", func(acc string, _ int, k kv.Key) string { return acc + k.String() })
	assert.Equal(t, "annbobcyddan", joined)

	total, err := arr.Reduce(kv.List(1, 2, 3), func(acc, n int, _ kv.Key) int { return acc + n })
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	_, err = arr.Reduce(kv.Empty[int](), func(acc, n int, _ kv.Key) int { return acc + n })
	assert.ErrorIs(t, err, kv.ErrEmptyNotAllowed)

	var seen []int
	arr.Each(kv.List(1, 2, 3), func(n int, _ kv.Key) bool {
		seen = append(seen, n)
		return n < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}

// ─── Keys / values ───────────────────────────────────────────────────────────

func TestKeysValuesFlipCombine(t *testing.T) {
	assert.Equal(t, strKeys("ann", "bob", "cyd", "dan"), arr.Keys(users()).Values())
	assert.Equal(t, []int{31, 17, 45, 17}, arr.Values(users()).Values())

	flipped, err := arr.Flip(kv.FromPairs(kv.P("a", "x"), kv.P("b", "y")))
	require.NoError(t, err)
	assert.Equal(t, "{x:a y:b}", flipped.String())

	_, err = arr.Flip(kv.List(1.5))
	assert.ErrorIs(t, err, kv.ErrInvalidKey)

	combined, err := arr.Combine(strKeys("a", "b"), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "{a:1 b:2}", combined.String())

	_, err = arr.Combine(strKeys("a"), []int{1, 2})
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)
}

// ─── Combining ───────────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	assert.Equal(t, "[3 2 1]", arr.Reverse(kv.List(1, 2, 3), kv.Auto).String())
	assert.Equal(t, "{dan:17 cyd:45 bob:17 ann:31}", arr.Reverse(users(), kv.Auto).String())
	assert.Equal(t, intKeys(2, 1, 0), arr.Reverse(kv.List(1, 2, 3), kv.PreserveKeys).Keys())
}

func TestPrependAppendConcat(t *testing.T) {
	assert.Equal(t, "[0 1 2]", arr.Prepend(kv.List(1, 2), 0).String())
	assert.Equal(t, "[1 2 3]", arr.Append(kv.List(1, 2), 3).String())
	assert.Equal(t, "[1 2 3 31]", arr.Concat(kv.List(1, 2), kv.List(3), kv.FromPairs(kv.P("ann", 31))).String())

	src := kv.List(1)
	arr.Append(src, 2)
	assert.Equal(t, 1, src.Len(), "input untouched")
}

func TestMerge(t *testing.T) {
	lists, err := arr.Merge(kv.List(1, 2), kv.Empty[int](), kv.List(3))
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3]", lists.String())

	maps, err := arr.Merge(kv.FromPairs(kv.P("a", 1), kv.P("b", 2)), kv.FromPairs(kv.P("b", 20), kv.P("c", 3)))
	require.NoError(t, err)
	assert.Equal(t, "{a:1 b:20 c:3}", maps.String())

	_, err = arr.Merge(kv.List(1), kv.FromPairs(kv.P("a", 1)))
	assert.ErrorIs(t, err, kv.ErrTypeMismatch)
}

func TestMergeRecursive(t *testing.T) {
	a := kv.FromPairs(
		kv.P("db", any(kv.FromPairs(kv.P("host", any("localhost")), kv.P("port", any(5432))))),
		kv.P("tags", any(kv.List[any]("a"))),
	)
	b := kv.FromPairs(
		kv.P("db", any(kv.FromPairs(kv.P("port", any(6432))))),
		kv.P("tags", any(kv.List[any]("b"))),
	)
	out, err := arr.MergeRecursive(a, b)
	require.NoError(t, err)
	assert.Equal(t, "{db:{host:localhost port:6432} tags:[a b]}", out.String())
}

func TestWithDefaultsReplace(t *testing.T) {
	s := kv.FromPairs(kv.P("a", 1))
	defaults := kv.FromPairs(kv.P("a", 0), kv.P("b", 0))
	assert.Equal(t, "{a:1 b:0}", arr.WithDefaults(s, defaults).String())

	replaced := arr.Replace(kv.List(1, 2, 3), kv.FromPairs(kv.P(1, 20), kv.P(5, 50)))
	assert.Equal(t, "{0:1 1:20 2:3 5:50}", replaced.String())
}

func TestRepeatWrap(t *testing.T) {
	r, err := arr.Repeat(kv.FromPairs(kv.P("a", 1), kv.P("b", 2)), 2)
	require.NoError(t, err)
	assert.Equal(t, "[1 2 1 2]", r.String())

	_, err = arr.Repeat(kv.List(1), -1)
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)

	assert.Equal(t, "[x]", arr.Wrap("x").String())
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	for _, s := range []*kv.Seq[int]{kv.List(1, 2, 3), users(), kv.Empty[int]()} {
		twice := arr.Reverse(arr.Reverse(s, kv.Auto), kv.Auto)
		assert.Equal(t, s.String(), twice.String())
		assert.Equal(t, s.Keys(), twice.Keys())
	}
}
