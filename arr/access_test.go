package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seq-utils/arr"
	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─── Positional & keyed access ───────────────────────────────────────────────

func TestAt(t *testing.T) {
	s := kv.List(10, 20, 30)

	v, ok := arr.At(s, 0)
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = arr.At(s, -1)
	assert.True(t, ok)
	assert.Equal(t, 30, v)

	_, ok = arr.At(s, 3)
	assert.False(t, ok)
	_, ok = arr.At(s, -4)
	assert.False(t, ok)

	assert.Equal(t, 99, arr.AtOr(s, 5, 99))

	_, err := arr.AtOrFail(s, 7)
	assert.ErrorIs(t, err, kv.ErrIndexOutOfBounds)

	k, ok := arr.KeyAt(users(), -2)
	assert.True(t, ok)
	assert.Equal(t, kv.StrKey("cyd"), k)
}

func TestAtStoredZeroIsPresent(t *testing.T) {
	v, ok := arr.At(kv.List(0), 0)
	assert.True(t, ok, "a stored zero value is not absence")
	assert.Equal(t, 0, v)
}

func TestGet(t *testing.T) {
	v, ok := arr.Get(users(), kv.StrKey("bob"))
	assert.True(t, ok)
	assert.Equal(t, 17, v)

	assert.Equal(t, -1, arr.GetOr(users(), kv.StrKey("eve"), -1))

	_, err := arr.GetOrFail(users(), kv.StrKey("eve"))
	assert.ErrorIs(t, err, kv.ErrMissingKey)
}

// ─── First / Last ────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	v, ok := arr.First(kv.List(10, 20, 30))
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = arr.First(kv.List(1, 2, 3, 4), func(n int, _ kv.Key) bool { return n > 2 })
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = arr.First(kv.Empty[int]())
	assert.False(t, ok)

	assert.Equal(t, -1, arr.FirstOr(kv.List(1, 3), -1, isEven))
}

func TestFirstOrFailErrors(t *testing.T) {
	_, err := arr.FirstOrFail(kv.Empty[int]())
	assert.ErrorIs(t, err, kv.ErrEmptyNotAllowed)

	_, err = arr.FirstOrFail(kv.Empty[int](), isEven)
	assert.ErrorIs(t, err, kv.ErrEmptyNotAllowed)

	_, err = arr.FirstOrFail(kv.List(1, 3), isEven)
	assert.ErrorIs(t, err, kv.ErrNoMatchFound)

	_, err = arr.LastOrFail(kv.List(1, 3), isEven)
	assert.ErrorIs(t, err, kv.ErrNoMatchFound)
}

func TestFirstAndLastKey(t *testing.T) {
	k, ok := arr.FirstKey(users(), func(age int, _ kv.Key) bool { return age < 18 })
	assert.True(t, ok)
	assert.Equal(t, kv.StrKey("bob"), k)

	k, ok = arr.LastKey(users(), func(age int, _ kv.Key) bool { return age < 18 })
	assert.True(t, ok)
	assert.Equal(t, kv.StrKey("dan"), k)

	v, ok := arr.Last(kv.List(1, 2, 3, 4), func(n int, _ kv.Key) bool { return n < 3 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 4, arr.LastOr(kv.List(1, 2, 3, 4), 0))
}

// ─── Index search ────────────────────────────────────────────────────────────

func TestIndexSearch(t *testing.T) {
	s := kv.List(5, 7, 5, 9)

	i, ok := arr.FirstIndex(s, func(n int, _ kv.Key) bool { return n > 5 })
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = arr.LastIndex(s, func(n int, _ kv.Key) bool { return n == 5 })
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = arr.IndexOf(s, 9)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = arr.LastIndexOf(s, 5)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = arr.IndexOf(s, 100)
	assert.False(t, ok)
	assert.Equal(t, -1, i)

	k, ok := arr.Search(users(), 45)
	assert.True(t, ok)
	assert.Equal(t, kv.StrKey("cyd"), k)
}

func TestSearchIsStrict(t *testing.T) {
	s := kv.List[any](1, "1", true)
	i, ok := arr.IndexOf[any](s, true)
	assert.True(t, ok)
	assert.Equal(t, 2, i, "true does not match 1")

	_, ok = arr.IndexOf[any](s, 1.0)
	assert.False(t, ok)
}

// ─── Single / Coalesce ───────────────────────────────────────────────────────

func TestSingle(t *testing.T) {
	v, err := arr.Single(kv.List(1, 2, 3), isEven)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = arr.Single(kv.List(1, 2, 3))
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)

	_, err = arr.Single(kv.List(1, 3), isEven)
	assert.ErrorIs(t, err, kv.ErrNoMatchFound)

	_, err = arr.Single(kv.Empty[int]())
	assert.ErrorIs(t, err, kv.ErrEmptyNotAllowed)
}

func TestCoalesce(t *testing.T) {
	x := 3
	v, ok := arr.Coalesce(kv.List[*int](nil, &x, nil))
	assert.True(t, ok)
	assert.Same(t, &x, v)

	_, err := arr.CoalesceOrFail(kv.List[any](nil, nil))
	assert.ErrorIs(t, err, kv.ErrNoMatchFound)

	_, err = arr.CoalesceOrFail(kv.Empty[any]())
	assert.ErrorIs(t, err, kv.ErrEmptyNotAllowed)
}
