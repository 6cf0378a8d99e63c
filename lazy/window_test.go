package lazy_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/lazy"
)

func render[V any](groups iter.Seq[*kv.Seq[V]]) []string {
	var out []string
	for g := range groups {
		out = append(out, g.String())
	}
	return out
}

func TestChunk(t *testing.T) {
	groups, err := lazy.Chunk(lazy.Of(kv.List(1, 2, 3)), 2, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"[1 2]", "[3]"}, render(groups))

	strGroups, err := lazy.Chunk(lazy.Of(letters()), 3, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"{a:A b:B c:C}", "{d:D}"}, render(strGroups))

	groups, err = lazy.Chunk(lazy.Of(kv.Empty[int]()), 2, true)
	require.NoError(t, err)
	assert.Empty(t, render(groups))

	_, err = lazy.Chunk(lazy.Of(kv.List(1)), 0, true)
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)
}

func TestSlide(t *testing.T) {
	windows, err := lazy.Slide(lazy.Of(kv.List(1, 2, 3, 4)), 2, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"[1 2]", "[2 3]", "[3 4]"}, render(windows))

	strWindows, err := lazy.Slide(lazy.Of(letters()), 3, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"{a:A b:B c:C}", "{b:B c:C d:D}"}, render(strWindows))

	windows, err = lazy.Slide(lazy.Of(kv.List(1, 2)), 5, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"[1 2]"}, render(windows), "short input yields one short window")

	windows, err = lazy.Slide(lazy.Of(kv.Empty[int]()), 2, true)
	require.NoError(t, err)
	assert.Empty(t, render(windows))

	_, err = lazy.Slide(lazy.Of(kv.List(1)), -1, true)
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)
}

func TestSlideWindowsAreIndependent(t *testing.T) {
	windows, err := lazy.Slide(lazy.Of(kv.List(1, 2, 3)), 2, true)
	require.NoError(t, err)
	var kept []*kv.Seq[int]
	for w := range windows {
		kept = append(kept, w)
	}
	kept[0].Set(kv.IntKey(0), 100)
	assert.Equal(t, []int{2, 3}, kept[1].Values())
}

func TestFlatten(t *testing.T) {
	src := lazy.Of(kv.List[any](1, kv.List[any](2, kv.List(3, 4)), []string{"x"}, []byte("raw")))

	one, err := lazy.Flatten(src, 1)
	require.NoError(t, err)
	var got []any
	for v := range one {
		got = append(got, v)
	}
	require.Len(t, got, 5)
	assert.Equal(t, 1, got[0])
	assert.Equal(t, 2, got[1])
	assert.Equal(t, "[3 4]", got[2].(*kv.Seq[int]).String())
	assert.Equal(t, "x", got[3])
	assert.Equal(t, []byte("raw"), got[4], "byte slices are scalars")

	deep, err := lazy.Flatten(src, 10)
	require.NoError(t, err)
	got = got[:0]
	for v := range deep {
		got = append(got, v)
	}
	assert.Equal(t, []any{1, 2, 3, 4, "x", []byte("raw")}, got)

	_, err = lazy.Flatten(src, 0)
	assert.ErrorIs(t, err, kv.ErrInvalidArgument)
}

func TestCursor(t *testing.T) {
	c := lazy.Pull(lazy.Of(letters()))
	defer c.Stop()

	k, v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, kv.StrKey("a"), k)
	assert.Equal(t, "A", v)

	n := 1
	for _, _, ok := c.Next(); ok; _, _, ok = c.Next() {
		n++
	}
	assert.Equal(t, 4, n)

	_, _, ok = c.Next()
	assert.False(t, ok)
	c.Stop()
}
