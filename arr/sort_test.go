package arr_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-seq-utils/arr"
	"github.com/hasbyte1/go-seq-utils/kv"
)

func TestSortAscDesc(t *testing.T) {
	s := kv.List(3, 1, 2)
	assert.Equal(t, "[1 2 3]", arr.SortAsc(s, kv.Auto).String())
	assert.Equal(t, "[3 2 1]", arr.SortDesc(s, kv.Auto).String())
	assert.Equal(t, intKeys(1, 2, 0), arr.SortAsc(s, kv.PreserveKeys).Keys())
	assert.Equal(t, "[3 1 2]", s.String(), "input untouched")

	assert.Equal(t, "{bob:17 dan:17 ann:31 cyd:45}", arr.SortAsc(users(), kv.Auto).String())
}

func TestSortIsStable(t *testing.T) {
	byAgeDesc := arr.Sort(users(), func(age int, _ kv.Key) int { return age }, arr.Descending, kv.Auto)
	assert.Equal(t, strKeys("cyd", "ann", "bob", "dan"), byAgeDesc.Keys(), "bob stays before dan")
}

func TestSortByProxy(t *testing.T) {
	words := kv.List("ccc", "a", "bb")
	byLen := arr.Sort(words, func(s string, _ kv.Key) int { return len(s) }, arr.Ascending, kv.Auto)
	assert.Equal(t, "[a bb ccc]", byLen.String())
}

func TestSortWith(t *testing.T) {
	desc := arr.SortWith(kv.List(1, 3, 2), func(a, b int) int { return cmp.Compare(b, a) }, kv.Auto)
	assert.Equal(t, "[3 2 1]", desc.String())

	mixed := arr.SortWith(kv.List[any]("b", 2, nil, true, 1.5, "a"), nil, kv.Auto)
	assert.Equal(t, []any{nil, true, 1.5, 2, "a", "b"}, mixed.Values())
}

func TestSortByKey(t *testing.T) {
	s := kv.FromPairs(kv.P("b", 1), kv.P(2, 2), kv.P("a", 3), kv.P(0, 4))
	assert.Equal(t, "{0:4 2:2 a:3 b:1}", arr.SortByKeyAsc(s).String())
	assert.Equal(t, "{b:1 a:3 2:2 0:4}", arr.SortByKeyDesc(s).String())

	same := arr.SortWithKey(s, nil)
	assert.Equal(t, arr.SortByKeyAsc(s).Keys(), same.Keys())

	l := arr.SortByKeyAsc(kv.FromPairs(kv.P(2, "c"), kv.P(0, "a"), kv.P(1, "b")))
	assert.True(t, l.IsList())
}
