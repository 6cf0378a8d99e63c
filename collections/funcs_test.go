package collections_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/hasbyte1/go-seq-utils/collections"
	"github.com/hasbyte1/go-seq-utils/kv"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n int, _ kv.Key) string {
		return strconv.Itoa(n * 2)
	}).All()
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestMapFuncKeepsKeys(t *testing.T) {
	labels := collections.Map(ages(), func(n int, k kv.Key) string {
		return k.String() + "=" + strconv.Itoa(n)
	})
	if labels.String() != `{"ann":"ann=31","bob":"bob=17","cyd":"cyd=45"}` {
		t.Fatalf("Map = %s", labels)
	}
}

func TestFlatMapFunc(t *testing.T) {
	got := collections.FlatMap(ints(1, 2, 3), func(n int, _ kv.Key) []string {
		return []string{strconv.Itoa(n), strconv.Itoa(n * 10)}
	}).All()
	assertSlice(t, got, []string{"1", "10", "2", "20", "3", "30"})
}

func TestReduceFunc(t *testing.T) {
	// int → string
	s := collections.Reduce(ages(), func(acc string, n int, k kv.Key) string {
		if acc != "" {
			acc += ","
		}
		return acc + k.String() + ":" + strconv.Itoa(n)
	}, "")
	if s != "ann:31,bob:17,cyd:45" {
		t.Fatalf("Reduce = %q", s)
	}
}

func TestPluckFunc(t *testing.T) {
	type Person struct{ Name string }
	people := collections.New(Person{"Alice"}, Person{"Bob"}, Person{"Carol"})
	names := collections.Pluck(people, func(p Person) string { return p.Name }).All()
	assertSlice(t, names, []string{"Alice", "Bob", "Carol"})
}

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4, 5), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assertSlice(t, groups.Keys(), []kv.Key{kv.StrKey("odd"), kv.StrKey("even")})
	odd, _ := groups.Get(kv.StrKey("odd"))
	assertSlice(t, odd.All(), []int{1, 3, 5})
	even, _ := groups.Get(kv.StrKey("even"))
	assertSlice(t, even.All(), []int{2, 4})
}

func TestKeyByFunc(t *testing.T) {
	type Item struct {
		ID   int
		Name string
	}
	items := collections.New(Item{1, "a"}, Item{2, "b"}, Item{1, "c"})
	keyed := collections.KeyBy(items, func(item Item) int { return item.ID })
	if keyed.Count() != 2 {
		t.Fatalf("KeyBy count = %d", keyed.Count())
	}
	if it, _ := keyed.Get(kv.IntKey(1)); it.Name != "c" {
		t.Fatalf("KeyBy should keep the last item, got %v", it)
	}
}

func TestZipFunc(t *testing.T) {
	pairs := collections.Zip(collections.New("x", "y", "z"), ints(1, 2, 3)).All()
	if len(pairs) != 3 {
		t.Fatalf("Zip len = %d; want 3", len(pairs))
	}
	if pairs[0].First.Value != "x" || pairs[0].Second.Value != 1 {
		t.Fatalf("Zip[0] = %v; want (x, 1)", pairs[0])
	}
}

func TestZipUnequalLengths(t *testing.T) {
	pairs := collections.Zip(collections.New("a", "b", "c"), ints(1, 2)).All()
	if len(pairs) != 3 {
		t.Fatalf("Zip unequal len = %d; want 3", len(pairs))
	}
	if pairs[2].Second.Ok || !pairs[2].First.Ok {
		t.Fatalf("Zip[2] = %v; want (c, <none>)", pairs[2])
	}
}

func TestCombineFunc(t *testing.T) {
	m, err := collections.Combine([]string{"a", "b", "c"}, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get(kv.StrKey("b")); v != 2 {
		t.Fatal("Combine failed")
	}

	_, err = collections.Combine([]string{"a"}, []int{1, 2})
	if !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("Combine with mismatched lengths err = %v", err)
	}
}

func TestCollapseFunc(t *testing.T) {
	nested := collections.New([]int{1, 2}, []int{3, 4}, []int{5})
	assertSlice(t, collections.Collapse(nested).All(), []int{1, 2, 3, 4, 5})
}

func TestFlattenFunc(t *testing.T) {
	nested := collections.New([]int{1, 2}, []int{3, 4})
	assertSlice(t, collections.Flatten(nested).All(), []int{1, 2, 3, 4})
}

func TestFlattenDeepFunc(t *testing.T) {
	inner := collections.New[any](3, []any{4, []any{5}})
	c := collections.New[any](1, 2, inner, []any{6, 7})
	got := collections.FlattenDeep(c).All()
	if fmt.Sprint(got) != "[1 2 3 4 5 6 7]" {
		t.Fatalf("FlattenDeep = %v", got)
	}
}

func TestPairString(t *testing.T) {
	pairs := collections.Zip(collections.New("hello", "bye"), ints(42))
	var got []string
	pairs.Each(func(p collections.Pair[string, int], _ kv.Key) {
		got = append(got, fmt.Sprint(p))
	})
	if s := strings.Join(got, " "); s != "(hello, 42) (bye, <none>)" {
		t.Fatalf("Pair.String() = %q", s)
	}
}
