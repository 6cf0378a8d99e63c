package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-seq-utils/collections"
	"github.com/hasbyte1/go-seq-utils/kv"
)

func ExampleNew() {
	c := collections.New(1, 2, 3, 4, 5)
	sum, _ := c.Sum(func(n int) float64 { return float64(n) })
	fmt.Println(c.Count(), sum)
	// Output: 5 15
}

func ExampleCollection_Filter() {
	result := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(n int, _ kv.Key) bool { return n%2 == 0 })
	fmt.Println(result)
	// Output: [2,4,6]
}

func ExampleCollection_Filter_map() {
	scores := collections.FromSeq(kv.FromPairs(kv.P("ann", 91), kv.P("bob", 48), kv.P("cyd", 77)))
	passed := scores.Filter(func(n int, _ kv.Key) bool { return n >= 50 })
	fmt.Println(passed)
	// Output: {"ann":91,"cyd":77}
}

func ExampleCollection_Sort() {
	result := collections.New(5, 3, 1, 4, 2).
		Sort(func(a, b int) int { return a - b }).
		All()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleCollection_Partition() {
	evens, odds := collections.New(1, 2, 3, 4, 5).
		Partition(func(n int, _ kv.Key) bool { return n%2 == 0 })
	fmt.Println(evens.All(), odds.All())
	// Output: [2 4] [1 3 5]
}

func ExampleCollection_Chunk() {
	chunks, _ := collections.New(1, 2, 3, 4, 5).Chunk(2)
	for _, chunk := range chunks {
		fmt.Println(chunk)
	}
	// Output:
	// [1,2]
	// [3,4]
	// [5]
}

func ExampleCollection_Implode() {
	s := collections.New(10, 9, 8, 7, 6, 5).
		Filter(func(n int, _ kv.Key) bool { return n%2 == 0 }).
		SortByDesc(func(n int) float64 { return float64(n) }).
		Take(3).
		Implode(", ", strconv.Itoa)
	fmt.Println(s)
	// Output: 10, 8, 6
}

func ExampleMap() {
	result := collections.Map(
		collections.New(1, 2, 3),
		func(n int, _ kv.Key) string { return strconv.Itoa(n * n) },
	)
	fmt.Println(result.Implode(", ", func(s string) string { return s }))
	// Output: 1, 4, 9
}

func ExampleReduce() {
	sum := collections.Reduce(
		collections.New(1, 2, 3, 4, 5),
		func(acc, n int, _ kv.Key) int { return acc + n },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}

func ExampleZip() {
	keys := collections.New("a", "b", "c")
	vals := collections.New(1, 2)
	collections.Zip(keys, vals).Each(func(p collections.Pair[string, int], _ kv.Key) {
		fmt.Println(p)
	})
	// Output:
	// (a, 1)
	// (b, 2)
	// (c, <none>)
}

func ExampleCollapse() {
	nested := collections.New([]int{1, 2}, []int{3, 4}, []int{5})
	fmt.Println(collections.Collapse(nested).All())
	// Output: [1 2 3 4 5]
}

func ExampleGroupBy() {
	groups := collections.GroupBy(
		collections.New(1, 2, 3, 4, 5, 6),
		func(n int) string {
			if n%2 == 0 {
				return "even"
			}
			return "odd"
		},
	)
	even, _ := groups.Get(kv.StrKey("even"))
	sum, _ := even.Sum(func(n int) float64 { return float64(n) })
	fmt.Println(sum)
	// Output: 12
}

func ExampleCollection_When() {
	result := collections.New(1, 2, 3).
		When(true, func(c *collections.Collection[int]) *collections.Collection[int] {
			return c.Push(4)
		}).
		Count()
	fmt.Println(result)
	// Output: 4
}

func ExampleCollection_Pull() {
	v, rest, _ := collections.FromSeq(kv.FromPairs(kv.P("id", 7), kv.P("age", 30))).Pull(kv.StrKey("id"))
	fmt.Println(v, rest)
	// Output: 7 {"age":30}
}
