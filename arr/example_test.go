package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-seq-utils/arr"
	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/random"
)

func ExampleFilter() {
	evens := arr.Filter(kv.List(1, 2, 3, 4, 5), func(n int, _ kv.Key) bool { return n%2 == 0 }, kv.Auto)
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleFilter_preserveKeys() {
	evens := arr.Filter(kv.List(1, 2, 3, 4, 5), func(n int, _ kv.Key) bool { return n%2 == 0 }, kv.PreserveKeys)
	fmt.Println(evens)
	// Output: {1:2 3:4}
}

func ExampleMap() {
	doubled := arr.Map(kv.List(1, 2, 3), func(n int, _ kv.Key) int { return n * 2 })
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExampleChunk() {
	chunks, _ := arr.Chunk(kv.List(1, 2, 3), 2, kv.Auto)
	fmt.Println(chunks)
	// Output: [[1 2] [3]]
}

func ExampleZip() {
	fmt.Println(arr.Zip(kv.List(1, 2), kv.List(3)))
	// Output: [[1 3] [2 null]]
}

func ExampleGroupBy() {
	groups := arr.GroupBy(kv.List(1, 2, 3, 4), func(n int, _ kv.Key) int { return n % 3 }, kv.Auto)
	fmt.Println(groups)
	// Output: {1:[1 4] 2:[2] 0:[3]}
}

func ExampleRotate() {
	s := kv.List(1, 2, 3)
	fmt.Println(arr.Rotate(s, 1, kv.Auto))
	fmt.Println(arr.Rotate(s, -1, kv.Auto))
	// Output:
	// [2 3 1]
	// [3 1 2]
}

func ExampleSortByKeyAsc() {
	s := kv.FromPairs(kv.P("b", 1), kv.P("a", 2), kv.P(1, 3), kv.P(0, 4))
	fmt.Println(arr.SortByKeyAsc(s))
	// Output: {0:4 1:3 a:2 b:1}
}

func ExampleSplitEvenly() {
	parts, _ := arr.SplitEvenly(kv.List(1, 2, 3, 4, 5), 3, kv.Auto)
	fmt.Println(parts)
	// Output: [[1 2] [3 4] [5]]
}

func ExampleDiff() {
	fmt.Println(arr.Diff(kv.List[any](1, true, "1"), kv.List[any](1), nil, kv.Auto))
	// Output: [true 1]
}

func ExampleDotGet() {
	s := kv.FromPairs(
		kv.P("user", any(kv.FromPairs(
			kv.P("address", any(kv.FromPairs(kv.P("city", any("London"))))),
		))),
	)
	fmt.Println(arr.DotGet(s, "user.address.city"))
	// Output: London
}

func ExampleDotSet() {
	s := kv.Empty[any]()
	arr.DotSet(s, "config.debug", true)
	fmt.Println(s)
	// Output: {config:{debug:true}}
}

func ExampleShuffle() {
	src, _ := random.New(random.Seeded(42))
	shuffled := arr.Shuffle(kv.List("a", "b", "c"), src, kv.Auto)
	fmt.Println(shuffled.Len(), arr.ContainsAll(shuffled, "a", "b", "c"))
	// Output: 3 true
}

func ExampleToURLQuery() {
	s := kv.FromPairs(kv.P("q", any("hello world")), kv.P("tags", any(kv.List[any]("go"))))
	fmt.Println(arr.ToURLQuery(s, ""))
	// Output: q=hello%20world&tags%5B0%5D=go
}
