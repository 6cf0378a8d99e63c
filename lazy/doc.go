// Package lazy provides single-pass, pull-driven transformation steps over
// key-value iterators ([Source], an iter.Seq2[kv.Key, V]).
//
// Steps compose without materializing intermediate sequences:
//
//	src := lazy.Of(kv.List(1, 2, 3, 4, 5, 6))
//	evens := lazy.Filter(src, func(n int, _ kv.Key) bool { return n%2 == 0 }, true)
//	chunks, _ := lazy.Chunk(evens, 2, true)
//	for c := range chunks {
//	    fmt.Println(c) // [2 4], then [6]
//	}
//
// Nothing runs until the result is ranged over, and work stops as soon as
// the consumer stops. A step is not rewindable: ranging over it again
// re-runs the whole pipeline from its source. Steps that need to know the
// length of their input (negative offsets in [Slice]) buffer it once.
//
// Every step takes an explicit reindex flag rather than a policy: the
// eager operations in package arr resolve kv.Auto against their input
// before building a pipeline. Use [Pull] for explicit Next/Stop
// consumption.
package lazy
