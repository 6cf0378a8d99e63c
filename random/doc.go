// Package random provides the pluggable source of randomness used by the
// sampling and shuffling operations in package arr.
//
// Every randomized operation accepts a [Randomizer]; passing nil uses the
// process-wide default, which is built lazily on first use and can be
// swapped at any time with [SetDefault]. Tests inject a seeded [Source]
// for reproducible results:
//
//	src, _ := random.New(random.Seeded(42))
//	picked, _ := arr.SampleMany(seq, 3, false, src)
//
// The default is global state and is not reset automatically.
package random
