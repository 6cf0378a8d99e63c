// Package arr provides eager, standalone helpers over ordered key-value
// sequences (*kv.Seq), inspired by Laravel's Arr facade and PHP's array_*
// functions.
//
// # Lists, maps and reindexing
//
// A sequence whose keys are exactly 0..n-1 is a list; anything else is a
// map. Operations that drop or reorder entries take a [kv.Reindex] policy
// deciding the keys of their result:
//
//	arr.Filter(kv.List(1, 2, 3, 4), isEven, kv.Auto)          // [2 4]   (list in, list out)
//	arr.Filter(kv.List(1, 2, 3, 4), isEven, kv.PreserveKeys)  // {1:2 3:4}
//	arr.Filter(m, isEven, kv.ForceList)                       // renumbered
//
// Auto is decided once from the input before any work is done.
//
// # Lookups and failures
//
// Lookups come in three shapes:
//
//	arr.First(s)       // (V, bool)
//	arr.FirstOr(s, d)  // V
//	arr.FirstOrFail(s) // (V, error), wrapping kv.ErrEmptyNotAllowed
//
// Errors are *kv.Error values wrapping one of the kv sentinels; test them
// with errors.Is.
//
// # In-place helpers
//
// InsertAt, Push, Pop, Shift, Pull, Remove, Set and Swap mutate the
// sequence they are given. Everything else returns a new, independently
// owned sequence.
//
// # Dot-notation access
//
// Nested *kv.Seq[any] trees can be read and written with dot paths:
//
//	arr.DotGet(cfg, "db.host")
//	arr.DotSet(cfg, "db.port", 5432)
//	arr.DotHas(cfg, "db.user")
//	flat := arr.Dot(cfg) // {db.host: ..., db.port: 5432}
package arr
