// Package kv defines the data model shared by every package in this
// module: the ordered key-value sequence [Seq], its [Key] type, the
// list/map classification, the reindex policy, and the error taxonomy.
//
// # Lists and maps
//
// Callers see two shapes of collection, lists and maps, but both are a
// [Seq]. The shape is never stored; [Classify] derives it from the keys
// every time it is asked:
//
//	kv.List("a", "b").Kind()                        // list
//	kv.FromPairs(kv.P(1, "a"), kv.P(0, "b")).Kind() // map (keys out of order)
//
// # Reindex policy
//
// Most operations in package arr take a [Reindex] argument. [Auto] decides
// from the input's kind, once, before the operation runs: list input
// produces renumbered output, map input keeps its keys. [ForceList] and
// [PreserveKeys] override the decision.
//
// # Errors
//
// Failures are reported as [*Error] values wrapping one of the package
// sentinels (ErrEmptyNotAllowed, ErrInvalidArgument, ...). Match them with
// [errors.Is]; inspect [Error.Context] for the offending inputs.
//
// # Encoding
//
// [Seq] implements json.Marshaler/Unmarshaler, yaml.Marshaler/Unmarshaler
// and slog.LogValuer. Both codecs preserve key order.
package kv
