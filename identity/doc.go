// Package identity canonicalizes arbitrary values into comparable
// [Token]s.
//
// Deduplication, grouping and set membership in package arr need a notion
// of "the same value" that is stricter than loose equality and works for
// values Go cannot compare with == (slices, nested sequences, structs
// holding them):
//
//	identity.Equal(true, 1)                          // false: different types
//	identity.Equal(kv.List(1, 2), []int{1, 2})       // true: same entries
//	identity.Equal(kv.List(1, 2), kv.List(2, 1))     // false
//
// Scalars map to readable tokens ("i:1", "s:a"). Containers and structs map
// to a type tag plus a BLAKE2b digest of the tokens of their entries, so
// token size does not grow with nesting. Pointers, maps and channels are
// references: their token is their address, valid for as long as the
// referenced value lives.
package identity
