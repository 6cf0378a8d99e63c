package arr

import (
	"strings"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested *kv.Seq[any] trees
//
// These functions read, write, and test values in nested sequences using
// dot-separated key paths. A nested level is a *kv.Seq[any] stored as a
// value. Path segments that are canonical decimal integers address integer
// keys, so "users.0.name" reaches into a list.
//
// Example tree:
//
//	s := kv.FromPairs(
//	    kv.P("user", any(kv.FromPairs(
//	        kv.P("name", any("Alice")),
//	        kv.P("address", any(kv.FromPairs(kv.P("city", any("London"))))),
//	    ))),
//	)
//
//	DotGet(s, "user.address.city")  → "London"
//	DotSet(s, "user.age", 30)
//	DotHas(s, "user.name")          → true
//	DotForget(s, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a tree into a single level keyed by dot paths, in
// depth-first order.
//
//	Dot({a: {b: 1}, c: 2}) // {a.b: 1, c: 2}
func Dot(s *kv.Seq[any]) *kv.Seq[any] {
	out := kv.Empty[any]()
	dotFlatten("", s, out)
	return out
}

func dotFlatten(prefix string, s *kv.Seq[any], out *kv.Seq[any]) {
	for k, v := range s.All() {
		key := k.String()
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(*kv.Seq[any]); ok && nested.Len() > 0 {
			dotFlatten(key, nested, out)
		} else {
			out.Set(kv.TextKey(key), v)
		}
	}
}

// Undot expands a flat dot-path sequence into a tree.
//
//	Undot({a.b: 1, a.c: 2}) // {a: {b: 1, c: 2}}
func Undot(s *kv.Seq[any]) *kv.Seq[any] {
	out := kv.Empty[any]()
	for k, v := range s.All() {
		DotSet(out, k.String(), v)
	}
	return out
}

// DotGet retrieves the value at a dot path. Returns def[0] (or nil) when
// the path does not exist.
//
//	DotGet(s, "user.address.city")        // "London"
//	DotGet(s, "user.missing", "default")  // "default"
func DotGet(s *kv.Seq[any], path string, def ...any) any {
	if v, ok := DotLookup(s, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// DotLookup retrieves the value at a dot path and reports whether it
// exists, telling a stored nil apart from a missing path.
func DotLookup(s *kv.Seq[any], path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := s
	for i, seg := range segments {
		val, ok := current.Get(kv.TextKey(seg))
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(*kv.Seq[any])
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// DotSet writes value at a dot path, creating intermediate levels as
// needed. A non-sequence value in the way is replaced.
//
//	DotSet(s, "user.address.postcode", "EC1")
func DotSet(s *kv.Seq[any], path string, value any) {
	seg, rest, nestedPath := strings.Cut(path, ".")
	key := kv.TextKey(seg)
	if !nestedPath {
		s.Set(key, value)
		return
	}
	cur, _ := s.Get(key)
	nested, ok := cur.(*kv.Seq[any])
	if !ok {
		nested = kv.Empty[any]()
		s.Set(key, nested)
	}
	DotSet(nested, rest, value)
}

// DotHas reports whether the dot path exists.
func DotHas(s *kv.Seq[any], path string) bool {
	_, ok := DotLookup(s, path)
	return ok
}

// DotHasAll reports whether all dot paths exist.
func DotHasAll(s *kv.Seq[any], paths ...string) bool {
	for _, p := range paths {
		if !DotHas(s, p) {
			return false
		}
	}
	return true
}

// DotHasAny reports whether any of the dot paths exist.
func DotHasAny(s *kv.Seq[any], paths ...string) bool {
	for _, p := range paths {
		if DotHas(s, p) {
			return true
		}
	}
	return false
}

// DotForget removes the entry at a dot path. Intermediate levels are not
// cleaned up.
func DotForget(s *kv.Seq[any], path string) {
	seg, rest, nestedPath := strings.Cut(path, ".")
	key := kv.TextKey(seg)
	if !nestedPath {
		s.Delete(key)
		return
	}
	cur, _ := s.Get(key)
	if nested, ok := cur.(*kv.Seq[any]); ok {
		DotForget(nested, rest)
	}
}
