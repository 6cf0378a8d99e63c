package arr_test

import (
	"github.com/hasbyte1/go-seq-utils/kv"
)

// users is a map-shaped fixture: string keys in insertion order.
func users() *kv.Seq[int] {
	return kv.FromPairs(kv.P("ann", 31), kv.P("bob", 17), kv.P("cyd", 45), kv.P("dan", 17))
}

func isEven(n int, _ kv.Key) bool { return n%2 == 0 }

func strKeys(names ...string) []kv.Key {
	out := make([]kv.Key, len(names))
	for i, n := range names {
		out[i] = kv.StrKey(n)
	}
	return out
}

func intKeys(ns ...int) []kv.Key {
	out := make([]kv.Key, len(ns))
	for i, n := range ns {
		out[i] = kv.IntKey(n)
	}
	return out
}
