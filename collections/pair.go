package collections

import (
	"fmt"

	"github.com/hasbyte1/go-seq-utils/arr"
)

// Pair holds two optional values of possibly different types.
// It is the element type produced by [Zip]; a side is absent when its input
// ran out first.
type Pair[A, B any] struct {
	First  arr.Opt[A]
	Second arr.Opt[B]
}

// String returns a human-readable representation: "(first, second)", with
// an absent side shown as <none>.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%s, %s)", side(p.First), side(p.Second))
}

func side[V any](o arr.Opt[V]) string {
	if !o.Ok {
		return "<none>"
	}
	return fmt.Sprint(o.Value)
}
