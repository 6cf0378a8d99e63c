package kv

// Kind is the derived classification of a sequence.
type Kind uint8

const (
	// KindList means the keys are exactly 0..n-1 in iteration order.
	KindList Kind = iota
	// KindMap is every other key layout.
	KindMap
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k == KindList {
		return "list"
	}
	return "map"
}

// Classify reports the [Kind] of s. The empty sequence is a list. The
// result is recomputed on every call: removing a single entry can turn a
// list into a map.
func Classify[V any](s *Seq[V]) Kind {
	for i := 0; i < s.Len(); i++ {
		if n, ok := s.keys[i].Int(); !ok || n != i {
			return KindMap
		}
	}
	return KindList
}

// Kind is shorthand for [Classify](s).
func (s *Seq[V]) Kind() Kind { return Classify(s) }

// IsList reports whether s is a list.
func (s *Seq[V]) IsList() bool { return Classify(s) == KindList }

// IsMap reports whether s is a map.
func (s *Seq[V]) IsMap() bool { return Classify(s) == KindMap }

// Reindex is the tri-state policy deciding the keys of an operation's
// output.
type Reindex int8

const (
	// Auto renumbers when the input is a list and keeps keys otherwise.
	Auto Reindex = iota
	// ForceList always renumbers the output to 0..m-1.
	ForceList
	// PreserveKeys always keeps the original or derived keys.
	PreserveKeys
)

// String implements [fmt.Stringer].
func (r Reindex) String() string {
	switch r {
	case ForceList:
		return "force-list"
	case PreserveKeys:
		return "preserve-keys"
	default:
		return "auto"
	}
}

// ReindexOf converts an optional boolean (the PHP-style ?bool) into a
// policy: nil is Auto.
func ReindexOf(b *bool) Reindex {
	switch {
	case b == nil:
		return Auto
	case *b:
		return ForceList
	default:
		return PreserveKeys
	}
}

// Resolve decides whether the output of an operation over input must be
// renumbered. Callers resolve once, before running the algorithm, and
// apply the answer to every entry they emit.
func Resolve[V any](r Reindex, input *Seq[V]) bool {
	switch r {
	case ForceList:
		return true
	case PreserveKeys:
		return false
	default:
		return Classify(input) == KindList
	}
}

// RequireList fails with [ErrTypeMismatch] when s is not a list.
func RequireList[V any](op string, s *Seq[V]) error {
	if Classify(s) != KindList {
		return newError(op, ErrTypeMismatch, "seq", s, "want", KindList)
	}
	return nil
}
