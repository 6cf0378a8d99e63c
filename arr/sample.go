package arr

import (
	"github.com/hasbyte1/go-seq-utils/kv"
	"github.com/hasbyte1/go-seq-utils/random"
)

// ─────────────────────────────────────────────────────────────────────────────
// Randomized selection
// ─────────────────────────────────────────────────────────────────────────────

// Every function here accepts an optional [random.Randomizer]; nil means
// [random.Default]. Pass a seeded source for reproducible results:
//
//	src, _ := random.New(random.Seeded(42))
//	arr.Shuffle(s, src, kv.Auto)

// SampleKey returns one key picked uniformly at random. An empty sequence
// fails with [kv.ErrEmptyNotAllowed].
func SampleKey[V any](s *kv.Seq[V], r random.Randomizer) (kv.Key, error) {
	if s.Len() == 0 {
		return kv.Key{}, kv.NewError("SampleKey", kv.ErrEmptyNotAllowed)
	}
	return s.KeyAt(random.Or(r).IntRange(0, s.Len()-1)), nil
}

// Sample returns one value picked uniformly at random. An empty sequence
// fails with [kv.ErrEmptyNotAllowed].
func Sample[V any](s *kv.Seq[V], r random.Randomizer) (V, error) {
	k, err := SampleKey(s, r)
	if err != nil {
		var zero V
		return zero, kv.NewError("Sample", kv.ErrEmptyNotAllowed)
	}
	v, _ := s.Get(k)
	return v, nil
}

// SampleOr is [Sample] returning def for an empty sequence.
func SampleOr[V any](s *kv.Seq[V], def V, r random.Randomizer) V {
	if v, err := Sample(s, r); err == nil {
		return v
	}
	return def
}

// SampleKeys picks amount keys in random order. Without replacement the
// keys are distinct and amount must not exceed len(s); with replacement
// any amount is allowed as long as s is not empty. Invalid amounts fail
// with [kv.ErrInvalidArgument] before any randomness is consumed.
func SampleKeys[V any](s *kv.Seq[V], amount int, replace bool, r random.Randomizer) ([]kv.Key, error) {
	if amount < 0 {
		return nil, kv.NewError("SampleKeys", kv.ErrInvalidArgument, "amount", amount)
	}
	keys := s.Keys()
	if !replace {
		picked, err := random.ChooseKeys(r, keys, amount)
		if err != nil {
			return nil, err
		}
		// Choose preserves the original order; shuffle independently.
		return random.PermuteKeys(r, picked), nil
	}
	if amount > 0 && len(keys) == 0 {
		return nil, kv.NewError("SampleKeys", kv.ErrInvalidArgument, "amount", amount, "population", 0)
	}
	rnd := random.Or(r)
	out := make([]kv.Key, amount)
	for i := range out {
		out[i] = keys[rnd.IntRange(0, len(keys)-1)]
	}
	return out, nil
}

// SampleMany returns the values under [SampleKeys] as a list.
func SampleMany[V any](s *kv.Seq[V], amount int, replace bool, r random.Randomizer) (*kv.Seq[V], error) {
	keys, err := SampleKeys(s, amount, replace, r)
	if err != nil {
		return nil, err
	}
	out := kv.WithCapacity[V](len(keys))
	for _, k := range keys {
		v, _ := s.Get(k)
		out.Append(v)
	}
	return out, nil
}

// Shuffle returns the entries of s in a random order.
func Shuffle[V any](s *kv.Seq[V], r random.Randomizer, reindex kv.Reindex) *kv.Seq[V] {
	renumber := kv.Resolve(reindex, s)
	out := kv.WithCapacity[V](s.Len())
	for _, i := range random.Or(r).Permute(s.Len()) {
		out.Put(renumber, s.KeyAt(i), s.ValueAt(i))
	}
	return out
}
