package arr

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Number is the element type accepted by the numeric reductions.
type Number interface {
	constraints.Integer | constraints.Float
}

// isNaN works for every Number: only a float NaN differs from itself.
func isNaN[N Number](n N) bool { return n != n }

func nanError[N Number](op string, k kv.Key, v N) error {
	return kv.NewError(op, kv.ErrInvalidElement, "key", k, "value", v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sums & products
// ─────────────────────────────────────────────────────────────────────────────

// All numeric reductions fail with [kv.ErrInvalidElement] as soon as a NaN
// shows up, either as an element or as an intermediate result (Inf - Inf).

// Sum adds up the values. The sum of an empty sequence is 0.
func Sum[N Number](s *kv.Seq[N]) (N, error) {
	return SumBy(s, func(n N, _ kv.Key) N { return n })
}

// SumBy adds up fn(value, key).
func SumBy[V any, N Number](s *kv.Seq[V], fn func(V, kv.Key) N) (N, error) {
	var total N
	for k, v := range s.All() {
		n := fn(v, k)
		if isNaN(n) {
			return 0, nanError("Sum", k, n)
		}
		total += n
		if isNaN(total) {
			return 0, nanError("Sum", k, n)
		}
	}
	return total, nil
}

// Product multiplies the values. The product of an empty sequence is 1.
func Product[N Number](s *kv.Seq[N]) (N, error) {
	total := N(1)
	for k, n := range s.All() {
		if isNaN(n) {
			return 0, nanError("Product", k, n)
		}
		total *= n
		if isNaN(total) {
			return 0, nanError("Product", k, n)
		}
	}
	return total, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Averages & ratios
// ─────────────────────────────────────────────────────────────────────────────

// Average returns the arithmetic mean. An empty sequence fails with
// [kv.ErrEmptyNotAllowed].
func Average[N Number](s *kv.Seq[N]) (float64, error) {
	if s.Len() == 0 {
		return 0, kv.NewError("Average", kv.ErrEmptyNotAllowed)
	}
	var total float64
	for k, n := range s.All() {
		f := float64(n)
		if isNaN(f) {
			return 0, nanError("Average", k, n)
		}
		total += f
		if isNaN(total) {
			return 0, nanError("Average", k, n)
		}
	}
	return total / float64(s.Len()), nil
}

// AverageOr is [Average] returning def for an empty sequence.
func AverageOr[N Number](s *kv.Seq[N], def float64) (float64, error) {
	if s.Len() == 0 {
		return def, nil
	}
	return Average(s)
}

// Ratio returns the fraction of entries for which fn holds. An empty
// sequence fails with [kv.ErrEmptyNotAllowed].
func Ratio[V any](s *kv.Seq[V], fn func(V, kv.Key) bool) (float64, error) {
	if s.Len() == 0 {
		return 0, kv.NewError("Ratio", kv.ErrEmptyNotAllowed)
	}
	return float64(Count(s, fn)) / float64(s.Len()), nil
}

// RatioOr is [Ratio] returning def for an empty sequence.
func RatioOr[V any](s *kv.Seq[V], fn func(V, kv.Key) bool, def float64) float64 {
	if s.Len() == 0 {
		return def
	}
	r, _ := Ratio(s, fn)
	return r
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest value. An empty sequence fails with
// [kv.ErrEmptyNotAllowed].
func Min[N Number](s *kv.Seq[N]) (N, error) {
	lo, _, err := minMax("Min", s)
	return lo, err
}

// MinOr is [Min] returning def for an empty sequence.
func MinOr[N Number](s *kv.Seq[N], def N) (N, error) {
	if s.Len() == 0 {
		return def, nil
	}
	return Min(s)
}

// Max returns the largest value. An empty sequence fails with
// [kv.ErrEmptyNotAllowed].
func Max[N Number](s *kv.Seq[N]) (N, error) {
	_, hi, err := minMax("Max", s)
	return hi, err
}

// MaxOr is [Max] returning def for an empty sequence.
func MaxOr[N Number](s *kv.Seq[N], def N) (N, error) {
	if s.Len() == 0 {
		return def, nil
	}
	return Max(s)
}

// MinMax returns both extremes in one pass.
func MinMax[N Number](s *kv.Seq[N]) (lo, hi N, err error) {
	return minMax("MinMax", s)
}

func minMax[N Number](op string, s *kv.Seq[N]) (lo, hi N, err error) {
	if s.Len() == 0 {
		return lo, hi, kv.NewError(op, kv.ErrEmptyNotAllowed)
	}
	for i := 0; i < s.Len(); i++ {
		n := s.ValueAt(i)
		if isNaN(n) {
			return 0, 0, nanError(op, s.KeyAt(i), n)
		}
		if i == 0 || n < lo {
			lo = n
		}
		if i == 0 || n > hi {
			hi = n
		}
	}
	return lo, hi, nil
}

// MinBy returns the value whose fn(value, key) is smallest; the first one
// wins ties.
func MinBy[V any, N Number](s *kv.Seq[V], fn func(V, kv.Key) N) (V, bool) {
	return extremeBy(s, fn, func(a, b N) bool { return a < b })
}

// MaxBy returns the value whose fn(value, key) is largest; the first one
// wins ties.
func MaxBy[V any, N Number](s *kv.Seq[V], fn func(V, kv.Key) N) (V, bool) {
	return extremeBy(s, fn, func(a, b N) bool { return a > b })
}

func extremeBy[V any, N Number](s *kv.Seq[V], fn func(V, kv.Key) N, better func(a, b N) bool) (V, bool) {
	var best V
	var bestN N
	found := false
	for k, v := range s.All() {
		n := fn(v, k)
		if !found || better(n, bestN) {
			best, bestN, found = v, n, true
		}
	}
	return best, found
}
