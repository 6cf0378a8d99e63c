package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// Algorithm identifies the generator behind a [Source].
type Algorithm string

const (
	// PCG selects math/rand/v2's PCG generator (fast, small state).
	PCG Algorithm = "pcg"
	// ChaCha8 selects math/rand/v2's ChaCha8 generator.
	ChaCha8 Algorithm = "chacha8"
)

// ErrInvalidOption is returned by [New] for an unknown algorithm.
var ErrInvalidOption = errors.New("random: invalid option value")

// Randomizer is the source of randomness consumed by sampling and
// shuffling operations.
//
// Implementations need not be safe for concurrent use; the sequence
// operations that consume them are single-threaded.
type Randomizer interface {
	// IntRange returns a uniformly distributed integer in [min, max].
	IntRange(min, max int) int

	// Choose returns count distinct indices from [0, n) in ascending order.
	// Callers guarantee 0 <= count <= n.
	Choose(n, count int) []int

	// Permute returns a uniformly random permutation of [0, n).
	Permute(n int) []int
}

// Options configures a [Source].
type Options struct {
	// Algorithm selects the generator. Defaults to ChaCha8.
	Algorithm Algorithm

	// Seed seeds the generator. A nil Seed draws one from crypto/rand, so
	// only seeded sources are reproducible. PCG uses the first 16 bytes.
	Seed *[32]byte
}

// DefaultOptions returns an unseeded ChaCha8 configuration.
func DefaultOptions() Options {
	return Options{Algorithm: ChaCha8}
}

// Seeded returns options for a reproducible PCG source; handy in tests.
func Seeded(seed uint64) Options {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:8], seed)
	binary.LittleEndian.PutUint64(s[8:16], seed^0x9e3779b97f4a7c15)
	return Options{Algorithm: PCG, Seed: &s}
}

// Source is the standard [Randomizer] backed by math/rand/v2.
type Source struct {
	rng *rand.Rand
}

var _ Randomizer = (*Source)(nil)

// New validates opts and returns a Source.
func New(opts Options) (*Source, error) {
	seed := opts.Seed
	if seed == nil {
		var s [32]byte
		if _, err := crand.Read(s[:]); err != nil {
			return nil, fmt.Errorf("random: read seed: %w", err)
		}
		seed = &s
	}
	switch opts.Algorithm {
	case "", ChaCha8:
		return &Source{rng: rand.New(rand.NewChaCha8(*seed))}, nil
	case PCG:
		hi := binary.LittleEndian.Uint64(seed[:8])
		lo := binary.LittleEndian.Uint64(seed[8:16])
		return &Source{rng: rand.New(rand.NewPCG(hi, lo))}, nil
	}
	return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidOption, opts.Algorithm)
}

// IntRange implements [Randomizer].
func (s *Source) IntRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	span := uint64(max - min)
	if span == ^uint64(0) {
		return int(s.rng.Uint64())
	}
	return min + int(s.rng.Uint64N(span+1))
}

// Choose implements [Randomizer] with a partial Fisher-Yates shuffle, so
// every count-subset is equally likely.
func (s *Source) Choose(n, count int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + s.rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := idx[:count]
	slices.Sort(out)
	return out
}

// Permute implements [Randomizer].
func (s *Source) Permute(n int) []int {
	return s.rng.Perm(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Process-wide default
// ─────────────────────────────────────────────────────────────────────────────

var defaultProvider struct {
	mu sync.Mutex
	r  Randomizer
}

// Default returns the process-wide Randomizer, building a [DefaultOptions]
// Source on first use.
func Default() Randomizer {
	defaultProvider.mu.Lock()
	defer defaultProvider.mu.Unlock()
	if defaultProvider.r == nil {
		src, err := New(DefaultOptions())
		if err != nil {
			panic(err)
		}
		defaultProvider.r = src
	}
	return defaultProvider.r
}

// SetDefault replaces the process-wide Randomizer and returns the previous
// one (nil if none was built yet). Passing nil makes the next [Default] call
// build a fresh Source.
//
//	prev := random.SetDefault(mySeeded)
//	defer random.SetDefault(prev)
func SetDefault(r Randomizer) Randomizer {
	defaultProvider.mu.Lock()
	defer defaultProvider.mu.Unlock()
	prev := defaultProvider.r
	defaultProvider.r = r
	slog.Debug("random: default randomizer replaced",
		slog.String("previous", fmt.Sprintf("%T", prev)),
		slog.String("current", fmt.Sprintf("%T", r)))
	return prev
}

// Or returns r when non-nil, otherwise [Default].
func Or(r Randomizer) Randomizer {
	if r != nil {
		return r
	}
	return Default()
}

// ─────────────────────────────────────────────────────────────────────────────
// Key helpers
// ─────────────────────────────────────────────────────────────────────────────

// ChooseKeys picks count distinct keys and returns them in their original
// relative order. It fails with [kv.ErrInvalidArgument] before consuming
// any randomness when count is negative or exceeds len(keys).
func ChooseKeys[K any](r Randomizer, keys []K, count int) ([]K, error) {
	if count < 0 || count > len(keys) {
		return nil, kv.NewError("ChooseKeys", kv.ErrInvalidArgument,
			"count", count, "population", len(keys))
	}
	idx := Or(r).Choose(len(keys), count)
	out := make([]K, len(idx))
	for i, j := range idx {
		out[i] = keys[j]
	}
	return out, nil
}

// PermuteKeys returns keys in a random order.
func PermuteKeys[K any](r Randomizer, keys []K) []K {
	perm := Or(r).Permute(len(keys))
	out := make([]K, len(perm))
	for i, j := range perm {
		out[i] = keys[j]
	}
	return out
}
