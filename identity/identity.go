package identity

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"iter"
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// ErrInvalidOption is returned by [NewHasher] for out-of-range options.
var ErrInvalidOption = errors.New("identity: invalid option value")

// Token is the identity of a value. Two values are identical for
// deduplication and grouping purposes exactly when their tokens are equal.
//
// Tokens start with a one-letter type tag followed by a colon:
//
//	n   nil
//	b:  bool            ("b:1", "b:0")
//	i:  integer kinds   ("i:42")
//	f:  float kinds     ("f:1.5")
//	c:  complex kinds
//	s:  string
//	y:  []byte
//	a:  sequence, slice or array (digest of the element tokens)
//	t:  struct (type name and digest of the field tokens)
//	o:  reference (pointer, map, channel): address, stable for the
//	    lifetime of the referenced value only
type Token string

// Container is implemented by every [kv.Seq] instantiation. Containers are
// tokenized entry by entry, keys included.
type Container interface {
	AnyEntries() iter.Seq2[kv.Key, any]
}

// Options configures a [Hasher].
type Options struct {
	// DigestSize is the BLAKE2b output size, in bytes, used for container
	// and struct tokens. Must be between 1 and 64.
	DigestSize int
}

// DefaultOptions returns a 256-bit digest.
func DefaultOptions() Options {
	return Options{DigestSize: blake2b.Size256}
}

// Hasher derives [Token]s. It holds no mutable state and is safe for
// concurrent use.
type Hasher struct {
	size int
}

// NewHasher validates opts and returns a Hasher.
func NewHasher(opts Options) (*Hasher, error) {
	if opts.DigestSize < 1 || opts.DigestSize > blake2b.Size {
		return nil, fmt.Errorf("%w: digest size %d not in [1, %d]",
			ErrInvalidOption, opts.DigestSize, blake2b.Size)
	}
	return &Hasher{size: opts.DigestSize}, nil
}

var (
	defaultOnce   sync.Once
	defaultHasher *Hasher
)

// Default returns the package-level Hasher built from [DefaultOptions].
func Default() *Hasher {
	defaultOnce.Do(func() {
		h, err := NewHasher(DefaultOptions())
		if err != nil {
			panic(err)
		}
		defaultHasher = h
	})
	return defaultHasher
}

// Tokenize returns the identity token of v using the default Hasher.
func Tokenize(v any) Token { return Default().Tokenize(v) }

// Equal reports whether a and b have the same identity token. Unlike ==,
// true and 1 are different, and nested sequences compare by content.
func Equal(a, b any) bool { return Tokenize(a) == Tokenize(b) }

// Tokenize returns the identity token of v.
//
// Tokenize panics with a [*kv.Error] wrapping [kv.ErrUnreachable] when v
// holds a function or an unsafe pointer; such values have no identity.
// A container met again while its own entries are being hashed gets a
// reference token, so self-containing sequences terminate.
func (h *Hasher) Tokenize(v any) Token {
	w := walk{h: h}
	return w.token(v)
}

// walk is the state of one Tokenize call.
type walk struct {
	h      *Hasher
	active map[uintptr]bool
}

func (w *walk) token(v any) Token {
	switch x := v.(type) {
	case nil:
		return "n"
	case bool:
		if x {
			return "b:1"
		}
		return "b:0"
	case int:
		return Token("i:" + strconv.Itoa(x))
	case int64:
		return Token("i:" + strconv.FormatInt(x, 10))
	case string:
		return Token("s:" + x)
	case float64:
		return Token("f:" + strconv.FormatFloat(x, 'g', -1, 64))
	case kv.Key:
		return w.token(x.Any())
	case []byte:
		return Token("y:" + string(x))
	case Container:
		return w.container(x)
	}
	return w.reflectToken(reflect.ValueOf(v))
}

func (w *walk) reflectToken(rv reflect.Value) Token {
	switch rv.Kind() {
	case reflect.Invalid:
		return "n"
	case reflect.Bool:
		return w.token(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Token("i:" + strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Token("i:" + strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		return Token("f:" + strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		return Token("f:" + strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		return Token("c:" + strconv.FormatComplex(rv.Complex(), 'g', -1, 128))
	case reflect.String:
		return Token("s:" + rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return "n"
		}
		return w.elem(rv.Elem())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return Token("y:" + string(rv.Bytes()))
		}
		d := w.h.newDigest()
		for i := 0; i < rv.Len(); i++ {
			writePart(d, w.token(kv.IntKey(i)))
			writePart(d, w.elem(rv.Index(i)))
		}
		return Token("a:" + hex.EncodeToString(d.Sum(nil)))
	case reflect.Struct:
		d := w.h.newDigest()
		for i := 0; i < rv.NumField(); i++ {
			writePart(d, Token(rv.Type().Field(i).Name))
			writePart(d, w.elem(rv.Field(i)))
		}
		return Token("t:" + rv.Type().String() + ":" + hex.EncodeToString(d.Sum(nil)))
	case reflect.Pointer, reflect.Map, reflect.Chan:
		if rv.IsNil() {
			return "n"
		}
		if rv.CanInterface() {
			if c, ok := rv.Interface().(Container); ok {
				return w.container(c)
			}
		}
		return Token("o:" + rv.Type().String() + ":" + strconv.FormatUint(uint64(rv.Pointer()), 16))
	}
	panic(kv.NewError("Tokenize", kv.ErrUnreachable, "type", rv.Type().String()))
}

// elem tokenizes a value reached through reflection. Unexported struct
// fields cannot be boxed, so they are tokenized from their reflect.Value.
func (w *walk) elem(rv reflect.Value) Token {
	if rv.CanInterface() {
		return w.token(rv.Interface())
	}
	return w.reflectToken(rv)
}

func (w *walk) container(c Container) Token {
	rv := reflect.ValueOf(c)
	if rv.Kind() == reflect.Pointer {
		addr := rv.Pointer()
		if w.active[addr] {
			return Token("o:" + rv.Type().String() + ":" + strconv.FormatUint(uint64(addr), 16))
		}
		if w.active == nil {
			w.active = map[uintptr]bool{}
		}
		w.active[addr] = true
		defer delete(w.active, addr)
	}
	d := w.h.newDigest()
	for k, v := range c.AnyEntries() {
		writePart(d, w.token(k))
		writePart(d, w.token(v))
	}
	return Token("a:" + hex.EncodeToString(d.Sum(nil)))
}

func (h *Hasher) newDigest() hash.Hash {
	d, err := blake2b.New(h.size, nil)
	if err != nil {
		panic(kv.NewError("Tokenize", kv.ErrUnreachable, "digest_size", h.size))
	}
	return d
}

// writePart length-prefixes t so that adjacent parts cannot run together.
func writePart(d hash.Hash, t Token) {
	var n [binary.MaxVarintLen64]byte
	d.Write(n[:binary.PutUvarint(n[:], uint64(len(t)))])
	d.Write([]byte(t))
}
