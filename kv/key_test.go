package kv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seq-utils/kv"
)

func TestKeyKinds(t *testing.T) {
	i := kv.IntKey(7)
	assert.True(t, i.IsInt())
	assert.False(t, i.IsString())
	n, ok := i.Int()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = i.Str()
	assert.False(t, ok)

	s := kv.StrKey("7")
	assert.True(t, s.IsString())
	str, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "7", str)

	assert.NotEqual(t, i, s, "int 7 and string \"7\" are different keys")
	assert.Equal(t, kv.IntKey(0), kv.Key{}, "the zero Key is integer 0")
}

func TestKeyOf(t *testing.T) {
	type name string
	assert.Equal(t, kv.IntKey(3), kv.KeyOf(uint8(3)))
	assert.Equal(t, kv.IntKey(-3), kv.KeyOf(int64(-3)))
	assert.Equal(t, kv.StrKey("x"), kv.KeyOf(name("x")))
}

func TestParseKey(t *testing.T) {
	k, err := kv.ParseKey(int32(5))
	require.NoError(t, err)
	assert.Equal(t, kv.IntKey(5), k)

	k, err = kv.ParseKey("a")
	require.NoError(t, err)
	assert.Equal(t, kv.StrKey("a"), k)

	k, err = kv.ParseKey(kv.StrKey("b"))
	require.NoError(t, err)
	assert.Equal(t, kv.StrKey("b"), k)

	for _, bad := range []any{1.5, true, nil, []int{1}} {
		_, err := kv.ParseKey(bad)
		assert.ErrorIs(t, err, kv.ErrInvalidKey, "ParseKey(%v)", bad)
	}
}

func TestKeyAnyAndString(t *testing.T) {
	assert.Equal(t, any(4), kv.IntKey(4).Any())
	assert.Equal(t, any("k"), kv.StrKey("k").Any())
	assert.Equal(t, "-2", kv.IntKey(-2).String())
	assert.Equal(t, "name", kv.StrKey("name").String())
}

func TestCompareKeys(t *testing.T) {
	assert.Negative(t, kv.CompareKeys(kv.IntKey(1), kv.IntKey(2)))
	assert.Positive(t, kv.CompareKeys(kv.StrKey("b"), kv.StrKey("a")))
	assert.Negative(t, kv.CompareKeys(kv.IntKey(100), kv.StrKey("0")), "ints sort before strings")
	assert.Zero(t, kv.CompareKeys(kv.StrKey("a"), kv.StrKey("a")))
}

func TestTextKey(t *testing.T) {
	cases := map[string]kv.Key{
		"0":   kv.IntKey(0),
		"-3":  kv.IntKey(-3),
		"42":  kv.IntKey(42),
		"03":  kv.StrKey("03"),
		"+1":  kv.StrKey("+1"),
		"1.0": kv.StrKey("1.0"),
		"":    kv.StrKey(""),
		"id":  kv.StrKey("id"),
	}
	for in, want := range cases {
		assert.Equal(t, want, kv.TextKey(in), "TextKey(%q)", in)
	}
}

func TestErrorFormatting(t *testing.T) {
	err := kv.NewError("Chunk", kv.ErrInvalidArgument, "size", 0)
	assert.Equal(t, "kv: invalid argument (Chunk): size=0", err.Error())
	assert.True(t, errors.Is(err, kv.ErrInvalidArgument))
	assert.False(t, errors.Is(err, kv.ErrMissingKey))

	var kerr *kv.Error
	require.ErrorAs(t, error(err), &kerr)
	assert.Equal(t, "Chunk", kerr.Op)
	assert.Equal(t, 0, kerr.Context["size"])

	multi := kv.NewError("Get", kv.ErrMissingKey, "key", "b", "available", 2)
	assert.Equal(t, "kv: missing key (Get): available=2, key=b", multi.Error())

	bare := kv.NewError("", kv.ErrEmptyNotAllowed)
	assert.Equal(t, "kv: empty sequence not allowed", bare.Error())
}
