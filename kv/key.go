package kv

import (
	"cmp"
	"reflect"
	"strconv"
)

// Key is a sequence key: either an integer or a string.
//
// Key is comparable and can be used directly as a Go map key. The zero Key
// is the integer key 0.
type Key struct {
	str   string
	num   int
	isStr bool
}

// KeyLike is the set of Go types that convert losslessly into a [Key].
type KeyLike interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~string
}

// IntKey returns the integer key i.
func IntKey(i int) Key { return Key{num: i} }

// StrKey returns the string key s.
func StrKey(s string) Key { return Key{str: s, isStr: true} }

// KeyOf converts any integer- or string-shaped value into a Key.
func KeyOf[K KeyLike](k K) Key {
	rv := reflect.ValueOf(k)
	if rv.Kind() == reflect.String {
		return StrKey(rv.String())
	}
	if rv.CanInt() {
		return IntKey(int(rv.Int()))
	}
	return IntKey(int(rv.Uint()))
}

// ParseKey converts an untyped value into a Key. Accepted inputs are Key,
// Go integer types and strings; anything else fails with [ErrInvalidKey].
func ParseKey(v any) (Key, error) {
	switch k := v.(type) {
	case Key:
		return k, nil
	case string:
		return StrKey(k), nil
	case int:
		return IntKey(k), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int())), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return IntKey(int(rv.Uint())), nil
	case reflect.String:
		return StrKey(rv.String()), nil
	}
	return Key{}, newError("ParseKey", ErrInvalidKey, "key", v)
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// IsString reports whether k is a string key.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer value of k and true, or 0 and false for string keys.
func (k Key) Int() (int, bool) { return k.num, !k.isStr }

// Str returns the string value of k and true, or "" and false for integer keys.
func (k Key) Str() (string, bool) { return k.str, k.isStr }

// Any returns the key as an int or a string.
func (k Key) Any() any {
	if k.isStr {
		return k.str
	}
	return k.num
}

// String renders the key without quoting; it implements [fmt.Stringer].
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// CompareKeys orders integer keys numerically before string keys, and
// string keys lexically.
func CompareKeys(a, b Key) int {
	switch {
	case a.isStr && b.isStr:
		return cmp.Compare(a.str, b.str)
	case a.isStr:
		return 1
	case b.isStr:
		return -1
	}
	return cmp.Compare(a.num, b.num)
}
