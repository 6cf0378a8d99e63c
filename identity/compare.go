package identity

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// rank orders values of different families when Compare meets them
// together.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

// Compare is the default three-way comparator used by the sorting helpers
// in package arr when the caller does not supply one. It returns a negative
// number, zero, or a positive number when a sorts before, equal to, or
// after b.
//
// Numbers compare by value across integer and float kinds, strings
// lexically, bools false before true, and keys with [kv.CompareKeys].
// Values of different families order nil < bool < number < string <
// everything else. Anything else is equal when its identity tokens match
// and otherwise ordered by token, which is stable but carries no meaning.
func Compare(a, b any) int {
	if ka, ok := a.(kv.Key); ok {
		if kb, ok := b.(kv.Key); ok {
			return kv.CompareKeys(ka, kb)
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	fa, fb := family(ra), family(rb)
	if fa != fb {
		return cmp.Compare(fa, fb)
	}
	switch fa {
	case rankNil:
		return 0
	case rankBool:
		return cmp.Compare(b2i(ra.Bool()), b2i(rb.Bool()))
	case rankNumber:
		return compareNumbers(ra, rb)
	case rankString:
		return strings.Compare(ra.String(), rb.String())
	}
	ta, tb := Tokenize(a), Tokenize(b)
	return strings.Compare(string(ta), string(tb))
}

func family(rv reflect.Value) int {
	switch rv.Kind() {
	case reflect.Invalid:
		return rankNil
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return rankNil
		}
	}
	return rankOther
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(rv reflect.Value) float64 {
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return rv.Float()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
