package keys

import (
	"bytes"
	"cmp"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	twoPow63 = 9223372036854775808.0
	twoPow64 = 18446744073709551616.0
)

// Equal reports whether a and b denote the same key.
//
// Missing values are equal to each other and to nothing else. Numbers are equal
// when their values are, regardless of Go type. Tuples are equal element-wise.
func Equal(a, b any) bool {
	naA, naB := IsNA(a), IsNA(b)
	if naA || naB {
		return naA && naB
	}

	if c, ok := compareOrdered(a, b); ok {
		return c == 0
	}

	switch x := a.(type) {
	case Tuple:
		y, ok := b.(Tuple)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}

		return true
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

// Compare orders a and b, returning -1, 0 or +1.
//
// ok is false when the pair has no defined order: either value is missing, the
// values belong to different families, or the family is unordered.
func Compare(a, b any) (int, bool) {
	if IsNA(a) || IsNA(b) {
		return 0, false
	}

	return compareOrdered(a, b)
}

func compareOrdered(a, b any) (int, bool) {
	if na, ok := numberOf(a); ok {
		nb, ok := numberOf(b)
		if !ok {
			return 0, false
		}

		return compareNumbers(na, nb), true
	}

	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}

		return strings.Compare(x, y), true
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, false
		}

		return compareBools(x, y), true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}

		return x.Compare(y), true
	case time.Duration:
		y, ok := b.(time.Duration)
		if !ok {
			return 0, false
		}

		return cmp.Compare(x, y), true
	case uuid.UUID:
		y, ok := b.(uuid.UUID)
		if !ok {
			return 0, false
		}

		return bytes.Compare(x[:], y[:]), true
	case Tuple:
		y, ok := b.(Tuple)
		if !ok {
			return 0, false
		}

		return compareTuples(x, y)
	}

	return 0, false
}

func compareBools(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

func compareTuples(x, y Tuple) (int, bool) {
	n := min(len(x), len(y))
	for i := range n {
		c, ok := Compare(x[i], y[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}

	return cmp.Compare(len(x), len(y)), true
}

type numClass uint8

const (
	numSigned numClass = iota + 1
	numUnsigned
	numFloat
)

// number is a Go number normalised to one of three representations.
type number struct {
	class numClass
	i     int64
	u     uint64
	f     float64
}

func numberOf(v any) (number, bool) {
	switch x := v.(type) {
	case int:
		return number{class: numSigned, i: int64(x)}, true
	case int8:
		return number{class: numSigned, i: int64(x)}, true
	case int16:
		return number{class: numSigned, i: int64(x)}, true
	case int32:
		return number{class: numSigned, i: int64(x)}, true
	case int64:
		return number{class: numSigned, i: x}, true
	case uint:
		return unsignedNumber(uint64(x)), true
	case uint8:
		return unsignedNumber(uint64(x)), true
	case uint16:
		return unsignedNumber(uint64(x)), true
	case uint32:
		return unsignedNumber(uint64(x)), true
	case uint64:
		return unsignedNumber(x), true
	case float32:
		return floatNumber(float64(x)), true
	case float64:
		return floatNumber(x), true
	default:
		return number{}, false
	}
}

func unsignedNumber(u uint64) number {
	if u <= math.MaxInt64 {
		return number{class: numSigned, i: int64(u)}
	}

	return number{class: numUnsigned, u: u}
}

// floatNumber stores integral floats as integers so 1.0 and 1 share a representation.
func floatNumber(f float64) number {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		switch {
		case f >= -twoPow63 && f < twoPow63:
			return number{class: numSigned, i: int64(f)}
		case f >= twoPow63 && f < twoPow64:
			return number{class: numUnsigned, u: uint64(f)}
		}
	}

	return number{class: numFloat, f: f}
}

func (n number) float() float64 {
	switch n.class {
	case numSigned:
		return float64(n.i)
	case numUnsigned:
		return float64(n.u)
	default:
		return n.f
	}
}

func compareNumbers(a, b number) int {
	switch {
	case a.class == numSigned && b.class == numSigned:
		return cmp.Compare(a.i, b.i)
	case a.class == numUnsigned && b.class == numUnsigned:
		return cmp.Compare(a.u, b.u)
	case a.class == numSigned && b.class == numUnsigned:
		// every unsigned-class value exceeds MaxInt64
		return -1
	case a.class == numUnsigned && b.class == numSigned:
		return 1
	default:
		return cmp.Compare(a.float(), b.float())
	}
}

// Integral returns the exact integer value of a Go number.
// signed reports which of i and u holds it; ok is false for non-numbers,
// fractional or non-finite floats.
func Integral(v any) (i int64, u uint64, signed bool, ok bool) {
	n, isNum := numberOf(v)
	if !isNum {
		return 0, 0, false, false
	}

	switch n.class {
	case numSigned:
		return n.i, 0, true, true
	case numUnsigned:
		return 0, n.u, false, true
	default:
		return 0, 0, false, false
	}
}

// Float returns v as a float64 when v is a Go number.
func Float(v any) (float64, bool) {
	n, ok := numberOf(v)
	if !ok {
		return 0, false
	}

	return n.float(), true
}

// IsNumber reports whether v is a Go integer or floating point value.
func IsNumber(v any) bool {
	_, ok := numberOf(v)
	return ok
}
