package keys

import (
	"math"
)

// Cast is the outcome of converting a query value to an array element type.
type Cast uint8

const (
	// CastOK means the value converted exactly.
	CastOK Cast = iota
	// CastAbsent means the value is of a compatible kind but cannot be stored
	// in the element type, so it cannot be present (2.5 or 300 for int8 keys).
	CastAbsent
	// CastMismatch means the value is of an incompatible structural kind.
	CastMismatch
)

func (c Cast) String() string {
	switch c {
	case CastOK:
		return "OK"
	case CastAbsent:
		return "Absent"
	case CastMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// CastNumber converts a query value to the element type T.
//
// Missing values convert to NaN for float types and are absent for integers.
// Booleans, strings and other non-numbers are a mismatch.
func CastNumber[T Number](v any) (T, Cast) {
	var zero T
	isFloat := KindOf[T]().IsFloat()

	if IsNA(v) {
		if isFloat {
			return T(math.NaN()), CastOK
		}

		return zero, CastAbsent
	}

	n, ok := numberOf(v)
	if !ok {
		return zero, CastMismatch
	}

	if isFloat {
		return castFloat[T](n)
	}

	switch n.class {
	case numSigned:
		t := T(n.i)
		if int64(t) != n.i || (t < 0) != (n.i < 0) {
			return zero, CastAbsent
		}

		return t, CastOK
	case numUnsigned:
		t := T(n.u)
		if uint64(t) != n.u || t < 0 {
			return zero, CastAbsent
		}

		return t, CastOK
	default:
		return zero, CastAbsent
	}
}

func castFloat[T Number](n number) (T, Cast) {
	f := n.float()
	t := T(f)
	if float64(t) != f && !math.IsNaN(f) {
		return t, CastAbsent
	}
	// integers beyond 2^53 lose precision on the way to float64
	if n.class == numSigned && (f >= twoPow63 || int64(f) != n.i) {
		return t, CastAbsent
	}
	if n.class == numUnsigned && (f >= twoPow64 || uint64(f) != n.u) {
		return t, CastAbsent
	}

	return t, CastOK
}
