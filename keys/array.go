package keys

import (
	"github.com/arloliu/keyidx/format"
)

// Array is an immutable sequence of keys of a single kind.
type Array interface {
	// Kind returns the element kind.
	Kind() format.Kind

	// Len returns the number of elements.
	Len() int

	// Value returns the i-th element boxed as a Go value.
	// Missing datetime and timedelta elements are returned as NA.
	Value(i int) any
}

// Number is the set of element types backing Numeric arrays.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Numeric is a fixed-width integer or floating point key array.
type Numeric[T Number] struct {
	values []T
	kind   format.Kind
}

var (
	_ Array = (*Numeric[int64])(nil)
	_ Array = (*Numeric[float64])(nil)
)

// NewNumeric wraps values without copying them.
func NewNumeric[T Number](values []T) *Numeric[T] {
	return &Numeric[T]{values: values, kind: KindOf[T]()}
}

// Of builds a Numeric array from its arguments.
func Of[T Number](values ...T) *Numeric[T] {
	return NewNumeric(values)
}

// Ints builds an int64 array from int values.
func Ints(values ...int) *Numeric[int64] {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}

	return NewNumeric(out)
}

// KindOf returns the kind that corresponds to the element type T.
func KindOf[T Number]() format.Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return format.KindInt8
	case int16:
		return format.KindInt16
	case int32:
		return format.KindInt32
	case int64:
		return format.KindInt64
	case uint8:
		return format.KindUint8
	case uint16:
		return format.KindUint16
	case uint32:
		return format.KindUint32
	case uint64:
		return format.KindUint64
	case float32:
		return format.KindFloat32
	case float64:
		return format.KindFloat64
	default:
		return format.KindInvalid
	}
}

func (a *Numeric[T]) Kind() format.Kind { return a.kind }

func (a *Numeric[T]) Len() int { return len(a.values) }

func (a *Numeric[T]) Value(i int) any { return a.values[i] }

// Values returns the backing slice. It must not be modified.
func (a *Numeric[T]) Values() []T { return a.values }

// Reverse returns a new array holding the elements in reverse order.
func (a *Numeric[T]) Reverse() *Numeric[T] {
	out := make([]T, len(a.values))
	for i, v := range a.values {
		out[len(out)-1-i] = v
	}

	return NewNumeric(out)
}
