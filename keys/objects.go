package keys

import (
	"math"

	"github.com/arloliu/keyidx/format"
)

type naType struct{}

func (naType) String() string { return "NA" }

// NA is the generic missing key. It is accepted by every engine kind.
var NA any = naType{}

// Tuple is a multi-level key flattened into one comparable value.
type Tuple []any

// Objects is a key array of arbitrary comparable values.
type Objects struct {
	values []any
}

var _ Array = (*Objects)(nil)

// NewObjects wraps values without copying them.
func NewObjects(values []any) *Objects {
	return &Objects{values: values}
}

// Strings builds an object array from string values.
func Strings(values ...string) *Objects {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return NewObjects(out)
}

// Tuples builds an object array from tuple keys.
func Tuples(values ...Tuple) *Objects {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return NewObjects(out)
}

func (a *Objects) Kind() format.Kind { return format.KindObject }

func (a *Objects) Len() int { return len(a.values) }

func (a *Objects) Value(i int) any { return a.values[i] }

// Values returns the backing slice. It must not be modified.
func (a *Objects) Values() []any { return a.values }

// Reverse returns a new array holding the elements in reverse order.
func (a *Objects) Reverse() *Objects {
	out := make([]any, len(a.values))
	for i, v := range a.values {
		out[len(out)-1-i] = v
	}

	return NewObjects(out)
}

// IsNA reports whether v is a missing value: nil, NA, or a floating point NaN.
func IsNA(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case naType:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}
