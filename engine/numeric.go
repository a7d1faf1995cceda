package engine

import (
	"github.com/arloliu/keyidx/keys"
)

// newNumeric creates the engine of a fixed-width integer or float array.
// Float engines treat NaN as the missing value.
func newNumeric[T keys.Number](arr *keys.Numeric[T], cfg *Config) *base[T] {
	return newBase(arr.Values(), arr.Kind(), numericOps[T](), cfg)
}

func numericOps[T keys.Number]() *ops[T] {
	missing := never[T]
	if keys.KindOf[T]().IsFloat() {
		missing = isNaN[T]
	}

	return &ops[T]{
		compare: compareNumbers[T],
		missing: missing,
		cast:    keys.CastNumber[T],
		order: func(key any, v T) (int, bool) {
			return keys.Compare(key, v)
		},
		extract: func(arr keys.Array) ([]T, bool) {
			a, ok := arr.(*keys.Numeric[T])
			if !ok {
				return nil, false
			}

			return a.Values(), true
		},
		convert: convertNumbers[T],
		build: func(values []T) index[T] {
			return newHashIndex(values, missing)
		},
	}
}

// convertNumbers casts the targets of any numeric kind to T. Targets that
// have no exact T representation are not present.
func convertNumbers[T keys.Number](arr keys.Array) ([]T, []bool, bool) {
	if a, ok := arr.(*keys.Numeric[T]); ok {
		return a.Values(), nil, true
	}
	if !arr.Kind().IsNumeric() {
		return nil, nil, false
	}

	n := arr.Len()
	vals := make([]T, n)
	present := make([]bool, n)
	for i := range n {
		v, res := keys.CastNumber[T](arr.Value(i))
		if res == keys.CastOK {
			vals[i] = v
			present[i] = true
		}
	}

	return vals, present, true
}
