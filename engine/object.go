package engine

import (
	"github.com/arloliu/keyidx/keys"
)

// newObject creates the engine of a boxed key array.
func newObject(arr *keys.Objects, cfg *Config) *base[any] {
	return newBase(arr.Values(), arr.Kind(), objectOps(), cfg)
}

func objectOps() *ops[any] {
	return &ops[any]{
		compare: keys.Compare,
		missing: keys.IsNA,
		cast: func(key any) (any, keys.Cast) {
			return key, keys.CastOK
		},
		order: keys.Compare,
		extract: func(arr keys.Array) ([]any, bool) {
			a, ok := arr.(*keys.Objects)
			if !ok {
				return nil, false
			}

			return a.Values(), true
		},
		convert: boxTargets,
		build: func(values []any) index[any] {
			return newObjectIndex(values)
		},
	}
}

// boxTargets accepts targets of every kind.
func boxTargets(arr keys.Array) ([]any, []bool, bool) {
	if a, ok := arr.(*keys.Objects); ok {
		return a.Values(), nil, true
	}

	vals := make([]any, arr.Len())
	for i := range vals {
		vals[i] = arr.Value(i)
	}

	return vals, nil, true
}
