package engine

import (
	"math"
	"time"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/keys"
)

var (
	minInstant = time.Unix(0, math.MinInt64+1)
	maxInstant = time.Unix(0, math.MaxInt64)
)

// temporalEngine is the int64 engine of datetime and timedelta arrays.
//
// Query keys must be of the array's temporal type. Raw integers and the other
// temporal type fail with a type mismatch even where their integer
// representation coincides.
type temporalEngine struct {
	*base[int64]
}

func newDatetime(arr *keys.Datetimes, cfg *Config) *temporalEngine {
	o := temporalOps(castInstant, func(arr keys.Array) ([]int64, bool) {
		a, ok := arr.(*keys.Datetimes)
		if !ok {
			return nil, false
		}

		return a.UnixNano(), true
	})

	return &temporalEngine{base: newBase(arr.UnixNano(), arr.Kind(), o, cfg)}
}

func newTimedelta(arr *keys.Timedeltas, cfg *Config) *temporalEngine {
	o := temporalOps(castDuration, func(arr keys.Array) ([]int64, bool) {
		a, ok := arr.(*keys.Timedeltas)
		if !ok {
			return nil, false
		}

		return a.Nanos(), true
	})

	return &temporalEngine{base: newBase(arr.Nanos(), arr.Kind(), o, cfg)}
}

// Contains reports whether key is present. Unlike the other engines, a key of
// the wrong type fails with *errs.TypeMismatchError.
func (e *temporalEngine) Contains(key any) (bool, error) {
	if _, res := e.ops.cast(key); res == keys.CastMismatch {
		return false, errs.NewTypeMismatchError(key, e.kind.String())
	}

	return e.base.Contains(key)
}

func temporalOps(cast func(any) (int64, keys.Cast), extract func(keys.Array) ([]int64, bool)) *ops[int64] {
	return &ops[int64]{
		compare: compareNumbers[int64],
		missing: isNaT,
		cast:    cast,
		order: func(any, int64) (int, bool) {
			return 0, false
		},
		extract: extract,
		convert: func(arr keys.Array) ([]int64, []bool, bool) {
			vals, ok := extract(arr)
			return vals, nil, ok
		},
		build: func(values []int64) index[int64] {
			return newHashIndex(values, isNaT)
		},
	}
}

func isNaT(v int64) bool {
	return v == keys.NaT
}

func isMissingMarker(key any) bool {
	return key == nil || key == keys.NA
}

// castInstant accepts time.Time and missing markers. The zero time is NaT.
func castInstant(key any) (int64, keys.Cast) {
	if isMissingMarker(key) {
		return keys.NaT, keys.CastOK
	}

	t, ok := key.(time.Time)
	switch {
	case !ok:
		return 0, keys.CastMismatch
	case t.IsZero():
		return keys.NaT, keys.CastOK
	case t.Before(minInstant) || t.After(maxInstant):
		return 0, keys.CastAbsent
	default:
		return t.UnixNano(), keys.CastOK
	}
}

// castDuration accepts time.Duration and missing markers.
func castDuration(key any) (int64, keys.Cast) {
	if isMissingMarker(key) {
		return keys.NaT, keys.CastOK
	}

	d, ok := key.(time.Duration)
	if !ok {
		return 0, keys.CastMismatch
	}

	return int64(d), keys.CastOK
}
