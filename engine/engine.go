package engine

import (
	"fmt"
	"math"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
	"github.com/arloliu/keyidx/internal/options"
	"github.com/arloliu/keyidx/keys"
)

// Engine answers lookups over one immutable key array.
//
// An engine references its array without copying it and caches its
// monotonicity, uniqueness and hash index on first use. The caches are never
// recomputed; an engine over a replaced array must be discarded.
//
// Engines are safe for concurrent use.
type Engine interface {
	// Kind returns the element kind of the backing array.
	Kind() format.Kind
	// Len returns the length of the backing array.
	Len() int

	IsUnique() bool
	IsMonotonicIncreasing() bool
	IsMonotonicDecreasing() bool
	// IsMappingPopulated reports whether the hash index has been built.
	IsMappingPopulated() bool

	// GetLoc returns the Position, Range or Mask of key. A missing key on a
	// unique array yields the first missing position.
	GetLoc(key any) (Loc, error)
	// Contains reports whether GetLoc would succeed.
	Contains(key any) (bool, error)
	// GetIndexer returns the position of every target, or Missing. Missing
	// targets map to the first missing position.
	// It fails with errs.ErrNonUniqueIndex on non-unique arrays.
	GetIndexer(targets keys.Array) ([]int, error)
	// GetIndexerNonUnique returns every matching position of every target in
	// target order, Missing for targets without a match, and the indices of
	// those targets.
	GetIndexerNonUnique(targets keys.Array) (positions []int, missing []int)
	GetPadIndexer(targets keys.Array, opts ...AlignOption) ([]int, error)
	GetBackfillIndexer(targets keys.Array, opts ...AlignOption) ([]int, error)
	// GetSliceBound returns the slice boundary of key on the given side.
	GetSliceBound(key any, side format.Side) (int, error)

	sealed()
}

var (
	_ Engine = (*base[int64])(nil)
	_ Engine = (*base[any])(nil)
	_ Engine = (*temporalEngine)(nil)
)

// New creates the engine for arr.
//
// The engine is chosen from the concrete array type: fixed-width integer and
// float engines for keys.Numeric, the object engine for keys.Objects, and
// datetime and timedelta engines for keys.Datetimes and keys.Timedeltas.
//
// Returns errs.ErrUnsupportedKind for other Array implementations and
// errs.ErrTooManyKeys for arrays longer than 2^32-1 elements.
func New(arr keys.Array, opts ...Option) (Engine, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if arr == nil {
		return nil, fmt.Errorf("%w: nil array", errs.ErrUnsupportedKind)
	}
	if uint64(arr.Len()) > math.MaxUint32 {
		return nil, errs.ErrTooManyKeys
	}

	switch a := arr.(type) {
	case *keys.Numeric[int8]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[int16]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[int32]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[int64]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[uint8]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[uint16]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[uint32]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[uint64]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[float32]:
		return newNumeric(a, cfg), nil
	case *keys.Numeric[float64]:
		return newNumeric(a, cfg), nil
	case *keys.Objects:
		return newObject(a, cfg), nil
	case *keys.Datetimes:
		return newDatetime(a, cfg), nil
	case *keys.Timedeltas:
		return newTimedelta(a, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedKind, arr)
	}
}
