// Package arrowkeys converts Apache Arrow arrays into key arrays.
//
// Nulls become the missing value of the target kind: NaN for floating point
// arrays, NaT for timestamps and durations, and keys.NA for object arrays.
// Integer arrays that contain nulls are widened to float64 so the nulls can be
// held as NaN. Such an array fails with errs.ErrInexactFloat when one of its
// values is beyond ±2^53 and has no exact float64 value.
//
// Values are copied, so the Arrow array may be released after conversion.
package arrowkeys

import (
	"fmt"
	"math"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/google/uuid"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/keys"
)

type valued[T any] interface {
	arrow.Array
	Value(i int) T
}

// FromArrow converts arr into the matching key array.
//
// Supported types are the fixed-width integers and floats, string,
// large_string, bool, timestamp, duration and fixed_size_binary(16), which is
// read as uuid.UUID. Other types return an error matching
// errs.ErrUnsupportedKind.
func FromArrow(arr arrow.Array) (keys.Array, error) {
	switch a := arr.(type) {
	case *array.Int8:
		return fromNumeric[int8](a)
	case *array.Int16:
		return fromNumeric[int16](a)
	case *array.Int32:
		return fromNumeric[int32](a)
	case *array.Int64:
		return fromNumeric[int64](a)
	case *array.Uint8:
		return fromNumeric[uint8](a)
	case *array.Uint16:
		return fromNumeric[uint16](a)
	case *array.Uint32:
		return fromNumeric[uint32](a)
	case *array.Uint64:
		return fromNumeric[uint64](a)
	case *array.Float32:
		return fromNumeric[float32](a)
	case *array.Float64:
		return fromNumeric[float64](a)
	case *array.String:
		return fromObjects[string](a), nil
	case *array.LargeString:
		return fromObjects[string](a), nil
	case *array.Boolean:
		return fromObjects[bool](a), nil
	case *array.FixedSizeBinary:
		return fromUUIDs(a)
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		ns, err := toNanos[arrow.Timestamp](a, unit)
		if err != nil {
			return nil, err
		}

		return keys.DatetimesFromUnixNano(ns), nil
	case *array.Duration:
		unit := a.DataType().(*arrow.DurationType).Unit
		ns, err := toNanos[arrow.Duration](a, unit)
		if err != nil {
			return nil, err
		}

		return keys.TimedeltasFromNanos(ns), nil
	case nil:
		return nil, fmt.Errorf("%w: nil arrow array", errs.ErrUnsupportedKind)
	default:
		return nil, fmt.Errorf("%w: arrow type %s", errs.ErrUnsupportedKind, arr.DataType())
	}
}

func fromNumeric[T keys.Number](a valued[T]) (keys.Array, error) {
	n := a.Len()
	if a.NullN() == 0 {
		out := make([]T, n)
		for i := range out {
			out[i] = a.Value(i)
		}

		return keys.NewNumeric(out), nil
	}

	if keys.KindOf[T]().IsFloat() {
		out := make([]T, n)
		for i := range out {
			if a.IsNull(i) {
				out[i] = T(math.NaN())
			} else {
				out[i] = a.Value(i)
			}
		}

		return keys.NewNumeric(out), nil
	}

	out := make([]float64, n)
	for i := range out {
		if a.IsNull(i) {
			out[i] = math.NaN()
			continue
		}
		v := a.Value(i)
		f, exact := exactFloat(v)
		if !exact {
			return nil, fmt.Errorf("%w: %v at position %d", errs.ErrInexactFloat, v, i)
		}
		out[i] = f
	}

	return keys.NewNumeric(out), nil
}

// exactFloat converts an integer to float64, reporting whether no rounding
// happened.
func exactFloat[T keys.Number](v T) (float64, bool) {
	f := float64(v)
	if f >= 0x1p63 {
		// only uint64 reaches here
		return f, f < 0x1p64 && uint64(f) == uint64(v)
	}

	return f, int64(f) == int64(v)
}

func fromObjects[T any](a valued[T]) *keys.Objects {
	out := make([]any, a.Len())
	for i := range out {
		if a.IsNull(i) {
			out[i] = keys.NA
		} else {
			out[i] = a.Value(i)
		}
	}

	return keys.NewObjects(out)
}

func fromUUIDs(a *array.FixedSizeBinary) (*keys.Objects, error) {
	if width := a.DataType().(*arrow.FixedSizeBinaryType).ByteWidth; width != 16 {
		return nil, fmt.Errorf("%w: fixed_size_binary(%d), only 16 byte uuids are keys", errs.ErrUnsupportedKind, width)
	}

	out := make([]any, a.Len())
	for i := range out {
		if a.IsNull(i) {
			out[i] = keys.NA
			continue
		}
		id, err := uuid.FromBytes(a.Value(i))
		if err != nil {
			return nil, err
		}
		out[i] = id
	}

	return keys.NewObjects(out), nil
}

type temporal interface {
	~int64
}

func toNanos[T temporal](a valued[T], unit arrow.TimeUnit) ([]int64, error) {
	mult := int64(unit.Multiplier() / time.Nanosecond)
	out := make([]int64, a.Len())
	for i := range out {
		if a.IsNull(i) {
			out[i] = keys.NaT
			continue
		}
		v := int64(a.Value(i))
		if v > math.MaxInt64/mult || v <= math.MinInt64/mult {
			return nil, fmt.Errorf("%w: %d%s at position %d overflows int64 nanoseconds",
				errs.ErrInvalidArgument, v, unit, i)
		}
		out[i] = v * mult
	}

	return out, nil
}
