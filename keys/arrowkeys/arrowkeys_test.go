package arrowkeys

import (
	"math"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/keyidx/engine"
	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
	"github.com/arloliu/keyidx/keys"
)

func checkedAllocator(t *testing.T) *memory.CheckedAllocator {
	t.Helper()

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })

	return mem
}

func TestFromArrow_Int64(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues([]int64{3, 1, 2}, nil)
	arr := b.NewInt64Array()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, format.KindInt64, got.Kind())
	require.Equal(t, []int64{3, 1, 2}, got.(*keys.Numeric[int64]).Values())
}

func TestFromArrow_IntegerNullsWiden(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewUint16Builder(mem)
	defer b.Release()
	b.AppendValues([]uint16{7, 0, 9}, []bool{true, false, true})
	arr := b.NewUint16Array()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, format.KindFloat64, got.Kind())

	values := got.(*keys.Numeric[float64]).Values()
	require.Equal(t, 7.0, values[0])
	require.True(t, math.IsNaN(values[1]))
	require.Equal(t, 9.0, values[2])
}

func TestFromArrow_IntegerNullsInexact(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues([]int64{1<<53 + 1, 0, 5}, []bool{true, false, true})
	arr := b.NewInt64Array()
	defer arr.Release()

	_, err := FromArrow(arr)
	require.ErrorIs(t, err, errs.ErrInexactFloat)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	ub := array.NewUint64Builder(mem)
	defer ub.Release()
	ub.AppendValues([]uint64{1 << 60, 0}, []bool{true, false})
	uarr := ub.NewUint64Array()
	defer uarr.Release()

	got, err := FromArrow(uarr)
	require.NoError(t, err)
	require.Equal(t, float64(1<<60), got.(*keys.Numeric[float64]).Values()[0])
}

func TestExactFloat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		exact bool
	}{
		{"small int64", int64(-42), true},
		{"int64 at 2^53", int64(1 << 53), true},
		{"int64 past 2^53", int64(1<<53 + 1), false},
		{"min int64", int64(math.MinInt64), true},
		{"max int64", int64(math.MaxInt64), false},
		{"uint64 at 2^63", uint64(1 << 63), true},
		{"max uint64", uint64(math.MaxUint64), false},
		{"int8", int8(-128), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exact bool
			switch v := tt.value.(type) {
			case int64:
				_, exact = exactFloat(v)
			case uint64:
				_, exact = exactFloat(v)
			case int8:
				_, exact = exactFloat(v)
			}
			require.Equal(t, tt.exact, exact)
		})
	}
}

func TestFromArrow_FloatNulls(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.Append(1.5)
	b.AppendNull()
	arr := b.NewFloat32Array()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, format.KindFloat32, got.Kind())

	values := got.(*keys.Numeric[float32]).Values()
	require.Equal(t, float32(1.5), values[0])
	require.True(t, math.IsNaN(float64(values[1])))
}

func TestFromArrow_Strings(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.AppendValues([]string{"b", "", "a"}, []bool{true, false, true})
	arr := b.NewStringArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, []any{"b", keys.NA, "a"}, got.(*keys.Objects).Values())

	e, err := engine.New(got)
	require.NoError(t, err)
	loc, err := e.GetLoc(nil)
	require.NoError(t, err)
	require.Equal(t, engine.Position(1), loc)
}

func TestFromArrow_Booleans(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewBooleanBuilder(mem)
	defer b.Release()
	b.AppendValues([]bool{true, false}, nil)
	arr := b.NewBooleanArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, []any{true, false}, got.(*keys.Objects).Values())
}

func TestFromArrow_UUIDs(t *testing.T) {
	mem := checkedAllocator(t)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	b := array.NewFixedSizeBinaryBuilder(mem, &arrow.FixedSizeBinaryType{ByteWidth: 16})
	defer b.Release()
	b.Append(id[:])
	b.AppendNull()
	arr := b.NewFixedSizeBinaryArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, []any{id, keys.NA}, got.(*keys.Objects).Values())

	nb := array.NewFixedSizeBinaryBuilder(mem, &arrow.FixedSizeBinaryType{ByteWidth: 8})
	defer nb.Release()
	nb.Append(make([]byte, 8))
	narrow := nb.NewFixedSizeBinaryArray()
	defer narrow.Release()

	_, err = FromArrow(narrow)
	require.ErrorIs(t, err, errs.ErrUnsupportedKind)
}

func TestFromArrow_Timestamps(t *testing.T) {
	mem := checkedAllocator(t)
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

	b := array.NewTimestampBuilder(mem, &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"})
	defer b.Release()
	b.Append(arrow.Timestamp(start.UnixMilli()))
	b.AppendNull()
	b.Append(arrow.Timestamp(start.Add(time.Hour).UnixMilli()))
	arr := b.NewTimestampArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, format.KindDatetime, got.Kind())
	require.Equal(t, []int64{start.UnixNano(), keys.NaT, start.Add(time.Hour).UnixNano()},
		got.(*keys.Datetimes).UnixNano())

	e, err := engine.New(got)
	require.NoError(t, err)
	loc, err := e.GetLoc(start.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, engine.Position(2), loc)
}

func TestFromArrow_TimestampOverflow(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewTimestampBuilder(mem, &arrow.TimestampType{Unit: arrow.Second})
	defer b.Release()
	b.Append(arrow.Timestamp(math.MaxInt64 / 10))
	arr := b.NewTimestampArray()
	defer arr.Release()

	_, err := FromArrow(arr)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestFromArrow_Durations(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewDurationBuilder(mem, &arrow.DurationType{Unit: arrow.Second})
	defer b.Release()
	b.AppendValues([]arrow.Duration{1, 0, 90}, []bool{true, false, true})
	arr := b.NewDurationArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, format.KindTimedelta, got.Kind())
	require.Equal(t, []int64{int64(time.Second), keys.NaT, int64(90 * time.Second)},
		got.(*keys.Timedeltas).Nanos())
}

func TestFromArrow_Unsupported(t *testing.T) {
	mem := checkedAllocator(t)

	b := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
	defer b.Release()
	b.Append([]byte("x"))
	arr := b.NewBinaryArray()
	defer arr.Release()

	_, err := FromArrow(arr)
	require.ErrorIs(t, err, errs.ErrUnsupportedKind)

	_, err = FromArrow(nil)
	require.ErrorIs(t, err, errs.ErrUnsupportedKind)
}
