package keys

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/keyidx/format"
)

func TestNumericKinds(t *testing.T) {
	require.Equal(t, format.KindInt8, Of[int8](1).Kind())
	require.Equal(t, format.KindInt16, Of[int16](1).Kind())
	require.Equal(t, format.KindInt32, Of[int32](1).Kind())
	require.Equal(t, format.KindInt64, Ints(1, 2).Kind())
	require.Equal(t, format.KindUint8, Of[uint8](1).Kind())
	require.Equal(t, format.KindUint16, Of[uint16](1).Kind())
	require.Equal(t, format.KindUint32, Of[uint32](1).Kind())
	require.Equal(t, format.KindUint64, Of[uint64](1).Kind())
	require.Equal(t, format.KindFloat32, Of[float32](1).Kind())
	require.Equal(t, format.KindFloat64, Of(1.5).Kind())
}

func TestNumericAccessors(t *testing.T) {
	arr := Ints(3, 1, 2)

	require.Equal(t, 3, arr.Len())
	require.Equal(t, int64(1), arr.Value(1))
	require.Equal(t, []int64{3, 1, 2}, arr.Values())
	require.Equal(t, []int64{2, 1, 3}, arr.Reverse().Values())
	require.Equal(t, []int64{3, 1, 2}, arr.Values(), "reverse must not modify the source")
}

func TestObjects(t *testing.T) {
	arr := Strings("a", "b")
	require.Equal(t, format.KindObject, arr.Kind())
	require.Equal(t, 2, arr.Len())
	require.Equal(t, "b", arr.Value(1))
	require.Equal(t, []any{"b", "a"}, arr.Reverse().Values())

	tuples := Tuples(Tuple{"A", 1}, Tuple{"B", 2})
	require.Equal(t, Tuple{"B", 2}, tuples.Value(1))
}

func TestIsNA(t *testing.T) {
	require.True(t, IsNA(nil))
	require.True(t, IsNA(NA))
	require.True(t, IsNA(math.NaN()))
	require.True(t, IsNA(float32(math.NaN())))
	require.False(t, IsNA(0))
	require.False(t, IsNA(""))
	require.False(t, IsNA(math.Inf(1)))
}

func TestDatetimes(t *testing.T) {
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	arr := DateRange(start, 3, 24*time.Hour)

	require.Equal(t, format.KindDatetime, arr.Kind())
	require.Equal(t, 3, arr.Len())
	require.Equal(t, start.Add(24*time.Hour), arr.Value(1))

	withNaT := arr.Insert(1, NaT)
	require.Equal(t, 4, withNaT.Len())
	require.Equal(t, NA, withNaT.Value(1))
	require.Equal(t, 3, arr.Len(), "insert must return a new array")

	fromTimes := NewDatetimes([]time.Time{start, {}})
	require.Equal(t, []int64{start.UnixNano(), NaT}, fromTimes.UnixNano())
}

func TestTimedeltas(t *testing.T) {
	arr := TimedeltaRange(42*24*time.Hour, 3, 9*time.Hour)

	require.Equal(t, format.KindTimedelta, arr.Kind())
	require.Equal(t, 42*24*time.Hour+9*time.Hour, arr.Value(1))

	withNaT := arr.Insert(0, NaT)
	require.Equal(t, NA, withNaT.Value(0))
	require.Equal(t, []int64{int64(time.Second)}, NewTimedeltas([]time.Duration{time.Second}).Nanos())
}

func TestEqual(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	tests := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{"same string", "a", "a", true},
		{"different string", "a", "b", false},
		{"int widths", int8(1), uint64(1), true},
		{"int and integral float", 1, 1.0, true},
		{"int and fractional float", 1, 1.5, false},
		{"string and number", "1", 1, false},
		{"missing values", nil, math.NaN(), true},
		{"missing and value", NA, 0, false},
		{"tuples", Tuple{"a", 1}, Tuple{"a", 1.0}, true},
		{"tuples differ", Tuple{"a", 1}, Tuple{"a", 2}, false},
		{"tuple lengths", Tuple{"a"}, Tuple{"a", 1}, false},
		{"tuple with missing", Tuple{"a", NA}, Tuple{"a", nil}, true},
		{"bools", true, true, true},
		{"uuid", id, id, true},
		{"durations", time.Second, time.Second, true},
		{"duration and int", time.Second, int64(time.Second), false},
		{"slices", []int{1}, []int{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
		ok   bool
	}{
		{"strings", "a", "b", -1, true},
		{"numbers across types", uint64(math.MaxUint64), int64(-1), 1, true},
		{"float and int", 2.5, 2, 1, true},
		{"equal numbers", int16(7), 7.0, 0, true},
		{"times", time.Unix(1, 0), time.Unix(2, 0), -1, true},
		{"tuples", Tuple{"a", 2}, Tuple{"a", 10}, -1, true},
		{"tuple prefix", Tuple{"a"}, Tuple{"a", 1}, -1, true},
		{"bools", false, true, -1, true},
		{"missing", NA, 1, 0, false},
		{"mixed families", "a", 1, 0, false},
		{"unordered", []int{1}, []int{2}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIntegralAndFloat(t *testing.T) {
	i, _, signed, ok := Integral(3.0)
	require.True(t, ok)
	require.True(t, signed)
	require.Equal(t, int64(3), i)

	_, u, signed, ok := Integral(uint64(math.MaxUint64))
	require.True(t, ok)
	require.False(t, signed)
	require.Equal(t, uint64(math.MaxUint64), u)

	_, _, _, ok = Integral(2.5)
	require.False(t, ok)
	_, _, _, ok = Integral("2")
	require.False(t, ok)

	f, ok := Float(int8(-4))
	require.True(t, ok)
	require.Equal(t, -4.0, f)
	require.True(t, IsNumber(uint16(1)))
	require.False(t, IsNumber(time.Second))
}

func TestCastNumber(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		v, c := CastNumber[int8](2)
		require.Equal(t, CastOK, c)
		require.Equal(t, int8(2), v)

		_, c = CastNumber[int8](300)
		require.Equal(t, CastAbsent, c)
		_, c = CastNumber[int8](2.5)
		require.Equal(t, CastAbsent, c)
		_, c = CastNumber[int8](NA)
		require.Equal(t, CastAbsent, c)
		_, c = CastNumber[int8]("2")
		require.Equal(t, CastMismatch, c)
		_, c = CastNumber[int8](true)
		require.Equal(t, CastMismatch, c)
	})

	t.Run("uint64", func(t *testing.T) {
		v, c := CastNumber[uint64](uint64(math.MaxUint64))
		require.Equal(t, CastOK, c)
		require.Equal(t, uint64(math.MaxUint64), v)

		_, c = CastNumber[uint64](-1)
		require.Equal(t, CastAbsent, c)
		v, c = CastNumber[uint64](2.0)
		require.Equal(t, CastOK, c)
		require.Equal(t, uint64(2), v)
	})

	t.Run("int64 rejects huge unsigned", func(t *testing.T) {
		_, c := CastNumber[int64](uint64(math.MaxUint64))
		require.Equal(t, CastAbsent, c)
	})

	t.Run("float32", func(t *testing.T) {
		v, c := CastNumber[float32](0.5)
		require.Equal(t, CastOK, c)
		require.Equal(t, float32(0.5), v)

		_, c = CastNumber[float32](0.1)
		require.Equal(t, CastAbsent, c)

		v, c = CastNumber[float32](NA)
		require.Equal(t, CastOK, c)
		require.True(t, math.IsNaN(float64(v)))
	})

	t.Run("float64", func(t *testing.T) {
		v, c := CastNumber[float64](int32(7))
		require.Equal(t, CastOK, c)
		require.Equal(t, 7.0, v)

		_, c = CastNumber[float64](int64(1<<53 + 1))
		require.Equal(t, CastAbsent, c)
		_, c = CastNumber[float64](time.Second)
		require.Equal(t, CastMismatch, c)
	})

	require.Equal(t, "Mismatch", CastMismatch.String())
}
