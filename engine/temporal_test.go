package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/keys"
)

const day = 24 * time.Hour

func requireTypeMismatch(t *testing.T, e Engine, key any) {
	t.Helper()

	ok, err := e.Contains(key)
	require.False(t, ok)
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	require.NotErrorIs(t, err, errs.ErrKeyNotFound)

	var mismatch *errs.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, key, mismatch.Key)

	_, err = e.GetLoc(key)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestDatetimeEngine_NotContainsRequiresTime(t *testing.T) {
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

	dti1 := keys.DateRange(start, 3, day)
	dti2 := dti1.Insert(1, keys.NaT)           // non-monotonic
	dti3 := dti1.Insert(3, dti1.UnixNano()[0]) // non-unique
	arrays := []*keys.Datetimes{dti1, dti2, dti3}
	if !testing.Short() {
		dti4 := keys.DateRange(start, 2_000_000, time.Nanosecond)
		dti5 := dti4.Insert(0, dti4.UnixNano()[0]) // over size threshold, not unique
		arrays = append(arrays, dti4, dti5)
	}

	scalars := []any{
		time.Duration(start.UnixNano()),
		start.UnixNano(),
		int(start.UnixNano()),
		float64(start.UnixNano()),
		"2016-01-01",
	}

	for _, arr := range arrays {
		e := mustEngine(t, arr)
		for _, scalar := range scalars {
			requireTypeMismatch(t, e, scalar)
		}
	}
}

func TestTimedeltaEngine_NotContainsRequiresDuration(t *testing.T) {
	tdi1 := keys.TimedeltaRange(42*day, 1234, 9*time.Hour)
	tdi2 := tdi1.Insert(1, keys.NaT)        // non-monotonic
	tdi3 := tdi1.Insert(3, tdi1.Nanos()[0]) // non-unique
	arrays := []*keys.Timedeltas{tdi1, tdi2, tdi3}
	if !testing.Short() {
		tdi4 := keys.TimedeltaRange(42*day, 2_000_000, time.Nanosecond)
		tdi5 := tdi4.Insert(0, tdi4.Nanos()[0]) // over size threshold, not unique
		arrays = append(arrays, tdi4, tdi5)
	}

	scalars := []any{
		time.Unix(0, int64(42*day)).UTC(),
		int64(42 * day),
		float64(42 * day),
		"42 days",
	}

	for _, arr := range arrays {
		e := mustEngine(t, arr)
		for _, scalar := range scalars {
			requireTypeMismatch(t, e, scalar)
		}
	}
}

func TestDatetimeEngine_Lookups(t *testing.T) {
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	dti := keys.DateRange(start, 3, day)

	e := mustEngine(t, dti)
	loc, err := e.GetLoc(start.Add(day))
	require.NoError(t, err)
	require.Equal(t, Position(1), loc)

	// same instant in another zone
	ok, err := e.Contains(start.In(time.FixedZone("UTC+8", 8*3600)))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.Contains(start.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, ok)

	t.Run("missing", func(t *testing.T) {
		e := mustEngine(t, dti.Insert(1, keys.NaT))
		loc, err := e.GetLoc(keys.NA)
		require.NoError(t, err)
		require.Equal(t, Position(1), loc)

		loc, err = e.GetLoc(nil)
		require.NoError(t, err)
		require.Equal(t, Position(1), loc)

		loc, err = e.GetLoc(time.Time{})
		require.NoError(t, err)
		require.Equal(t, Position(1), loc)
	})

	t.Run("duplicates", func(t *testing.T) {
		e := mustEngine(t, dti.Insert(3, dti.UnixNano()[0]))
		loc, err := e.GetLoc(start)
		require.NoError(t, err)
		require.Equal(t, Mask{true, false, false, true}, loc)
	})

	t.Run("out of range instant", func(t *testing.T) {
		_, err := e.GetLoc(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, errs.ErrKeyNotFound)
		require.NotErrorIs(t, err, errs.ErrTypeMismatch)
	})
}

func TestDatetimeEngine_AboveSizeCutoff(t *testing.T) {
	if testing.Short() {
		t.Skip("large array")
	}

	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	dti := keys.DateRange(start, 2_000_000, time.Nanosecond)

	e := mustEngine(t, dti)
	loc, err := e.GetLoc(start.Add(10))
	require.NoError(t, err)
	require.Equal(t, Position(10), loc)
	require.False(t, e.IsMappingPopulated())

	e = mustEngine(t, dti.Insert(0, dti.UnixNano()[0]))
	require.Equal(t, 2_000_001, e.Len())
	loc, err = e.GetLoc(start)
	require.NoError(t, err)
	require.Equal(t, Range{Start: 0, Stop: 2}, loc)
	require.False(t, e.IsUnique())
	require.False(t, e.IsMappingPopulated())
}

func TestTemporalEngine_Batch(t *testing.T) {
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	dti := keys.DateRange(start, 5, time.Hour)
	e := mustEngine(t, dti)

	got, err := e.GetIndexer(keys.NewDatetimes([]time.Time{start.Add(2 * time.Hour), start.Add(time.Minute)}))
	require.NoError(t, err)
	require.Equal(t, []int{2, -1}, got)

	// other kinds never match, even with equal integer representations
	positions, missing := e.GetIndexerNonUnique(keys.NewNumeric(dti.UnixNano()))
	require.Equal(t, []int{-1, -1, -1, -1, -1}, positions)
	require.Equal(t, []int{0, 1, 2, 3, 4}, missing)

	positions, missing = e.GetIndexerNonUnique(keys.TimedeltasFromNanos(dti.UnixNano()))
	require.Equal(t, []int{-1, -1, -1, -1, -1}, positions)
	require.Len(t, missing, 5)

	padded, err := e.GetPadIndexer(keys.NewDatetimes([]time.Time{start.Add(-time.Hour), start.Add(90 * time.Minute)}))
	require.NoError(t, err)
	require.Equal(t, []int{-1, 1}, padded)

	tde := mustEngine(t, keys.TimedeltaRange(0, 4, time.Second))
	back, err := tde.GetBackfillIndexer(keys.NewTimedeltas([]time.Duration{500 * time.Millisecond, 3 * time.Second, 4 * time.Second}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, -1}, back)

	loc, err := tde.GetLoc(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, Position(2), loc)
}
