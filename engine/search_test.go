package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seekInts(values []int, key int) func(i int) (int, bool) {
	return func(i int) (int, bool) {
		return compareNumbers(key, values[i])
	}
}

func TestBounds_Increasing(t *testing.T) {
	values := []int{1, 2, 2, 2, 5, 7}
	tests := []struct {
		key    int
		lo, hi int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 4},
		{3, 4, 4},
		{7, 5, 6},
		{9, 6, 6},
	}
	for _, tt := range tests {
		lo, hi, ok := bounds(len(values), false, seekInts(values, tt.key))
		require.True(t, ok)
		require.Equal(t, tt.lo, lo, "key %d", tt.key)
		require.Equal(t, tt.hi, hi, "key %d", tt.key)
	}
}

func TestBounds_Decreasing(t *testing.T) {
	values := []int{7, 5, 2, 2, 2, 1}
	tests := []struct {
		key    int
		lo, hi int
	}{
		{9, 0, 0},
		{7, 0, 1},
		{2, 2, 5},
		{3, 2, 2},
		{1, 5, 6},
		{0, 6, 6},
	}
	for _, tt := range tests {
		lo, hi, ok := bounds(len(values), true, seekInts(values, tt.key))
		require.True(t, ok)
		require.Equal(t, tt.lo, lo, "key %d", tt.key)
		require.Equal(t, tt.hi, hi, "key %d", tt.key)
	}
}

func TestBounds_FailedComparison(t *testing.T) {
	_, _, ok := bounds(3, false, func(int) (int, bool) { return 0, false })
	require.False(t, ok)

	_, ok = insertion(3, false, true, func(int) (int, bool) { return 0, false })
	require.False(t, ok)
}

func TestInsertion(t *testing.T) {
	values := []int{10, 20, 20, 30}

	pos, ok := insertion(len(values), false, false, seekInts(values, 20))
	require.True(t, ok)
	require.Equal(t, 1, pos)

	pos, ok = insertion(len(values), false, true, seekInts(values, 20))
	require.True(t, ok)
	require.Equal(t, 3, pos)

	pos, ok = insertion(len(values), false, false, seekInts(values, 25))
	require.True(t, ok)
	require.Equal(t, 3, pos)

	pos, ok = insertion(0, false, false, seekInts(nil, 25))
	require.True(t, ok)
	require.Equal(t, 0, pos)
}
