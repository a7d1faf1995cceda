package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange_Len(t *testing.T) {
	require.Equal(t, 1000, Range{Start: 1000, Stop: 2000}.Len())
	require.Equal(t, 0, Range{Start: 3, Stop: 3}.Len())
}

func TestMask(t *testing.T) {
	m := Mask{false, true, false, true, true}

	require.Equal(t, 3, m.Count())
	require.Equal(t, []int{1, 3, 4}, m.Positions())

	bm := m.Bitmap()
	require.Equal(t, uint64(3), bm.GetCardinality())
	require.Equal(t, []uint32{1, 3, 4}, bm.ToArray())
}

func TestMask_Contiguous(t *testing.T) {
	tests := []struct {
		name string
		mask Mask
		want Range
		ok   bool
	}{
		{"empty", Mask{}, Range{}, false},
		{"no match", Mask{false, false}, Range{}, false},
		{"single", Mask{false, true, false}, Range{1, 2}, true},
		{"run in the middle", Mask{false, true, true, false}, Range{1, 3}, true},
		{"run to the end", Mask{false, false, true, true}, Range{2, 4}, true},
		{"whole mask", Mask{true, true}, Range{0, 2}, true},
		{"two runs", Mask{true, false, true}, Range{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := tt.mask.contiguous()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, r)
		})
	}
}
