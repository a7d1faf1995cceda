package engine

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Missing is the position reported for a target without a match.
const Missing = -1

// Loc is the result of GetLoc: a Position, a Range or a Mask.
//
// Use a type switch to inspect it:
//
//	switch l := loc.(type) {
//	case engine.Position:
//	case engine.Range:
//	case engine.Mask:
//	}
type Loc interface {
	isLoc()
}

// Position is the offset of the only occurrence of a key.
type Position int

// Range is the half-open run [Start, Stop) of contiguous occurrences.
type Range struct {
	Start int
	Stop  int
}

// Mask has one flag per array element, true where the element equals the key.
type Mask []bool

func (Position) isLoc() {}
func (Range) isLoc()    {}
func (Mask) isLoc()     {}

// Len returns the number of positions in the range.
func (r Range) Len() int {
	return r.Stop - r.Start
}

// Count returns the number of true flags.
func (m Mask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}

	return n
}

// Positions returns the offsets of the true flags in ascending order.
func (m Mask) Positions() []int {
	out := make([]int, 0, m.Count())
	for i, b := range m {
		if b {
			out = append(out, i)
		}
	}

	return out
}

// Bitmap returns the true positions as a roaring bitmap.
func (m Mask) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for i, b := range m {
		if b {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// contiguous returns the run covered by the mask when its true flags form a
// single run.
func (m Mask) contiguous() (Range, bool) {
	start := -1
	stop := -1
	for i, b := range m {
		switch {
		case b && start < 0:
			start = i
		case b && stop >= 0:
			// a second run started
			return Range{}, false
		case !b && start >= 0 && stop < 0:
			stop = i
		}
	}

	if start < 0 {
		return Range{}, false
	}
	if stop < 0 {
		stop = len(m)
	}

	return Range{Start: start, Stop: stop}, true
}
