package engine

import (
	"cmp"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// compareNumbers orders two non-NaN numbers.
func compareNumbers[T number](a, b T) (int, bool) {
	return cmp.Compare(a, b), true
}

func isNaN[T number](v T) bool {
	return math.IsNaN(float64(v))
}

func never[T any](T) bool {
	return false
}

// bounds returns the run [lo, hi) of elements that compare equal to the key
// in a monotonic array of n elements.
//
// at(i) orders the key against element i and returns (key <=> values[i], ok).
// A failed comparison is reported as ok=false.
func bounds(n int, decreasing bool, at func(i int) (int, bool)) (lo, hi int, ok bool) {
	ok = true
	order := func(i int) int {
		c, fine := at(i)
		if !fine {
			ok = false
		}
		if decreasing {
			return -c
		}

		return c
	}

	// first element not below the key
	lo = sort.Search(n, func(i int) bool { return order(i) <= 0 })
	// first element above the key
	hi = lo + sort.Search(n-lo, func(i int) bool { return order(lo+i) < 0 })

	return lo, hi, ok
}

// insertion returns the searchsorted position of an absent key in a monotonic
// array: before equal elements for SideLeft, after them for SideRight.
// Decreasing arrays are searched as if reversed.
func insertion(n int, decreasing bool, right bool, at func(i int) (int, bool)) (int, bool) {
	lo, hi, ok := bounds(n, decreasing, at)
	if !ok {
		return 0, false
	}
	if right {
		return hi, true
	}

	return lo, true
}
