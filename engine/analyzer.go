package engine

// monotonicity is the outcome of one scan over an array.
type monotonicity struct {
	increasing bool // every element ≥ its predecessor
	decreasing bool // every element ≤ its predecessor
	strict     bool // no two neighbours are equal; meaningful only when monotonic
}

func (m monotonicity) monotonic() bool {
	return m.increasing || m.decreasing
}

// analyze scans values once.
//
// Arrays of length 0 or 1 are increasing, decreasing and strict. Any adjacent
// pair involving a missing value, or a pair without a defined order, makes the
// whole array neither increasing nor decreasing.
func analyze[T any](values []T, compare func(a, b T) (int, bool), missing func(T) bool) monotonicity {
	res := monotonicity{increasing: true, decreasing: true, strict: true}
	if len(values) < 2 {
		return res
	}

	prev := values[0]
	if missing(prev) {
		return monotonicity{}
	}

	for _, cur := range values[1:] {
		if missing(cur) {
			return monotonicity{}
		}

		c, ok := compare(prev, cur)
		if !ok {
			return monotonicity{}
		}

		switch {
		case c < 0:
			res.decreasing = false
		case c > 0:
			res.increasing = false
		default:
			res.strict = false
		}

		if !res.monotonic() {
			return monotonicity{}
		}
		prev = cur
	}

	return res
}
