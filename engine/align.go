package engine

// filled returns n Missing positions.
func filled(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Missing
	}

	return out
}

// fill runs pad when forward is set, else backfill.
func fill[R, U any](forward bool, ref []R, targets []U, limit int, compare func(a R, b U) (int, bool)) []int {
	var out []int
	if forward {
		out, _ = pad(ref, targets, limit, compare)
	} else {
		out, _ = backfill(ref, targets, limit, compare)
	}

	return out
}

// pad maps every target to the last reference position whose value is ≤ the
// target. Both slices must be monotonic increasing. The reference and
// target element types may differ when compare orders them across types.
//
// limit caps the consecutive inexact fills taken from one reference element;
// a negative limit means no cap. ok is false when a pair could not be compared.
func pad[R, U any](ref []R, targets []U, limit int, compare func(a R, b U) (int, bool)) (out []int, ok bool) {
	out = filled(len(targets))
	if len(ref) == 0 || len(targets) == 0 {
		return out, true
	}

	i, fills := 0, 0
	for j, t := range targets {
		for i+1 < len(ref) {
			c, fine := compare(ref[i+1], t)
			if !fine {
				return filled(len(targets)), false
			}
			if c > 0 {
				break
			}
			i++
			fills = 0
		}

		c, fine := compare(ref[i], t)
		if !fine {
			return filled(len(targets)), false
		}
		switch {
		case c == 0:
			out[j] = i
		case c < 0 && (limit < 0 || fills < limit):
			out[j] = i
			fills++
		}
	}

	return out, true
}

// backfill maps every target to the first reference position whose value is
// ≥ the target. Both slices must be monotonic increasing.
//
// Targets are visited from the end so that the fill limit counts backwards
// from each reference element.
func backfill[R, U any](ref []R, targets []U, limit int, compare func(a R, b U) (int, bool)) (out []int, ok bool) {
	out = filled(len(targets))
	if len(ref) == 0 || len(targets) == 0 {
		return out, true
	}

	i, fills := len(ref)-1, 0
	for j := len(targets) - 1; j >= 0; j-- {
		t := targets[j]
		for i-1 >= 0 {
			c, fine := compare(ref[i-1], t)
			if !fine {
				return filled(len(targets)), false
			}
			if c < 0 {
				break
			}
			i--
			fills = 0
		}

		c, fine := compare(ref[i], t)
		if !fine {
			return filled(len(targets)), false
		}
		switch {
		case c == 0:
			out[j] = i
		case c > 0 && (limit < 0 || fills < limit):
			out[j] = i
			fills++
		}
	}

	return out, true
}
