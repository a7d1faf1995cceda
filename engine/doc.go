// Package engine implements lookup engines over immutable key arrays.
//
// An Engine wraps one keys.Array and answers exact lookups, batch lookups and
// nearest-neighbour alignment against it. The engine variant is chosen once by
// New from the concrete array type:
//
//   - keys.Numeric[T] for every fixed-width integer and float type; float
//     engines treat NaN as the missing value
//   - keys.Objects for boxed keys such as strings, tuples and mixed values
//   - keys.Datetimes and keys.Timedeltas, which only accept time.Time and
//     time.Duration keys respectively
//
// # Lookup results
//
// GetLoc returns a Loc whose shape depends on the array:
//
//   - Position when the array is unique
//   - Range when the key is duplicated in a monotonic array
//   - Mask when the key is duplicated in a non-monotonic array
//
// Absent keys fail with an error matching errs.ErrKeyNotFound. A key whose
// type the engine cannot compare also matches errs.ErrTypeMismatch.
//
// # Caching
//
// Monotonicity and uniqueness are computed in one scan on first use. The hash
// index is built on the first lookup that needs it; monotonic arrays longer
// than the size cutoff are searched by bisection instead. Cached state is
// never recomputed, so an engine must be discarded when its array is replaced.
//
// Example:
//
//	e, err := engine.New(keys.Ints(1, 1, 2, 2, 3))
//	if err != nil {
//	    return err
//	}
//	loc, _ := e.GetLoc(2) // engine.Range{Start: 2, Stop: 4}
//	pad, _ := e.GetPadIndexer(keys.Ints(0, 2, 5)) // [-1 3 4]
package engine
