package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
	"github.com/arloliu/keyidx/keys"
)

// ops is the element-type specific behaviour a base engine is built from.
type ops[T any] struct {
	// compare orders two non-missing elements; ok is false when they have no order.
	compare func(a, b T) (int, bool)
	// missing reports whether an element is a missing value.
	missing func(T) bool
	// cast converts a single query key to the element type.
	cast func(key any) (T, keys.Cast)
	// order compares a query key the cast could not represent against an element.
	order func(key any, v T) (int, bool)
	// extract returns the elements of an array of the same kind.
	extract func(arr keys.Array) ([]T, bool)
	// convert returns batch targets as elements; present[i] is false for targets
	// that cannot equal any element. A nil present means all are present.
	convert func(arr keys.Array) (vals []T, present []bool, ok bool)
	// build creates the hash index.
	build func(values []T) index[T]
}

// base implements Engine for one element type.
//
// The backing slice is never modified. Cached state is computed on first use
// under mu and never recomputed.
type base[T any] struct {
	values []T
	kind   format.Kind
	ops    *ops[T]
	cfg    *Config

	mu         sync.Mutex
	increasing tristate
	decreasing tristate
	strict     tristate
	unique     tristate
	idx        index[T]
}

func newBase[T any](values []T, kind format.Kind, o *ops[T], cfg *Config) *base[T] {
	return &base[T]{
		values: values,
		kind:   kind,
		ops:    o,
		cfg:    cfg,
	}
}

func (b *base[T]) sealed() {}

func (b *base[T]) Kind() format.Kind { return b.kind }

func (b *base[T]) Len() int { return len(b.values) }

// IsMonotonicIncreasing reports whether every element is ≥ its predecessor.
func (b *base[T]) IsMonotonicIncreasing() bool {
	return b.monotonicity().increasing
}

// IsMonotonicDecreasing reports whether every element is ≤ its predecessor.
func (b *base[T]) IsMonotonicDecreasing() bool {
	return b.monotonicity().decreasing
}

// IsUnique reports whether no non-missing key occurs twice.
func (b *base[T]) IsUnique() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.uniqueLocked()
}

// IsMappingPopulated reports whether the hash index has been built.
func (b *base[T]) IsMappingPopulated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.idx != nil
}

func (b *base[T]) monotonicity() monotonicity {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.monotonicityLocked()
}

func (b *base[T]) monotonicityLocked() monotonicity {
	if !b.increasing.known() {
		m := analyze(b.values, b.ops.compare, b.ops.missing)
		b.increasing = stateOf(m.increasing)
		b.decreasing = stateOf(m.decreasing)
		b.strict = stateOf(m.strict)
		if m.monotonic() {
			b.unique = stateOf(m.strict)
		}

		b.cfg.logger.Debug("monotonicity analysed",
			slog.String("kind", b.kind.String()),
			slog.Int("size", len(b.values)),
			slog.Bool("increasing", m.increasing),
			slog.Bool("decreasing", m.decreasing),
		)
	}

	return monotonicity{
		increasing: b.increasing.value(),
		decreasing: b.decreasing.value(),
		strict:     b.strict.value(),
	}
}

// uniqueLocked needs the hash index only for non-monotonic arrays.
func (b *base[T]) uniqueLocked() bool {
	if !b.unique.known() {
		if m := b.monotonicityLocked(); m.monotonic() {
			b.unique = stateOf(m.strict)
		} else {
			b.unique = stateOf(b.mappingLocked().unique())
		}
	}

	return b.unique.value()
}

func (b *base[T]) mapping() index[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.mappingLocked()
}

func (b *base[T]) mappingLocked() index[T] {
	if b.idx != nil {
		return b.idx
	}

	start := time.Now()
	b.idx = b.ops.build(b.values)
	elapsed := time.Since(start)

	attrs := []any{
		slog.String("kind", b.kind.String()),
		slog.Int("size", len(b.values)),
		slog.Int("distinct", b.idx.distinct()),
		slog.Bool("unique", b.idx.unique()),
		slog.Duration("duration", elapsed),
	}
	if c, ok := b.idx.(interface{ collisions() int }); ok {
		attrs = append(attrs, slog.Int("collisions", c.collisions()))
	}
	b.cfg.logger.Debug("hash index built", attrs...)

	if b.cfg.metrics {
		observeBuild(b.kind, elapsed)
	}

	return b.idx
}

// castKey converts a lookup key, failing with a KeyError when it cannot be present.
func (b *base[T]) castKey(key any) (T, error) {
	v, res := b.ops.cast(key)
	switch res {
	case keys.CastOK:
		return v, nil
	case keys.CastMismatch:
		return v, errs.KeyErrorWithCause(key, errs.NewTypeMismatchError(key, b.kind.String()))
	default:
		return v, errs.NewKeyError(key)
	}
}

// GetLoc returns the location of key.
//
// A unique array yields a Position. Duplicates in a monotonic array yield the
// Range of equal elements, otherwise a Mask. Absent keys fail with a
// *errs.KeyError; keys of an incompatible type additionally match
// errs.ErrTypeMismatch.
//
// Missing values never make an array non-unique, so a missing key on a unique
// array resolves to the first missing position only. GetIndexerNonUnique
// reports every missing position.
func (b *base[T]) GetLoc(key any) (Loc, error) {
	v, err := b.castKey(key)
	if err != nil {
		b.observeLookup(nil, err)
		return nil, err
	}

	loc, err := b.locate(key, v)
	b.observeLookup(loc, err)

	return loc, err
}

func (b *base[T]) locate(key any, v T) (Loc, error) {
	b.mu.Lock()
	mono := b.monotonicityLocked()
	overCutoff := len(b.values) > b.cfg.sizeCutoff && mono.increasing
	var idx index[T]
	unique := mono.strict
	if !mono.monotonic() {
		unique = b.uniqueLocked()
	}
	if !overCutoff && (unique || !mono.monotonic()) {
		idx = b.mappingLocked()
	}
	b.mu.Unlock()

	// monotonic arrays of two or more elements hold no missing values
	if mono.monotonic() && len(b.values) > 1 && b.ops.missing(v) {
		return nil, errs.NewKeyError(key)
	}

	if mono.monotonic() && (overCutoff || !unique) {
		lo, hi, ok := bounds(len(b.values), mono.decreasing && !mono.increasing, b.seek(v))
		switch {
		case !ok || lo == hi:
			return nil, errs.NewKeyError(key)
		case unique:
			return Position(lo), nil
		default:
			return Range{Start: lo, Stop: hi}, nil
		}
	}

	p, ok := idx.lookup(v)
	if !ok {
		return nil, errs.NewKeyError(key)
	}
	if unique {
		return Position(p.first), nil
	}

	return p.mask(len(b.values)), nil
}

// seek orders v against element i.
func (b *base[T]) seek(v T) func(i int) (int, bool) {
	return func(i int) (int, bool) {
		return b.ops.compare(v, b.values[i])
	}
}

// Contains reports whether key is present. Keys of an incompatible type are
// reported as absent.
func (b *base[T]) Contains(key any) (bool, error) {
	_, err := b.GetLoc(key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errs.ErrKeyNotFound) {
		return false, nil
	}

	return false, err
}

// GetSliceBound returns the slice boundary of key for the given side.
//
// A present key bounds its occurrences: the first position for SideLeft, one
// past the last for SideRight. An absent key in a monotonic array bounds at
// its insertion point. Non-contiguous duplicates cannot bound a slice.
func (b *base[T]) GetSliceBound(key any, side format.Side) (int, error) {
	if side != format.SideLeft && side != format.SideRight {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidSide, side)
	}

	loc, err := b.GetLoc(key)
	if err == nil {
		return sliceBound(key, loc, side)
	}
	if errors.Is(err, errs.ErrTypeMismatch) {
		return 0, err
	}

	mono := b.monotonicity()
	if !mono.monotonic() {
		return 0, err
	}

	var at func(i int) (int, bool)
	if v, res := b.ops.cast(key); res == keys.CastOK && !b.ops.missing(v) {
		at = b.seek(v)
	} else {
		at = func(i int) (int, bool) { return b.ops.order(key, b.values[i]) }
	}

	pos, ok := insertion(len(b.values), mono.decreasing && !mono.increasing, side == format.SideRight, at)
	if !ok {
		return 0, err
	}

	return pos, nil
}

func sliceBound(key any, loc Loc, side format.Side) (int, error) {
	var r Range
	switch l := loc.(type) {
	case Position:
		r = Range{Start: int(l), Stop: int(l) + 1}
	case Range:
		r = l
	case Mask:
		var ok bool
		if r, ok = l.contiguous(); !ok {
			return 0, errs.KeyErrorWithCause(key, fmt.Errorf("cannot get %s slice bound for non-unique label", side))
		}
	}

	if side == format.SideLeft {
		return r.Start, nil
	}

	return r.Stop, nil
}

// GetPadIndexer maps every target to the last position whose key is ≤ the
// target, or Missing. The engine and the targets must be monotonic increasing.
// Numeric engines accept targets of any numeric kind.
func (b *base[T]) GetPadIndexer(targets keys.Array, opts ...AlignOption) ([]int, error) {
	return b.align(targets, opts, true)
}

// GetBackfillIndexer maps every target to the first position whose key is ≥
// the target, or Missing. The engine and the targets must be monotonic increasing.
// Numeric engines accept targets of any numeric kind.
func (b *base[T]) GetBackfillIndexer(targets keys.Array, opts ...AlignOption) ([]int, error) {
	return b.align(targets, opts, false)
}

func (b *base[T]) align(targets keys.Array, opts []AlignOption, forward bool) ([]int, error) {
	cfg, err := newAlignConfig(opts)
	if err != nil {
		return nil, err
	}
	if !b.IsMonotonicIncreasing() {
		return nil, fmt.Errorf("%w: reference keys", errs.ErrNotMonotonic)
	}

	if vals, ok := b.ops.extract(targets); ok {
		if !analyze(vals, b.ops.compare, b.ops.missing).increasing {
			return nil, fmt.Errorf("%w: target keys", errs.ErrNotMonotonic)
		}

		return fill(forward, b.values, vals, cfg.limit, b.ops.compare), nil
	}

	if !b.kind.IsNumeric() || !targets.Kind().IsNumeric() {
		return filled(targets.Len()), nil
	}

	// numbers of another kind are ordered by value
	boxed := make([]any, targets.Len())
	for i := range boxed {
		boxed[i] = targets.Value(i)
	}
	if !analyze(boxed, keys.Compare, keys.IsNA).increasing {
		return nil, fmt.Errorf("%w: target keys", errs.ErrNotMonotonic)
	}

	return fill(forward, b.values, boxed, cfg.limit, func(v T, t any) (int, bool) {
		return keys.Compare(v, t)
	}), nil
}
