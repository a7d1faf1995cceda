package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/internal/pool"
	"github.com/arloliu/keyidx/keys"
)

// span is a half-open range of target indices handled by one worker.
type span struct {
	lo, hi int
}

// spans splits n targets across the configured workers. Small batches are
// never split.
func (b *base[T]) spans(n int) []span {
	workers := b.cfg.parallelism
	if workers <= 1 || n < parallelThreshold {
		return []span{{0, n}}
	}

	size := (n + workers - 1) / workers
	out := make([]span, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo, min(lo+size, n)})
	}

	return out
}

// each runs fn over every span, concurrently when there is more than one.
func (b *base[T]) each(spans []span, fn func(c int, s span)) {
	if len(spans) == 1 {
		fn(0, spans[0])
		return
	}

	var g errgroup.Group
	g.SetLimit(b.cfg.parallelism)
	for c, s := range spans {
		g.Go(func() error {
			fn(c, s)
			return nil
		})
	}
	_ = g.Wait()
}

// GetIndexer returns the position of every target, or Missing.
//
// Only unique engines support it; others fail with errs.ErrNonUniqueIndex.
// Targets of an incompatible kind are all Missing.
func (b *base[T]) GetIndexer(targets keys.Array) ([]int, error) {
	if !b.IsUnique() {
		return nil, errs.ErrNonUniqueIndex
	}

	n := targets.Len()
	out := filled(n)
	vals, present, ok := b.ops.convert(targets)
	if !ok {
		b.observeTargets(0, n)
		return out, nil
	}

	// built before fan-out so workers only read it
	idx := b.mapping()
	spans := b.spans(n)
	hits := make([]int, len(spans))
	b.each(spans, func(c int, s span) {
		for i := s.lo; i < s.hi; i++ {
			if present != nil && !present[i] {
				continue
			}
			if p, found := idx.lookup(vals[i]); found {
				out[i] = p.first
				hits[c]++
			}
		}
	})

	total := 0
	for _, h := range hits {
		total += h
	}
	b.observeTargets(total, n-total)

	return out, nil
}

type chunkResult struct {
	positions []int
	missing   []int
}

// GetIndexerNonUnique returns, in target order, every matching position of
// each target or a single Missing, together with the indices of the targets
// that had no match.
//
// Targets of an incompatible kind are all reported missing.
func (b *base[T]) GetIndexerNonUnique(targets keys.Array) (positions []int, missing []int) {
	n := targets.Len()
	vals, present, ok := b.ops.convert(targets)
	if !ok {
		missing = make([]int, n)
		for i := range missing {
			missing[i] = i
		}
		b.observeTargets(0, n)

		return filled(n), missing
	}

	idx := b.mapping()
	spans := b.spans(n)
	results := make([]chunkResult, len(spans))
	b.each(spans, func(c int, s span) {
		results[c] = lookupSpan(idx, vals, present, s)
	})

	if len(results) == 1 {
		positions, missing = results[0].positions, results[0].missing
	} else {
		total, misses := 0, 0
		for _, r := range results {
			total += len(r.positions)
			misses += len(r.missing)
		}
		positions = make([]int, 0, total)
		missing = make([]int, 0, misses)
		for _, r := range results {
			positions = append(positions, r.positions...)
			missing = append(missing, r.missing...)
		}
	}
	b.observeTargets(n-len(missing), len(missing))

	return positions, missing
}

func lookupSpan[T any](idx index[T], vals []T, present []bool, s span) chunkResult {
	scratch, cleanup := pool.GetIntSlice(s.hi - s.lo)
	defer cleanup()

	res := chunkResult{positions: make([]int, 0, s.hi-s.lo)}
	misses := 0
	for i := s.lo; i < s.hi; i++ {
		var (
			p     postings
			found bool
		)
		if present == nil || present[i] {
			p, found = idx.lookup(vals[i])
		}
		if !found {
			res.positions = append(res.positions, Missing)
			scratch[misses] = i
			misses++

			continue
		}
		res.positions = p.appendTo(res.positions)
	}

	res.missing = make([]int, misses)
	copy(res.missing, scratch[:misses])

	return res
}
