package engine

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// postings holds the positions of one key in storage order.
//
// Most keys occur once, so the first position is stored inline and the list
// is only allocated for duplicates.
type postings struct {
	first int
	rest  *roaring.Bitmap // positions after first, nil for a single occurrence
}

func single(pos int) postings {
	return postings{first: pos}
}

func (p postings) add(pos int) postings {
	if p.rest == nil {
		p.rest = roaring.New()
	}
	p.rest.Add(uint32(pos))

	return p
}

func (p postings) count() int {
	if p.rest == nil {
		return 1
	}

	return 1 + int(p.rest.GetCardinality())
}

// appendTo appends every position to dst in storage order.
func (p postings) appendTo(dst []int) []int {
	dst = append(dst, p.first)
	if p.rest == nil {
		return dst
	}

	it := p.rest.Iterator()
	for it.HasNext() {
		dst = append(dst, int(it.Next()))
	}

	return dst
}

// mask returns an n element mask with every position set.
func (p postings) mask(n int) Mask {
	m := make(Mask, n)
	m[p.first] = true
	if p.rest != nil {
		it := p.rest.Iterator()
		for it.HasNext() {
			m[it.Next()] = true
		}
	}

	return m
}

// index maps key values to their postings.
type index[T any] interface {
	// lookup returns the postings of key. Missing keys share one bucket.
	lookup(key T) (postings, bool)
	// distinct returns the number of distinct keys, the missing bucket included.
	distinct() int
	// unique reports whether no non-missing key occurs twice.
	unique() bool
}

// missingBucket collects the positions of every missing element.
type missingBucket struct {
	p     postings
	found bool
}

func (b *missingBucket) add(pos int) {
	if !b.found {
		b.p = single(pos)
		b.found = true

		return
	}
	b.p = b.p.add(pos)
}

// hashIndex is the index of fixed-width keys. Keys are stored unboxed.
type hashIndex[T comparable] struct {
	table     map[T]postings
	missing   missingBucket
	isMissing func(T) bool
	dup       bool
}

func newHashIndex[T comparable](values []T, isMissing func(T) bool) *hashIndex[T] {
	idx := &hashIndex[T]{
		table:     make(map[T]postings, len(values)),
		isMissing: isMissing,
	}

	for pos, v := range values {
		if isMissing(v) {
			idx.missing.add(pos)
			continue
		}

		p, ok := idx.table[v]
		if !ok {
			idx.table[v] = single(pos)
			continue
		}
		idx.table[v] = p.add(pos)
		idx.dup = true
	}

	return idx
}

func (h *hashIndex[T]) lookup(key T) (postings, bool) {
	if h.isMissing(key) {
		return h.missing.p, h.missing.found
	}

	p, ok := h.table[key]

	return p, ok
}

func (h *hashIndex[T]) distinct() int {
	n := len(h.table)
	if h.missing.found {
		n++
	}

	return n
}

func (h *hashIndex[T]) unique() bool {
	return !h.dup
}
