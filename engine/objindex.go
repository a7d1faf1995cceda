package engine

import (
	"github.com/arloliu/keyidx/internal/collision"
	"github.com/arloliu/keyidx/internal/hash"
	"github.com/arloliu/keyidx/keys"
)

// objectIndex is the index of boxed keys.
//
// Keys are bucketed by their xxHash64 and told apart with keys.Equal, so
// 1, int8(1) and 1.0 are the same key.
type objectIndex struct {
	table   *collision.Table[postings]
	missing missingBucket
	dup     bool
}

func newObjectIndex(values []any) *objectIndex {
	idx := &objectIndex{
		table: collision.NewTable[postings](len(values), keys.Equal),
	}

	var pos int
	upsert := func(old postings, found bool) postings {
		if !found {
			return single(pos)
		}
		idx.dup = true

		return old.add(pos)
	}

	for i, v := range values {
		if keys.IsNA(v) {
			idx.missing.add(i)
			continue
		}
		pos = i
		idx.table.Upsert(hash.Object(v), v, upsert)
	}

	return idx
}

func (o *objectIndex) lookup(key any) (postings, bool) {
	if keys.IsNA(key) {
		return o.missing.p, o.missing.found
	}

	return o.table.Get(hash.Object(key), key)
}

func (o *objectIndex) distinct() int {
	n := o.table.Len()
	if o.missing.found {
		n++
	}

	return n
}

func (o *objectIndex) unique() bool {
	return !o.dup
}

// collisions returns the number of distinct keys that shared a hash with another key.
func (o *objectIndex) collisions() int {
	return o.table.Collisions()
}
