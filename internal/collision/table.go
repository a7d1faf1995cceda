package collision

// Table maps 64-bit key hashes to values and resolves hash collisions by
// comparing the original keys with an equality function.
//
// Most hashes own exactly one key, so the first key of each hash lives in a
// flat map and only colliding keys go to the overflow chains.
type Table[V any] struct {
	primary    map[uint64]slot[V]   // hash → first key stored under it
	overflow   map[uint64][]slot[V] // hash → later keys with the same hash
	equal      func(a, b any) bool
	count      int
	collisions int
}

type slot[V any] struct {
	key any
	val V
}

// NewTable creates an empty table sized for capacity keys.
func NewTable[V any](capacity int, equal func(a, b any) bool) *Table[V] {
	return &Table[V]{
		primary: make(map[uint64]slot[V], capacity),
		equal:   equal,
	}
}

// Get returns the value stored for key under hash.
func (t *Table[V]) Get(hash uint64, key any) (V, bool) {
	if s, ok := t.primary[hash]; ok {
		if t.equal(s.key, key) {
			return s.val, true
		}
		for _, o := range t.overflow[hash] {
			if t.equal(o.key, key) {
				return o.val, true
			}
		}
	}

	var zero V

	return zero, false
}

// Upsert stores fn(old, found) for key under hash.
// found reports whether key was already present; old is its previous value.
func (t *Table[V]) Upsert(hash uint64, key any, fn func(old V, found bool) V) {
	s, ok := t.primary[hash]
	if !ok {
		var zero V
		t.primary[hash] = slot[V]{key: key, val: fn(zero, false)}
		t.count++

		return
	}

	if t.equal(s.key, key) {
		s.val = fn(s.val, true)
		t.primary[hash] = s

		return
	}

	chain := t.overflow[hash]
	for i := range chain {
		if t.equal(chain[i].key, key) {
			chain[i].val = fn(chain[i].val, true)
			return
		}
	}

	// Different key, same hash
	if t.overflow == nil {
		t.overflow = make(map[uint64][]slot[V])
	}
	var zero V
	t.overflow[hash] = append(chain, slot[V]{key: key, val: fn(zero, false)})
	t.count++
	t.collisions++
}

// Len returns the number of distinct keys.
func (t *Table[V]) Len() int {
	return t.count
}

// HasCollision returns true if two distinct keys shared a hash.
func (t *Table[V]) HasCollision() bool {
	return t.collisions > 0
}

// Collisions returns the number of keys stored in overflow chains.
func (t *Table[V]) Collisions() int {
	return t.collisions
}

// Reset clears all keys while keeping the allocated capacity.
func (t *Table[V]) Reset() {
	clear(t.primary)
	clear(t.overflow)
	t.count = 0
	t.collisions = 0
}
