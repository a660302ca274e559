package kbucket

import "github.com/pkg/errors"

// IndexedKey is a Key able to count its leading zero bits.
type IndexedKey[K any] interface {
	Key[K]
	LeadingZeroer
}

// IndexedTable is the flat variant of Table: instead of splitting buckets
// lazily it addresses one bucket per shared prefix length with the own key.
// Bucket i holds the items whose distance to the own key has i leading zero
// bits; the own key itself and its last-bit neighbour share the last bucket.
//
// It honours the same capacity, arbitration, overflow and event rules as
// Table, trading adaptive splitting for constant time bucket addressing.
type IndexedTable[K IndexedKey[K], I Item[K]] struct {
	own     K
	bits    int
	buckets [][]I
	policy  bucketPolicy[K, I]
}

// NewIndexed creates a flat table owned by the given key.
func NewIndexed[K IndexedKey[K], I Item[K]](own K, options Options[I]) (*IndexedTable[K, I], error) {
	options, err := setDefaults(options)
	if err != nil {
		return nil, err
	}

	if own.BitLen() < 1 {
		return nil, ErrInvalidKey
	}

	t := &IndexedTable[K, I]{
		own:    own,
		bits:   own.BitLen(),
		policy: newBucketPolicy[K, I](options),
	}
	t.Clear()

	return t, nil
}

// index returns the bucket index of key.
func (t *IndexedTable[K, I]) index(key K) int {
	return min(t.own.Distance(key).LeadingZeros(), t.bits-1)
}

// OwnKey returns the local key.
func (t *IndexedTable[K, I]) OwnKey() K {
	return t.own
}

// Size returns the capacity of a bucket.
func (t *IndexedTable[K, I]) Size() int {
	return t.policy.size
}

// Put adds or updates an item. Buckets never split, so a full bucket always
// goes through the overflow policy.
func (t *IndexedTable[K, I]) Put(item I) (Outcome, error) {
	key := item.Key()
	if key.BitLen() != t.bits {
		return Ignored, errors.Wrapf(ErrKeyLengthMismatch, "got %d bits, table has %d", key.BitLen(), t.bits)
	}

	outcome, _, err := t.policy.place(&t.buckets[t.index(key)], item, false)

	return outcome, err
}

// Get returns the item with the given key.
func (t *IndexedTable[K, I]) Get(key K) (I, bool) {
	if key.BitLen() != t.bits {
		var zero I
		return zero, false
	}

	b := t.buckets[t.index(key)]
	if i := indexOf(b, key); i >= 0 {
		return b[i], true
	}

	var zero I
	return zero, false
}

// Has returns true if an item with the given key is in the table.
func (t *IndexedTable[K, I]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes the item with the given key and returns it.
func (t *IndexedTable[K, I]) Delete(key K) (I, bool) {
	if key.BitLen() != t.bits {
		var zero I
		return zero, false
	}

	return t.policy.remove(&t.buckets[t.index(key)], key)
}

// Count returns the number of items in the table.
func (t *IndexedTable[K, I]) Count() int {
	count := 0
	for _, b := range t.buckets {
		count += len(b)
	}

	return count
}

// Bucket returns a copy of bucket i, nil when i is out of range.
func (t *IndexedTable[K, I]) Bucket(i int) []I {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}

	return append([]I{}, t.buckets[i]...)
}

// ToSlice returns all items, farthest bucket first.
func (t *IndexedTable[K, I]) ToSlice() []I {
	items := make([]I, 0, t.Count())
	for _, b := range t.buckets {
		items = append(items, b...)
	}

	return items
}

// Closest returns the n items closest to key, nearest first.
func (t *IndexedTable[K, I]) Closest(key K, n int) []I {
	if key.BitLen() != t.bits || n <= 0 {
		return nil
	}

	return closest(t.ToSlice(), key, n)
}

// Clear removes all items from the table.
func (t *IndexedTable[K, I]) Clear() {
	t.buckets = make([][]I, t.bits)
}

// SetArbiterFn overrides the arbiter function.
func (t *IndexedTable[K, I]) SetArbiterFn(arbiterFn ArbiterFn[I]) {
	t.policy.arbiterFn = arbiterFn
}
