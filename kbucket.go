package kbucket

import (
	"slices"

	"github.com/pkg/errors"
)

// Table is a Kademlia k-bucket routing table implemented as a binary tree.
//
// Items are kept in leaves ("buckets") of at most BucketSize items. A full
// bucket is split in two by one more bit of the keys, but only along the path
// of the table's own key; every other bucket keeps its first BucketSize items
// and handles further ones with the configured OverflowPolicy.
//
// A Table does no locking. Callers sharing a table between goroutines must
// guard it themselves.
type Table[K Key[K], I Item[K]] struct {
	own    K           // The local key.
	bits   int         // The bit length of every key in the table.
	root   *node[K, I] // The root node of the table.
	policy bucketPolicy[K, I]
}

// New creates a table owned by the given key.
func New[K Key[K], I Item[K]](own K, options Options[I]) (*Table[K, I], error) {
	options, err := setDefaults(options)
	if err != nil {
		return nil, err
	}

	if own.BitLen() < 1 {
		return nil, ErrInvalidKey
	}

	return &Table[K, I]{
		own:    own,
		bits:   own.BitLen(),
		root:   createNode[K, I](true),
		policy: newBucketPolicy[K, I](options),
	}, nil
}

// OwnKey returns the local key.
func (t *Table[K, I]) OwnKey() K {
	return t.own
}

// Size returns the capacity of a bucket.
func (t *Table[K, I]) Size() int {
	return t.policy.size
}

// Put adds an item to the table, or updates the stored item with the same
// key if the arbiter allows it.
//
// When the owning bucket is full it is split if it lies on the path of the
// own key; otherwise the overflow policy applies. Put returns an error only
// for keys of the wrong length or when OverflowReject refuses the item.
func (t *Table[K, I]) Put(item I) (Outcome, error) {
	key := item.Key()
	if key.BitLen() != t.bits {
		return Ignored, errors.Wrapf(ErrKeyLengthMismatch, "got %d bits, table has %d", key.BitLen(), t.bits)
	}

	// Every split adds one level to the own key path, so this loop runs at
	// most t.bits+1 times.
	for {
		leaf, depth := t.root.navigate(key)

		splittable := leaf.canSplit && depth < t.bits
		outcome, split, err := t.policy.place(&leaf.items, item, splittable)
		if !split {
			return outcome, err
		}

		own := t.own.BitAt(depth)
		leaf.split(depth, own, depth+1 >= t.bits)

		t.policy.log.Debug().
			Int("depth", depth).
			Bool("left", own == Left).
			Bool("right", own == Right).
			Msg("Splitting bucket")
	}
}

// Get returns the item with the given key.
func (t *Table[K, I]) Get(key K) (I, bool) {
	if key.BitLen() != t.bits {
		var zero I
		return zero, false
	}

	leaf, _ := t.root.navigate(key)

	if i := indexOf(leaf.items, key); i >= 0 {
		return leaf.items[i], true
	}

	var zero I
	return zero, false
}

// Has returns true if an item with the given key is in the table.
func (t *Table[K, I]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes the item with the given key and returns it. Buckets are
// never merged back after a delete.
func (t *Table[K, I]) Delete(key K) (I, bool) {
	if key.BitLen() != t.bits {
		var zero I
		return zero, false
	}

	leaf, _ := t.root.navigate(key)

	return t.policy.remove(&leaf.items, key)
}

// Count returns the number of items in the table.
func (t *Table[K, I]) Count() int {
	return t.root.count()
}

// ToSlice returns all items, bucket by bucket, lowest path first.
func (t *Table[K, I]) ToSlice() []I {
	items := make([]I, 0, t.Count())
	t.root.walk(nil, func(leaf *node[K, I], _ []Bit) {
		items = append(items, leaf.items...)
	})

	return items
}

// Closest returns the n items closest to key according to the key's
// distance metric, nearest first. Items at equal distance keep their
// ToSlice order.
func (t *Table[K, I]) Closest(key K, n int) []I {
	if key.BitLen() != t.bits || n <= 0 {
		return nil
	}

	return closest(t.ToSlice(), key, n)
}

// Clear removes all items from the table.
func (t *Table[K, I]) Clear() {
	t.root = createNode[K, I](true)
}

// SetArbiterFn overrides the arbiter function.
func (t *Table[K, I]) SetArbiterFn(arbiterFn ArbiterFn[I]) {
	t.policy.arbiterFn = arbiterFn
}

type ranked[K any, I any] struct {
	item     I
	distance K
}

func closest[K Key[K], I Item[K]](items []I, key K, n int) []I {
	ranks := make([]ranked[K, I], len(items))
	for i, item := range items {
		ranks[i] = ranked[K, I]{item: item, distance: item.Key().Distance(key)}
	}

	slices.SortStableFunc(ranks, func(a, b ranked[K, I]) int {
		return a.distance.Compare(b.distance)
	})

	result := make([]I, 0, min(n, len(ranks)))
	for _, r := range ranks[:min(n, len(ranks))] {
		result = append(result, r.item)
	}

	return result
}
