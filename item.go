package kbucket

// Item is anything stored in a table. Key must be pure: the key of an item
// may not change while the item is stored.
type Item[K any] interface {
	Key() K
}

// ArbiterFn decides, for two items with the same key, whether candidate
// should replace the stored incumbent.
type ArbiterFn[I any] func(incumbent, candidate I) bool

// Replacer may be implemented by items that arbitrate their own updates. It
// is consulted on the incumbent when no ArbiterFn is configured.
type Replacer[I any] interface {
	ShouldReplace(candidate I) bool
}

// EvictFn picks the index of the item to evict from a full bucket that
// cannot be split. Returning a negative index keeps the bucket as is and
// drops the candidate.
type EvictFn[I any] func(bucket []I, candidate I) int

// EvictOldest evicts the least recently added or updated item, which is
// always kept at the head of a bucket.
func EvictOldest[I any](bucket []I, candidate I) int {
	if len(bucket) == 0 {
		return -1
	}

	return 0
}

// Outcome describes what a call to Put did.
type Outcome int

const (
	// Ignored means the item's key was already stored and the arbiter kept
	// the incumbent.
	Ignored Outcome = iota
	// Added means the item was appended to a bucket, possibly after one or
	// more splits.
	Added
	// Updated means the item replaced a stored item with the same key.
	Updated
	// Dropped means the owning bucket was full and could not be split.
	Dropped
	// Evicted means a stored item was evicted to make room for the item.
	Evicted
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Dropped:
		return "dropped"
	case Evicted:
		return "evicted"
	}

	return "unknown"
}
