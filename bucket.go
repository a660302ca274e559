package kbucket

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// bucketPolicy holds the rules shared by every bucket of a table: capacity,
// arbitration of same-key updates and what to do when a bucket overflows.
type bucketPolicy[K Key[K], I Item[K]] struct {
	size      int
	ping      int
	overflow  OverflowPolicy
	evictFn   EvictFn[I]
	arbiterFn ArbiterFn[I]
	events    notifier
	log       *zerolog.Logger
}

func newBucketPolicy[K Key[K], I Item[K]](options Options[I]) bucketPolicy[K, I] {
	return bucketPolicy[K, I]{
		size:      options.BucketSize,
		ping:      options.NodesToPing,
		overflow:  options.Overflow,
		evictFn:   options.EvictFn,
		arbiterFn: options.ArbiterFn,
		events:    notifier{emitter: options.Emitter},
		log:       options.Logger,
	}
}

// place stores item in bucket b. When b is full, item has a new key and
// splittable is true, place leaves b untouched and reports that the bucket
// must be split before retrying.
func (p *bucketPolicy[K, I]) place(b *[]I, item I, splittable bool) (Outcome, bool, error) {
	key := item.Key()

	// Check if the item already exists.
	if i := indexOf(*b, key); i >= 0 {
		incumbent := (*b)[i]
		if !p.arbiter(incumbent, item) {
			return Ignored, false, nil
		}

		// Remove the old version and mark the new one as most recently updated
		// by moving it to the end of the bucket.
		*b = append(slices.Delete(*b, i, i+1), item)
		p.events.emit(EventUpdated, incumbent, item)

		return Updated, false, nil
	}

	if len(*b) < p.size {
		*b = append(*b, item)
		p.events.emit(EventAdded, item)

		return Added, false, nil
	}

	// The bucket is full.
	if splittable {
		return Added, true, nil
	}

	outcome, err := p.overflowed(b, item)

	return outcome, false, err
}

// overflowed applies the overflow policy to a full bucket that cannot be
// split.
func (p *bucketPolicy[K, I]) overflowed(b *[]I, item I) (Outcome, error) {
	// The least recently updated items sit at the head of the bucket; the
	// caller may probe them and remove the ones that do not respond.
	p.events.emit(EventPing, slices.Clone((*b)[:min(p.ping, len(*b))]), item)

	switch p.overflow {
	case OverflowReject:
		p.log.Trace().Str("key", fmt.Sprint(item.Key())).Msg("Rejecting item, bucket full")
		return Dropped, errors.Wrapf(ErrBucketFull, "key %v", item.Key())

	case OverflowEvict:
		if i := p.evictFn(*b, item); i >= 0 && i < len(*b) {
			victim := (*b)[i]
			*b = append(slices.Delete(*b, i, i+1), item)

			p.log.Trace().
				Str("key", fmt.Sprint(item.Key())).
				Str("evicted", fmt.Sprint(victim.Key())).
				Msg("Evicted item from full bucket")

			p.events.emit(EventRemoved, victim)
			p.events.emit(EventAdded, item)

			return Evicted, nil
		}
	}

	p.log.Trace().Str("key", fmt.Sprint(item.Key())).Msg("Dropping item, bucket full")

	return Dropped, nil
}

// remove deletes the item with the given key from bucket b.
func (p *bucketPolicy[K, I]) remove(b *[]I, key K) (I, bool) {
	i := indexOf(*b, key)
	if i < 0 {
		var zero I
		return zero, false
	}

	removed := (*b)[i]
	*b = slices.Delete(*b, i, i+1)
	p.events.emit(EventRemoved, removed)

	return removed, true
}

// arbiter reports whether candidate should replace incumbent.
func (p *bucketPolicy[K, I]) arbiter(incumbent, candidate I) bool {
	if p.arbiterFn != nil {
		return p.arbiterFn(incumbent, candidate)
	}

	if r, ok := any(incumbent).(Replacer[I]); ok {
		return r.ShouldReplace(candidate)
	}

	return true
}

// indexOf returns the index of the item with the given key, -1 otherwise.
func indexOf[K Key[K], I Item[K]](b []I, key K) int {
	for i, v := range b {
		if v.Key().Equal(key) {
			return i
		}
	}

	return -1
}
