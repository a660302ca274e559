package kbucket

import (
	"github.com/attilabuti/eventemitter/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DefaultBucketSize is the Kademlia bucket size k.
	DefaultBucketSize = 20

	// DefaultNodesToPing is the number of items reported by a "kbucket.ping"
	// event.
	DefaultNodesToPing = 3
)

// OverflowPolicy decides what happens to a new item whose bucket is full and
// cannot be split.
type OverflowPolicy int

const (
	// OverflowDrop silently drops the new item.
	OverflowDrop OverflowPolicy = iota
	// OverflowReject drops the new item and returns ErrBucketFull.
	OverflowReject
	// OverflowEvict evicts the item chosen by Options.EvictFn and stores the
	// new item in its place.
	OverflowEvict
)

type Options[I any] struct {
	// The number of items a bucket can contain before being full or split.
	// Must be at least 1, see DefaultBucketSize.
	BucketSize int

	// The number of items reported by the "kbucket.ping" event when a bucket
	// that should not be split becomes full. (Default: 3, capped at BucketSize)
	NodesToPing int

	// What to do with a new item when its bucket is full and cannot be split.
	// (Default: OverflowDrop)
	Overflow OverflowPolicy

	// Picks the victim under OverflowEvict. (Default: EvictOldest)
	EvictFn EvictFn[I]

	// An optional arbiter function that, given two items with the same key,
	// reports whether the candidate should replace the incumbent. When nil,
	// items implementing Replacer arbitrate themselves and any other
	// candidate replaces the incumbent.
	ArbiterFn ArbiterFn[I]

	// The emitter to use for emitting events. Events are disabled when nil.
	Emitter *eventemitter.Emitter

	// Logger for split and overflow diagnostics. (Default: zerolog.Nop())
	Logger *zerolog.Logger
}

func setDefaults[I any](options Options[I]) (Options[I], error) {
	if options.BucketSize < 1 {
		return Options[I]{}, errors.Wrapf(ErrInvalidBucketSize, "got %d", options.BucketSize)
	}

	if options.NodesToPing < 1 {
		options.NodesToPing = DefaultNodesToPing
	}

	if options.NodesToPing > options.BucketSize {
		options.NodesToPing = options.BucketSize
	}

	if options.EvictFn == nil {
		options.EvictFn = EvictOldest[I]
	}

	if options.Logger == nil {
		nop := zerolog.Nop()
		options.Logger = &nop
	}

	return options, nil
}
