/*
# KBucket

Kademlia DHT k-bucket routing table implemented as a binary tree.

A Distributed Hash Table (DHT) is a decentralized distributed system that
provides a lookup table similar to a hash table. Its routing table keeps the
closest known peers of the local node under the XOR metric, grouped in
buckets of at most k entries.

A Table stores Items, anything exposing a Key. Keys are fixed length bit
strings providing a distance, a bit lookup and an order over distances; ID
(a byte string) and Hash256 (a 256-bit integer) are provided, and Contact is
a ready-made Item keyed by ID. Tables are generic over both, so the key and
item types are fixed when the table is created:

	table, err := kbucket.New[kbucket.ID, kbucket.Contact](localId, kbucket.Options[kbucket.Contact]{
		BucketSize: kbucket.DefaultBucketSize,
	})

Buckets split lazily: a full bucket on the path of the local key is split in
two by one more bit of the keys, every other bucket is capped at k items. What
happens to a new item reaching a full bucket that cannot be split is set by
Options.Overflow: drop it (default), reject it with ErrBucketFull, or evict a
stored item.

IndexedTable is the flat alternative, addressing buckets by the number of
leading zero bits of the distance to the local key.

Neither table is safe for concurrent use.

KBucket events, emitted when Options.Emitter is set:

	kbucket.added
			item I: The new item that was added.
		Emitted only when the item was added to a bucket and it was not stored
		in the table before.

	kbucket.ping
			oldest []I: The least recently updated items of the bucket.
			candidate I: The item that could not be stored.
		Emitted every time an item is added that would exceed the capacity of a
		"don't split" bucket it belongs to.

	kbucket.removed
			item I: The item that was removed.
		Emitted when an item was deleted or evicted.

	kbucket.updated
			old I: The item that was stored prior to the update.
			new I: The item that is now stored after the update.
		Emitted when an item with the key of a stored item was put and the
		arbiter let it replace the stored one.
*/
package kbucket
