package kbucket

import (
	"sync"
	"testing"

	"github.com/attilabuti/eventemitter/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndexedTable(t testing.TB, own ID, options Options[Contact]) *IndexedTable[ID, Contact] {
	table, err := NewIndexed(own, options)
	require.NoError(t, err)

	return table
}

func TestNewIndexed(t *testing.T) {
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{BucketSize: 3})

	assert.Len(t, table.buckets, 16)
	assert.Equal(t, 3, table.Size())
	assert.Equal(t, ID{0x00, 0x00}, table.OwnKey())
	assert.Equal(t, 0, table.Count())

	_, err := NewIndexed(ID{0x00}, Options[Contact]{})
	assert.ErrorIs(t, err, ErrInvalidBucketSize)

	_, err = NewIndexed(ID{}, Options[Contact]{BucketSize: 3})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestIndexedIndex(t *testing.T) {
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{BucketSize: 3})

	assert.Equal(t, 0, table.index(ID{0x80, 0x00}))
	assert.Equal(t, 1, table.index(ID{0x40, 0x00}))
	assert.Equal(t, 8, table.index(ID{0x00, 0x80}))
	assert.Equal(t, 15, table.index(ID{0x00, 0x01}))

	// The own key shares the last bucket.
	assert.Equal(t, 15, table.index(ID{0x00, 0x00}))
}

func TestIndexedPutGetDelete(t *testing.T) {
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{BucketSize: 3})

	c := Contact{Id: ID{0x40, 0x01}}
	outcome, err := table.Put(c)
	require.NoError(t, err)
	assert.Equal(t, Added, outcome)

	got, ok := table.Get(c.Id)
	assert.True(t, ok)
	assert.Exactly(t, c, got)
	assert.Equal(t, []Contact{c}, table.Bucket(1))

	outcome, _ = table.Put(Contact{Id: ID{0x40, 0x01}, VectorClock: 1})
	assert.Equal(t, Updated, outcome)
	assert.Equal(t, 1, table.Count())

	outcome, _ = table.Put(c)
	assert.Equal(t, Ignored, outcome)

	removed, ok := table.Delete(c.Id)
	assert.True(t, ok)
	assert.Equal(t, 1, removed.VectorClock)
	assert.False(t, table.Has(c.Id))
	assert.Equal(t, 0, table.Count())

	_, ok = table.Delete(c.Id)
	assert.False(t, ok)

	_, err = table.Put(Contact{Id: ID{0x00}})
	assert.ErrorIs(t, err, ErrKeyLengthMismatch)

	assert.Nil(t, table.Bucket(-1))
	assert.Nil(t, table.Bucket(16))
}

func TestIndexedCapacity(t *testing.T) {
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{BucketSize: 3})

	for i := 0; i < 10; i++ {
		table.Put(Contact{Id: ID{0x80, byte(i)}})
	}

	assert.Equal(t, 3, table.Count())
	assert.Len(t, table.Bucket(0), 3)

	// Other buckets are independent.
	table.Put(Contact{Id: ID{0x40, 0x00}})
	assert.Equal(t, 4, table.Count())
}

func TestIndexedOverflowReject(t *testing.T) {
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{BucketSize: 1, Overflow: OverflowReject})

	table.Put(Contact{Id: ID{0x80, 0x00}})
	outcome, err := table.Put(Contact{Id: ID{0x80, 0x01}})

	assert.ErrorIs(t, err, ErrBucketFull)
	assert.Equal(t, Dropped, outcome)
}

func TestIndexedOverflowEvict(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	emitter := eventemitter.New()
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{
		BucketSize: 2,
		Overflow:   OverflowEvict,
		Emitter:    emitter,
	})

	emitter.On(EventRemoved, func(removed Contact) {
		defer wg.Done()
		assert.Exactly(t, Contact{Id: ID{0x80, 0x00}}, removed)
	})

	table.Put(Contact{Id: ID{0x80, 0x00}})
	table.Put(Contact{Id: ID{0x80, 0x01}})
	outcome, err := table.Put(Contact{Id: ID{0x80, 0x02}})

	assert.NoError(t, err)
	assert.Equal(t, Evicted, outcome)
	assert.Equal(t, []Contact{{Id: ID{0x80, 0x01}}, {Id: ID{0x80, 0x02}}}, table.Bucket(0))

	wg.Wait()
}

// With buckets large enough to hold everything, both representations answer
// Closest identically.
func TestIndexedClosestMatchesTable(t *testing.T) {
	own, err := GenerateId()
	require.NoError(t, err)

	options := Options[Contact]{BucketSize: 1000}
	indexed := newIndexedTable(t, own, options)
	tree := newContactTable(t, own, options)

	for i := 0; i < 200; i++ {
		id, err := GenerateId()
		require.NoError(t, err)

		indexed.Put(Contact{Id: id})
		tree.Put(Contact{Id: id})
	}

	require.Equal(t, tree.Count(), indexed.Count())

	query, err := GenerateId()
	require.NoError(t, err)

	assert.Equal(t, tree.Closest(query, 20), indexed.Closest(query, 20))
	assert.Len(t, indexed.Closest(query, 500), 200)
	assert.Nil(t, indexed.Closest(ID{0x00}, 5))
}

func TestIndexedClear(t *testing.T) {
	table := newIndexedTable(t, ID{0x00, 0x00}, Options[Contact]{BucketSize: 3})
	table.Put(Contact{Id: ID{0x80, 0x00}})

	table.Clear()

	assert.Equal(t, 0, table.Count())
	assert.Len(t, table.buckets, 16)
	assert.Empty(t, table.ToSlice())
}
