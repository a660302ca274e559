package kbucket

import (
	"bytes"
	"encoding/hex"
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Bit is the value of a single key bit. It doubles as the branch direction
// taken at a fork of the trie: Left for 0, Right for 1.
type Bit uint8

const (
	Left  Bit = 0
	Right Bit = 1
)

// Key is the capability set the table requires from its keys.
//
// Distance must be symmetric and return the zero element for a key compared
// with itself. BitAt must panic (with an error wrapping ErrBitIndexOutOfRange)
// for indexes outside of [0, BitLen()). Compare orders distance values and
// must agree with the metric: a.Compare(b) < 0 means a is the smaller
// distance.
type Key[K any] interface {
	Distance(other K) K
	BitAt(i int) Bit
	BitLen() int
	Equal(other K) bool
	Compare(other K) int
}

// LeadingZeroer is implemented by keys that can count their leading zero
// bits. It is required by IndexedTable.
type LeadingZeroer interface {
	LeadingZeros() int
}

func checkBitIndex(i, n int) {
	if i < 0 || i >= n {
		panic(errors.Wrapf(ErrBitIndexOutOfRange, "index %d of a %d-bit key", i, n))
	}
}

// ID is a big-endian byte string key. Bit 0 is the most significant bit of
// the first byte. All ids stored in a table must have the length of the
// table's own id.
type ID []byte

// Distance returns the XOR distance between two ids of the same length.
func (id ID) Distance(other ID) ID {
	if len(id) != len(other) {
		panic(errors.Wrapf(ErrKeyLengthMismatch, "distance between %d and %d byte ids", len(id), len(other)))
	}

	d := make(ID, len(id))
	for i := range id {
		d[i] = id[i] ^ other[i]
	}

	return d
}

// BitAt returns the bit at index i.
func (id ID) BitAt(i int) Bit {
	checkBitIndex(i, id.BitLen())

	// (i >> 3) is the byte holding the bit, (1 << (7 - i%8)) masks it within
	// that byte, most significant bit first.
	if id[i>>3]&(1<<(7-i%8)) != 0 {
		return Right
	}

	return Left
}

func (id ID) BitLen() int {
	return len(id) * 8
}

func (id ID) Equal(other ID) bool {
	return bytes.Equal(id, other)
}

// Compare compares two ids lexicographically, which for distances of equal
// length is their numeric order.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id, other)
}

func (id ID) LeadingZeros() int {
	for i, b := range id {
		if b != 0 {
			return i*8 + bits.LeadingZeros8(b)
		}
	}

	return id.BitLen()
}

func (id ID) String() string {
	return hex.EncodeToString(id)
}

// Hash256 is a 256-bit key, the size of a Keccak or SHA-256 digest.
type Hash256 uint256.Int

// Hash256FromBytes interprets b as a big-endian integer. Inputs longer than
// 32 bytes are truncated to their last 32 bytes.
func Hash256FromBytes(b []byte) Hash256 {
	var z uint256.Int
	z.SetBytes(b)

	return Hash256(z)
}

func (h Hash256) u256() *uint256.Int {
	z := uint256.Int(h)
	return &z
}

// Distance returns the XOR distance between two hashes.
func (h Hash256) Distance(other Hash256) Hash256 {
	var d uint256.Int
	d.Xor(h.u256(), other.u256())

	return Hash256(d)
}

// BitAt returns the bit at index i, counting from the most significant bit.
func (h Hash256) BitAt(i int) Bit {
	checkBitIndex(i, 256)

	// uint256.Int stores little-endian 64-bit words.
	b := 255 - i

	return Bit(h[b/64] >> (b % 64) & 1)
}

func (h Hash256) BitLen() int {
	return 256
}

func (h Hash256) Equal(other Hash256) bool {
	return h == other
}

func (h Hash256) Compare(other Hash256) int {
	return h.u256().Cmp(other.u256())
}

func (h Hash256) LeadingZeros() int {
	return 256 - h.u256().BitLen()
}

// Bytes returns the big-endian representation of h.
func (h Hash256) Bytes() []byte {
	b := h.u256().Bytes32()
	return b[:]
}

func (h Hash256) String() string {
	return hex.EncodeToString(h.Bytes())
}
