package kbucket

import "github.com/pkg/errors"

var (
	// ErrInvalidBucketSize is returned when a table is created with a bucket
	// size lower than 1.
	ErrInvalidBucketSize = errors.New("kbucket: bucket size must be at least 1")

	// ErrInvalidKey is returned when the local key has no bits.
	ErrInvalidKey = errors.New("kbucket: local key must have at least one bit")

	// ErrKeyLengthMismatch is returned (or used as a panic value by key
	// implementations) when two keys of different bit lengths meet.
	ErrKeyLengthMismatch = errors.New("kbucket: key length mismatch")

	// ErrBitIndexOutOfRange is the panic value of BitAt for an index outside
	// of the key's bit length.
	ErrBitIndexOutOfRange = errors.New("kbucket: bit index out of range")

	// ErrBucketFull is returned by Put when the owning bucket is full, cannot
	// be split and the table was configured with OverflowReject.
	ErrBucketFull = errors.New("kbucket: bucket full")
)
