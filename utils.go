package kbucket

import (
	"crypto/rand"
	"crypto/sha1"
	"net/netip"

	"github.com/pkg/errors"
)

// CompareAddrPorts compares two netip.AddrPorts.
// It will return true if the two AddrPorts are equal, false otherwise.
func CompareAddrPorts(a, b netip.AddrPort) bool {
	return a.Addr().Unmap().Compare(b.Addr().Unmap()) == 0 && a.Port() == b.Port()
}

// GenerateId generates a random 160-bit ID (SHA-1).
// It will return an error if the system's secure random number generator fails
// to function correctly, in which case the caller should not continue.
func GenerateId() (ID, error) {
	b, err := GenerateRandomBytes(20)
	if err != nil {
		return nil, err
	}

	h := sha1.Sum(b)

	return ID(h[:]), nil
}

// GenerateHash256 generates a random 256-bit key.
func GenerateHash256() (Hash256, error) {
	b, err := GenerateRandomBytes(32)
	if err != nil {
		return Hash256{}, err
	}

	return Hash256FromBytes(b), nil
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random number generator fails
// to function correctly, in which case the caller should not continue.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(err, "kbucket: reading random bytes")
	}

	return b, nil
}
