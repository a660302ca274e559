package kbucket

import "net/netip"

// Contact is a ready-made Item describing a peer: its node id, where to reach
// it and a vector clock ordering its updates.
//
// Only Id takes part in the operation of a table. AddrPort and Metadata are
// satellite data for the application.
type Contact struct {
	Id          ID             // The node id.
	AddrPort    netip.AddrPort // The address and port of the node.
	VectorClock int
	Metadata    map[string]any // Optional satellite data to include with the Contact.
}

// Key returns the contact's node id.
func (c Contact) Key() ID {
	return c.Id
}

// ShouldReplace uses Contact.VectorClock to arbitrate between two versions of
// a contact. The candidate replaces c unless c has a larger VectorClock; an
// equal VectorClock replaces c, which marks the contact as most recently
// updated.
func (c Contact) ShouldReplace(candidate Contact) bool {
	return candidate.VectorClock >= c.VectorClock
}

// Equal reports whether two contacts have the same id, vector clock and
// address.
func (c Contact) Equal(other Contact) bool {
	if !c.Id.Equal(other.Id) {
		return false
	}

	if c.VectorClock != other.VectorClock {
		return false
	}

	return CompareAddrPorts(c.AddrPort, other.AddrPort)
}
