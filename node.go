package kbucket

// node is either a leaf (a bucket holding items) or a fork with a left and
// a right child. Forks have nil items; leaves always have a non-nil items
// slice and nil children.
type node[K Key[K], I Item[K]] struct {
	items    []I
	canSplit bool
	left     *node[K, I]
	right    *node[K, I]
}

// createNode creates a new leaf.
func createNode[K Key[K], I Item[K]](canSplit bool) *node[K, I] {
	return &node[K, I]{
		items:    []I{},
		canSplit: canSplit,
	}
}

func (n *node[K, I]) isLeaf() bool {
	return n.items != nil
}

// child returns the left child for Left and the right child otherwise.
func (n *node[K, I]) child(b Bit) *node[K, I] {
	if b == Left {
		return n.left
	}

	return n.right
}

// navigate descends from n to the leaf owning key, reading one bit of key
// per fork. It returns the leaf and its depth below n.
func (n *node[K, I]) navigate(key K) (*node[K, I], int) {
	depth := 0
	for !n.isLeaf() {
		n = n.child(key.BitAt(depth))
		depth++
	}

	return n, depth
}

// split turns a leaf into a fork, redistributing its items between two new
// leaves by their bit at depth. The child on the side of own keeps splitting
// unless terminal is set, i.e. depth is the last bit of the key; the "far
// away" child is never split.
func (n *node[K, I]) split(depth int, own Bit, terminal bool) {
	left := createNode[K, I](false)
	right := createNode[K, I](false)

	for _, item := range n.items {
		if item.Key().BitAt(depth) == Left {
			left.items = append(left.items, item)
		} else {
			right.items = append(right.items, item)
		}
	}

	if own == Left {
		left.canSplit = !terminal
	} else {
		right.canSplit = !terminal
	}

	// Mark as inner tree node.
	n.left, n.right = left, right
	n.items = nil
	n.canSplit = false
}

// count returns the number of items stored below n.
func (n *node[K, I]) count() int {
	if n.isLeaf() {
		return len(n.items)
	}

	return n.left.count() + n.right.count()
}

// walk visits every leaf below n depth first, left before right. path holds
// the bits leading to the leaf and is only valid during the call.
func (n *node[K, I]) walk(path []Bit, fn func(leaf *node[K, I], path []Bit)) {
	if n.isLeaf() {
		fn(n, path)
		return
	}

	n.left.walk(append(path, Left), fn)
	n.right.walk(append(path, Right), fn)
}

// forks returns the number of forks below n, n included.
func (n *node[K, I]) forks() int {
	if n.isLeaf() {
		return 0
	}

	return 1 + n.left.forks() + n.right.forks()
}
