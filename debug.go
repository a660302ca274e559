package kbucket

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// String renders the tree: a header line followed by one line per bucket,
// depth first, indented by depth. Each bucket shows the path of bits leading
// to it, whether it may still be split and its items.
func (t *Table[K, I]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Bucket(%v, k=%d, n=%d)\n", t.own, t.policy.size, t.bits)

	t.root.walk(nil, func(leaf *node[K, I], path []Bit) {
		sb.WriteString(strings.Repeat("  ", len(path)))
		sb.WriteString(pathString(path))
		fmt.Fprintf(&sb, " split=%t len=%d ", leaf.canSplit, len(leaf.items))
		sb.WriteString(dumpConfig.Sprintf("%v", leaf.items))
		sb.WriteByte('\n')
	})

	return sb.String()
}

// Dump writes the rendering of String to w.
func (t *Table[K, I]) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String renders every non-empty bucket with its index.
func (t *IndexedTable[K, I]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Bucket(%v, k=%d, n=%d)\n", t.own, t.policy.size, t.bits)

	for i, b := range t.buckets {
		if len(b) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "Bucket[%d]: ", i)
		sb.WriteString(dumpConfig.Sprintf("%v", b))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Dump writes the rendering of String to w.
func (t *IndexedTable[K, I]) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func pathString(path []Bit) string {
	if len(path) == 0 {
		return "-"
	}

	var sb strings.Builder
	for _, b := range path {
		sb.WriteByte('0' + byte(b))
	}

	return sb.String()
}
