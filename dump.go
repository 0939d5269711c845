package octree

import (
	"fmt"
	"strings"

	"github.com/oak-spatial/octree/internal/arena"
)

// Dump renders the tree's internal node structure as an indented tree of
// Leaf/Skip/Split lines, in the style of Key.String()'s hex rendering.
// It exists for debugging and is not part of the tree's contract: its
// exact format is not stable across versions (§6).
func (t *Tree[C, U, V]) Dump() string {
	var sb strings.Builder
	if t.root == arena.None {
		sb.WriteString("(empty)\n")
		return sb.String()
	}
	t.dumpNode(&sb, t.root, 0)
	return sb.String()
}

func (t *Tree[C, U, V]) dumpNode(sb *strings.Builder, h arena.Handle, indent int) {
	n := t.arena.Get(h)
	pad := strings.Repeat("  ", indent)

	switch n.kind {
	case leafKind:
		count := 0
		for cur := h; cur != arena.None; count++ {
			cur = t.arena.Get(cur).next
		}
		fmt.Fprintf(sb, "%sLeaf point=[%016X,%016X,%016X] entries=%d\n", pad, uint64(n.point.X), uint64(n.point.Y), uint64(n.point.Z), count)

	case skipKind:
		fmt.Fprintf(sb, "%sSkip depth=%d point=[%016X,%016X,%016X]\n", pad, n.pointDepth, uint64(n.point.X), uint64(n.point.Y), uint64(n.point.Z))
		t.dumpNode(sb, n.child, indent+1)

	default: // splitKind
		fmt.Fprintf(sb, "%sSplit depth=%d occupied=%d\n", pad, n.depth, n.occupied)
		for i := uint8(0); i < 8; i++ {
			child := n.children.get(i)
			if child == arena.None {
				continue
			}
			fmt.Fprintf(sb, "%s  [%d]\n", pad, i)
			t.dumpNode(sb, child, indent+2)
		}
	}
}
