package octree

import (
	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// Move relocates one occurrence of payload from old to new, returning
// whether anything was moved (§4.7). When old and new share enough of
// their encoded prefix that every Skip/Split ancestor on the path to
// the entry stays valid, and that entry is not sharing a Leaf chain
// with other duplicates at old, the entry's point is rewritten in
// place. Otherwise Move falls back to Remove followed by Add.
func (t *Tree[C, U, V]) Move(old, new Point[C], payload V) bool {
	epOld := t.encode(old)
	epNew := t.encode(new)

	if t.root == arena.None {
		return false
	}

	leaf, _, maxDepth := t.findLeafParentsDepth(epOld)
	if leaf == arena.None {
		return false
	}

	n := t.arena.Get(leaf)
	if n.payload == payload && n.next == arena.None {
		if epOld.SharedPrefixLen(epNew) >= maxDepth {
			t.arena.GetPtr(leaf).point = epNew
			return true
		}
	}

	if !t.Remove(old, payload) {
		return false
	}
	// Add cannot fail except on arena exhaustion; a failed re-add after
	// a successful remove would silently drop the payload, which Move's
	// contract (present exactly once, at new, afterwards) forbids, so
	// the error is surfaced by panicking rather than swallowed.
	if err := t.Add(new, payload); err != nil {
		panic(err)
	}
	return true
}

// findLeafParentsDepth is findLeafParents plus the deepest Skip/Split
// test depth used along the path, the minimum shared-prefix length a
// replacement point needs to keep every ancestor's invariant intact.
func (t *Tree[C, U, V]) findLeafParentsDepth(point octcoord.EncodedPoint[U]) (arena.Handle, []parentRef, uint8) {
	branch := t.root
	var parents []parentRef
	var maxDepth uint8

	for {
		n := t.arena.Get(branch)
		switch n.kind {
		case leafKind:
			if !point.Equal(n.point) {
				return arena.None, nil, 0
			}
			return branch, parents, maxDepth
		case skipKind:
			shared := point.SharedPrefixLen(n.point)
			if shared < n.pointDepth {
				return arena.None, nil, 0
			}
			if n.pointDepth > maxDepth {
				maxDepth = n.pointDepth
			}
			parents = append(parents, parentRef{handle: branch})
			branch = n.child
		default: // splitKind
			ind := octcoord.BitSlice(point, n.depth, t.codec.Width)
			child := n.children.get(ind)
			if child == arena.None {
				return arena.None, nil, 0
			}
			if n.depth > maxDepth {
				maxDepth = n.depth
			}
			parents = append(parents, parentRef{handle: branch, octant: ind})
			branch = child
		}
	}
}
