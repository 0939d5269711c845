package octree

import (
	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// parentRef identifies one structural ancestor on the path from the root
// to a Leaf: handle names the ancestor node, octant is the index this
// Leaf's branch occupies under it if the ancestor turns out to be a
// Split (meaningless otherwise).
type parentRef struct {
	handle arena.Handle
	octant uint8
}

// Remove deletes one occurrence of payload stored at point, returning
// whether anything was removed (§4.6). If point was added more than
// once, only the matching entry is removed; the rest of the chain
// survives.
func (t *Tree[C, U, V]) Remove(point Point[C], payload V) bool {
	ep := t.encode(point)
	if t.root == arena.None {
		return false
	}

	leaf, parents := t.findLeafParents(ep)
	if leaf == arena.None {
		return false
	}

	return t.removeFromChain(leaf, parents, ep, payload)
}

// findLeafParents descends from the root looking for the Leaf holding
// point, recording every Skip/Split ancestor visited along the way.
// parents is ordered root-to-leaf (the last entry is nearest the Leaf).
func (t *Tree[C, U, V]) findLeafParents(point octcoord.EncodedPoint[U]) (arena.Handle, []parentRef) {
	branch := t.root
	var parents []parentRef

	for {
		n := t.arena.Get(branch)
		switch n.kind {
		case leafKind:
			if !point.Equal(n.point) {
				return arena.None, nil
			}
			return branch, parents
		case skipKind:
			shared := point.SharedPrefixLen(n.point)
			if shared < n.pointDepth {
				return arena.None, nil
			}
			parents = append(parents, parentRef{handle: branch})
			branch = n.child
		default: // splitKind
			ind := octcoord.BitSlice(point, n.depth, t.codec.Width)
			child := n.children.get(ind)
			if child == arena.None {
				return arena.None, nil
			}
			parents = append(parents, parentRef{handle: branch, octant: ind})
			branch = child
		}
	}
}

// removeFromChain walks the Leaf chain starting at leaf looking for the
// entry matching payload, pushing a chain-continuation parentRef for
// every Leaf it must step over, then applies the structural fixup that
// follows from whether the matched Leaf had a further chain entry.
func (t *Tree[C, U, V]) removeFromChain(leaf arena.Handle, parents []parentRef, point octcoord.EncodedPoint[U], payload V) bool {
	current := leaf
	for {
		n := t.arena.Get(current)
		if n.payload == payload {
			break
		}
		if n.next == arena.None {
			return false
		}
		parents = append(parents, parentRef{handle: current})
		current = n.next
	}

	child := t.arena.Get(current).next

	if len(parents) == 0 {
		t.root = child
		t.arena.Free(current)
		return true
	}

	parent := parents[len(parents)-1]
	if child != arena.None {
		t.setChild(parent, child)
		t.arena.Free(current)
		return true
	}

	t.clearChild(parents, current)
	return true
}

// setChild rewrites whichever field of the node named by ref points at
// its current child, so it points at newChild instead.
func (t *Tree[C, U, V]) setChild(ref parentRef, newChild arena.Handle) {
	ptr := t.arena.GetPtr(ref.handle)
	switch ptr.kind {
	case leafKind:
		ptr.next = newChild
	case skipKind:
		ptr.child = newChild
	default: // splitKind
		ptr.children.set(ref.octant, newChild)
	}
}

// clearChild handles removing a Leaf that had no further chain entry:
// the immediate parent loses that slot entirely, which may in turn
// collapse a Split down to its one surviving child and ripple further
// up the ancestor chain (§3 Split invariant: occupied never drops below
// 2 while the node survives).
func (t *Tree[C, U, V]) clearChild(parents []parentRef, removed arena.Handle) {
	parent := parents[len(parents)-1]
	rest := parents[:len(parents)-1]
	ptr := t.arena.GetPtr(parent.handle)

	switch ptr.kind {
	case leafKind:
		ptr.next = arena.None
		t.arena.Free(removed)
		return

	case skipKind:
		// A Skip always has exactly one child; losing it without a
		// replacement cannot happen while that child is itself the
		// removed Leaf, since a Skip is never the direct parent of a
		// Leaf with no chain entry below — findLeafParents only
		// descends into a Skip's child, so this branch is unreachable.
		panic("octree: Skip lost its only child during removal")

	default: // splitKind
		ptr.occupied--
		if ptr.occupied > 1 {
			ptr.children.clear(parent.octant)
			t.arena.Free(removed)
			return
		}

		survivor, survivorOctant := ptr.children.soleSurvivor(parent.octant)
		splitDepth := ptr.depth
		t.arena.Free(removed)
		t.collapseSplit(rest, parent.handle, survivor, survivorOctant, splitDepth)
	}
}

// collapseSplit replaces the Split at dying (whose occupancy has
// dropped to one child, survivor) with a branch that preserves the one
// bit of position information the Split used to encode, then reparents
// that branch into the nearest enclosing Split (or the root), freeing
// every purely-structural ancestor made redundant along the way.
func (t *Tree[C, U, V]) collapseSplit(rest []parentRef, dying, survivor arena.Handle, survivorOctant, splitDepth uint8) {
	_ = survivorOctant

	haveSplit := false
	sub := survivor
	var representative octcoord.EncodedPoint[U]
	for {
		n := t.arena.Get(sub)
		if n.kind == splitKind {
			haveSplit = true
			child, ok := n.children.firstPresent()
			if !ok {
				panic("octree: Split with no children during collapse")
			}
			sub = child
			continue
		}
		representative = n.point
		break
	}

	replacement := survivor
	if haveSplit {
		h, err := t.allocSkip(representative, splitDepth, survivor)
		if err != nil {
			// The arena is exhausted; leave the dying Split's slot
			// freed but fall back to reparenting the bare survivor,
			// trading a missed compression opportunity for not
			// losing data.
			replacement = survivor
		} else {
			replacement = h
		}
	}

	t.arena.Free(dying)

	for i := len(rest) - 1; i >= 0; i-- {
		anc := rest[i]
		ptr := t.arena.GetPtr(anc.handle)
		if ptr.kind == splitKind {
			ptr.children.set(anc.octant, replacement)
			return
		}
		// A Skip directly above the collapsed Split is now redundant:
		// replacement already carries every bit the Skip used to
		// compress, since it shares the whole subtree's common prefix.
		t.arena.Free(anc.handle)
	}

	t.root = replacement
}
