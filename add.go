package octree

import (
	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// Add inserts payload at point's location (§4.4). Adding the same point
// twice stores both payloads; they are both returned by Get/Within at
// that point afterwards (§3 "Leaf chain").
func (t *Tree[C, U, V]) Add(point Point[C], payload V) error {
	ep := t.encode(point)

	if t.root == arena.None {
		h, err := t.allocLeaf(ep, payload, arena.None)
		if err != nil {
			return err
		}
		t.root = h
		return nil
	}

	replacement, err := t.addToBranch(t.root, ep, payload, 1)
	if err != nil {
		return err
	}
	if replacement != arena.None {
		t.root = replacement
	}
	return nil
}

// addToBranch descends into branch looking for where point belongs,
// mutating the arena in place. depth is the 1-indexed bit position that
// would be tested next if branch turns out to be a Split. It returns a
// non-None handle when branch itself must be replaced in its parent
// (e.g. a Leaf or Skip splitting into a Split), or None when the branch
// was mutated in place and the parent's pointer to it stays valid.
func (t *Tree[C, U, V]) addToBranch(branch arena.Handle, point octcoord.EncodedPoint[U], payload V, depth uint8) (arena.Handle, error) {
	n := t.arena.Get(branch)

	switch n.kind {
	case leafKind:
		if point.Equal(n.point) {
			h, err := t.allocLeaf(point, payload, branch)
			if err != nil {
				return arena.None, err
			}
			return h, nil
		}
		shared := point.SharedPrefixLen(n.point)
		newLeaf, err := t.allocLeaf(point, payload, arena.None)
		if err != nil {
			return arena.None, err
		}
		replacement, err := t.addNewSplit(newLeaf, branch, point, n.point, shared, depth)
		if err != nil {
			return arena.None, err
		}
		return replacement, nil

	case skipKind:
		shared := point.SharedPrefixLen(n.point)
		if shared >= n.pointDepth {
			newChild, err := t.addToBranch(n.child, point, payload, n.pointDepth+1)
			if err != nil {
				return arena.None, err
			}
			if newChild != arena.None {
				t.arena.GetPtr(branch).child = newChild
			}
			return arena.None, nil
		}
		newLeaf, err := t.allocLeaf(point, payload, arena.None)
		if err != nil {
			return arena.None, err
		}
		replacement, err := t.addNewSplit(newLeaf, branch, point, n.point, shared, depth)
		if err != nil {
			return arena.None, err
		}
		return replacement, nil

	default: // splitKind
		ind := octcoord.BitSlice(point, n.depth, t.codec.Width)
		if child := n.children.get(ind); child != arena.None {
			newChild, err := t.addToBranch(child, point, payload, n.depth+1)
			if err != nil {
				return arena.None, err
			}
			if newChild != arena.None {
				t.arena.GetPtr(branch).children.set(ind, newChild)
			}
			return arena.None, nil
		}
		newLeaf, err := t.allocLeaf(point, payload, arena.None)
		if err != nil {
			return arena.None, err
		}
		ptr := t.arena.GetPtr(branch)
		ptr.children.set(ind, newLeaf)
		ptr.occupied++
		return arena.None, nil
	}
}

// addNewSplit creates a Split between child1 (at point1, freshly
// allocated) and child2 (at point2, the branch being displaced), which
// first diverge after shared bits. If the divergence starts deeper than
// depth, the Split is wrapped in a Skip covering the gap (§4.4).
func (t *Tree[C, U, V]) addNewSplit(child1, child2 arena.Handle, point1, point2 octcoord.EncodedPoint[U], shared, depth uint8) (arena.Handle, error) {
	splitDepth := shared + 1
	dir1 := octcoord.BitSlice(point1, splitDepth, t.codec.Width)
	dir2 := octcoord.BitSlice(point2, splitDepth, t.codec.Width)

	var children octants
	children.set(dir1, child1)
	children.set(dir2, child2)

	split, err := t.allocSplit(children, 2, splitDepth)
	if err != nil {
		return arena.None, err
	}

	if splitDepth > depth {
		return t.allocSkip(point1, shared, split)
	}
	return split, nil
}
