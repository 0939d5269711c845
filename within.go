package octree

import (
	"iter"

	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// Within returns every payload stored within radius of point, inclusive
// (§4.8), as a lazy iterator. Traversal prunes whole subtrees whose
// encoded cell cannot contain a point within radius, using
// octcoord.MinSquaredDistanceToCell as a true lower bound. The cell for
// a Split child not yet visited is derived from a zero-initialized
// running representative point, advanced one octant at a time via
// octcoord.ReplacePrefix as the traversal descends.
func (t *Tree[C, U, V]) Within(point Point[C], radius C) iter.Seq[V] {
	ep := t.encode(point)
	radiusSq := radius * radius

	return func(yield func(V) bool) {
		if t.root == arena.None {
			return
		}
		t.withinWalk(t.root, ep, octcoord.Zero[U](), radiusSq, yield)
	}
}

// withinWalk returns false once yield has asked to stop, so the caller
// can unwind without visiting further subtrees. running is a point
// known to share every bit fixed so far on the path to h. Below a Split
// its lower bits are zeroed by ReplacePrefix; below a Skip it is the
// Skip's stored point. MinSquaredDistanceToCell masks the bits below the
// cell depth itself, so either form gives the same bound.
func (t *Tree[C, U, V]) withinWalk(h arena.Handle, query, running octcoord.EncodedPoint[U], radiusSq C, yield func(V) bool) bool {
	n := t.arena.Get(h)

	switch n.kind {
	case leafKind:
		if octcoord.SquaredDistance[C, U](t.codec, query, n.point) > radiusSq {
			return true
		}
		for cur := h; cur != arena.None; {
			cn := t.arena.Get(cur)
			if !yield(cn.payload) {
				return false
			}
			cur = cn.next
		}
		return true

	case skipKind:
		min := octcoord.MinSquaredDistanceToCell[C, U](t.codec, n.point, n.pointDepth, t.codec.Width, query)
		if min > radiusSq {
			return true
		}
		return t.withinWalk(n.child, query, n.point, radiusSq, yield)

	default: // splitKind
		for i := uint8(0); i < 8; i++ {
			child := n.children.get(i)
			if child == arena.None {
				continue
			}
			childRunning := octcoord.ReplacePrefix(running, i, n.depth, t.codec.Width)
			min := octcoord.MinSquaredDistanceToCell[C, U](t.codec, childRunning, n.depth, t.codec.Width, query)
			if min > radiusSq {
				continue
			}
			if !t.withinWalk(child, query, childRunning, radiusSq, yield) {
				return false
			}
		}
		return true
	}
}
