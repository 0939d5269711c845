package octree

import (
	"iter"

	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// Get returns every payload stored at point, in chain order (the most
// recently added duplicate first), as a lazy iterator (§4.5).
func (t *Tree[C, U, V]) Get(point Point[C]) iter.Seq[V] {
	ep := t.encode(point)
	leaf := t.findLeaf(ep)

	return func(yield func(V) bool) {
		h := leaf
		for h != arena.None {
			n := t.arena.Get(h)
			if !yield(n.payload) {
				return
			}
			h = n.next
		}
	}
}

// GetSingle returns one payload stored at point, or false if there is
// none (§4.5).
func (t *Tree[C, U, V]) GetSingle(point Point[C]) (V, bool) {
	for v := range t.Get(point) {
		return v, true
	}
	var zero V
	return zero, false
}

// findLeaf descends the tree looking for the Leaf holding point exactly,
// returning arena.None if no such Leaf exists.
func (t *Tree[C, U, V]) findLeaf(point octcoord.EncodedPoint[U]) arena.Handle {
	if t.root == arena.None {
		return arena.None
	}

	branch := t.root
	for {
		n := t.arena.Get(branch)
		switch n.kind {
		case leafKind:
			if point.Equal(n.point) {
				return branch
			}
			return arena.None
		case skipKind:
			shared := point.SharedPrefixLen(n.point)
			if shared < n.pointDepth {
				return arena.None
			}
			branch = n.child
		default: // splitKind
			ind := octcoord.BitSlice(point, n.depth, t.codec.Width)
			child := n.children.get(ind)
			if child == arena.None {
				return arena.None
			}
			branch = child
		}
	}
}
