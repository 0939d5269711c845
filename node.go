package octree

import (
	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// kind tags which of the three shapes in §3 a node holds. Unlike the ART
// variant family this replaces, which casts a base pointer to one of
// several differently-sized structs via unsafe.Pointer to keep each
// size-tier cache-line packed, every node here is stored as one fixed
// concrete struct in a single arena slice — there is nothing to
// reinterpret-cast, so kind is a plain discriminant and the accessors
// below just read the fields that apply to it.
type kind uint8

const (
	leafKind kind = iota
	skipKind
	splitKind
)

func (k kind) String() string {
	switch k {
	case leafKind:
		return "Leaf"
	case skipKind:
		return "Skip"
	case splitKind:
		return "Split"
	default:
		return "Unknown"
	}
}

// node is the tagged union of Leaf, Skip and Split from §3, translated
// directly from the reference implementation's Branch enum. Only the
// fields relevant to kind are meaningful at any given time.
type node[U octcoord.Unsigned, V any] struct {
	kind kind

	// Leaf: one payload at point, chained to further duplicates via next.
	point   octcoord.EncodedPoint[U]
	payload V
	next    arena.Handle

	// Skip: every entry below child shares point's first pointDepth bits.
	pointDepth uint8
	child      arena.Handle

	// Split: children[octants], occupied is a count (2..8), depth is the
	// 1-indexed bit position this Split branches on.
	children octants
	occupied uint8
	depth    uint8
}

func newLeafNode[U octcoord.Unsigned, V any](point octcoord.EncodedPoint[U], payload V, next arena.Handle) node[U, V] {
	return node[U, V]{kind: leafKind, point: point, payload: payload, next: next}
}

func newSkipNode[U octcoord.Unsigned, V any](point octcoord.EncodedPoint[U], pointDepth uint8, child arena.Handle) node[U, V] {
	return node[U, V]{kind: skipKind, point: point, pointDepth: pointDepth, child: child}
}

func newSplitNode[U octcoord.Unsigned, V any](children octants, occupied, depth uint8) node[U, V] {
	return node[U, V]{kind: splitKind, children: children, occupied: occupied, depth: depth}
}
