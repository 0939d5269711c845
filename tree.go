// Package octree implements an in-memory path-compressed octree: a
// spatial index mapping 3D points over a user-chosen numeric coordinate
// type to payload values, built for exact-point lookup, radius queries
// and point-to-point migration of a payload.
//
// Concurrency: unlike the array-based multimap this package's design is
// descended from, Tree performs no internal locking. All operations
// require exclusive access to the Tree for mutation and shared access
// for read-only queries; a query iterator borrows the Tree for its
// lifetime and the Tree must not be mutated while one is live. Callers
// needing concurrent access should wrap a Tree the way the teacher's
// array-based multimap wraps its slice, with a sync.RWMutex held across
// every call into the Tree.
package octree

import (
	"github.com/oak-spatial/octree/internal/arena"
	"github.com/oak-spatial/octree/octcoord"
)

// Point is the interface a user's coordinate-bearing type supplies to
// participate in a Tree: a function returning its three coordinates in
// (x, y, z) order. The coordinate type C selects the codec and so the
// encoded width W = 8 * sizeof(C) (§6).
type Point[C octcoord.Numeric] interface {
	AsTriple() [3]C
}

// Vec3 is a minimal ready-made Point implementation for callers who just
// want a plain 3D coordinate without defining their own type.
type Vec3[C octcoord.Numeric] struct {
	X, Y, Z C
}

// AsTriple implements Point.
func (v Vec3[C]) AsTriple() [3]C {
	return [3]C{v.X, v.Y, v.Z}
}

// Tree is a path-compressed octree mapping points of numeric type C
// (encoded as unsigned integers of type U) to payloads of type V.
// Construct one with New or one of the per-type convenience
// constructors (NewInt32, NewFloat64, ...).
type Tree[C octcoord.Numeric, U octcoord.Unsigned, V comparable] struct {
	arena arena.Arena[node[U, V]]
	root  arena.Handle
	codec octcoord.Codec[C, U]
}

// New constructs an empty Tree using the given coordinate codec. Most
// callers should use one of the convenience constructors below instead.
func New[C octcoord.Numeric, U octcoord.Unsigned, V comparable](codec octcoord.Codec[C, U]) *Tree[C, U, V] {
	return &Tree[C, U, V]{root: arena.None, codec: codec}
}

// NewInt16 constructs an empty Tree over int16 coordinates.
func NewInt16[V comparable]() *Tree[int16, uint16, V] { return New[int16, uint16, V](octcoord.Int16()) }

// NewInt32 constructs an empty Tree over int32 coordinates.
func NewInt32[V comparable]() *Tree[int32, uint32, V] { return New[int32, uint32, V](octcoord.Int32()) }

// NewInt64 constructs an empty Tree over int64 coordinates.
func NewInt64[V comparable]() *Tree[int64, uint64, V] { return New[int64, uint64, V](octcoord.Int64()) }

// NewUint16 constructs an empty Tree over uint16 coordinates.
func NewUint16[V comparable]() *Tree[uint16, uint16, V] {
	return New[uint16, uint16, V](octcoord.Uint16())
}

// NewUint32 constructs an empty Tree over uint32 coordinates.
func NewUint32[V comparable]() *Tree[uint32, uint32, V] {
	return New[uint32, uint32, V](octcoord.Uint32())
}

// NewUint64 constructs an empty Tree over uint64 coordinates.
func NewUint64[V comparable]() *Tree[uint64, uint64, V] {
	return New[uint64, uint64, V](octcoord.Uint64())
}

// NewFloat32 constructs an empty Tree over float32 coordinates.
func NewFloat32[V comparable]() *Tree[float32, uint32, V] {
	return New[float32, uint32, V](octcoord.Float32())
}

// NewFloat64 constructs an empty Tree over float64 coordinates.
func NewFloat64[V comparable]() *Tree[float64, uint64, V] {
	return New[float64, uint64, V](octcoord.Float64())
}

// NodeCount returns the number of arena nodes currently backing the
// tree, a diagnostic exposed per §6 (not a count of stored payloads:
// duplicate payloads at one point each cost one Leaf node, and internal
// Skip/Split nodes are included too).
func (t *Tree[C, U, V]) NodeCount() int {
	return t.arena.Len()
}

func (t *Tree[C, U, V]) encode(p Point[C]) octcoord.EncodedPoint[U] {
	triple := p.AsTriple()
	return octcoord.EncodedPoint[U]{
		X: t.codec.Encode(triple[0]),
		Y: t.codec.Encode(triple[1]),
		Z: t.codec.Encode(triple[2]),
	}
}

func (t *Tree[C, U, V]) allocLeaf(point octcoord.EncodedPoint[U], payload V, next arena.Handle) (arena.Handle, error) {
	return t.arena.Allocate(newLeafNode[U, V](point, payload, next))
}

func (t *Tree[C, U, V]) allocSkip(point octcoord.EncodedPoint[U], pointDepth uint8, child arena.Handle) (arena.Handle, error) {
	return t.arena.Allocate(newSkipNode[U, V](point, pointDepth, child))
}

func (t *Tree[C, U, V]) allocSplit(children octants, occupied, depth uint8) (arena.Handle, error) {
	return t.arena.Allocate(newSplitNode[U, V](children, occupied, depth))
}
