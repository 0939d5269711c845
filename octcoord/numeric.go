// Package octcoord implements the coordinate codec and encoded-point
// primitives that back the octree in the parent package: turning a user's
// numeric coordinate type into a fixed-width unsigned integer whose
// lexicographic bit order matches the numeric order of the source type
// (for floats, except among negative values; see Float32), and the
// bit-level operations the tree needs on triples of those
// encoded values.
package octcoord

// Numeric is the set of primitive coordinate component types a Point may
// use. Every type here has a Codec constructor below (Int16, Uint32,
// Float64, ...); there is no generic/reflective fallback, mirroring the
// one-constructor-per-width layout of an order-preserving byte-key
// encoder rather than a single type-switching encoder.
type Numeric interface {
	~int16 | ~int32 | ~int64 |
		~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Unsigned is the set of encoded-coordinate widths. Every Numeric type
// above encodes into one of these, chosen so that W = 8 * sizeof(component).
type Unsigned interface {
	~uint16 | ~uint32 | ~uint64
}
