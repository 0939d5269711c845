package octcoord

import "math"

// Codec bundles the four pure operations §4.1 asks of a coordinate type:
// an order-preserving bijection to an unsigned integer of the same width,
// its inverse, a distance-squared that never underflows, and a predicate
// for values (NaN) that must bypass radius-query pruning.
//
// Width records the bit width in bits (16, 32 or 64); it is redundant
// with U's own size but is carried on the value so a Tree can use it
// without a type switch on U.
type Codec[C Numeric, U Unsigned] struct {
	Width           uint8
	Encode          func(C) U
	Decode          func(U) C
	IsIrrelevant    func(C) bool
	SquaredDistance func(a, b C) C
}

// Int16 is the order-preserving codec for int16 coordinates: flip the
// sign bit of the two's-complement representation.
func Int16() Codec[int16, uint16] {
	return Codec[int16, uint16]{
		Width: 16,
		Encode: func(v int16) uint16 {
			return uint16(v) ^ (1 << 15)
		},
		Decode: func(u uint16) int16 {
			return int16(u ^ (1 << 15))
		},
		IsIrrelevant:    func(int16) bool { return false },
		SquaredDistance: squaredDistanceSigned[int16],
	}
}

// Int32 is the order-preserving codec for int32 coordinates.
func Int32() Codec[int32, uint32] {
	return Codec[int32, uint32]{
		Width: 32,
		Encode: func(v int32) uint32 {
			return uint32(v) ^ (1 << 31)
		},
		Decode: func(u uint32) int32 {
			return int32(u ^ (1 << 31))
		},
		IsIrrelevant:    func(int32) bool { return false },
		SquaredDistance: squaredDistanceSigned[int32],
	}
}

// Int64 is the order-preserving codec for int64 coordinates.
func Int64() Codec[int64, uint64] {
	return Codec[int64, uint64]{
		Width: 64,
		Encode: func(v int64) uint64 {
			return uint64(v) ^ (1 << 63)
		},
		Decode: func(u uint64) int64 {
			return int64(u ^ (1 << 63))
		},
		IsIrrelevant:    func(int64) bool { return false },
		SquaredDistance: squaredDistanceSigned[int64],
	}
}

// Uint16 is the identity codec for uint16 coordinates.
func Uint16() Codec[uint16, uint16] {
	return Codec[uint16, uint16]{
		Width:           16,
		Encode:          func(v uint16) uint16 { return v },
		Decode:          func(u uint16) uint16 { return u },
		IsIrrelevant:    func(uint16) bool { return false },
		SquaredDistance: squaredDistanceUnsigned[uint16],
	}
}

// Uint32 is the identity codec for uint32 coordinates.
func Uint32() Codec[uint32, uint32] {
	return Codec[uint32, uint32]{
		Width:           32,
		Encode:          func(v uint32) uint32 { return v },
		Decode:          func(u uint32) uint32 { return u },
		IsIrrelevant:    func(uint32) bool { return false },
		SquaredDistance: squaredDistanceUnsigned[uint32],
	}
}

// Uint64 is the identity codec for uint64 coordinates.
func Uint64() Codec[uint64, uint64] {
	return Codec[uint64, uint64]{
		Width:           64,
		Encode:          func(v uint64) uint64 { return v },
		Decode:          func(u uint64) uint64 { return u },
		IsIrrelevant:    func(uint64) bool { return false },
		SquaredDistance: squaredDistanceUnsigned[uint64],
	}
}

// Float32 is the codec for float32 coordinates: flip the sign bit of the
// IEEE-754 representation. Negative values encode below non-negative
// ones and non-negative values keep their order, but among negative
// values the encoded order is reversed (a larger magnitude encodes
// higher). NaN is irrelevant for pruning purposes but still round-trips
// through Encode/Decode by its raw bit pattern.
func Float32() Codec[float32, uint32] {
	return Codec[float32, uint32]{
		Width: 32,
		Encode: func(v float32) uint32 {
			return math.Float32bits(v) ^ (1 << 31)
		},
		Decode: func(u uint32) float32 {
			return math.Float32frombits(u ^ (1 << 31))
		},
		IsIrrelevant: func(v float32) bool { return v != v },
		SquaredDistance: func(a, b float32) float32 {
			d := a - b
			return d * d
		},
	}
}

// Float64 is the codec for float64 coordinates, with the same sign-bit
// flip and the same ordering as Float32.
func Float64() Codec[float64, uint64] {
	return Codec[float64, uint64]{
		Width: 64,
		Encode: func(v float64) uint64 {
			return math.Float64bits(v) ^ (1 << 63)
		},
		Decode: func(u uint64) float64 {
			return math.Float64frombits(u ^ (1 << 63))
		},
		IsIrrelevant: func(v float64) bool { return v != v },
		SquaredDistance: func(a, b float64) float64 {
			d := a - b
			return d * d
		},
	}
}

// signed is the set of signed integer coordinate types.
type signed interface {
	~int16 | ~int32 | ~int64
}

// unsignedInt is the set of unsigned integer coordinate types.
type unsignedInt interface {
	~uint16 | ~uint32 | ~uint64
}

// squaredDistanceSigned computes an absolute difference before squaring,
// same as the unsigned case: never feeds a negative intermediate into
// the multiplication even though signed arithmetic could tolerate it.
func squaredDistanceSigned[T signed](a, b T) T {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d * d
}

// squaredDistanceUnsigned orders the subtraction so it never underflows.
func squaredDistanceUnsigned[T unsignedInt](a, b T) T {
	var d T
	if a >= b {
		d = a - b
	} else {
		d = b - a
	}
	return d * d
}
