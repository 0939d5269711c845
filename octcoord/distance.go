package octcoord

// SquaredDistance sums the per-axis squared distance between two encoded
// points, decoding each axis back to the user's numeric type first (§4.2).
func SquaredDistance[C Numeric, U Unsigned](codec Codec[C, U], a, b EncodedPoint[U]) C {
	dx := codec.SquaredDistance(codec.Decode(a.X), codec.Decode(b.X))
	dy := codec.SquaredDistance(codec.Decode(a.Y), codec.Decode(b.Y))
	dz := codec.SquaredDistance(codec.Decode(a.Z), codec.Decode(b.Z))
	return dx + dy + dz
}

// MinSquaredDistanceToCell computes a lower bound on the squared distance
// from query to any point sharing cellPoint's first cellDepth encoded
// bits (§4.2). Per axis the cell restricts that coordinate to the
// interval [lo, hi] obtained by zeroing, respectively setting, every bit
// below cellDepth; the axis contributes zero if query's coordinate falls
// inside that interval, otherwise the squared distance to the nearer
// endpoint. If decoding any axis of query yields an irrelevant value
// (NaN), the bound is zero so the cell is never pruned away.
func MinSquaredDistanceToCell[C Numeric, U Unsigned](codec Codec[C, U], cellPoint EncodedPoint[U], cellDepth, width uint8, query EncodedPoint[U]) C {
	qx, qy, qz := codec.Decode(query.X), codec.Decode(query.Y), codec.Decode(query.Z)
	if codec.IsIrrelevant(qx) || codec.IsIrrelevant(qy) || codec.IsIrrelevant(qz) {
		var zero C
		return zero
	}

	shift := width - cellDepth
	var lowMask U
	if shift > 0 {
		lowMask = (U(1) << shift) - 1
	}

	axis := func(cell U, query C) C {
		lo := cell &^ lowMask
		hi := lo | lowMask
		queryEncoded := codec.Encode(query)
		if queryEncoded >= lo && queryEncoded <= hi {
			var zero C
			return zero
		}
		// Encoded order is reversed among negative floats, so the nearer
		// endpoint is found by comparing both distances.
		dLo := codec.SquaredDistance(codec.Decode(lo), query)
		dHi := codec.SquaredDistance(codec.Decode(hi), query)
		if dHi < dLo {
			return dHi
		}
		return dLo
	}

	return axis(cellPoint.X, qx) + axis(cellPoint.Y, qy) + axis(cellPoint.Z, qz)
}
