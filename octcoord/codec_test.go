package octcoord

import "testing"

func TestInt32OrderPreserving(t *testing.T) {
	c := Int32()
	values := []int32{-2147483648, -1000, -1, 0, 1, 1000, 2147483647}
	for i := 0; i < len(values)-1; i++ {
		a, b := values[i], values[i+1]
		if !(c.Encode(a) < c.Encode(b)) {
			t.Fatalf("expected encode(%d) < encode(%d), got %d >= %d", a, b, c.Encode(a), c.Encode(b))
		}
		if c.Decode(c.Encode(a)) != a {
			t.Fatalf("round trip failed for %d: got %d", a, c.Decode(c.Encode(a)))
		}
	}
}

func TestUint16Identity(t *testing.T) {
	c := Uint16()
	if c.Encode(42) != 42 {
		t.Fatalf("expected identity encoding, got %d", c.Encode(42))
	}
	if c.Decode(42) != 42 {
		t.Fatalf("expected identity decoding, got %d", c.Decode(42))
	}
}

func TestFloat64OrderPreservingNonNegative(t *testing.T) {
	c := Float64()
	values := []float64{0, 0.5, 1, 100, 1e300}
	for i := 0; i < len(values)-1; i++ {
		a, b := values[i], values[i+1]
		if !(c.Encode(a) < c.Encode(b)) {
			t.Fatalf("expected encode(%v) < encode(%v)", a, b)
		}
	}
}

func TestFloat64NegativeSortsBeforePositive(t *testing.T) {
	c := Float64()
	if !(c.Encode(-1.0) < c.Encode(1.0)) {
		t.Fatalf("expected negative to encode below positive")
	}
	if !(c.Encode(-1.0) < c.Encode(0.0)) {
		t.Fatalf("expected negative to encode below zero")
	}
}

func TestFloat64IsIrrelevant(t *testing.T) {
	c := Float64()
	nan := c.Decode(c.Encode(0)) // sanity: 0 is not irrelevant
	if c.IsIrrelevant(nan) {
		t.Fatalf("0 should not be irrelevant")
	}
	var realNaN float64
	realNaN = realNaN / realNaN // produce NaN without importing math
	if !c.IsIrrelevant(realNaN) {
		t.Fatalf("NaN should be irrelevant")
	}
}

func TestSquaredDistanceUnsignedNoUnderflow(t *testing.T) {
	c := Uint16()
	got := c.SquaredDistance(2, 5)
	want := uint16(9) // |2-5| = 3, 3*3 = 9
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestSquaredDistanceSignedAbsoluteDifference(t *testing.T) {
	c := Int32()
	got := c.SquaredDistance(-3, 4)
	want := int32(49) // |-3-4| = 7, 7*7 = 49
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}
