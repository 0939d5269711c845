package octree

import "testing"

func TestMoveNonexistentReturnsFalse(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(1, 1, 1), 1)

	if tr.Move(v(9, 9, 9), v(1, 1, 1), 1) {
		t.Fatalf("move of a point never added returned true")
	}
}

func TestMoveWithinSameSplitBranch(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(0, 0, 0), 1)
	tr.Add(v(100, 0, 0), 2)

	// (1,0,0) still lands in the same octant as (0,0,0) at the Split's
	// depth, so this should take the in-place fast path.
	if !tr.Move(v(0, 0, 0), v(1, 0, 0), 1) {
		t.Fatalf("move returned false")
	}
	got, ok := tr.GetSingle(v(1, 0, 0))
	if !ok || got != 1 {
		t.Fatalf("get_single(new) = %v, %v; want 1, true", got, ok)
	}
	if _, ok := tr.GetSingle(v(0, 0, 0)); ok {
		t.Fatalf("get_single(old) still found after move")
	}
}

func TestMoveAcrossSplitBoundaryUsesFallback(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(0, 0, 0), 1)
	tr.Add(v(100, 0, 0), 2)

	if !tr.Move(v(0, 0, 0), v(100, 0, 0), 1) {
		t.Fatalf("move returned false")
	}
	got := collect(tr.Get(v(100, 0, 0)))
	if !got.Equals(setOf(1, 2)) {
		t.Fatalf("get(new) = %v; want {1,2}", got)
	}
	if _, ok := tr.GetSingle(v(0, 0, 0)); ok {
		t.Fatalf("get_single(old) still found after move")
	}
}

func TestMoveOneOfSeveralDuplicatesForcesFallback(t *testing.T) {
	tr := NewInt32[string]()
	tr.Add(v(2, 2, 2), "a")
	tr.Add(v(2, 2, 2), "b")

	if !tr.Move(v(2, 2, 2), v(8, 8, 8), "a") {
		t.Fatalf("move returned false")
	}
	remaining := collect2(tr.Get(v(2, 2, 2)))
	if !remaining.Equals(setOfStrings("b")) {
		t.Fatalf("get(old) = %v; want {b}", remaining)
	}
	moved, ok := tr.GetSingle(v(8, 8, 8))
	if !ok || moved != "a" {
		t.Fatalf("get_single(new) = %v, %v; want a, true", moved, ok)
	}
}
