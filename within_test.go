package octree

import "testing"

func TestWithinExcludesPointsJustOutsideRadius(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(0, 0, 0), 1)
	tr.Add(v(5, 0, 0), 2)
	tr.Add(v(6, 0, 0), 3)

	got := collect(tr.Within(v(0, 0, 0), 5))
	if !got.Equals(setOf(1, 2)) {
		t.Fatalf("within((0,0,0), 5) = %v; want {1,2}", got)
	}
}

func TestWithinEmptyTree(t *testing.T) {
	tr := NewInt32[int]()
	count := 0
	for range tr.Within(v(0, 0, 0), 100) {
		count++
	}
	if count != 0 {
		t.Fatalf("within on empty tree yielded %d entries; want 0", count)
	}
}

func TestWithinEarlyStopViaBreak(t *testing.T) {
	tr := NewInt32[int]()
	for i := int32(0); i < 20; i++ {
		tr.Add(v(i, 0, 0), int(i))
	}

	count := 0
	for range tr.Within(v(0, 0, 0), 1000) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("expected iteration to stop after 3 yields, got %d", count)
	}
}
