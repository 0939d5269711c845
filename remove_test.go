package octree

import (
	"testing"

	"github.com/oak-spatial/octree/internal/arena"
)

func TestRemoveNonexistentReturnsFalse(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(1, 2, 3), 1)

	if tr.Remove(v(9, 9, 9), 1) {
		t.Fatalf("remove of a point never added returned true")
	}
	if tr.Remove(v(1, 2, 3), 2) {
		t.Fatalf("remove of a payload never added at an existing point returned true")
	}
}

func TestRemoveLastPointEmptiesTree(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(1, 2, 3), 1)

	if !tr.Remove(v(1, 2, 3), 1) {
		t.Fatalf("remove returned false")
	}
	if tr.root != arena.None {
		t.Fatalf("root = %v after removing the only point; want arena.None", tr.root)
	}
	if tr.NodeCount() != 0 {
		t.Fatalf("node_count = %d; want 0", tr.NodeCount())
	}
}

func TestRemoveHeadOfChainKeepsRest(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(5, 5, 5), 1)
	tr.Add(v(5, 5, 5), 2)
	tr.Add(v(5, 5, 5), 3)

	if !tr.Remove(v(5, 5, 5), 3) { // 3 was added last, so it is the chain head
		t.Fatalf("remove of chain head returned false")
	}
	got := collect(tr.Get(v(5, 5, 5)))
	if !got.Equals(setOf(1, 2)) {
		t.Fatalf("get after removing chain head = %v; want {1,2}", got)
	}
}

func TestRemoveMidChainEntry(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(5, 5, 5), 1)
	tr.Add(v(5, 5, 5), 2)
	tr.Add(v(5, 5, 5), 3)

	if !tr.Remove(v(5, 5, 5), 2) {
		t.Fatalf("remove of a middle chain entry returned false")
	}
	got := collect(tr.Get(v(5, 5, 5)))
	if !got.Equals(setOf(1, 3)) {
		t.Fatalf("get after removing middle chain entry = %v; want {1,3}", got)
	}
}

func TestRemoveCollapsesSplitToSurvivingChild(t *testing.T) {
	tr := NewInt32[int]()
	tr.Add(v(0, 0, 0), 1)
	tr.Add(v(100, 0, 0), 2)
	// The root must now be (or wrap) a Split with exactly these two
	// children; removing one collapses it back to a bare leaf-bearing
	// branch with no trace of the Split.
	before := tr.NodeCount()

	if !tr.Remove(v(100, 0, 0), 2) {
		t.Fatalf("remove returned false")
	}
	if tr.NodeCount() >= before {
		t.Fatalf("node_count = %d; want fewer than %d after collapse", tr.NodeCount(), before)
	}
	got, ok := tr.GetSingle(v(0, 0, 0))
	if !ok || got != 1 {
		t.Fatalf("get_single((0,0,0)) after collapse = %v, %v; want 1, true", got, ok)
	}
	if _, ok := tr.GetSingle(v(100, 0, 0)); ok {
		t.Fatalf("get_single((100,0,0)) still found after removal")
	}
}
