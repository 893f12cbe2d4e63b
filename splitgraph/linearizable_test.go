package splitgraph

import "testing"

func buildChainWithBranch(t *testing.T) *SplitGraph {
	b := NewBuilder()
	b.AddNode(5, "G", "xstart", false, []int{0, 1})
	b.AddNode(0, "A", "x0", false, []int{0, 1})
	b.AddNode(1, "C", "x1", false, []int{0, 1})
	b.AddNode(2, "G", "x2", false, []int{0, 1})
	b.AddNode(3, "T", "x3", false, []int{0, 1})
	b.AddNode(4, "A", "x4", false, []int{0, 1})
	b.AddEdge(5, 0, 0) // xstart -> x0 (gives x0 a unique in-degree-1 predecessor)
	b.AddEdge(0, 1, 0) // x0 -> x1
	b.AddEdge(1, 2, 0) // x1 -> x2
	b.AddEdge(2, 3, 0) // x2 -> x3
	b.AddEdge(4, 3, 0) // x4 -> x3 (gives x3 in-degree 2)
	return b.Finalize(64, false)
}

func TestLinearizableTailIntoBranch(t *testing.T) {
	g := buildChainWithBranch(t)
	x0 := g.NodeLookup(0)[0]
	x1 := g.NodeLookup(1)[0]
	x2 := g.NodeLookup(2)[0]
	x3 := g.NodeLookup(3)[0]

	for _, v := range []int{x0, x1, x2} {
		if !g.Linearizable(v) {
			t.Fatalf("vertex %d on the tail should be linearizable", v)
		}
	}
	if g.Linearizable(x3) {
		t.Fatalf("branching terminator x3 must not be linearizable")
	}
}

func TestLinearizableSelfCycleNoneFlagged(t *testing.T) {
	b := NewBuilder()
	b.AddNode(0, "A", "x0", false, []int{0, 1})
	b.AddNode(1, "C", "x1", false, []int{0, 1})
	b.AddEdge(0, 1, 0)
	b.AddEdge(1, 0, 0)
	g := b.Finalize(64, false)

	x0 := g.NodeLookup(0)[0]
	x1 := g.NodeLookup(1)[0]
	if g.Linearizable(x0) || g.Linearizable(x1) {
		t.Fatalf("a two-cycle of unique-in-degree vertices must flag neither as linearizable")
	}
}

func TestLinearizableTailIntoInteriorCycle(t *testing.T) {
	b := NewBuilder()
	b.AddNode(0, "A", "s", false, []int{0, 1})  // S
	b.AddNode(1, "C", "bb", false, []int{0, 1}) // B
	b.AddNode(2, "G", "a", false, []int{0, 1})  // A
	b.AddEdge(1, 0, 0) // B -> S
	b.AddEdge(2, 1, 0) // A -> B
	b.AddEdge(1, 2, 0) // B -> A  (A <-> B cycle, S hangs off B)
	g := b.Finalize(64, false)

	s := g.NodeLookup(0)[0]
	bb := g.NodeLookup(1)[0]
	a := g.NodeLookup(2)[0]

	if !g.Linearizable(s) {
		t.Fatalf("S should be linearizable (before the re-entry point)")
	}
	if g.Linearizable(bb) || g.Linearizable(a) {
		t.Fatalf("the interior cycle vertices must not be linearizable")
	}
}
