package traceback

import (
	"testing"

	"galign/splitgraph"
)

func oneNodeGraph(t *testing.T) (*splitgraph.SplitGraph, int) {
	b := splitgraph.NewBuilder()
	b.AddNode(5, "ACGT", "n5", false, []int{0, 4})
	g := b.Finalize(64, false)
	return g, g.NodeLookup(5)[0]
}

func TestTraceToAlignmentCleanMatch(t *testing.T) {
	g, v := oneNodeGraph(t)
	trace := []MatrixPosition{
		{Node: v, NodeOffset: 0, SeqPos: 0},
		{Node: v, NodeOffset: 1, SeqPos: 1},
		{Node: v, NodeOffset: 2, SeqPos: 2},
		{Node: v, NodeOffset: 3, SeqPos: 3},
	}
	a := TraceToAlignment(g, "q1", "ACGT", 0, trace, 4, false)

	if len(a.Mappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(a.Mappings))
	}
	m := a.Mappings[0]
	if m.OriginalID != 5 || m.Reverse {
		t.Fatalf("unexpected mapping anchor %+v", m)
	}
	if len(m.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(m.Edits))
	}
	e := m.Edits[0]
	if e.FromLength != 4 || e.ToLength != 4 {
		t.Fatalf("expected fromLength=4 toLength=4, got %d,%d", e.FromLength, e.ToLength)
	}
	if e.Sequence != "ACGT" {
		t.Fatalf("expected literal sequence ACGT, got %q", e.Sequence)
	}
}

func TestTraceToAlignmentEmptyTrace(t *testing.T) {
	g, _ := oneNodeGraph(t)
	a := TraceToAlignment(g, "q1", "ACGT", 0, nil, 0, false)
	if !a.Failed() {
		t.Fatalf("expected empty-trace alignment to be the failed sentinel")
	}
}

func TestTraceToAlignmentSplitsIntoTwoMappings(t *testing.T) {
	b := splitgraph.NewBuilder()
	b.AddNode(1, "ACGT", "a", false, []int{0, 4})
	b.AddNode(2, "TTTT", "b", false, []int{0, 4})
	b.AddEdge(1, 2, 0)
	g := b.Finalize(64, false)

	va := g.NodeLookup(1)[0]
	vb := g.NodeLookup(2)[0]

	trace := []MatrixPosition{
		{Node: va, NodeOffset: 2, SeqPos: 0},
		{Node: va, NodeOffset: 3, SeqPos: 1},
		{Node: vb, NodeOffset: 0, SeqPos: 2},
		{Node: vb, NodeOffset: 1, SeqPos: 3},
	}
	a := TraceToAlignment(g, "q2", "GTTT", 10, trace, 4, false)

	if len(a.Mappings) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(a.Mappings))
	}
	if a.Mappings[0].OriginalID != 1 || a.Mappings[1].OriginalID != 2 {
		t.Fatalf("unexpected mapping order: %+v", a.Mappings)
	}
	if a.Mappings[0].Rank != 0 || a.Mappings[1].Rank != 1 {
		t.Fatalf("unexpected ranks: %d,%d", a.Mappings[0].Rank, a.Mappings[1].Rank)
	}
	total := 0
	for _, m := range a.Mappings {
		for _, e := range m.Edits {
			total += e.ToLength
		}
	}
	if total != 4 {
		t.Fatalf("total toLength across mappings = %d want 4", total)
	}
}
