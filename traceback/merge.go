package traceback

import "galign/splitgraph"

// anchorPos is the (originalID, reverse) identity of a mapping's anchor,
// ignoring offset. It is used when deciding whether two alignments share
// their boundary mapping.
type anchorPos struct {
	originalID int
	reverse    bool
}

func anchorOf(m Mapping) anchorPos {
	return anchorPos{originalID: m.OriginalID, reverse: m.Reverse}
}

func posEqual(a, b anchorPos) bool {
	return a.originalID == b.originalID && a.reverse == b.reverse
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// MergeAlignments stitches two alignments produced by adjacent DP passes
// around a shared seed. If the two alignments' boundary mappings are the
// same anchored position, the second's first mapping is dropped;
// otherwise all of the second's mappings are kept. The adjacency check
// below only looks at the last split of first's final original vertex and
// the first split of second's first original vertex via the graph's node
// lookup; a real edge between interior splits of those vertices will not
// be detected. The check is intentionally conservative and left as-is.
func MergeAlignments(g *splitgraph.SplitGraph, first, second Alignment) Alignment {
	if first.Failed() {
		return second
	}
	if second.Failed() {
		return first
	}
	if len(first.Mappings) == 0 {
		return second
	}
	if len(second.Mappings) == 0 {
		return first
	}

	result := first
	result.Mappings = append([]Mapping(nil), first.Mappings...)
	result.Score = first.Score + second.Score
	result.CellsProcessed = first.CellsProcessed + second.CellsProcessed
	result.ElapsedMilliseconds = first.ElapsedMilliseconds + second.ElapsedMilliseconds

	firstEnd := first.Mappings[len(first.Mappings)-1]
	secondStart := second.Mappings[0]

	start := 0
	if posEqual(anchorOf(firstEnd), anchorOf(secondStart)) {
		start = 1
	} else if firstEndSplits := g.NodeLookup(firstEnd.OriginalID); len(firstEndSplits) > 0 {
		firstEndSplit := firstEndSplits[len(firstEndSplits)-1]
		secondStartSplits := g.NodeLookup(secondStart.OriginalID)
		if len(secondStartSplits) > 0 && containsInt(g.OutNeighbors(firstEndSplit), secondStartSplits[0]) {
			start = 0
		}
	}

	result.Mappings = append(result.Mappings, second.Mappings[start:]...)
	result.Sequence = first.Sequence
	result.AlignmentStart = first.AlignmentStart
	result.AlignmentEnd = second.AlignmentEnd
	return result
}
