// Package traceback reconstructs a graph-anchored alignment from a list of
// dynamic-programming trace positions, and stitches two such alignments
// together around a shared seed.
package traceback

import "galign/splitgraph"

// MatrixPosition identifies one dynamic-programming cell: the split
// vertex, the base offset within that split, and the base index in the
// query sequence.
type MatrixPosition struct {
	Node       int
	NodeOffset int
	SeqPos     int
}

// Edit describes one piece of an alignment: fromLength graph bases and
// toLength query bases consumed, with an optional literal query sequence
// (every edit that consumes query bases carries them, matches included;
// pure deletions do not).
type Edit struct {
	FromLength int
	ToLength   int
	Sequence   string
}

// Mapping is a maximal run of edits anchored at a single original vertex
// position and strand.
type Mapping struct {
	Rank       int
	OriginalID int
	Offset     int
	Reverse    bool
	Edits      []Edit
}

// Alignment is the result of a traceback: an ordered path of mappings,
// plus the bookkeeping the caller threads through the aligner.
type Alignment struct {
	SequenceID          string
	Sequence            string
	Score               int
	Mappings            []Mapping
	CellsProcessed      int
	ElapsedMilliseconds int
	AlignmentStart      int
	AlignmentEnd        int
}

// failedScore is the sentinel score carried by the empty alignment.
const failedScore = int(^uint(0) >> 1) // max int

// Failed reports whether a is the empty-alignment sentinel.
func (a Alignment) Failed() bool { return a.Score == failedScore }

// EmptyAlignment is the sentinel alignment used to represent a failed or
// absent alignment attempt.
func EmptyAlignment(elapsedMilliseconds, cellsProcessed int) Alignment {
	return Alignment{
		Score:               failedScore,
		CellsProcessed:      cellsProcessed,
		ElapsedMilliseconds: elapsedMilliseconds,
	}
}

func strandOf(g *splitgraph.SplitGraph, split int, alignmentReverse bool) bool {
	if alignmentReverse {
		return !g.Strand(split)
	}
	return g.Strand(split)
}

// notContiguous reports whether cur is NOT the contiguous forward (or, for
// a reverse alignment, contiguous backward) continuation of prev's split
// offset: forward continuation requires
// offset(cur) == offset(prev) + SplitNodeSize; reverse continuation
// requires offset(cur) + SplitNodeSize == offset(prev).
func notContiguous(g *splitgraph.SplitGraph, cur, prev int, reverse bool) bool {
	if reverse {
		return g.Offset(cur)+splitgraph.SplitNodeSize != g.Offset(prev)
	}
	return g.Offset(cur) != g.Offset(prev)+splitgraph.SplitNodeSize
}

// TraceToAlignment groups a non-empty, query-ordered trace into mappings
// and edits anchored on the finalized graph. An empty trace yields the
// empty alignment. reverse marks whether this trace was produced by the
// reverse-complement DP pass.
func TraceToAlignment(g *splitgraph.SplitGraph, seqID string, sequence string, score int, trace []MatrixPosition, cellsProcessed int, reverse bool) Alignment {
	if len(trace) == 0 {
		return EmptyAlignment(0, cellsProcessed)
	}

	currentSplit := trace[0].Node
	currentOriginalID := g.OriginalID(currentSplit)
	rank := 0

	curMapping := Mapping{
		Rank:       rank,
		OriginalID: currentOriginalID,
		Offset:     trace[0].NodeOffset,
		Reverse:    strandOf(g, currentSplit, reverse),
	}
	curEdit := Edit{}
	var mappings []Mapping

	btNodeStart := trace[0]
	btNodeEnd := trace[0]
	// btBeforeNode starts one query base before the trace so that the
	// very first query base is not silently dropped from the first
	// edit's toLength/literal sequence.
	btBeforeNode := trace[0]
	btBeforeNode.SeqPos--

	flush := func(beforeSeqPos, endSeqPos int) {
		curEdit.ToLength += endSeqPos - beforeSeqPos
		if endSeqPos != beforeSeqPos {
			curEdit.Sequence += sequence[beforeSeqPos+1 : endSeqPos+1]
		}
	}

	for pos := 0; pos < len(trace); pos++ {
		if trace[pos].Node == currentSplit {
			btNodeEnd = trace[pos]
			continue
		}

		flush(btBeforeNode.SeqPos, btNodeEnd.SeqPos)
		if reverse {
			curEdit.FromLength += btNodeStart.NodeOffset - btNodeEnd.NodeOffset + 1
		} else {
			curEdit.FromLength += btNodeEnd.NodeOffset - btNodeStart.NodeOffset + 1
		}

		btBeforeNode = btNodeEnd
		btNodeStart = trace[pos]
		btNodeEnd = trace[pos]
		previousSplit := currentSplit
		currentSplit = trace[pos].Node

		opensNewMapping := g.OriginalID(currentSplit) != currentOriginalID ||
			g.Strand(currentSplit) != g.Strand(previousSplit) ||
			notContiguous(g, currentSplit, previousSplit, reverse)

		if opensNewMapping {
			curMapping.Edits = append(curMapping.Edits, curEdit)
			mappings = append(mappings, curMapping)

			rank++
			currentOriginalID = g.OriginalID(currentSplit)
			curMapping = Mapping{
				Rank:       rank,
				OriginalID: currentOriginalID,
				Offset:     g.Offset(currentSplit),
				Reverse:    strandOf(g, currentSplit, reverse),
			}
			curEdit = Edit{}
		}
	}

	flush(btBeforeNode.SeqPos, btNodeEnd.SeqPos)
	if reverse {
		curEdit.FromLength += btNodeStart.NodeOffset - btNodeEnd.NodeOffset + 1
	} else {
		curEdit.FromLength += btNodeEnd.NodeOffset - btNodeStart.NodeOffset + 1
	}
	curMapping.Edits = append(curMapping.Edits, curEdit)
	mappings = append(mappings, curMapping)

	return Alignment{
		SequenceID:     seqID,
		Sequence:       sequence,
		Score:          score,
		Mappings:       mappings,
		CellsProcessed: cellsProcessed,
		AlignmentStart: trace[0].SeqPos,
		AlignmentEnd:   trace[len(trace)-1].SeqPos,
	}
}
