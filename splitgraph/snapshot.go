package splitgraph

// Snapshot is the plain-data mirror of SplitGraph's fields, suitable for
// gob encoding. SplitGraph itself carries no exported mutable state and is
// only ever produced by Builder.Finalize or FromSnapshot.
type Snapshot struct {
	Length         []int
	OriginalID     []int
	Offset         []int
	Reverse        []bool
	InNeighbors    [][]int
	OutNeighbors   [][]int
	Linearizable   []bool
	Component      []int
	ComponentCount int
	DefiniteChunks [][chunksInNode]uint64
	AmbiguousA     []uint64
	AmbiguousC     []uint64
	AmbiguousG     []uint64
	AmbiguousT     []uint64
	NodeLookup     map[int][]int
	OriginalSizeOf map[int]int
	OriginalNameOf map[int]string
	FirstAmbiguous int
}

// ToSnapshot captures g's state in a Snapshot for serialization. The
// Snapshot shares g's slices and maps; they are not deep-copied.
func (g *SplitGraph) ToSnapshot() Snapshot {
	return Snapshot{
		Length:         g.length,
		OriginalID:     g.originalID,
		Offset:         g.offset,
		Reverse:        g.reverse,
		InNeighbors:    g.inNeighbors,
		OutNeighbors:   g.outNeighbors,
		Linearizable:   g.linearizable,
		Component:      g.component,
		ComponentCount: g.componentCount,
		DefiniteChunks: g.definiteChunks,
		AmbiguousA:     g.ambiguousA,
		AmbiguousC:     g.ambiguousC,
		AmbiguousG:     g.ambiguousG,
		AmbiguousT:     g.ambiguousT,
		NodeLookup:     g.nodeLookup,
		OriginalSizeOf: g.originalSize,
		OriginalNameOf: g.originalName,
		FirstAmbiguous: g.firstAmbiguous,
	}
}

// FromSnapshot rebuilds a SplitGraph from a previously captured Snapshot,
// bypassing Builder.Finalize entirely.
func FromSnapshot(s Snapshot) *SplitGraph {
	return &SplitGraph{
		length:         s.Length,
		originalID:     s.OriginalID,
		offset:         s.Offset,
		reverse:        s.Reverse,
		inNeighbors:    s.InNeighbors,
		outNeighbors:   s.OutNeighbors,
		linearizable:   s.Linearizable,
		component:      s.Component,
		componentCount: s.ComponentCount,
		definiteChunks: s.DefiniteChunks,
		ambiguousA:     s.AmbiguousA,
		ambiguousC:     s.AmbiguousC,
		ambiguousG:     s.AmbiguousG,
		ambiguousT:     s.AmbiguousT,
		nodeLookup:     s.NodeLookup,
		originalSize:   s.OriginalSizeOf,
		originalName:   s.OriginalNameOf,
		firstAmbiguous: s.FirstAmbiguous,
	}
}
