// Package splitgraph builds and queries the split-node index over an input
// bidirected sequence graph: the vertex table, bit-packed sequence store,
// renumbering, linearizable-vertex analysis and component ordering that the
// column-wise dynamic-programming aligner and traceback read from.
package splitgraph

import "log"

// SplitNodeSize is W, the split width: the maximum number of bases a
// single split vertex may hold, and the machine-word bit count the DP is
// built around.
const SplitNodeSize = 64

// chunksInNode is the number of uint64 chunks needed to 2-bit pack
// SplitNodeSize bases.
const chunksInNode = 2

// SplitGraph is the finalized, immutable indexed graph. Values are read
// through the methods below; there is no exported mutable state. A
// SplitGraph is only ever produced by Builder.Finalize or FromSnapshot.
type SplitGraph struct {
	length         []int
	originalID     []int
	offset         []int
	reverse        []bool
	inNeighbors    [][]int
	outNeighbors   [][]int
	linearizable   []bool
	component      []int
	componentCount int

	// definiteChunks[v] is valid for v < firstAmbiguous.
	definiteChunks [][chunksInNode]uint64
	// ambiguous{A,C,G,T}[v-firstAmbiguous] are valid for v >= firstAmbiguous.
	ambiguousA []uint64
	ambiguousC []uint64
	ambiguousG []uint64
	ambiguousT []uint64

	nodeLookup   map[int][]int
	originalSize map[int]int
	originalName map[int]string

	firstAmbiguous int
}

// NodeSize returns N, the number of split vertices.
func (g *SplitGraph) NodeSize() int { return len(g.length) }

// NodeLength returns the number of bases split vertex v holds.
func (g *SplitGraph) NodeLength(v int) int { return g.length[v] }

// OriginalID returns the input vertex id split vertex v was cut from.
func (g *SplitGraph) OriginalID(v int) int { return g.originalID[v] }

// Offset returns the byte offset of split v within its original vertex's
// forward sequence.
func (g *SplitGraph) Offset(v int) int { return g.offset[v] }

// Strand returns the reverse flag of split vertex v.
func (g *SplitGraph) Strand(v int) bool { return g.reverse[v] }

// Linearizable reports whether v is linearizable, see the linearizable
// analysis in linearizable.go.
func (g *SplitGraph) Linearizable(v int) bool { return g.linearizable[v] }

// Component returns the component order number of v, see component.go.
func (g *SplitGraph) Component(v int) int { return g.component[v] }

// ComponentSize returns the number of components found by the component
// order pass, or 0 if Finalize was called with doComponentOrder false.
func (g *SplitGraph) ComponentSize() int { return g.componentCount }

// FirstAmbiguous returns the partition boundary: vertices with index below
// this are definite, at or above it are ambiguous.
func (g *SplitGraph) FirstAmbiguous() int { return g.firstAmbiguous }

// InNeighbors returns the deduplicated in-neighbor split indices of v.
// The returned slice must not be mutated by the caller.
func (g *SplitGraph) InNeighbors(v int) []int { return g.inNeighbors[v] }

// OutNeighbors returns the deduplicated out-neighbor split indices of v.
// The returned slice must not be mutated by the caller.
func (g *SplitGraph) OutNeighbors(v int) []int { return g.outNeighbors[v] }

// OriginalSize returns the total base count of original vertex id.
func (g *SplitGraph) OriginalSize(id int) int { return g.originalSize[id] }

// OriginalName returns the name recorded for original vertex id, or "" if
// none was given.
func (g *SplitGraph) OriginalName(id int) string { return g.originalName[id] }

// NodeLookup returns the ordered (by ascending offset) list of split
// indices covering original vertex id. The returned slice must not be
// mutated by the caller.
func (g *SplitGraph) NodeLookup(id int) []int { return g.nodeLookup[id] }

// ChunksOf returns the 2-bit packed chunks of a definite split vertex v.
// It is a programming error to call this on an ambiguous vertex.
func (g *SplitGraph) ChunksOf(v int) [chunksInNode]uint64 {
	if v >= g.firstAmbiguous {
		log.Fatalf("[ChunksOf] vertex %d is ambiguous, not definite\n", v)
	}
	return g.definiteChunks[v]
}

// AmbiguousChunksOf returns the four {A,C,G,T} admission bitmasks of an
// ambiguous split vertex v. It is a programming error to call this on a
// definite vertex.
func (g *SplitGraph) AmbiguousChunksOf(v int) (a, c, gBase, t uint64) {
	if v < g.firstAmbiguous {
		log.Fatalf("[AmbiguousChunksOf] vertex %d is definite, not ambiguous\n", v)
	}
	i := v - g.firstAmbiguous
	return g.ambiguousA[i], g.ambiguousC[i], g.ambiguousG[i], g.ambiguousT[i]
}
