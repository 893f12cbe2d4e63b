package splitgraph

import (
	"log"
	"strings"

	"galign/bnt"
)

type pendingVertex struct {
	length     int
	originalID int
	offset     int
	reverse    bool
	ambiguous  bool

	defChunks [chunksInNode]uint64
	ambA      uint64
	ambC      uint64
	ambG      uint64
	ambT      uint64

	inNeighbors  []int
	outNeighbors []int
}

// Builder accumulates split vertices and edges through repeated AddNode
// and AddEdge calls. Call Finalize exactly once to obtain an immutable
// SplitGraph; a Builder must not be reused for further mutation afterward.
type Builder struct {
	vertices     []pendingVertex
	nodeLookup   map[int][]int
	originalSize map[int]int
	originalName map[int]string
	added        map[int]bool
	finalized    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		nodeLookup:   make(map[int][]int),
		originalSize: make(map[int]int),
		originalName: make(map[int]string),
		added:        make(map[int]bool),
	}
}

// Reserve hints the expected number of original vertices and split
// vertices; it is safe to omit.
func (b *Builder) Reserve(numOriginals, numSplits int) {
	if numOriginals > 0 {
		nl := make(map[int][]int, numOriginals)
		for k, v := range b.nodeLookup {
			nl[k] = v
		}
		b.nodeLookup = nl
	}
	if numSplits > 0 && cap(b.vertices) < numSplits {
		grown := make([]pendingVertex, len(b.vertices), numSplits)
		copy(grown, b.vertices)
		b.vertices = grown
	}
}

func (b *Builder) assertMutable(fn string) {
	if b.finalized {
		log.Fatalf("[%s] Builder is already finalized\n", fn)
	}
}

// AddNode records original vertex id with sequence seq, display name,
// strand reverse, and a breakpoint list. breakpoints must be strictly
// increasing, start at 0 and end at len(seq). If id has already been
// added, AddNode returns without modification.
func (b *Builder) AddNode(id int, seq string, name string, reverse bool, breakpoints []int) {
	b.assertMutable("AddNode")
	if b.added[id] {
		return
	}
	if len(breakpoints) < 2 || breakpoints[0] != 0 || breakpoints[len(breakpoints)-1] != len(seq) {
		log.Fatalf("[AddNode] malformed breakpoints %v for node %d of length %d\n", breakpoints, id, len(seq))
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			log.Fatalf("[AddNode] breakpoints %v not strictly increasing\n", breakpoints)
		}
	}

	b.added[id] = true
	b.originalSize[id] = len(seq)
	b.originalName[id] = name

	upper := strings.ToUpper(seq)
	prev := -1
	for i := 1; i < len(breakpoints); i++ {
		spanStart, spanEnd := breakpoints[i-1], breakpoints[i]
		if spanStart == spanEnd {
			continue
		}
		for start := spanStart; start < spanEnd; start += SplitNodeSize {
			end := start + SplitNodeSize
			if end > spanEnd {
				end = spanEnd
			}
			idx := b.addSplit(id, start, end-start, upper[start:end], reverse)
			if prev >= 0 {
				b.addIntraEdge(prev, idx)
			}
			prev = idx
		}
	}
}

// addSplit creates one split vertex for original vertex id covering
// [offset, offset+length) of its upper-cased sequence span, and returns
// its temporary (pre-renumber) index.
func (b *Builder) addSplit(id, offset, length int, span string, reverse bool) int {
	v := pendingVertex{
		length:     length,
		originalID: id,
		offset:     offset,
		reverse:    reverse,
	}
	for i := 0; i < length; i++ {
		c := span[i]
		if bnt.IsDefinite(c) {
			continue
		}
		if _, ok := bnt.IUPACMask(c); !ok {
			log.Fatalf("[addSplit] unrecognized base character %q in node %d at offset %d\n", c, id, offset+i)
		}
		v.ambiguous = true
		break
	}
	if v.ambiguous {
		for i := 0; i < length; i++ {
			c := span[i]
			mask, ok := bnt.IUPACMask(c)
			if !ok {
				log.Fatalf("[addSplit] unrecognized base character %q in node %d at offset %d\n", c, id, offset+i)
			}
			bit := uint64(1) << uint(i)
			if mask&(1<<0) != 0 {
				v.ambA |= bit
			}
			if mask&(1<<1) != 0 {
				v.ambC |= bit
			}
			if mask&(1<<2) != 0 {
				v.ambG |= bit
			}
			if mask&(1<<3) != 0 {
				v.ambT |= bit
			}
		}
	} else {
		bnt.PackDefinite([]byte(span), v.defChunks[:])
	}

	idx := len(b.vertices)
	b.vertices = append(b.vertices, v)
	b.nodeLookup[id] = append(b.nodeLookup[id], idx)
	return idx
}

func (b *Builder) addIntraEdge(from, to int) {
	b.addEdgeByIndex(from, to)
}

func (b *Builder) addEdgeByIndex(from, to int) {
	if !containsInt(b.vertices[from].outNeighbors, to) {
		b.vertices[from].outNeighbors = append(b.vertices[from].outNeighbors, to)
	}
	if !containsInt(b.vertices[to].inNeighbors, from) {
		b.vertices[to].inNeighbors = append(b.vertices[to].inNeighbors, from)
	}
}

func containsInt(arr []int, x int) bool {
	for _, v := range arr {
		if v == x {
			return true
		}
	}
	return false
}

// AddEdge adds a deduplicated edge from the trailing split of fromId to
// the split of toId whose offset equals toStartOffset. Both endpoints
// must already have been added via AddNode.
func (b *Builder) AddEdge(fromId, toId, toStartOffset int) {
	b.assertMutable("AddEdge")
	fromSplits, ok := b.nodeLookup[fromId]
	if !ok || len(fromSplits) == 0 {
		log.Fatalf("[AddEdge] source node %d was never added\n", fromId)
	}
	toSplits, ok := b.nodeLookup[toId]
	if !ok || len(toSplits) == 0 {
		log.Fatalf("[AddEdge] destination node %d was never added\n", toId)
	}

	from := fromSplits[len(fromSplits)-1]
	fv := b.vertices[from]
	if fv.offset+fv.length != b.originalSize[fromId] {
		log.Fatalf("[AddEdge] source node %d's trailing split does not reach its end\n", fromId)
	}

	to := -1
	for _, idx := range toSplits {
		if b.vertices[idx].offset == toStartOffset {
			to = idx
			break
		}
	}
	if to < 0 {
		log.Fatalf("[AddEdge] destination node %d has no split starting at offset %d\n", toId, toStartOffset)
	}

	b.addEdgeByIndex(from, to)
}
