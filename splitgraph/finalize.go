package splitgraph

import "log"

// Finalize freezes the builder into an immutable SplitGraph. wordSize must
// be at most the split width; doComponentOrder gates the SCC/component
// analysis, when false, Component(v) is always 0 for every v.
// The Builder must not be used for further mutation after Finalize.
func (b *Builder) Finalize(wordSize int, doComponentOrder bool) *SplitGraph {
	b.assertMutable("Finalize")
	if wordSize > SplitNodeSize {
		log.Fatalf("[Finalize] wordSize %d exceeds split width %d\n", wordSize, SplitNodeSize)
	}
	b.finalized = true

	n := len(b.vertices)
	perm, firstAmbiguous := b.renumberPermutation()

	g := &SplitGraph{
		length:         make([]int, n),
		originalID:     make([]int, n),
		offset:         make([]int, n),
		reverse:        make([]bool, n),
		inNeighbors:    make([][]int, n),
		outNeighbors:   make([][]int, n),
		linearizable:   make([]bool, n),
		component:      make([]int, n),
		definiteChunks: make([][chunksInNode]uint64, firstAmbiguous),
		ambiguousA:     make([]uint64, n-firstAmbiguous),
		ambiguousC:     make([]uint64, n-firstAmbiguous),
		ambiguousG:     make([]uint64, n-firstAmbiguous),
		ambiguousT:     make([]uint64, n-firstAmbiguous),
		nodeLookup:     make(map[int][]int, len(b.nodeLookup)),
		originalSize:   b.originalSize,
		originalName:   b.originalName,
		firstAmbiguous: firstAmbiguous,
	}

	for old, v := range b.vertices {
		nv := perm[old]
		g.length[nv] = v.length
		g.originalID[nv] = v.originalID
		g.offset[nv] = v.offset
		g.reverse[nv] = v.reverse

		if v.ambiguous {
			i := nv - firstAmbiguous
			g.ambiguousA[i] = v.ambA
			g.ambiguousC[i] = v.ambC
			g.ambiguousG[i] = v.ambG
			g.ambiguousT[i] = v.ambT
		} else {
			g.definiteChunks[nv] = v.defChunks
		}

		for _, w := range v.outNeighbors {
			g.outNeighbors[nv] = append(g.outNeighbors[nv], perm[w])
		}
		for _, w := range v.inNeighbors {
			g.inNeighbors[nv] = append(g.inNeighbors[nv], perm[w])
		}
	}

	for id, oldList := range b.nodeLookup {
		newList := make([]int, len(oldList))
		for i, old := range oldList {
			newList[i] = perm[old]
		}
		g.nodeLookup[id] = newList
	}

	g.linearizable = computeLinearizable(g)
	if doComponentOrder {
		g.component, g.componentCount = computeComponents(g)
	}

	return g
}

// renumberPermutation computes the old-index -> new-index permutation:
// definite vertices keep their relative order at the head of the index
// space; ambiguous vertices occupy the tail in the reverse of their
// construction order.
func (b *Builder) renumberPermutation() (perm []int, firstAmbiguous int) {
	n := len(b.vertices)
	perm = make([]int, n)

	numAmbiguous := 0
	for _, v := range b.vertices {
		if v.ambiguous {
			numAmbiguous++
		}
	}
	firstAmbiguous = n - numAmbiguous

	defCount := 0
	ambCount := 0
	for old, v := range b.vertices {
		if v.ambiguous {
			perm[old] = n - 1 - ambCount
			ambCount++
		} else {
			perm[old] = defCount
			defCount++
		}
	}
	return perm, firstAmbiguous
}
