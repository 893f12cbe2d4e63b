package splitgraph

import "log"

// GetUnitigNode returns the split vertex covering offsetWithinOriginal
// bases into original vertex id. It starts from a linear estimate over
// the vertex's ordered split list, then scans forward or backward to the
// exact split: O(1) amortized when splits are uniformly sized.
func (g *SplitGraph) GetUnitigNode(id, offsetWithinOriginal int) int {
	splits := g.nodeLookup[id]
	if len(splits) == 0 {
		log.Fatalf("[GetUnitigNode] node %d has no splits\n", id)
	}
	size := g.originalSize[id]

	var est int
	if size > 0 {
		est = len(splits) * offsetWithinOriginal / size
	}
	if est < 0 {
		est = 0
	}
	if est >= len(splits) {
		est = len(splits) - 1
	}

	i := est
	for i < len(splits)-1 && g.offset[splits[i]]+g.length[splits[i]] <= offsetWithinOriginal {
		i++
	}
	for i > 0 && g.offset[splits[i]] > offsetWithinOriginal {
		i--
	}

	result := splits[i]
	if offsetWithinOriginal < g.offset[result] || offsetWithinOriginal >= g.offset[result]+g.length[result] {
		log.Fatalf("[GetUnitigNode] no split of node %d covers offset %d\n", id, offsetWithinOriginal)
	}
	return result
}

// GetReversePosition maps (id, offset) in the forward strand to the
// corresponding position on the reverse-complement original vertex,
// using the id XOR 1 even/odd pairing convention.
func (g *SplitGraph) GetReversePosition(id, offset int) (reverseID, newOffset int) {
	reverseID = id ^ 1
	newOffset = g.originalSize[id] - offset - 1
	return reverseID, newOffset
}
