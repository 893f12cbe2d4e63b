package splitgraph

import (
	"log"

	"galign/bnt"
)

// BaseAt returns the base letter at position p within split vertex v: a
// definite letter for a definite vertex, or the narrowest IUPAC letter
// admitted by an ambiguous vertex at that position.
func (g *SplitGraph) BaseAt(v, p int) byte {
	if p < 0 || p >= g.length[v] {
		log.Fatalf("[BaseAt] position %d out of range for vertex %d (length %d)\n", p, v, g.length[v])
	}
	if v < g.firstAmbiguous {
		return bnt.UnpackDefiniteBase(g.definiteChunks[v][:], p)
	}
	i := v - g.firstAmbiguous
	bit := uint64(1) << uint(p)
	a := g.ambiguousA[i]&bit != 0
	c := g.ambiguousC[i]&bit != 0
	gg := g.ambiguousG[i]&bit != 0
	t := g.ambiguousT[i]&bit != 0
	return bnt.DecodeAmbiguous(a, c, gg, t)
}
