package splitgraph

// computeComponents runs Tarjan's strongly-connected-components algorithm
// with an explicit call stack (never recursion, since real sequence
// graphs can carry millions of vertices) and renumbers the result so that
// for every edge (u -> v), component[u] <= component[v].
func computeComponents(g *SplitGraph) ([]int, int) {
	n := g.NodeSize()
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	component := make([]int, n)

	var pending []int
	nextIndex := 0
	nextComponent := 0

	type frame struct {
		v       int
		cursor  int
	}
	var callStack []frame

	push := func(v int) {
		index[v] = nextIndex
		lowlink[v] = nextIndex
		nextIndex++
		pending = append(pending, v)
		onStack[v] = true
		callStack = append(callStack, frame{v: v})
	}

	for s := 0; s < n; s++ {
		if index[s] != -1 {
			continue
		}
		push(s)

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.v
			neighbors := g.outNeighbors[v]

			descended := false
			for top.cursor < len(neighbors) {
				w := neighbors[top.cursor]
				top.cursor++
				if index[w] == -1 {
					push(w)
					descended = true
					break
				}
				if onStack[w] && index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
			if descended {
				continue
			}

			// exit phase: v has no more neighbors to explore.
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				for {
					w := pending[len(pending)-1]
					pending = pending[:len(pending)-1]
					onStack[w] = false
					component[w] = nextComponent
					if w == v {
						break
					}
				}
				nextComponent++
			}
		}
	}

	maxComponent := nextComponent - 1
	for v := range component {
		component[v] = maxComponent - component[v]
	}
	return component, nextComponent
}
