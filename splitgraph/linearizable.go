package splitgraph

// computeLinearizable implements the linearizable-vertex analysis: v is
// linearizable iff every directed path ending at v must first traverse a
// vertex with in-degree != 1, discovered by walking backward along unique
// in-edges from every unchecked vertex.
func computeLinearizable(g *SplitGraph) []bool {
	n := g.NodeSize()
	linearizable := make([]bool, n)
	checked := make([]bool, n)
	inStackPos := make([]int, n)
	for i := range inStackPos {
		inStackPos[i] = -1
	}

	var stack []int

	markChecked := func() {
		for _, v := range stack {
			checked[v] = true
		}
	}
	markRange := func(idxs []int, val bool) {
		for _, v := range idxs {
			linearizable[v] = val
		}
	}
	resetStack := func() {
		for _, v := range stack {
			inStackPos[v] = -1
		}
		stack = stack[:0]
	}

	for start := 0; start < n; start++ {
		if checked[start] {
			continue
		}
		if len(g.inNeighbors[start]) != 1 {
			checked[start] = true
			continue
		}

		cur := start
		for {
			if checked[cur] {
				// Case 2: reached a previously checked vertex; everything
				// walked so far in this run is linearizable.
				markRange(stack, true)
				markChecked()
				resetStack()
				break
			}
			if pos := inStackPos[cur]; pos >= 0 {
				if pos == 0 {
					// Case 3: cycle back to the start of this walk.
					markRange(stack, false)
				} else {
					// Case 4: cycle back to an interior vertex of this walk.
					markRange(stack[:pos], true)
					markRange(stack[pos:], false)
				}
				markChecked()
				resetStack()
				break
			}
			if len(g.inNeighbors[cur]) != 1 {
				// Case 1: cur is the terminator with in-degree != 1.
				stack = append(stack, cur)
				inStackPos[cur] = len(stack) - 1
				markRange(stack[:len(stack)-1], true)
				markRange(stack[len(stack)-1:], false)
				markChecked()
				resetStack()
				break
			}
			stack = append(stack, cur)
			inStackPos[cur] = len(stack) - 1
			cur = g.inNeighbors[cur][0]
		}
	}

	return linearizable
}
