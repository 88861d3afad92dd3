package oriented

// LoopCount returns a lower bound on the number of unavoidable cycle
// re-entries a traversal covering every edge of g must incur, given that
// agents already stand at the vertices in occupied.
//
// Algorithm: repeatedly DFS from every vertex (ascending order), marking
// visited/on-stack and keeping the current recursion path as an explicit
// stack. When a back edge v -> w is found (w on the recursion stack), the
// path from w through v (inclusive) is exactly the cycle that edge
// closes: if any vertex on it is occupied, an agent already standing
// somewhere on the cycle absorbs it for free; otherwise the edge is the
// traversal's unavoidable re-entry point, so it is cut and the count goes
// up by one. Each cut restarts the whole scan, since cutting one edge can
// change whether other vertices still sit on a cycle. The scan stops once
// a full pass finds nothing to cut.
//
// Complexity: O(k * (V + E)), k = number of re-entries counted.
func (g *Graph) LoopCount(occupied map[int]struct{}) int {
	count := 0
	for {
		visited := make([]bool, g.vertexCount)
		onStack := make([]bool, g.vertexCount)
		var stack []int
		cut := false

		for v := 0; v < g.vertexCount; v++ {
			if visited[v] {
				continue
			}
			if g.isCyclic(occupied, v, visited, onStack, &stack) {
				count++
				cut = true
				break
			}
		}

		if !cut {
			return count
		}
	}
}

// isCyclic runs a DFS rooted at v, tracking the current path in stack. It
// returns true as soon as it finds and cuts a back edge whose closed
// cycle contains no occupied vertex, at which point the caller must
// restart the whole scan (the graph changed underneath it).
func (g *Graph) isCyclic(occupied map[int]struct{}, v int, visited, onStack []bool, stack *[]int) bool {
	visited[v] = true
	onStack[v] = true
	*stack = append(*stack, v)

	for _, w := range g.successors(v) {
		if !visited[w] {
			if g.isCyclic(occupied, w, visited, onStack, stack) {
				return true
			}
			continue
		}
		if !onStack[w] {
			continue
		}
		// Back edge v -> w: w is an ancestor of v on the current path, so
		// the path from w to v (inclusive) is the cycle this edge closes.
		if g.cycleOccupied(occupied, *stack, w) {
			continue
		}
		g.removeEdge(v, w)

		return true
	}

	onStack[v] = false
	*stack = (*stack)[:len(*stack)-1]

	return false
}

// cycleOccupied reports whether any vertex of the cycle closed by a back
// edge into w — that is, the suffix of stack starting at w's position —
// lies in occupied. w is always present in stack since it is on-stack by
// construction.
func (g *Graph) cycleOccupied(occupied map[int]struct{}, stack []int, w int) bool {
	start := 0
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == w {
			start = i
			break
		}
	}

	for _, u := range stack[start:] {
		if _, ok := occupied[u]; ok {
			return true
		}
	}

	return false
}
