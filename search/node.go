package search

// node is a search-tree node. actionsToReach is represented as a parent
// pointer plus the single action that produced this node from its parent,
// a persistent list reconstructed into a slice only when a node is
// returned as an answer (goal or best-partial).
type node struct {
	state    State
	pathCost int
	depth    int
	f        int
	parent   *node
	action   Action // nil for the root
}

// actions reconstructs the action sequence from the root to n, in order.
func (n *node) actions() []Action {
	var reversed []Action
	for cur := n; cur.parent != nil; cur = cur.parent {
		reversed = append(reversed, cur.action)
	}
	out := make([]Action, len(reversed))
	for i, a := range reversed {
		out[len(reversed)-1-i] = a
	}

	return out
}

// nodeHeap is a container/heap.Interface ordering nodes by (f ascending,
// depth descending): smallest f first, ties broken toward the deeper
// node. The inverted depth order is intentional.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].depth > h[j].depth
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
