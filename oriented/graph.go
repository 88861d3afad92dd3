package oriented

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Graph is a directed multigraph on the fixed vertex range [0, VertexCount).
// Edges are stored with set semantics (AddEdge on an existing pair is a
// no-op for adjacency) while PairCount keeps the true multiplicity for
// callers that need it.
type Graph struct {
	vertexCount int
	backing     *core.Graph // directed, self-loops allowed, no multi-edges
	ids         []string    // vertex index -> backing vertex ID
	edgeOf      map[edgeKey]string
	pairCount   map[edgeKey]int
}

type edgeKey struct{ u, v int }

// New allocates a Graph over the vertex range [0, vertexCount).
// Isolated vertices are present from construction and never contribute to
// LoopCount.
func New(vertexCount int) *Graph {
	backing := core.NewGraph(core.WithDirected(true), core.WithLoops())
	ids := make([]string, vertexCount)
	for v := 0; v < vertexCount; v++ {
		ids[v] = vertexID(v)
		// A fresh Graph never returns an error adding a brand-new vertex.
		_ = backing.AddVertex(ids[v])
	}

	return &Graph{
		vertexCount: vertexCount,
		backing:     backing,
		ids:         ids,
		edgeOf:      make(map[edgeKey]string),
		pairCount:   make(map[edgeKey]int),
	}
}

// VertexCount returns the size of the fixed vertex range.
func (g *Graph) VertexCount() int { return g.vertexCount }

// vertexID renders vertex v as a zero-padded backing-graph vertex ID, so
// that lexical sort order (what core.Graph.NeighborIDs gives us) matches
// ascending numeric vertex order.
func vertexID(v int) string { return fmt.Sprintf("v%09d", v) }

// AddEdge records a directed edge u -> v. A repeated call with the same
// (u, v) collapses into the existing adjacency entry (set semantics) but
// still increments PairCount(u, v).
//
// An out-of-range vertex is a programmer error: AddEdge panics rather than
// returning an error, per the no-I/O failure semantics of this component.
func (g *Graph) AddEdge(u, v int) {
	g.mustBeInRange(u)
	g.mustBeInRange(v)

	key := edgeKey{u, v}
	g.pairCount[key]++

	if _, exists := g.edgeOf[key]; exists {
		return
	}

	eid, err := g.backing.AddEdge(g.ids[u], g.ids[v], 0)
	if err != nil {
		// The only failure modes of AddEdge (bad weight, disallowed loop,
		// disallowed multi-edge) cannot occur given this Graph's fixed
		// construction options and the exists-check above.
		panic(fmt.Sprintf("oriented: unexpected AddEdge failure: %v", err))
	}
	g.edgeOf[key] = eid
}

// PairCount returns how many times AddEdge(u, v) was called, regardless of
// whether the call added a new edge or collapsed into an existing one.
func (g *Graph) PairCount(u, v int) int {
	return g.pairCount[edgeKey{u, v}]
}

// removeEdge deletes the collapsed edge u -> v, if one is still present.
// Used internally by LoopCount to break a cycle at its entry edge.
func (g *Graph) removeEdge(u, v int) {
	key := edgeKey{u, v}
	eid, ok := g.edgeOf[key]
	if !ok {
		return
	}
	delete(g.edgeOf, key)
	// RemoveEdge only fails with ErrEdgeNotFound, which cannot happen here
	// since we just confirmed eid is tracked.
	_ = g.backing.RemoveEdge(eid)
}

// successors returns the vertices directly reachable from v, in ascending
// vertex-id order, reflecting the current (possibly already-cut) adjacency.
func (g *Graph) successors(v int) []int {
	ids, err := g.backing.NeighborIDs(g.ids[v])
	if err != nil {
		// v is always a valid backing vertex, added at construction time.
		panic(fmt.Sprintf("oriented: unexpected NeighborIDs failure: %v", err))
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = vertexOf(id)
	}

	return out
}

func vertexOf(id string) int {
	var v int
	// id is always "v" followed by nine decimal digits, produced by vertexID.
	if _, err := fmt.Sscanf(id, "v%09d", &v); err != nil {
		panic(fmt.Sprintf("oriented: malformed vertex id %q: %v", id, err))
	}

	return v
}

func (g *Graph) mustBeInRange(v int) {
	if v < 0 || v >= g.vertexCount {
		panic(fmt.Sprintf("oriented: vertex %d out of range [0, %d)", v, g.vertexCount))
	}
}
