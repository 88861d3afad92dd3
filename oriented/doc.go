// Package oriented implements a directed multigraph on a fixed vertex range
// [0, V) together with its single non-trivial query: the minimum number of
// extra starting points ("re-entries") a traversal that must cover every
// edge needs, given a set of vertices already occupied by an agent.
//
// Graph stores its adjacency in a github.com/katalvlaran/lvlath/core.Graph
// (directed, self-loops allowed, multi-edges disabled so that repeated
// AddEdge calls collapse exactly as spec'd) keyed by zero-padded vertex
// indices, so Neighbors iteration comes back in ascending vertex-id order
// for free. A side table tracks edge multiplicity and the core edge ID
// backing each (u, v) pair, which LoopCount needs to remove edges as it
// breaks cycles.
//
// LoopCount is a repeated DFS with back-edge removal: every time it finds
// a cycle none of whose vertices is in the caller's occupied set, it cuts
// the closing edge, counts one re-entry, and restarts the scan. Vertices
// in the occupied set absorb the cycles that pass through them for free,
// because an agent already standing there does not need a fresh re-entry
// to cover them.
//
// Complexity:
//   - AddEdge:    O(1) amortized.
//   - LoopCount:  O(k * (V + E)) where k is the number of re-entries found
//     (each full rescan is O(V+E); the loop runs once per counted re-entry
//     plus one final clean pass).
package oriented
