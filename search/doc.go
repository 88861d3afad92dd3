// Package search implements a domain-independent best-first search engine
// with iterative deepening on the f-bound (an IDA*-style scheme), assigning
// no meaning to State, Action, or Problem beyond the three interfaces
// below. The logistics domain supplies concrete implementations; this
// package never imports it.
//
// Complexity: each outer iteration is a bounded best-first search over a
// priority queue; the number of outer iterations is bounded by the
// maxIterations argument to Solve, or unbounded when Unbounded is passed.
//
// Concurrency: Solve is synchronous and single-threaded by design; it
// holds no state across calls and is safe to call concurrently with
// independent Problem values.
package search
