// Package heuristic computes an admissible-leaning lower bound on the
// remaining cost to reach the goal from a logistics configuration.
//
// The bound is the sum of three terms:
//
//  1. Mandatory handling costs: every package's unavoidable loads,
//     unloads, pick-ups, and drop-offs, counted once regardless of which
//     vehicle eventually performs them.
//  2. A per-city ride count: the number of truck segments a city's
//     remaining intra-city and to/from-airport transfers require, using
//     oriented.Graph.LoopCount to find unavoidable re-entries.
//  3. An inter-city flight count: the same idea, one level up, over a
//     graph of cities instead of places.
//
// Each call builds and discards its own oriented.Graph instances; nothing
// here is retained between calls (see the package's concurrency notes:
// Compute has no hidden state and is safe to call from any goroutine as
// long as its own arguments are not mutated concurrently).
package heuristic
