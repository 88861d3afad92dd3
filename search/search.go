package search

import (
	"container/heap"
	"math"
)

// Unbounded passed as maxIterations means no iteration cap: Solve keeps
// widening the bound until it either finds a goal or proves the instance
// unsolvable under the given heuristic.
const Unbounded = -1

// UnreachableCost is the sentinel cost returned when Solve exhausts
// maxIterations (or proves the instance unsolvable) without reaching a
// goal, standing in for the source's INT_MAX.
const UnreachableCost = math.MaxInt

// Solve runs an IDA*-style best-first search over problem and returns the
// optimal cost and action sequence, or, if maxIterations outer iterations
// elapse first, UnreachableCost and the best partial plan found so far.
func Solve(problem Problem, maxIterations int) (int, []Action) {
	root := &node{state: problem.InitialState()}
	root.f = root.state.Heuristic()
	bound := root.f

	var bestPartial *node
	iterations := 0

	for {
		if maxIterations != Unbounded && iterations >= maxIterations {
			if bestPartial == nil {
				return UnreachableCost, nil
			}

			return UnreachableCost, bestPartial.actions()
		}

		goal, nextBound := runIteration(problem, root, bound, &bestPartial)
		if goal != nil {
			return goal.pathCost, goal.actions()
		}

		iterations++
		if nextBound == UnreachableCost {
			// No child anywhere exceeded bound: the reachable graph within
			// bound is exhausted without a goal. No larger bound can help.
			if bestPartial == nil {
				return UnreachableCost, nil
			}

			return UnreachableCost, bestPartial.actions()
		}
		bound = nextBound
	}
}

// runIteration runs one bounded best-first search pass, returning the
// goal node if found, and otherwise the smallest f-value that exceeded
// bound (or UnreachableCost if none did).
func runIteration(problem Problem, root *node, bound int, bestPartial **node) (*node, int) {
	pq := &nodeHeap{root}
	heap.Init(pq)
	nextBound := UnreachableCost

	for pq.Len() > 0 {
		n := heap.Pop(pq).(*node)

		if problem.IsGoal(n.state) {
			return n, 0
		}

		if n != root {
			if *bestPartial == nil || n.state.Heuristic() < (*bestPartial).state.Heuristic() {
				*bestPartial = n
			}
		}

		for _, tr := range problem.Enumerate(n.state) {
			childCost := n.pathCost + tr.Action.Cost()
			childF := childCost + tr.State.Heuristic()

			if childF > bound {
				if childF < nextBound {
					nextBound = childF
				}
				continue
			}

			heap.Push(pq, &node{
				state:    tr.State,
				pathCost: childCost,
				depth:    n.depth + 1,
				f:        childF,
				parent:   n,
				action:   tr.Action,
			})
		}
	}

	return nil, nextBound
}
