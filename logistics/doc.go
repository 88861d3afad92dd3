// Package logistics adapts the logistics planning domain to the search
// engine: Configuration is the search state (trucks, airplanes, packages,
// plus a heuristic value cached at construction), and Problem exposes the
// initial state, goal predicate, and successor enumerator the search
// engine requires.
//
// It also owns the two collaborators the design treats as plumbing around
// the core: a textual problem-file parser and a plan printer, both
// following the wire format in the external interface contract.
package logistics
