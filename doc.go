// Package logiplan solves instances of the classical Logistics planning
// problem: a fleet of trucks and airplanes delivers packages to places
// scattered across cities, each city with exactly one airport. Trucks
// move packages between places within a city; airplanes move packages
// between the airports of different cities. logiplan searches for the
// action sequence of least total cost.
//
// The module is organized as:
//
//	oriented/   — directed multigraph with unavoidable-cycle-reentry counting,
//	              backed by github.com/katalvlaran/lvlath/core.Graph
//	model/      — Setting, Vehicle, Package, Action: the immutable domain types
//	heuristic/  — admissible-leaning lower-bound estimator over two oriented graphs
//	logistics/  — Configuration/Problem adapter, plus the file parser and plan printer
//	search/     — domain-independent IDA*-style best-first search engine
//	cmd/logiplan/ — the CLI driver
//
// A minimal instance — one city, two places, a package that must move
// from one to the other — solves to:
//
//	load 0 0
//	drive 0 1
//	unload 0 0
package logiplan
