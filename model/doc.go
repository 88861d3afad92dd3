// Package model defines the immutable facts and mutable state of a
// logistics-planning problem instance: the Setting (cities, places,
// airports), the Vehicle and Package records, and the Action tagged
// variant with its fixed per-type cost.
//
// Setting is built once by a parser (see package logistics) and never
// mutated afterward. Vehicle and Package are plain value structs; nothing
// in this package enforces vehicle capacity — that check belongs to the
// successor enumerator in package logistics, per the problem's design.
package model
