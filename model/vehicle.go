package model

// Capacity limits, bit-exact with the source cost model.
const (
	// TruckCapacity is the maximum number of packages a truck may carry.
	TruckCapacity = 4

	// PlaneCapacity is the maximum number of packages an airplane may carry.
	PlaneCapacity = 30
)

// Vehicle is a truck or an airplane. Trucks may occupy any place in their
// home city; airplanes always occupy an airport. Load is the set of
// package IDs currently carried, represented as a sorted slice so that
// Configuration equality and successor generation stay deterministic.
type Vehicle struct {
	// Position is the place ID this vehicle currently occupies.
	Position int

	// Load holds the IDs of packages currently carried, sorted ascending.
	Load []int
}

// Carries reports whether pkg is currently in this vehicle's load.
func (v Vehicle) Carries(pkg int) bool {
	for _, p := range v.Load {
		if p == pkg {
			return true
		}
	}

	return false
}

// WithLoaded returns a copy of v with pkg added to Load. The caller is
// responsible for capacity checks; this never rejects an addition.
func (v Vehicle) WithLoaded(pkg int) Vehicle {
	load := make([]int, 0, len(v.Load)+1)
	inserted := false
	for _, p := range v.Load {
		if !inserted && p > pkg {
			load = append(load, pkg)
			inserted = true
		}
		load = append(load, p)
	}
	if !inserted {
		load = append(load, pkg)
	}
	v.Load = load

	return v
}

// WithUnloaded returns a copy of v with pkg removed from Load, if present.
func (v Vehicle) WithUnloaded(pkg int) Vehicle {
	var load []int
	for _, p := range v.Load {
		if p != pkg {
			load = append(load, p)
		}
	}
	v.Load = load

	return v
}

// CloneVehicles returns a deep copy of vs, safe to mutate independently.
func CloneVehicles(vs []Vehicle) []Vehicle {
	out := make([]Vehicle, len(vs))
	for i, v := range vs {
		out[i] = Vehicle{Position: v.Position, Load: append([]int(nil), v.Load...)}
	}

	return out
}
