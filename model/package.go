package model

// PackageState is the tri-state location of a Package: sitting somewhere
// (Out), riding in a truck, or riding in an airplane.
type PackageState int

const (
	// Out means the package sits at Position, carried by nothing.
	Out PackageState = iota
	// InTruck means the package rides in the truck identified by Vehicle.
	InTruck
	// InPlane means the package rides in the airplane identified by Vehicle.
	InPlane
)

// String renders a PackageState for diagnostics.
func (s PackageState) String() string {
	switch s {
	case Out:
		return "OUT"
	case InTruck:
		return "IN_TRUCK"
	case InPlane:
		return "IN_PLANE"
	default:
		return "UNKNOWN"
	}
}

// Package is a single parcel to deliver.
type Package struct {
	// Position is the place ID the package currently occupies (the place
	// of the carrying vehicle, if loaded).
	Position int

	// Destination is the place ID the package must end up at, OUT.
	Destination int

	// State records whether the package sits free or rides a vehicle.
	State PackageState

	// Vehicle is the ID of the carrying vehicle, or -1 if State == Out.
	Vehicle int
}

// Delivered reports whether this package has reached its goal: sitting at
// its destination, carried by nothing.
func (p Package) Delivered() bool {
	return p.Position == p.Destination && p.State == Out
}

// ClonePackages returns a copy of ps, safe to mutate independently.
func ClonePackages(ps []Package) []Package {
	return append([]Package(nil), ps...)
}
