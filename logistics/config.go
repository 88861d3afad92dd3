package logistics

import (
	"fmt"

	"github.com/mkrivich/logiplan/heuristic"
	"github.com/mkrivich/logiplan/model"
)

// Configuration is the search state: a snapshot of every vehicle's
// position and load and every package's position and state, plus the
// heuristic value computed once at construction. It is a value type:
// Successor never mutates the receiver, and no two Configurations ever
// alias the same backing slices.
type Configuration struct {
	setting   *model.Setting
	Trucks    []model.Vehicle
	Airplanes []model.Vehicle
	Packages  []model.Package
	h         int
}

// NewConfiguration builds a Configuration and computes its heuristic.
func NewConfiguration(setting *model.Setting, trucks, airplanes []model.Vehicle, packages []model.Package) Configuration {
	return Configuration{
		setting:   setting,
		Trucks:    trucks,
		Airplanes: airplanes,
		Packages:  packages,
		h:         heuristic.Compute(setting, trucks, airplanes, packages),
	}
}

// Heuristic satisfies search.State.
func (c Configuration) Heuristic() int { return c.h }

// IsGoal reports whether every package has reached its destination, OUT.
func (c Configuration) IsGoal() bool {
	for _, p := range c.Packages {
		if !p.Delivered() {
			return false
		}
	}

	return true
}

// Successor performs the value-level transition for a given action,
// without mutating c. Capacity is intentionally not enforced here; it is
// the successor enumerator's job to only ever offer capacity-respecting
// actions.
func (c Configuration) Successor(a model.Action) Configuration {
	trucks := model.CloneVehicles(c.Trucks)
	airplanes := model.CloneVehicles(c.Airplanes)
	packages := model.ClonePackages(c.Packages)

	switch a.Type {
	case model.Drive:
		t := trucks[a.Vehicle]
		t.Position = a.Value
		trucks[a.Vehicle] = t
		for _, pkgID := range t.Load {
			packages[pkgID].Position = a.Value
		}

	case model.Load:
		trucks[a.Vehicle] = trucks[a.Vehicle].WithLoaded(a.Value)
		packages[a.Value].State = model.InTruck
		packages[a.Value].Vehicle = a.Vehicle

	case model.Unload:
		trucks[a.Vehicle] = trucks[a.Vehicle].WithUnloaded(a.Value)
		packages[a.Value].State = model.Out
		packages[a.Value].Vehicle = -1

	case model.Fly:
		p := airplanes[a.Vehicle]
		p.Position = a.Value
		airplanes[a.Vehicle] = p
		for _, pkgID := range p.Load {
			packages[pkgID].Position = a.Value
		}

	case model.PickUp:
		airplanes[a.Vehicle] = airplanes[a.Vehicle].WithLoaded(a.Value)
		packages[a.Value].State = model.InPlane
		packages[a.Value].Vehicle = a.Vehicle

	case model.DropOff:
		airplanes[a.Vehicle] = airplanes[a.Vehicle].WithUnloaded(a.Value)
		packages[a.Value].State = model.Out
		packages[a.Value].Vehicle = -1

	default:
		panic(fmt.Sprintf("%s: unknown action type %v", ErrInvariantViolation, a.Type))
	}

	return NewConfiguration(c.setting, trucks, airplanes, packages)
}
