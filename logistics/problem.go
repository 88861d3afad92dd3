package logistics

import (
	"github.com/mkrivich/logiplan/model"
	"github.com/mkrivich/logiplan/search"
)

// Problem adapts a logistics instance to search.Problem. It carries the
// fixed setting and the initial Configuration; it is itself immutable.
type Problem struct {
	setting *model.Setting
	initial Configuration
}

// NewProblem builds a Problem over the given setting and initial
// Configuration.
func NewProblem(setting *model.Setting, initial Configuration) Problem {
	return Problem{setting: setting, initial: initial}
}

// InitialState satisfies search.Problem.
func (p Problem) InitialState() search.State { return p.initial }

// IsGoal satisfies search.Problem.
func (p Problem) IsGoal(s search.State) bool {
	return s.(Configuration).IsGoal()
}

// Enumerate satisfies search.Problem, emitting successors in the fixed
// order DRIVE, UNLOAD/DROP_OFF, LOAD/PICK_UP, FLY. This order is part of
// the search's determinism contract: it is the tie-breaker whenever two
// actions reach equal priority.
func (p Problem) Enumerate(s search.State) []search.Transition {
	c := s.(Configuration)
	var out []search.Transition

	out = append(out, p.driveTransitions(c)...)
	out = append(out, p.unloadTransitions(c)...)
	out = append(out, p.loadTransitions(c)...)
	out = append(out, p.flyTransitions(c)...)

	return out
}

func (p Problem) driveTransitions(c Configuration) []search.Transition {
	var out []search.Transition
	for truckID, t := range c.Trucks {
		home := p.setting.PlaceCity(t.Position)
		for _, place := range p.setting.PlacesOf(home) {
			if place == t.Position {
				continue
			}
			action, _ := model.NewAction(model.Drive, truckID, place)
			out = append(out, search.Transition{Action: action, State: c.Successor(action)})
		}
	}

	return out
}

func (p Problem) unloadTransitions(c Configuration) []search.Transition {
	var out []search.Transition
	for pkgID, pkg := range c.Packages {
		switch pkg.State {
		case model.InTruck:
			action, _ := model.NewAction(model.Unload, pkg.Vehicle, pkgID)
			out = append(out, search.Transition{Action: action, State: c.Successor(action)})
		case model.InPlane:
			action, _ := model.NewAction(model.DropOff, pkg.Vehicle, pkgID)
			out = append(out, search.Transition{Action: action, State: c.Successor(action)})
		}
	}

	return out
}

func (p Problem) loadTransitions(c Configuration) []search.Transition {
	var out []search.Transition
	for pkgID, pkg := range c.Packages {
		if pkg.State != model.Out {
			continue
		}
		for truckID, t := range c.Trucks {
			if t.Position == pkg.Position && len(t.Load) < model.TruckCapacity {
				action, _ := model.NewAction(model.Load, truckID, pkgID)
				out = append(out, search.Transition{Action: action, State: c.Successor(action)})
			}
		}
		for planeID, a := range c.Airplanes {
			if a.Position == pkg.Position && len(a.Load) < model.PlaneCapacity {
				action, _ := model.NewAction(model.PickUp, planeID, pkgID)
				out = append(out, search.Transition{Action: action, State: c.Successor(action)})
			}
		}
	}

	return out
}

func (p Problem) flyTransitions(c Configuration) []search.Transition {
	var out []search.Transition
	for planeID, a := range c.Airplanes {
		for _, airport := range p.setting.Airports() {
			if airport == a.Position {
				continue
			}
			action, _ := model.NewAction(model.Fly, planeID, airport)
			out = append(out, search.Transition{Action: action, State: c.Successor(action)})
		}
	}

	return out
}
