package heuristic

import (
	"github.com/mkrivich/logiplan/model"
	"github.com/mkrivich/logiplan/oriented"
)

// Compute returns h, the estimated remaining cost for a configuration
// described by its setting, its vehicles, and its packages. h is zero iff
// every package is delivered; it never depends on anything beyond its
// arguments.
func Compute(s *model.Setting, trucks, airplanes []model.Vehicle, packages []model.Package) int {
	h := handlingCost(s, packages)
	h += rideCost(s, trucks, packages)
	h += flightCost(s, airplanes, packages)

	return h
}

// handlingCost sums each package's unavoidable loads, unloads, pick-ups,
// and drop-offs, independent of which vehicle eventually performs them.
func handlingCost(s *model.Setting, packages []model.Package) int {
	cost := 0
	for _, p := range packages {
		if s.SameCity(p.Position, p.Destination) {
			cost += sameCityHandling(s, p)
			continue
		}
		cost += crossCityHandling(s, p)
	}

	return cost
}

func sameCityHandling(s *model.Setting, p model.Package) int {
	cost := 0
	if p.State == model.InPlane {
		// Stranded on the wrong airport within its own city: must come off
		// the plane before a truck can take over. This is an intentional
		// asymmetry in the handling model, not an oversight.
		cost += model.DropOffCost
	}
	if p.Position != p.Destination {
		if p.State != model.InTruck {
			cost += model.LoadUnloadCost // load
		}
		cost += model.LoadUnloadCost // unload
	} else if p.State == model.InTruck {
		cost += model.LoadUnloadCost // unload, already at destination
	}

	return cost
}

func crossCityHandling(s *model.Setting, p model.Package) int {
	cost := 0
	srcAirport := s.Airport(s.PlaceCity(p.Position))
	dstAirport := s.Airport(s.PlaceCity(p.Destination))

	if p.Position != srcAirport {
		if p.State == model.Out {
			cost += model.LoadUnloadCost // load onto a truck
		}
		cost += model.LoadUnloadCost // unload at the airport
	}
	if p.Position == srcAirport && p.State == model.InTruck {
		cost += model.LoadUnloadCost // unload at the airport it's already at
	}

	cost += model.PickUpCost
	cost += model.DropOffCost

	if p.Destination != dstAirport {
		cost += 2 * model.LoadUnloadCost // load onto, then unload off, a truck
	}

	return cost
}

// rideCost sums, over every city, the number of truck segments its
// remaining intra-city and to/from-airport transfers require.
func rideCost(s *model.Setting, trucks []model.Vehicle, packages []model.Package) int {
	occupied := occupiedPlaces(trucks, packages)

	total := 0
	for c := 0; c < s.CityCount(); c++ {
		total += rideCountOf(s, c, occupied, packages)
	}

	return total * model.DriveCost
}

func occupiedPlaces(trucks []model.Vehicle, packages []model.Package) map[int]struct{} {
	truckAt := make(map[int]struct{})
	for _, t := range trucks {
		truckAt[t.Position] = struct{}{}
	}

	occupied := make(map[int]struct{})
	for _, p := range packages {
		if _, atTruck := truckAt[p.Position]; atTruck {
			occupied[p.Position] = struct{}{}
		}
	}

	return occupied
}

func rideCountOf(s *model.Setting, city int, occupied map[int]struct{}, packages []model.Package) int {
	g := oriented.New(s.PlaceCount())
	toVisit := make(map[int]struct{})
	airport := s.Airport(city)

	for _, p := range packages {
		posCity := s.PlaceCity(p.Position)
		destCity := s.PlaceCity(p.Destination)

		switch {
		case posCity == city && destCity == city && p.Position != p.Destination:
			g.AddEdge(p.Position, p.Destination)
			if p.Position != airport {
				if _, occ := occupied[p.Position]; !occ {
					toVisit[p.Position] = struct{}{}
				}
			}
			toVisit[p.Destination] = struct{}{}

		case posCity == city && destCity != city && p.Position != airport:
			g.AddEdge(p.Position, airport)
			toVisit[airport] = struct{}{}

		case destCity == city && posCity != city && p.Destination != airport:
			g.AddEdge(airport, p.Destination)
			toVisit[p.Destination] = struct{}{}
			toVisit[airport] = struct{}{}
		}
	}

	return len(toVisit) + g.LoopCount(occupied)
}

// flightCost sums the number of flight segments the remaining inter-city
// transfers require, over a single graph of cities.
func flightCost(s *model.Setting, airplanes []model.Vehicle, packages []model.Package) int {
	g := oriented.New(s.CityCount())
	toVisit := make(map[int]struct{})

	planeAt := make(map[int]struct{})
	for _, a := range airplanes {
		planeAt[s.PlaceCity(a.Position)] = struct{}{}
	}

	leaving := make(map[int]struct{})
	for _, p := range packages {
		posCity := s.PlaceCity(p.Position)
		destCity := s.PlaceCity(p.Destination)
		if posCity == destCity {
			continue
		}
		g.AddEdge(posCity, destCity)
		toVisit[destCity] = struct{}{}
		leaving[posCity] = struct{}{}
	}

	occupied := make(map[int]struct{})
	for c := range leaving {
		if _, hasPlane := planeAt[c]; hasPlane {
			occupied[c] = struct{}{}
		}
	}

	return (len(toVisit) + g.LoopCount(occupied)) * model.FlyCost
}
