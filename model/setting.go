package model

// Setting describes the immutable layout of a logistics problem instance:
// how many cities there are, which city each place belongs to, and which
// place is each city's airport.
//
// A Setting is built once (by a parser) and never mutated afterward;
// every query below is a read over that fixed layout.
type Setting struct {
	cityCount int
	placeCity []int // place ID -> city ID
	airport   []int // city ID -> airport place ID
}

// NewSetting validates and builds a Setting from a place->city assignment
// and a per-city airport assignment.
//
// Preconditions (violating any returns a sentinel error):
//   - cityCount must be positive.
//   - every entry of placeCity must be in [0, cityCount).
//   - airport must have at least cityCount entries; entries past the
//     first cityCount are ignored.
//   - placeCity[airport[c]] must equal c for every city c.
func NewSetting(cityCount int, placeCity []int, airport []int) (*Setting, error) {
	if cityCount <= 0 {
		return nil, ErrNonPositiveCityCount
	}
	for _, c := range placeCity {
		if c < 0 || c >= cityCount {
			return nil, ErrPlaceCityOutOfRange
		}
	}
	if len(airport) < cityCount {
		return nil, ErrMissingAirport
	}
	for city, place := range airport[:cityCount] {
		if place < 0 || place >= len(placeCity) {
			return nil, ErrPlaceOutOfRange
		}
		if placeCity[place] != city {
			return nil, ErrAirportCityMismatch
		}
	}

	s := &Setting{
		cityCount: cityCount,
		placeCity: append([]int(nil), placeCity...),
		airport:   append([]int(nil), airport[:cityCount]...),
	}

	return s, nil
}

// CityCount returns the number of cities in the setting.
func (s *Setting) CityCount() int { return s.cityCount }

// PlaceCount returns the number of places in the setting.
func (s *Setting) PlaceCount() int { return len(s.placeCity) }

// PlaceCity returns the city that the given place belongs to.
func (s *Setting) PlaceCity(place int) int { return s.placeCity[place] }

// Airport returns the airport place ID of the given city.
func (s *Setting) Airport(city int) int { return s.airport[city] }

// Airports returns the airport place ID of every city, indexed by city ID.
// The returned slice is a copy; callers may not mutate Setting through it.
func (s *Setting) Airports() []int {
	return append([]int(nil), s.airport...)
}

// PlacesOf returns the place IDs belonging to the given city, in ascending
// order.
//
// Complexity: O(PlaceCount()).
func (s *Setting) PlacesOf(city int) []int {
	var places []int
	for place, c := range s.placeCity {
		if c == city {
			places = append(places, place)
		}
	}

	return places
}

// SameCity reports whether two places belong to the same city.
func (s *Setting) SameCity(a, b int) bool {
	return s.placeCity[a] == s.placeCity[b]
}
