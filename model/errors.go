package model

import "errors"

// Sentinel errors for malformed Setting construction.
var (
	// ErrNonPositiveCityCount indicates a Setting was asked to hold zero or
	// fewer cities.
	ErrNonPositiveCityCount = errors.New("model: city count must be positive")

	// ErrPlaceCityOutOfRange indicates a place->city entry names a city
	// outside [0, cityCount).
	ErrPlaceCityOutOfRange = errors.New("model: place references an out-of-range city")

	// ErrMissingAirport indicates fewer airport entries were given than
	// cities exist.
	ErrMissingAirport = errors.New("model: airport list shorter than city count")

	// ErrAirportCityMismatch indicates airport[c] names a place whose own
	// city is not c.
	ErrAirportCityMismatch = errors.New("model: airport place belongs to a different city")

	// ErrPlaceOutOfRange indicates an airport entry names a place ID
	// outside [0, placeCount). NewSetting is its only source; vehicle and
	// package positions are not checked against it.
	ErrPlaceOutOfRange = errors.New("model: place ID out of range")

	// ErrUnknownActionType indicates an Action carries a Type value outside
	// the six defined tags. This is an invariant violation, not user error.
	ErrUnknownActionType = errors.New("model: unknown action type")
)
