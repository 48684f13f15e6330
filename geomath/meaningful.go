package geomath

import (
	"strconv"
	"strings"
)

// MeaningfulCoordinate reports whether a longitude/latitude pair looks like a
// real GPS fix rather than a sentinel or garbage value. Trackers in the wild
// send (0,0) and (1,1) as placeholders, and some firmwares emit
// scientific-notation strings when their float formatting breaks; all of
// those get rejected here before they pollute the position stream.
//
// The checks, in order:
//   - either value missing entirely
//   - both values numerically 0
//   - both values numerically 1
//   - the concatenation of both raw strings contains an "e"/"E" at an index
//     greater than 0 (the scientific-notation case; an "E" at index 0 is
//     deliberately not matched)
//
// This is a plausibility filter, not a bounds check: it does not verify the
// latitude fits in [-90, 90]. Values that fail to parse count as 0, so a pair
// of unparseable strings is rejected by the both-zero rule.
func MeaningfulCoordinate(lon, lat string) bool {
	if lon == "" || lat == "" {
		return false
	}

	lonVal := looseParseFloat(lon)
	latVal := looseParseFloat(lat)

	if lonVal == 0 && latVal == 0 {
		return false
	}
	if lonVal == 1 && latVal == 1 {
		return false
	}

	if strings.IndexAny(lon+lat, "eE") > 0 {
		return false
	}

	return true
}

// looseParseFloat parses like dynamically typed upstreams do: anything that
// isn't a number is 0.
func looseParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
