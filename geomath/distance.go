// Package geomath implements the geodesic calculations used by the vehicle
// tracking endpoints: great-circle distance, a fused distance+time deviation
// score, the centroid of a set of fixes, a garbage-coordinate filter and a
// point-in-polygon test. Every function is pure and safe to call
// concurrently; nothing in here touches I/O or shared state.
package geomath

import (
	"math"
	"strings"
)

// Unit selects the measurement unit returned by Distance. Matching is
// case-insensitive and the single letter forms K, M and N are accepted too.
type Unit string

const (
	Kilometers    Unit = "kilometers"
	Miles         Unit = "miles"
	NauticalMiles Unit = "nautical_miles"
)

// Conversion factors from statute miles.
const (
	milesToKilometers   = 1.609344
	milesToNauticalMile = 0.8684
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func rad2deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Distance returns the great-circle distance between two points using the
// spherical law of cosines.
//
// When the arccosine argument falls outside its domain (identical points can
// push it just past 1, bad input pushes it anywhere) the result is NaN.
// Distance never returns an error for this: callers must check the result
// with math.IsNaN before using it.
func Distance(lat1, lon1, lat2, lon2 float64, unit Unit) float64 {
	theta := lon1 - lon2
	dist := math.Sin(deg2rad(lat1))*math.Sin(deg2rad(lat2)) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Cos(deg2rad(theta))
	dist = math.Acos(dist)
	miles := rad2deg(dist) * 60 * 1.1515

	switch strings.ToLower(strings.TrimSpace(string(unit))) {
	case "", "k", string(Kilometers):
		return miles * milesToKilometers
	case "n", string(NauticalMiles):
		return miles * milesToNauticalMile
	default:
		return miles
	}
}

// Offset is the result of DistanceTimeOffset. DistanceKm and DeltaSeconds are
// the raw inputs to the score, exposed so callers can apply their own
// thresholds to either axis.
type Offset struct {
	Score        int64   `json:"score"`
	DistanceKm   float64 `json:"distance_km"`
	DeltaSeconds int64   `json:"delta_seconds"`
}

// DistanceTimeOffset fuses the spatial and temporal separation of two
// timestamped fixes into a single score:
//
//	score = round((km*1000 + 1) * (seconds + 1))
//
// The score grows with both distance and elapsed time, which makes it usable
// for flagging fixes that are implausibly far apart for the time between
// them. Timestamps are unix seconds; the subtraction is done in int64 so
// epoch-scale values lose no precision.
//
// Score is meaningless when DistanceKm is NaN (see Distance); check
// DistanceKm first.
func DistanceTimeOffset(lat1, lon1, lat2, lon2 float64, t1, t2 int64) Offset {
	l := Distance(lat1, lon1, lat2, lon2, Kilometers)
	t := t2 - t1
	score := math.Round((l*1000 + 1) * (float64(t) + 1))
	return Offset{
		Score:        int64(score),
		DistanceKm:   l,
		DeltaSeconds: t,
	}
}
