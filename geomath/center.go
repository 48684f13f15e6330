package geomath

import (
	"errors"
	"math"
)

// ErrNoCoordinates is returned by CenterOf for an empty or nil input.
var ErrNoCoordinates = errors.New("geomath: no coordinates")

// Center is a computed centroid. RadiusMeters is 0 unless the caller asked
// for it.
type Center struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	RadiusMeters float64 `json:"radius_meters"`
}

// CenterOf returns the geographic centroid of the given coordinates by
// averaging their 3D unit vectors and recovering the angles with atan2.
//
// With withMaxRadius set, RadiusMeters is the distance from the centroid to
// the farthest input point, in meters. NaN distances (see Distance) never win
// the max comparison, so a degenerate point cannot poison the radius.
func CenterOf(coords []Coordinate, withMaxRadius bool) (Center, error) {
	if len(coords) == 0 {
		return Center{}, ErrNoCoordinates
	}

	var x, y, z float64
	for _, coord := range coords {
		lat := deg2rad(coord.Lat)
		lon := deg2rad(coord.Lon)
		x += math.Cos(lat) * math.Cos(lon)
		y += math.Cos(lat) * math.Sin(lon)
		z += math.Sin(lat)
	}

	total := float64(len(coords))
	x /= total
	y /= total
	z /= total

	lon := math.Atan2(y, x)
	hyp := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, hyp)

	center := Center{
		Lat: rad2deg(lat),
		Lon: rad2deg(lon),
	}

	if withMaxRadius {
		for _, coord := range coords {
			d := Distance(center.Lat, center.Lon, coord.Lat, coord.Lon, Kilometers) * 1000
			if d > center.RadiusMeters {
				center.RadiusMeters = d
			}
		}
	}

	return center, nil
}
