// Package geozones loads named geofence zones from GeoJSON files and answers
// point membership queries against them.
package geozones

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/openfleet/fleet-geo-api/geomath"
)

// GetWorkDir determines the working directory of the executable
func GetWorkDir() string {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	dir := filepath.Dir(ex)

	if strings.Contains(dir, "go-build") {
		return "."
	}
	return dir
}

// ErrZoneNotFound is returned when no GeoJSON file exists for the zone name.
var ErrZoneNotFound = errors.New("geozones: zone not found")

// Zone is a named geofence. A zone file may carry several polygons (and
// holes); the zone covers their union.
type Zone struct {
	Name     string
	Polygons []orb.Polygon
}

type cacheItem struct {
	zone      *Zone
	expiresAt time.Time
}

// Global cache for loaded zones
var (
	zoneCache     = make(map[string]cacheItem)
	cacheMutex    sync.Mutex
	cacheDuration = time.Hour // Zone files rarely change; reload hourly
)

// Load reads the zone named name from dir (file <name>.geojson), serving
// repeat lookups from an in-memory cache until it expires.
func Load(dir, name string) (*Zone, error) {
	if name == "" || strings.ContainsAny(name, `./\`) {
		return nil, ErrZoneNotFound
	}

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	key := filepath.Join(dir, name)
	if item, found := zoneCache[key]; found {
		if time.Now().Before(item.expiresAt) {
			return item.zone, nil
		}
		// Remove expired cache item
		delete(zoneCache, key)
	}

	raw, err := os.ReadFile(filepath.Join(dir, name+".geojson"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrZoneNotFound
		}
		return nil, fmt.Errorf("geozones: reading zone %q: %w", name, err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("geozones: parsing zone %q: %w", name, err)
	}

	zone := &Zone{Name: name}
	for _, feature := range collection.Features {
		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			zone.Polygons = append(zone.Polygons, geometry)
		case orb.MultiPolygon:
			zone.Polygons = append(zone.Polygons, geometry...)
		}
	}
	if len(zone.Polygons) == 0 {
		return nil, fmt.Errorf("geozones: zone %q has no polygon features", name)
	}

	zoneCache[key] = cacheItem{
		zone:      zone,
		expiresAt: time.Now().Add(cacheDuration),
	}

	return zone, nil
}

// Contains reports whether the coordinate falls inside the zone. A point
// counts as inside when it is within a polygon's exterior ring and not inside
// any of its holes.
func (z *Zone) Contains(lat, lon float64) bool {
	for _, polygon := range z.Polygons {
		if len(polygon) == 0 {
			continue
		}
		if !geomath.PointInPolygon(lon, lat, ringPoints(polygon[0])) {
			continue
		}

		inHole := false
		for _, hole := range polygon[1:] {
			if geomath.PointInPolygon(lon, lat, ringPoints(hole)) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

func ringPoints(ring orb.Ring) []geomath.Point {
	points := make([]geomath.Point, 0, len(ring))
	for _, p := range ring {
		points = append(points, geomath.Point{X: p.X(), Y: p.Y()})
	}
	return points
}
