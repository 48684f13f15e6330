package providers

import (
	"log"
	"os"
	"strconv"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/openfleet/fleet-geo-api/providers/caches"
)

var gzipConfig = middleware.GzipConfig{
	Level: 5,
}

// SetupProvider registers all the geo routes on the given group. zonesDir is
// where geofence GeoJSON files live.
func SetupProvider(primaryRouter *echo.Group, zonesDir string) {
	primaryRouter.Use(middleware.GzipWithConfig(gzipConfig))

	lastFixes, err := caches.NewLastFixStore(lastFixStoreSize())
	if err != nil {
		log.Fatal(err)
	}

	setupGeoRoutes(primaryRouter)
	setupGeofenceRoutes(primaryRouter, zonesDir)
	setupPositionRoutes(primaryRouter, lastFixes)
}

func lastFixStoreSize() int {
	if raw, found := os.LookupEnv("last_fix_store_size"); found {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			return size
		}
		log.Printf("Invalid last_fix_store_size %q, using default", raw)
	}
	return 10000
}
