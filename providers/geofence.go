package providers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v5"

	"github.com/openfleet/fleet-geo-api/geozones"
)

func setupGeofenceRoutes(primaryRoute *echo.Group, zonesDir string) {
	geofenceRoute := primaryRoute.Group("/geofence")

	//Checks whether a point is inside a named zone
	geofenceRoute.GET("/:zone/contains", func(c echo.Context) error {
		zoneNameEncoded := c.PathParam("zone")
		zoneName, err := url.PathUnescape(zoneNameEncoded)
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid zone name", nil, ResponseDetails("zone", zoneNameEncoded, "error", err.Error()))
		}

		lat, err := parseFloatParam(c.QueryParam("lat"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lat", nil, ResponseDetails("lat", c.QueryParam("lat"), "error", err.Error()))
		}
		lon, err := parseFloatParam(c.QueryParam("lon"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lon", nil, ResponseDetails("lon", c.QueryParam("lon"), "error", err.Error()))
		}

		zone, err := geozones.Load(zonesDir, zoneName)
		if err != nil {
			if errors.Is(err, geozones.ErrZoneNotFound) {
				return JsonApiResponse(c, http.StatusNotFound, "zone not found", nil, ResponseDetails("zone", zoneName))
			}
			return JsonApiResponse(c, http.StatusInternalServerError, "", nil, ResponseDetails("zone", zoneName, "error", err.Error()))
		}

		type ContainsResponse struct {
			Zone   string `json:"zone"`
			Inside bool   `json:"inside"`
		}

		return JsonApiResponse(c, http.StatusOK, "", ContainsResponse{
			Zone:   zone.Name,
			Inside: zone.Contains(lat, lon),
		})
	})
}
