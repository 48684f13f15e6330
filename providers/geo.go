package providers

import (
	"errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/openfleet/fleet-geo-api/geomath"
)

func setupGeoRoutes(primaryRoute *echo.Group) {
	geoRoute := primaryRoute.Group("/geo")

	//Returns the great-circle distance between two points
	geoRoute.GET("/distance", func(c echo.Context) error {
		lat1, err := parseFloatParam(c.QueryParam("lat1"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lat1", nil, ResponseDetails("lat1", c.QueryParam("lat1"), "error", err.Error()))
		}
		lon1, err := parseFloatParam(c.QueryParam("lon1"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lon1", nil, ResponseDetails("lon1", c.QueryParam("lon1"), "error", err.Error()))
		}
		lat2, err := parseFloatParam(c.QueryParam("lat2"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lat2", nil, ResponseDetails("lat2", c.QueryParam("lat2"), "error", err.Error()))
		}
		lon2, err := parseFloatParam(c.QueryParam("lon2"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lon2", nil, ResponseDetails("lon2", c.QueryParam("lon2"), "error", err.Error()))
		}

		unit := geomath.Unit(c.QueryParam("unit"))

		distance := geomath.Distance(lat1, lon1, lat2, lon2, unit)
		if math.IsNaN(distance) {
			//NaN is the sentinel for out-of-domain input; it can't be
			//marshalled into JSON anyway, so surface it explicitly here
			return JsonApiResponse(c, http.StatusUnprocessableEntity, "degenerate coordinates", nil, ResponseDetails("details", "distance is undefined for the given coordinates"))
		}

		type DistanceResponse struct {
			Distance float64 `json:"distance"`
			Unit     string  `json:"unit"`
		}
		if unit == "" {
			unit = geomath.Kilometers
		}

		return JsonApiResponse(c, http.StatusOK, "", DistanceResponse{
			Distance: distance,
			Unit:     string(unit),
		})
	})

	//Returns the fused distance+time deviation score for two timestamped fixes
	geoRoute.GET("/offset", func(c echo.Context) error {
		lat1, err := parseFloatParam(c.QueryParam("lat1"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lat1", nil, ResponseDetails("lat1", c.QueryParam("lat1")))
		}
		lon1, err := parseFloatParam(c.QueryParam("lon1"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lon1", nil, ResponseDetails("lon1", c.QueryParam("lon1")))
		}
		lat2, err := parseFloatParam(c.QueryParam("lat2"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lat2", nil, ResponseDetails("lat2", c.QueryParam("lat2")))
		}
		lon2, err := parseFloatParam(c.QueryParam("lon2"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lon2", nil, ResponseDetails("lon2", c.QueryParam("lon2")))
		}
		t1, err := parseIntParam(c.QueryParam("t1"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid t1", nil, ResponseDetails("t1", c.QueryParam("t1")))
		}
		t2, err := parseIntParam(c.QueryParam("t2"))
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid t2", nil, ResponseDetails("t2", c.QueryParam("t2")))
		}

		offset := geomath.DistanceTimeOffset(lat1, lon1, lat2, lon2, t1, t2)
		if math.IsNaN(offset.DistanceKm) {
			return JsonApiResponse(c, http.StatusUnprocessableEntity, "degenerate coordinates", nil, ResponseDetails("details", "distance is undefined for the given coordinates"))
		}

		return JsonApiResponse(c, http.StatusOK, "", offset)
	})

	//Returns the centroid of a set of coordinates, optionally with the
	//bounding radius
	geoRoute.POST("/center", func(c echo.Context) error {
		type CenterRequest struct {
			Coordinates   []geomath.Coordinate `json:"coordinates"`
			WithMaxRadius bool                 `json:"withMaxRadius"`
		}

		var request CenterRequest
		if err := c.Bind(&request); err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid body", nil, ResponseDetails("error", err.Error()))
		}

		center, err := geomath.CenterOf(request.Coordinates, request.WithMaxRadius)
		if err != nil {
			if errors.Is(err, geomath.ErrNoCoordinates) {
				return JsonApiResponse(c, http.StatusBadRequest, "no coordinates", nil, ResponseDetails("details", "at least one coordinate is required"))
			}
			return JsonApiResponse(c, http.StatusInternalServerError, "", nil, ResponseDetails("error", err.Error()))
		}

		return JsonApiResponse(c, http.StatusOK, "", center)
	})
}
