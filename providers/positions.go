package providers

import (
	"log"
	"math"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v5"

	"github.com/openfleet/fleet-geo-api/geomath"
	"github.com/openfleet/fleet-geo-api/providers/caches"
)

// A fix is flagged implausible when its distance-time offset score against
// the previous fix exceeds this. The score is (meters+1)*(seconds+1); the
// default flags a fix ~16 km away after a minute-long gap. Crude, but that is
// the nature of the fused metric; tune per fleet via max_offset_score.
const defaultMaxOffsetScore = 1_000_000

type PositionReport struct {
	VehicleID    string  `json:"vehicleId"`
	Accepted     bool    `json:"accepted"`
	Plausible    bool    `json:"plausible"`
	Score        int64   `json:"score,omitempty"`
	DistanceKm   float64 `json:"distanceKm,omitempty"`
	DeltaSeconds int64   `json:"deltaSeconds,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

func setupPositionRoutes(primaryRoute *echo.Group, lastFixes *caches.LastFixStore) {
	maxOffsetScore := maxOffsetScoreFromEnv()

	vehiclesRoute := primaryRoute.Group("/vehicles")

	//Accepts a raw position report from a tracker, filters out garbage
	//coordinates and scores the fix against the vehicle's previous one
	vehiclesRoute.POST("/position", func(c echo.Context) error {
		vehicleID := c.FormValue("vehicleId")
		latRaw := c.FormValue("lat")
		lonRaw := c.FormValue("lon")
		timestampRaw := c.FormValue("timestamp")

		if vehicleID == "" {
			return JsonApiResponse(c, http.StatusBadRequest, "missing vehicle id", nil, ResponseDetails("details", "vehicleId is required"))
		}

		//The filter runs on the raw text: the scientific-notation check is
		//textual, the placeholder checks are numeric
		if !geomath.MeaningfulCoordinate(lonRaw, latRaw) {
			return JsonApiResponse(c, http.StatusUnprocessableEntity, "rejected", PositionReport{
				VehicleID: vehicleID,
				Reason:    "coordinates look like a placeholder or formatting bug",
			}, ResponseDetails("vehicleId", vehicleID, "lat", latRaw, "lon", lonRaw))
		}

		lat, err := parseFloatParam(latRaw)
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lat", nil, ResponseDetails("lat", latRaw, "error", err.Error()))
		}
		lon, err := parseFloatParam(lonRaw)
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid lon", nil, ResponseDetails("lon", lonRaw, "error", err.Error()))
		}
		timestamp, err := parseIntParam(timestampRaw)
		if err != nil {
			return JsonApiResponse(c, http.StatusBadRequest, "invalid timestamp", nil, ResponseDetails("timestamp", timestampRaw, "error", err.Error()))
		}

		report := PositionReport{
			VehicleID: vehicleID,
			Accepted:  true,
			Plausible: true,
		}

		if last, found := lastFixes.Last(vehicleID); found {
			offset := geomath.DistanceTimeOffset(last.Lat, last.Lon, lat, lon, last.Timestamp, timestamp)
			if math.IsNaN(offset.DistanceKm) {
				return JsonApiResponse(c, http.StatusUnprocessableEntity, "rejected", PositionReport{
					VehicleID: vehicleID,
					Reason:    "distance to previous fix is undefined",
				}, ResponseDetails("vehicleId", vehicleID))
			}

			report.Score = offset.Score
			report.DistanceKm = offset.DistanceKm
			report.DeltaSeconds = offset.DeltaSeconds
			if offset.Score > maxOffsetScore {
				//Still accepted, but flagged so the caller can decide what
				//to do with a fix that jumped too far for the elapsed time
				report.Plausible = false
				report.Reason = "fix is implausibly far from the previous one for the elapsed time"
			}
		}

		lastFixes.Record(vehicleID, caches.Fix{Lat: lat, Lon: lon, Timestamp: timestamp})

		return JsonApiResponse(c, http.StatusOK, "", report)
	})
}

func maxOffsetScoreFromEnv() int64 {
	if raw, found := os.LookupEnv("max_offset_score"); found {
		if score, err := strconv.ParseInt(raw, 10, 64); err == nil && score > 0 {
			return score
		}
		log.Printf("Invalid max_offset_score %q, using default", raw)
	}
	return defaultMaxOffsetScore
}
