package geomath

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestDistanceIdenticalPointsAtOrigin(t *testing.T) {
	for _, unit := range []Unit{Kilometers, Miles, NauticalMiles} {
		if d := Distance(0, 0, 0, 0, unit); d != 0 {
			t.Fatalf("distance of origin to itself in %s = %v, want 0", unit, d)
		}
	}
}

func TestDistanceKnownFixture(t *testing.T) {
	// One degree of longitude on the equator.
	d := Distance(0, 0, 0, 1, Kilometers)
	if !almostEqual(d, 111.19, 0.01) {
		t.Fatalf("distance (0,0)-(0,1) = %v km, want ~111.19", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	// Auckland <-> Wellington.
	ab := Distance(-36.8485, 174.7633, -41.2866, 174.7756, Kilometers)
	ba := Distance(-41.2866, 174.7756, -36.8485, 174.7633, Kilometers)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
	if ab < 400 || ab > 600 {
		t.Fatalf("Auckland-Wellington = %v km, expected a few hundred km", ab)
	}
}

func TestDistanceUnitConversions(t *testing.T) {
	lat1, lon1, lat2, lon2 := 32.9697, -96.80322, 29.46786, -98.53506

	miles := Distance(lat1, lon1, lat2, lon2, Miles)
	km := Distance(lat1, lon1, lat2, lon2, Kilometers)
	nautical := Distance(lat1, lon1, lat2, lon2, NauticalMiles)

	if !almostEqual(miles*1.609344, km, 1e-9) {
		t.Errorf("miles*1.609344 = %v, want %v", miles*1.609344, km)
	}
	if !almostEqual(miles*0.8684, nautical, 1e-9) {
		t.Errorf("miles*0.8684 = %v, want %v", miles*0.8684, nautical)
	}
}

func TestDistanceUnitMatching(t *testing.T) {
	lat1, lon1, lat2, lon2 := 0.0, 0.0, 0.0, 1.0

	km := Distance(lat1, lon1, lat2, lon2, Kilometers)
	for _, unit := range []Unit{"KILOMETERS", "Kilometers", "k", "K", ""} {
		if d := Distance(lat1, lon1, lat2, lon2, unit); d != km {
			t.Errorf("unit %q = %v, want kilometers result %v", unit, d, km)
		}
	}

	// Unknown units fall through to the miles identity.
	miles := Distance(lat1, lon1, lat2, lon2, Miles)
	if d := Distance(lat1, lon1, lat2, lon2, "furlongs"); d != miles {
		t.Errorf("unknown unit = %v, want miles result %v", d, miles)
	}
}

func TestDistanceNaNSentinel(t *testing.T) {
	// Invalid numeric input must come back as NaN, never a panic. Callers
	// are expected to check for it.
	if d := Distance(math.NaN(), 0, 0, 0, Kilometers); !math.IsNaN(d) {
		t.Fatalf("distance with NaN input = %v, want NaN", d)
	}
}

func TestCenterOfSingleRepeatedPoint(t *testing.T) {
	point := Coordinate{Lat: 34.05, Lon: -118.25}
	center, err := CenterOf([]Coordinate{point, point, point}, true)
	if err != nil {
		t.Fatalf("CenterOf returned error: %v", err)
	}
	if !almostEqual(center.Lat, point.Lat, 1e-9) || !almostEqual(center.Lon, point.Lon, 1e-9) {
		t.Fatalf("center = (%v, %v), want (%v, %v)", center.Lat, center.Lon, point.Lat, point.Lon)
	}
	if center.RadiusMeters > 1 {
		t.Fatalf("radius = %v m, want ~0", center.RadiusMeters)
	}
}

func TestCenterOfEquatorialRing(t *testing.T) {
	// Four equally spaced points on the equator cancel each other out almost
	// exactly; the recovered latitude stays pinned to the equator while the
	// longitude is at the mercy of floating point residue. Regression fixture
	// for the degenerate symmetric case.
	coords := []Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 90},
		{Lat: 0, Lon: -90},
		{Lat: 0, Lon: 180},
	}
	center, err := CenterOf(coords, false)
	if err != nil {
		t.Fatalf("CenterOf returned error: %v", err)
	}
	if !almostEqual(center.Lat, 0, 1e-6) {
		t.Fatalf("degenerate ring latitude = %v, want 0", center.Lat)
	}
	if center.RadiusMeters != 0 {
		t.Fatalf("radius without withMaxRadius = %v, want 0", center.RadiusMeters)
	}
}

func TestCenterOfTwoEquatorialPoints(t *testing.T) {
	coords := []Coordinate{
		{Lat: 0, Lon: 10},
		{Lat: 0, Lon: 20},
	}
	center, err := CenterOf(coords, true)
	if err != nil {
		t.Fatalf("CenterOf returned error: %v", err)
	}
	if !almostEqual(center.Lat, 0, 1e-6) || !almostEqual(center.Lon, 15, 1e-6) {
		t.Fatalf("center = (%v, %v), want (0, 15)", center.Lat, center.Lon)
	}

	// Radius should match the distance from the midpoint to either endpoint.
	want := Distance(0, 15, 0, 20, Kilometers) * 1000
	if !almostEqual(center.RadiusMeters, want, want*0.01) {
		t.Fatalf("radius = %v m, want ~%v", center.RadiusMeters, want)
	}
}

func TestCenterOfEmptyInput(t *testing.T) {
	for _, coords := range [][]Coordinate{nil, {}} {
		if _, err := CenterOf(coords, false); !errors.Is(err, ErrNoCoordinates) {
			t.Fatalf("CenterOf(%v) error = %v, want ErrNoCoordinates", coords, err)
		}
	}
}

func TestMeaningfulCoordinate(t *testing.T) {
	tests := []struct {
		name string
		lon  string
		lat  string
		want bool
	}{
		{"real fix", "12.34", "56.78", true},
		{"origin placeholder", "0", "0", false},
		{"ones placeholder", "1", "1", false},
		{"scientific notation", "1E5", "10", false},
		{"scientific notation lowercase", "3.2e2", "10", false},
		{"scientific notation in second value", "10", "2E7", false},
		{"missing longitude", "", "10", false},
		{"missing latitude", "10", "", false},
		{"unparseable pair", "abc", "xyz", false},
		{"single zero is fine", "0", "5", true},
		{"single one is fine", "1", "5", true},
		// An "E" at index 0 of the concatenation is deliberately not
		// rejected; only positions past the first character count.
		{"leading E survives", "E123", "7", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeaningfulCoordinate(tt.lon, tt.lat); got != tt.want {
				t.Errorf("MeaningfulCoordinate(%q, %q) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestPointInPolygonUnitSquare(t *testing.T) {
	square := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

	if !PointInPolygon(0.5, 0.5, square) {
		t.Error("(0.5, 0.5) should be inside the unit square")
	}
	if PointInPolygon(2, 2, square) {
		t.Error("(2, 2) should be outside the unit square")
	}
	if PointInPolygon(-0.5, 0.5, square) {
		t.Error("(-0.5, 0.5) should be outside the unit square")
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// L-shaped ring; the notch at the top right is outside.
	lShape := []Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}

	if !PointInPolygon(0.5, 1.5, lShape) {
		t.Error("(0.5, 1.5) should be inside the L")
	}
	if PointInPolygon(1.5, 1.5, lShape) {
		t.Error("(1.5, 1.5) sits in the notch, should be outside")
	}
	if !PointInPolygon(1.5, 0.5, lShape) {
		t.Error("(1.5, 0.5) should be inside the L")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(0, 0, nil) {
		t.Error("empty polygon should contain nothing")
	}
	if PointInPolygon(0.5, 0.5, []Point{{0, 0}, {1, 1}}) {
		t.Error("two vertices should contain nothing")
	}
}

func TestDistanceTimeOffsetOutputs(t *testing.T) {
	offset := DistanceTimeOffset(0, 0, 0, 0, 1700000000, 1700000060)
	if offset.DeltaSeconds != 60 {
		t.Fatalf("delta = %v s, want 60", offset.DeltaSeconds)
	}
	if offset.DistanceKm != 0 {
		t.Fatalf("distance = %v km, want 0", offset.DistanceKm)
	}
	// (0*1000 + 1) * (60 + 1)
	if offset.Score != 61 {
		t.Fatalf("score = %v, want 61", offset.Score)
	}
}

func TestDistanceTimeOffsetMonotonicInTime(t *testing.T) {
	var prev int64 = -1
	for _, delta := range []int64{0, 1, 10, 60, 3600, 86400} {
		offset := DistanceTimeOffset(0, 0, 0, 1, 0, delta)
		if offset.Score < prev {
			t.Fatalf("score dropped to %v at delta %v (prev %v)", offset.Score, delta, prev)
		}
		prev = offset.Score
	}
}

func TestDistanceTimeOffsetMonotonicInDistance(t *testing.T) {
	var prev int64 = -1
	for _, lon := range []float64{0, 0.1, 0.5, 1, 5, 20} {
		offset := DistanceTimeOffset(0, 0, 0, lon, 0, 30)
		if offset.Score < prev {
			t.Fatalf("score dropped to %v at lon %v (prev %v)", offset.Score, lon, prev)
		}
		prev = offset.Score
	}
}
