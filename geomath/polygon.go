package geomath

// Point is a 2D vertex of a polygon ring.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointInPolygon reports whether (x, y) falls inside the polygon using the
// even-odd ray casting rule. The polygon is treated as a closed ring; the
// last vertex connects back to the first. Points exactly on an edge are not
// guaranteed either way, which is inherent to the algorithm.
//
// Fewer than 3 vertices never describes an area, so the result is simply
// false.
func PointInPolygon(x, y float64, polygon []Point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := polygon[i]
		vj := polygon[j]
		if (vi.Y > y) != (vj.Y > y) &&
			x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}
