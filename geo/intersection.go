package geo

import "math"

// Intersect computes the intersection point of segments [A,B] and [C,D],
// parameterized on (lng, lat). It returns (point, true) if the segments
// meet within a tolerant [-eps, 1+eps] parameter range on both segments
// (so near-miss touches at segment endpoints are accepted), and
// (Coordinate{}, false) if the segments are parallel (or nearly so) or
// genuinely do not meet.
//
// Derivation: let s1 = B−A, s2 = D−C (direction vectors in (lng,lat)
// space). Solve A + t·s1 = C + s·s2 for s and t:
//
//	denom = −s2x·s1y + s1x·s2y
//	s = (−s1y·(Ax−Cx) + s1x·(Ay−Cy)) / denom
//	t = ( s2x·(Ay−Cy) − s2y·(Ax−Cx)) / denom
//
// If |denom| < 1e-9 the segments are treated as parallel and no
// intersection is reported, regardless of eps.
//
// Complexity: O(1).
func Intersect(a, b, c, d Coordinate, eps float64) (Coordinate, bool) {
	s1x := b.Lng - a.Lng
	s1y := b.Lat - a.Lat
	s2x := d.Lng - c.Lng
	s2y := d.Lat - c.Lat

	denom := -s2x*s1y + s1x*s2y
	if math.Abs(denom) < 1e-9 {
		return Coordinate{}, false
	}

	axcx := a.Lng - c.Lng
	aycy := a.Lat - c.Lat

	s := (-s1y*axcx + s1x*aycy) / denom
	t := (s2x*aycy - s2y*axcx) / denom

	lo, hi := -eps, 1+eps
	if s < lo || s > hi || t < lo || t > hi {
		return Coordinate{}, false
	}

	return Coordinate{
		Lng: a.Lng + t*s1x,
		Lat: a.Lat + t*s1y,
	}, true
}
