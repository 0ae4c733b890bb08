package roadnet

import "github.com/corenav/fleetplan/geo"

// polyline is a normalized, eligible road feature's vertex chain, ready
// for edge-seeding and intersection discovery.
type polyline struct {
	featureID string
	points    []geo.Coordinate
	keys      []string
	loop      bool
}

// normalizeFeatures filters features down to eligible roads and
// normalizes each surviving polyline per spec.md §4.2 step 1:
//   - drop consecutive duplicate points (within CoordinateEqualityTolerance)
//   - discard polylines with fewer than 2 distinct points after dedup
//   - detect and collapse a closed loop (first == last, length >= 3)
//
// Complexity: O(total vertices).
func normalizeFeatures(features []RoadFeature, params geo.Params) []polyline {
	var result []polyline

	for _, f := range features {
		if !f.eligible() {
			continue
		}

		deduped := dropConsecutiveDuplicates(f.Polyline, params.CoordinateEqualityTolerance)
		if len(deduped) < 2 {
			continue
		}

		loop := false
		if len(deduped) >= 3 && geo.Equals(deduped[0], deduped[len(deduped)-1], params.CoordinateEqualityTolerance) {
			loop = true
			deduped = deduped[:len(deduped)-1]
		}

		keys := make([]string, len(deduped))
		for i, c := range deduped {
			keys[i] = geo.NodeKey(c, params.NodeKeyDecimalDigits)
		}

		result = append(result, polyline{
			featureID: f.ID,
			points:    deduped,
			keys:      keys,
			loop:      loop,
		})
	}

	return result
}

// dropConsecutiveDuplicates returns pts with consecutive near-duplicate
// points (within tol) collapsed into one.
func dropConsecutiveDuplicates(pts []geo.Coordinate, tol float64) []geo.Coordinate {
	if len(pts) == 0 {
		return nil
	}

	out := make([]geo.Coordinate, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		if geo.Equals(pts[i], out[len(out)-1], tol) {
			continue
		}
		out = append(out, pts[i])
	}

	return out
}

// segmentCount returns the number of edges a normalized polyline
// contributes: len(points)-1 consecutive edges, plus one wrap-around
// edge if it is a loop.
func (p polyline) segmentCount() int {
	n := len(p.points) - 1
	if p.loop {
		n++
	}
	return n
}

// segment returns the i-th segment's endpoint coordinates and keys,
// where segment indices [0, len(points)-2] are the consecutive pairs and
// (for loops) the final index wraps from the last point back to the
// first.
func (p polyline) segment(i int) (aCoord, bCoord geo.Coordinate, aKey, bKey string) {
	if i == len(p.points)-1 && p.loop {
		return p.points[len(p.points)-1], p.points[0], p.keys[len(p.points)-1], p.keys[0]
	}

	return p.points[i], p.points[i+1], p.keys[i], p.keys[i+1]
}
