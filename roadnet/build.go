package roadnet

import (
	"sort"

	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/roadgraph"
)

// Build turns a collection of RoadFeatures into a roadgraph.Graph, per
// spec.md §4.2:
//
//  1. Normalize each eligible polyline (normalizeFeatures).
//  2. Discover every pairwise segment crossing across all polylines
//     (findIntersections), including a polyline crossing itself.
//  3. Materialize those crossings by subdividing each affected segment
//     at the crossing point(s), in order along the segment, before any
//     vertex is registered in the graph. Two polylines that cross at
//     (numerically) the same point share the same node key by
//     construction: geo.NodeKey rounds to a fixed decimal precision, so
//     crossing points that round to the same key collapse to one graph
//     node. Points closer than CoordinateEqualityTolerance can still
//     round to different keys.
//  4. Seed the graph: every subdivided vertex becomes a node, every
//     consecutive pair (and, for a loop, the wrap-around pair) becomes
//     an edge weighted by geo.Distance.
//
// Build returns ErrEmptyGraph if no eligible, non-degenerate polyline
// survives step 1.
func Build(features []RoadFeature, opts ...geo.Option) (*roadgraph.Graph, error) {
	params := geo.NewParams(opts...)

	lines := normalizeFeatures(features, params)
	if len(lines) == 0 {
		return nil, ErrEmptyGraph
	}

	crossings := findIntersections(lines, params)
	subdivided := materializeCrossings(lines, crossings, params)

	g := roadgraph.NewGraph()
	for _, line := range subdivided {
		seedPolyline(g, line, params)
	}

	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	return g, nil
}

// materializeCrossings rebuilds each polyline's vertex chain with every
// discovered crossing point inserted in segment order.
func materializeCrossings(lines []polyline, crossings []crossing, params geo.Params) []polyline {
	insertions := make(map[[2]int][]geo.Coordinate)

	addInsertion := func(line, seg int, point geo.Coordinate) {
		ref := [2]int{line, seg}
		insertions[ref] = append(insertions[ref], point)
	}

	for _, c := range crossings {
		addInsertion(c.pA, c.sA, c.point)
		addInsertion(c.pB, c.sB, c.point)
	}

	out := make([]polyline, len(lines))
	for i, line := range lines {
		out[i] = subdivideLine(i, line, insertions, params)
	}

	return out
}

func subdivideLine(lineIdx int, line polyline, insertions map[[2]int][]geo.Coordinate, params geo.Params) polyline {
	newPoints := make([]geo.Coordinate, 0, len(line.points))
	newPoints = append(newPoints, line.points[0])

	for seg := 0; seg < line.segmentCount(); seg++ {
		a, b, _, _ := line.segment(seg)
		wrap := line.loop && seg == line.segmentCount()-1

		pts := insertions[[2]int{lineIdx, seg}]
		ordered := orderAlongSegment(a, pts, params.CoordinateEqualityTolerance)
		for _, p := range ordered {
			if geo.Equals(p, a, params.CoordinateEqualityTolerance) || geo.Equals(p, b, params.CoordinateEqualityTolerance) {
				continue
			}
			newPoints = append(newPoints, p)
		}

		if !wrap {
			newPoints = append(newPoints, b)
		}
	}

	keys := make([]string, len(newPoints))
	for i, c := range newPoints {
		keys[i] = geo.NodeKey(c, params.NodeKeyDecimalDigits)
	}

	return polyline{
		featureID: line.featureID,
		points:    newPoints,
		keys:      keys,
		loop:      line.loop,
	}
}

// orderAlongSegment sorts crossing points inserted into one segment by
// their distance from the segment start, and collapses points that
// coincide within tolerance.
func orderAlongSegment(start geo.Coordinate, pts []geo.Coordinate, tol float64) []geo.Coordinate {
	if len(pts) == 0 {
		return nil
	}

	type entry struct {
		point geo.Coordinate
		dist  float64
	}
	entries := make([]entry, len(pts))
	for i, p := range pts {
		entries[i] = entry{point: p, dist: planarDistanceSquared(start, p)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].dist < entries[j].dist })

	out := make([]geo.Coordinate, 0, len(entries))
	for _, e := range entries {
		if len(out) > 0 && geo.Equals(out[len(out)-1], e.point, tol) {
			continue
		}
		out = append(out, e.point)
	}

	return out
}

func planarDistanceSquared(a, b geo.Coordinate) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return dLat*dLat + dLng*dLng
}

// seedPolyline registers every vertex and edge of a (subdivided)
// polyline into g.
func seedPolyline(g *roadgraph.Graph, line polyline, params geo.Params) {
	for i, c := range line.points {
		g.AddNode(line.keys[i], c)
	}

	for seg := 0; seg < line.segmentCount(); seg++ {
		a, b, aKey, bKey := line.segment(seg)
		weight := geo.Distance(a, b, params.EarthRadiusMeters)
		// AddEdge cannot fail here: both endpoints were just registered
		// above and aKey != bKey is guaranteed by normalization (no
		// zero-length segments survive dropConsecutiveDuplicates).
		_ = g.AddEdge(aKey, bKey, weight)
	}
}
