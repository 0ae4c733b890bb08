package roadnet

import (
	"fmt"
	"sort"

	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/roadgraph"
)

// Locus is the result of projecting an arbitrary coordinate onto a
// graph: the key of the node the caller should search from, and
// whether that node already existed or was synthesized by splitting an
// edge at the nearest point on it.
type Locus struct {
	NodeKey  string
	Inserted bool
}

// Project snaps target onto the nearest point of g: an existing node,
// or a new node spliced into the nearest edge, per spec.md §4.3.
//
// Candidates are evaluated in two passes: first every existing node
// (distance to the node's own coordinate), then every edge's interior
// (distance to geo.ProjectOntoSegment(u, v, target)). If the closest
// node is no farther from target than the closest edge point plus
// CoordinateEqualityTolerance (added to the distance in meters), the
// existing node wins, so equal distances snap onto the node rather than
// splicing a new one. Ties among edges are broken by visiting nodes, and their
// neighbor edges, in sorted key order, so two calls with the same
// graph and target always pick the same edge.
func Project(g *roadgraph.Graph, target geo.Coordinate, opts ...geo.Option) (Locus, error) {
	params := geo.NewParams(opts...)

	keys := g.NodeKeys()
	if len(keys) == 0 {
		return Locus{}, ErrProjectionFailed
	}

	bestNodeKey := ""
	bestNodeDist := 0.0
	for _, k := range keys {
		coord, _ := g.Coordinate(k)
		d := geo.Distance(target, coord, params.EarthRadiusMeters)
		if bestNodeKey == "" || d < bestNodeDist {
			bestNodeKey = k
			bestNodeDist = d
		}
	}

	type edgeCandidate struct {
		u, v  string
		point geo.Coordinate
		dist  float64
	}
	var bestEdge *edgeCandidate
	seen := make(map[string]bool)

	for _, u := range keys {
		uCoord, _ := g.Coordinate(u)
		neighbors := g.Neighbors(u)
		vs := make([]string, 0, len(neighbors))
		for v := range neighbors {
			vs = append(vs, v)
		}
		sort.Strings(vs)

		for _, v := range vs {
			segKey := geo.SegmentKey(u, v)
			if seen[segKey] {
				continue
			}
			seen[segKey] = true

			vCoord, _ := g.Coordinate(v)
			point := geo.ProjectOntoSegment(uCoord, vCoord, target)
			d := geo.Distance(target, point, params.EarthRadiusMeters)

			if bestEdge == nil || d < bestEdge.dist {
				bestEdge = &edgeCandidate{u: u, v: v, point: point, dist: d}
			}
		}
	}

	if bestEdge == nil || bestNodeDist <= bestEdge.dist+params.CoordinateEqualityTolerance {
		return Locus{NodeKey: bestNodeKey, Inserted: false}, nil
	}

	// Interior of an edge is strictly closer: splice a new node there.
	newKey := geo.NodeKey(bestEdge.point, params.NodeKeyDecimalDigits)
	if g.HasNode(newKey) {
		return Locus{NodeKey: newKey, Inserted: false}, nil
	}

	if err := g.SplitEdge(bestEdge.u, bestEdge.v, newKey, bestEdge.point, params.EarthRadiusMeters); err != nil {
		return Locus{}, fmt.Errorf("roadnet: splicing projection node: %w", err)
	}

	return Locus{NodeKey: newKey, Inserted: true}, nil
}
