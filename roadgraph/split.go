package roadgraph

import "github.com/corenav/fleetplan/geo"

// SplitEdge replaces the edge (u,v) with two edges (u,mid) and (mid,v),
// where mid is a new node at coordinate midCoord. The graph projector's
// "insert" step (spec.md §4.3 step 3) is built on it: it deletes a host
// edge and inserts two new ones whose weights sum, within floating-point
// tolerance, to the original edge's Haversine weight. The graph builder
// does not call SplitEdge; it subdivides polylines before the graph is
// seeded.
//
// SplitEdge computes the two new weights as Distance(u,mid) and
// Distance(mid,v) rather than apportioning the original weight by the
// projected parameter t, so the conservation invariant in spec.md §3
// ("weight(A,P)+weight(P,B) equals the Haversine distance from A to B,
// within 1e-6 m") holds by construction rather than by luck.
//
// If mid is already a node in the graph, SplitEdge returns
// ErrNodeAlreadyExists and does nothing; callers are expected to check
// HasNode(mid) first when that is a legitimate case (the projector
// does).
//
// The split is not atomic: RemoveEdge, AddNode and AddEdge each take
// their own lock, so a concurrent reader can observe the graph between
// those steps.
//
// Complexity: O(1).
func (g *Graph) SplitEdge(u, v, mid string, midCoord geo.Coordinate, earthRadiusMeters float64) error {
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	if g.HasNode(mid) {
		return ErrNodeAlreadyExists
	}

	uCoord, ok := g.Coordinate(u)
	if !ok {
		return ErrNodeNotFound
	}
	vCoord, ok := g.Coordinate(v)
	if !ok {
		return ErrNodeNotFound
	}

	g.RemoveEdge(u, v)
	g.AddNode(mid, midCoord)

	weightUMid := geo.Distance(uCoord, midCoord, earthRadiusMeters)
	weightMidV := geo.Distance(midCoord, vCoord, earthRadiusMeters)

	if err := g.AddEdge(u, mid, weightUMid); err != nil {
		return err
	}

	return g.AddEdge(mid, v, weightMidV)
}
