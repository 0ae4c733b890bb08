// Package roadnet turns a collection of user-drawn road features into a
// roadgraph.Graph (the builder, spec.md §4.2) and snaps arbitrary
// coordinates onto that graph (the projector, §4.3). The builder splits
// roads at discovered intersections by subdividing each polyline before
// the graph is seeded; the projector splices a vehicle's origin or
// destination into an existing edge with roadgraph.Graph.SplitEdge.
package roadnet

import "github.com/corenav/fleetplan/geo"

// Kind classifies a RoadFeature. Only KindRoad features with
// Properties.IsBlocked == false participate in the graph; every other
// kind (and every blocked road) is filtered out before the builder ever
// sees it.
type Kind string

// Recognized feature kinds, per spec.md §3.
const (
	KindRoad    Kind = "road"
	KindBlocked Kind = "blocked"
	KindMarker  Kind = "marker"
	KindPolygon Kind = "polygon"
)

// Properties is the free-form property bag spec.md §3 attaches to every
// RoadFeature. IsBlocked is the one property the builder inspects
// directly; Extra carries everything else (names, styling, whatever the
// external map-editing UI attaches) without the core needing to know its
// shape — mirroring core.Vertex.Metadata's "shallow, shared, not
// deep-copied" contract.
type Properties struct {
	IsBlocked bool
	Extra     map[string]interface{}
}

// RoadFeature is one user-drawn feature: an identifier, a Kind, an
// optional ordered polyline, and a Properties bag.
type RoadFeature struct {
	ID         string
	Kind       Kind
	Polyline   []geo.Coordinate
	Properties Properties
}

// eligible reports whether f participates in the graph: kind==road and
// not blocked.
func (f RoadFeature) eligible() bool {
	return f.Kind == KindRoad && !f.Properties.IsBlocked
}
