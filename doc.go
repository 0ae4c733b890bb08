// Package fleetplan plans collision-aware, time-parameterized routes
// for a fleet of length-bearing vehicles over a user-authored
// geographic road network.
//
// Given a set of road polylines (some blocked) and a set of vehicle
// requests (origin, destination, desired start time, speed, length),
// Plan builds a planar connectivity graph, snaps each request's
// endpoints onto it, and plans each vehicle in ascending start-time
// order with a time-aware A* search that treats earlier vehicles'
// space-time reservations as a non-stationary edge cost. Later
// vehicles see the segments and intersections earlier vehicles have
// already claimed and route, wait, or fail around them.
//
// The package is organized as a pipeline of single-purpose
// subpackages:
//
//	geo/         — great-circle distance, segment projection, segment
//	               intersection, coordinate/node-key canonicalization
//	roadgraph/   — the undirected weighted graph type and its
//	               edge-splitting primitive, SplitEdge
//	roadnet/     — turns road features into a roadgraph.Graph (Build)
//	               and snaps coordinates onto one (Project)
//	reservation/ — the space-time occupation table
//	conflict/    — estimates delay/penalty for a candidate traversal
//	               against the reservation table
//	astar/       — the time-aware single-vehicle search
//	fleet/       — sequential multi-vehicle orchestration
//
// Plan is the single entry point; everything else is reusable on its
// own (a caller who already has a roadgraph.Graph can skip roadnet.Build
// and call fleet.PlanAll directly, for instance).
package fleetplan
