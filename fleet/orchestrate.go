package fleet

import (
	"sort"

	"github.com/corenav/fleetplan/astar"
	"github.com/corenav/fleetplan/conflict"
	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/reservation"
	"github.com/corenav/fleetplan/roadgraph"
	"github.com/corenav/fleetplan/roadnet"
)

// attempt is one request's state after the projection pass: either a
// pair of resolved node keys ready for A*, or a projection failure.
type attempt struct {
	request    VehicleRequest
	startNode  string
	goalNode   string
	failed     bool
}

// PlanAll runs spec.md §4.7's fleet orchestration algorithm against
// base. base is never mutated: PlanAll clones it into its own working
// graph before any projection.
func PlanAll(base *roadgraph.Graph, requests []VehicleRequest, gp geo.Params, cp conflict.Params, ac astar.Config) []VehiclePlan {
	working := base.Clone()

	attempts := make([]attempt, len(requests))
	for i, req := range requests {
		attempts[i] = projectRequest(working, req, gp)
	}

	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].request.StartTime < attempts[j].request.StartTime
	})

	table := reservation.NewTable()
	plans := make([]VehiclePlan, len(attempts))

	for i, a := range attempts {
		if a.failed {
			plans[i] = VehiclePlan{VehicleID: a.request.ID, Status: StatusFailedNoPath}
			continue
		}

		plans[i] = planOne(working, a, table, gp, cp, ac)
	}

	return plans
}

func projectRequest(g *roadgraph.Graph, req VehicleRequest, gp geo.Params) attempt {
	startLoc, err := roadnet.Project(g, req.Origin, geo.WithEarthRadiusMeters(gp.EarthRadiusMeters),
		geo.WithCoordinateEqualityTolerance(gp.CoordinateEqualityTolerance),
		geo.WithIntersectionEpsilon(gp.IntersectionEpsilon),
		geo.WithNodeKeyDecimalDigits(gp.NodeKeyDecimalDigits))
	if err != nil {
		return attempt{request: req, failed: true}
	}

	goalLoc, err := roadnet.Project(g, req.Destination, geo.WithEarthRadiusMeters(gp.EarthRadiusMeters),
		geo.WithCoordinateEqualityTolerance(gp.CoordinateEqualityTolerance),
		geo.WithIntersectionEpsilon(gp.IntersectionEpsilon),
		geo.WithNodeKeyDecimalDigits(gp.NodeKeyDecimalDigits))
	if err != nil {
		return attempt{request: req, failed: true}
	}

	return attempt{request: req, startNode: startLoc.NodeKey, goalNode: goalLoc.NodeKey}
}

func planOne(g *roadgraph.Graph, a attempt, table *reservation.Table, gp geo.Params, cp conflict.Params, ac astar.Config) VehiclePlan {
	req := astar.Request{
		VehicleID: a.request.ID,
		StartNode: a.startNode,
		GoalNode:  a.goalNode,
		StartTime: a.request.StartTime,
		Speed:     a.request.Speed,
		Length:    a.request.Length,
	}

	path, err := astar.Search(g, req, table, cp, ac, gp)
	if err != nil {
		return VehiclePlan{VehicleID: a.request.ID, Status: StatusFailedNoPath}
	}

	extendReservations(table, path, a.request, gp, cp)

	waypoints := make([]TimedWaypoint, len(path.Nodes))
	for i, n := range path.Nodes {
		waypoints[i] = TimedWaypoint{Coordinate: n.Coordinate, TAbs: n.TAbs}
	}

	return VehiclePlan{
		VehicleID:        a.request.ID,
		Status:           StatusSuccess,
		Path:             waypoints,
		TotalTimeSeconds: path.TotalTimeSeconds,
	}
}

// extendReservations records the path's segment and node occupations,
// per spec.md §4.7 step 6b: node A is reserved on every hop; node B is
// additionally reserved only on the path's final hop.
func extendReservations(table *reservation.Table, path astar.Path, req VehicleRequest, gp geo.Params, cparams conflict.Params) {
	for i := 0; i < len(path.Nodes)-1; i++ {
		a := path.Nodes[i]
		b := path.Nodes[i+1]

		dist := geo.Distance(a.Coordinate, b.Coordinate, gp.EarthRadiusMeters)
		exitTime := a.TAbs + (dist+req.Length)/req.Speed
		table.ReserveSegment(req.ID, a.NodeKey, b.NodeKey, a.TAbs, exitTime)

		table.ReserveNode(req.ID, a.NodeKey,
			a.TAbs-cparams.NodeSafetyWindowSeconds/2,
			a.TAbs+cparams.NodeClearanceSeconds+cparams.NodeSafetyWindowSeconds/2)

		if i == len(path.Nodes)-2 {
			table.ReserveNode(req.ID, b.NodeKey,
				b.TAbs-cparams.NodeSafetyWindowSeconds/2,
				b.TAbs+cparams.NodeClearanceSeconds+cparams.NodeSafetyWindowSeconds/2)
		}
	}
}
