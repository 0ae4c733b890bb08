package conflict

import "github.com/corenav/fleetplan/reservation"

// Vehicle bundles the fields the estimator needs about the vehicle
// under consideration: its id (so it can skip its own reservations,
// though none exist yet mid-search), length, and speed.
type Vehicle struct {
	ID     string
	Length float64
	Speed  float64
}

// EstimateSegment evaluates conflicts against every other vehicle's
// reservation on the undirected edge (u, v), per spec.md §4.5's
// "Segment-conflict evaluation". tDep is the candidate vehicle's front
// departure time from u; tArrNoWait is its front arrival time at v
// assuming no wait. The candidate's window ends once its tail clears v,
// at tArrNoWait + vehicle.Length/vehicle.Speed.
//
// Returns 0 if no existing reservation's window overlaps the
// candidate's own [enter, exit] window; otherwise the maximum induced
// wait across all overlapping reservations, plus
// InconveniencePenaltySeconds. A head-on reservation (opposite
// direction, itself still causing a positive wait) has
// HeadOnPenaltySeconds/1000 folded into its wait before the max is
// taken, so an edge with a live head-on conflict becomes effectively
// unusable without forbidding it outright.
func EstimateSegment(u, v string, tDep, tArrNoWait float64, vehicle Vehicle, table *reservation.Table, params Params) float64 {
	enter := tDep
	exit := tArrNoWait + vehicle.Length/vehicle.Speed

	maxWait := 0.0
	conflict := false

	for _, r := range table.SegmentReservations(u, v) {
		if r.VehicleID == vehicle.ID {
			continue
		}
		if !overlaps(enter, exit, r.EnterTime, r.ExitTime) {
			continue
		}

		wait := r.ExitTime - enter
		if wait < 0 {
			wait = 0
		}

		headOn := r.From == v && r.To == u
		if headOn && wait > 0 {
			wait += params.HeadOnPenaltySeconds / 1000
		}

		conflict = true
		if wait > maxWait {
			maxWait = wait
		}
	}

	if !conflict {
		return 0
	}

	return maxWait + params.InconveniencePenaltySeconds
}

// EstimateNode evaluates conflicts against every other vehicle's
// reservation on node v, per spec.md §4.5's "Node-conflict evaluation
// at v". tArr is the candidate vehicle's front arrival time at v.
//
// Returns 0 if no existing reservation's window overlaps the
// candidate's own [arrive, arrive+NodeClearanceSeconds] window;
// otherwise the maximum induced wait plus InconveniencePenaltySeconds.
func EstimateNode(v string, tArr float64, vehicle Vehicle, table *reservation.Table, params Params) float64 {
	arrive := tArr
	clearUntil := tArr + params.NodeClearanceSeconds

	maxWait := 0.0
	conflict := false

	for _, r := range table.NodeReservations(v) {
		if r.VehicleID == vehicle.ID {
			continue
		}
		if !overlaps(arrive, clearUntil, r.EntryTime, r.ExitTime) {
			continue
		}

		wait := r.ExitTime - arrive
		if wait < 0 {
			wait = 0
		}

		conflict = true
		if wait > maxWait {
			maxWait = wait
		}
	}

	if !conflict {
		return 0
	}

	return maxWait + params.InconveniencePenaltySeconds
}

// Estimate combines the segment conflict on (u, v) and the node
// conflict at v into the single delay astar adds to an edge's
// free-flow traversal time.
func Estimate(u, v string, tDep, tArrNoWait float64, vehicle Vehicle, table *reservation.Table, params Params) float64 {
	return EstimateSegment(u, v, tDep, tArrNoWait, vehicle, table, params) +
		EstimateNode(v, tArrNoWait, vehicle, table, params)
}

// overlaps reports whether closed intervals [aStart, aEnd] and
// [bStart, bEnd] share any point.
func overlaps(aStart, aEnd, bStart, bEnd float64) bool {
	return aStart <= bEnd && bStart <= aEnd
}
