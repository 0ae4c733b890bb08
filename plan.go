package fleetplan

import (
	"github.com/corenav/fleetplan/fleet"
	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/roadnet"
)

// Plan is the core's single planning entry point (spec.md §6):
//
//	plan(roadFeatures, vehicleRequests) → list of plans
//
// It builds the base graph from roadFeatures, then delegates to
// fleet.PlanAll for projection, priority ordering, and sequential
// time-aware search. If roadFeatures yields an empty graph (spec.md
// §7's NoGraph failure kind), every request fails with
// fleet.StatusFailedNoPath rather than returning an error — the core
// never surfaces a bare error to a caller that only wants per-vehicle
// outcomes.
func Plan(roadFeatures []roadnet.RoadFeature, vehicleRequests []fleet.VehicleRequest, opts ...Option) []fleet.VehiclePlan {
	cfg := NewConfig(opts...)

	requests := backfillDefaults(vehicleRequests, cfg)

	g, err := roadnet.Build(roadFeatures,
		geo.WithEarthRadiusMeters(cfg.Geo.EarthRadiusMeters),
		geo.WithCoordinateEqualityTolerance(cfg.Geo.CoordinateEqualityTolerance),
		geo.WithIntersectionEpsilon(cfg.Geo.IntersectionEpsilon),
		geo.WithNodeKeyDecimalDigits(cfg.Geo.NodeKeyDecimalDigits),
	)
	if err != nil {
		return allFailed(requests)
	}

	return fleet.PlanAll(g, requests, cfg.Geo, cfg.Conflict, cfg.Search)
}

func backfillDefaults(requests []fleet.VehicleRequest, cfg Config) []fleet.VehicleRequest {
	out := make([]fleet.VehicleRequest, len(requests))
	for i, req := range requests {
		if req.Speed == 0 && cfg.DefaultVehicleSpeed > 0 {
			req.Speed = cfg.DefaultVehicleSpeed
		}
		if req.Length == 0 && cfg.DefaultVehicleLength > 0 {
			req.Length = cfg.DefaultVehicleLength
		}
		out[i] = req
	}
	return out
}

func allFailed(requests []fleet.VehicleRequest) []fleet.VehiclePlan {
	plans := make([]fleet.VehiclePlan, len(requests))
	for i, req := range requests {
		plans[i] = fleet.VehiclePlan{VehicleID: req.ID, Status: fleet.StatusFailedNoPath}
	}
	return plans
}
