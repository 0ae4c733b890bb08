package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corenav/fleetplan/astar"
	"github.com/corenav/fleetplan/conflict"
	"github.com/corenav/fleetplan/fleet"
	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/roadgraph"
)

func straightLineGraph(t *testing.T) *roadgraph.Graph {
	t.Helper()
	g := roadgraph.NewGraph()
	a := geo.Coordinate{Lat: 0, Lng: 0}
	b := geo.Coordinate{Lat: 0, Lng: 0.001}
	g.AddNode("A", a)
	g.AddNode("B", b)
	radius := geo.DefaultParams().EarthRadiusMeters
	require.NoError(t, g.AddEdge("A", "B", geo.Distance(a, b, radius)))
	return g
}

func TestPlanAll_SingleVehicleSuccess(t *testing.T) {
	g := straightLineGraph(t)

	requests := []fleet.VehicleRequest{
		{ID: "v1", Origin: geo.Coordinate{Lat: 0, Lng: 0}, Destination: geo.Coordinate{Lat: 0, Lng: 0.001}, Speed: 10, Length: 5, StartTime: 0},
	}

	plans := fleet.PlanAll(g, requests, geo.DefaultParams(), conflict.DefaultParams(), astar.DefaultConfig())
	require.Len(t, plans, 1)
	assert.Equal(t, fleet.StatusSuccess, plans[0].Status)
	assert.InDelta(t, 11.119, plans[0].TotalTimeSeconds, 0.01)
}

func TestPlanAll_HeadOnContestedSegmentDelaysSecondVehicle(t *testing.T) {
	g := straightLineGraph(t)

	requests := []fleet.VehicleRequest{
		{ID: "v1", Origin: geo.Coordinate{Lat: 0, Lng: 0}, Destination: geo.Coordinate{Lat: 0, Lng: 0.001}, Speed: 10, Length: 5, StartTime: 0},
		{ID: "v2", Origin: geo.Coordinate{Lat: 0, Lng: 0.001}, Destination: geo.Coordinate{Lat: 0, Lng: 0}, Speed: 10, Length: 5, StartTime: 0},
	}

	plans := fleet.PlanAll(g, requests, geo.DefaultParams(), conflict.DefaultParams(), astar.DefaultConfig())
	require.Len(t, plans, 2)
	assert.Equal(t, fleet.StatusSuccess, plans[0].Status)
	assert.Equal(t, fleet.StatusSuccess, plans[1].Status)
	assert.Greater(t, plans[1].TotalTimeSeconds, plans[0].TotalTimeSeconds)
}

func TestPlanAll_EmptyGraphAllRequestsFail(t *testing.T) {
	empty := roadgraph.NewGraph()
	requests := []fleet.VehicleRequest{
		{ID: "v1", Origin: geo.Coordinate{Lat: 0, Lng: 0}, Destination: geo.Coordinate{Lat: 0, Lng: 1}, Speed: 10, Length: 5, StartTime: 0},
	}

	plans := fleet.PlanAll(empty, requests, geo.DefaultParams(), conflict.DefaultParams(), astar.DefaultConfig())
	require.Len(t, plans, 1)
	assert.Equal(t, fleet.StatusFailedNoPath, plans[0].Status)
}

func TestPlanAll_OutputOrderedByStartTime(t *testing.T) {
	g := straightLineGraph(t)

	requests := []fleet.VehicleRequest{
		{ID: "late", Origin: geo.Coordinate{Lat: 0, Lng: 0}, Destination: geo.Coordinate{Lat: 0, Lng: 0.001}, Speed: 10, Length: 5, StartTime: 100},
		{ID: "early", Origin: geo.Coordinate{Lat: 0, Lng: 0}, Destination: geo.Coordinate{Lat: 0, Lng: 0.001}, Speed: 10, Length: 5, StartTime: 0},
	}

	plans := fleet.PlanAll(g, requests, geo.DefaultParams(), conflict.DefaultParams(), astar.DefaultConfig())
	require.Len(t, plans, 2)
	assert.Equal(t, "early", plans[0].VehicleID)
	assert.Equal(t, "late", plans[1].VehicleID)
}
