package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corenav/fleetplan/astar"
	"github.com/corenav/fleetplan/conflict"
	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/reservation"
	"github.com/corenav/fleetplan/roadgraph"
)

func straightLineGraph(t *testing.T) (*roadgraph.Graph, string, string) {
	t.Helper()
	g := roadgraph.NewGraph()
	a := geo.Coordinate{Lat: 0, Lng: 0}
	b := geo.Coordinate{Lat: 0, Lng: 0.001}
	g.AddNode("A", a)
	g.AddNode("B", b)
	require.NoError(t, g.AddEdge("A", "B", geo.Distance(a, b, geo.DefaultParams().EarthRadiusMeters)))
	return g, "A", "B"
}

func TestSearch_StraightRoadSingleVehicle(t *testing.T) {
	g, start, goal := straightLineGraph(t)
	table := reservation.NewTable()

	req := astar.Request{VehicleID: "v1", StartNode: start, GoalNode: goal, StartTime: 0, Speed: 10, Length: 5}
	path, err := astar.Search(g, req, table, conflict.DefaultParams(), astar.DefaultConfig(), geo.DefaultParams())
	require.NoError(t, err)
	require.Len(t, path.Nodes, 2)
	assert.InDelta(t, 11.119, path.TotalTimeSeconds, 0.01)
}

func TestSearch_UnreachableGoal(t *testing.T) {
	g := roadgraph.NewGraph()
	g.AddNode("A", geo.Coordinate{})
	g.AddNode("B", geo.Coordinate{Lat: 1})
	table := reservation.NewTable()

	req := astar.Request{VehicleID: "v1", StartNode: "A", GoalNode: "B", StartTime: 0, Speed: 10, Length: 5}
	_, err := astar.Search(g, req, table, conflict.DefaultParams(), astar.DefaultConfig(), geo.DefaultParams())
	assert.ErrorIs(t, err, astar.ErrUnreachable)
}

func TestSearch_InvalidSpeed(t *testing.T) {
	g, start, goal := straightLineGraph(t)
	table := reservation.NewTable()

	req := astar.Request{VehicleID: "v1", StartNode: start, GoalNode: goal, StartTime: 0, Speed: 0, Length: 5}
	_, err := astar.Search(g, req, table, conflict.DefaultParams(), astar.DefaultConfig(), geo.DefaultParams())
	assert.ErrorIs(t, err, astar.ErrInvalidSpeed)
}

func TestSearch_StartOrGoalMissing(t *testing.T) {
	g, start, _ := straightLineGraph(t)
	table := reservation.NewTable()

	req := astar.Request{VehicleID: "v1", StartNode: start, GoalNode: "ghost", StartTime: 0, Speed: 10, Length: 5}
	_, err := astar.Search(g, req, table, conflict.DefaultParams(), astar.DefaultConfig(), geo.DefaultParams())
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
}

func TestSearch_HeadOnReservationDelaysPath(t *testing.T) {
	g, start, goal := straightLineGraph(t)
	table := reservation.NewTable()
	table.ReserveSegment("other", goal, start, 0, 100)

	req := astar.Request{VehicleID: "v1", StartNode: start, GoalNode: goal, StartTime: 0, Speed: 10, Length: 5}
	path, err := astar.Search(g, req, table, conflict.DefaultParams(), astar.DefaultConfig(), geo.DefaultParams())
	require.NoError(t, err)
	assert.Greater(t, path.TotalTimeSeconds, 1000.0)
}

func TestSearch_BudgetExceeded(t *testing.T) {
	g := roadgraph.NewGraph()
	coords := []geo.Coordinate{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.001}, {Lat: 0, Lng: 0.002}}
	g.AddNode("A", coords[0])
	g.AddNode("B", coords[1])
	g.AddNode("C", coords[2])
	radius := geo.DefaultParams().EarthRadiusMeters
	require.NoError(t, g.AddEdge("A", "B", geo.Distance(coords[0], coords[1], radius)))
	require.NoError(t, g.AddEdge("B", "C", geo.Distance(coords[1], coords[2], radius)))

	table := reservation.NewTable()
	req := astar.Request{VehicleID: "v1", StartNode: "A", GoalNode: "C", StartTime: 0, Speed: 10, Length: 5}
	cfg := astar.NewConfig(astar.WithMaxExpansions(1))

	_, err := astar.Search(g, req, table, conflict.DefaultParams(), cfg, geo.DefaultParams())
	assert.ErrorIs(t, err, astar.ErrBudgetExceeded)
}

func TestSearch_EmptyReservationTableMatchesFreeFlow(t *testing.T) {
	g, start, goal := straightLineGraph(t)
	table := reservation.NewTable()

	req := astar.Request{VehicleID: "v1", StartNode: start, GoalNode: goal, StartTime: 0, Speed: 10, Length: 5}
	path, err := astar.Search(g, req, table, conflict.DefaultParams(), astar.DefaultConfig(), geo.DefaultParams())
	require.NoError(t, err)

	w, _ := g.Weight(start, goal)
	assert.InDelta(t, w/10, path.TotalTimeSeconds, 1e-9)
}
