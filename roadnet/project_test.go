package roadnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/roadgraph"
	"github.com/corenav/fleetplan/roadnet"
)

func buildStraightRoad(t *testing.T) *roadgraph.Graph {
	t.Helper()
	g, err := roadnet.Build([]roadnet.RoadFeature{
		{
			ID:   "road-a",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 0, Lng: 0},
				{Lat: 0, Lng: 0.01},
			},
		},
	})
	require.NoError(t, err)
	return g
}

func TestProject_OnExistingNodeSnapsWithoutInsert(t *testing.T) {
	g := buildStraightRoad(t)

	loc, err := roadnet.Project(g, geo.Coordinate{Lat: 0, Lng: 0})
	require.NoError(t, err)
	assert.False(t, loc.Inserted)

	coord, ok := g.Coordinate(loc.NodeKey)
	require.True(t, ok)
	assert.InDelta(t, 0, coord.Lat, 1e-9)
	assert.InDelta(t, 0, coord.Lng, 1e-9)
}

func TestProject_OffGraphSplicesOntoNearestEdge(t *testing.T) {
	g := buildStraightRoad(t)
	before := g.NodeCount()

	// Point just north of the segment midpoint: nearest locus is the
	// edge's interior, not either endpoint.
	loc, err := roadnet.Project(g, geo.Coordinate{Lat: 0.0001, Lng: 0.005})
	require.NoError(t, err)
	assert.True(t, loc.Inserted)
	assert.Equal(t, before+1, g.NodeCount())
	assert.True(t, g.HasNode(loc.NodeKey))
}

func TestProject_EmptyGraphFails(t *testing.T) {
	empty := roadgraph.NewGraph()
	_, err := roadnet.Project(empty, geo.Coordinate{Lat: 0, Lng: 0})
	assert.ErrorIs(t, err, roadnet.ErrProjectionFailed)
}

func TestProject_RepeatedCallsOnSamePointAreIdempotent(t *testing.T) {
	g := buildStraightRoad(t)

	target := geo.Coordinate{Lat: 0.0001, Lng: 0.005}
	loc1, err := roadnet.Project(g, target)
	require.NoError(t, err)

	loc2, err := roadnet.Project(g, target)
	require.NoError(t, err)

	assert.Equal(t, loc1.NodeKey, loc2.NodeKey)
	assert.False(t, loc2.Inserted, "second projection onto the same point must reuse the spliced node")
}
