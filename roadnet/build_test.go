package roadnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/roadnet"
)

func TestBuild_EmptyInputReturnsErrEmptyGraph(t *testing.T) {
	_, err := roadnet.Build(nil)
	assert.ErrorIs(t, err, roadnet.ErrEmptyGraph)
}

func TestBuild_OnlyBlockedRoadsReturnsErrEmptyGraph(t *testing.T) {
	features := []roadnet.RoadFeature{
		{
			ID:   "r1",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 0, Lng: 0},
				{Lat: 0, Lng: 1},
			},
			Properties: roadnet.Properties{IsBlocked: true},
		},
	}

	_, err := roadnet.Build(features)
	assert.ErrorIs(t, err, roadnet.ErrEmptyGraph)
}

func TestBuild_StraightRoadSingleVehicle(t *testing.T) {
	features := []roadnet.RoadFeature{
		{
			ID:   "road-a",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 0, Lng: 0},
				{Lat: 0, Lng: 0.001},
				{Lat: 0, Lng: 0.002},
			},
		},
	}

	g, err := roadnet.Build(features)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuild_CrossingRoadsSplitAtIntersection(t *testing.T) {
	// Two perpendicular roads crossing at (0,0).
	features := []roadnet.RoadFeature{
		{
			ID:   "east-west",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 0, Lng: -0.001},
				{Lat: 0, Lng: 0.001},
			},
		},
		{
			ID:   "north-south",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: -0.001, Lng: 0},
				{Lat: 0.001, Lng: 0},
			},
		},
	}

	g, err := roadnet.Build(features)
	require.NoError(t, err)

	// 4 original endpoints + 1 shared intersection node == 5 nodes,
	// and the intersection node splits each road into two edges == 4 edges.
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	centerKey := geo.NodeKey(geo.Coordinate{Lat: 0, Lng: 0}, geo.DefaultParams().NodeKeyDecimalDigits)
	assert.True(t, g.HasNode(centerKey))
}

func TestBuild_NonCrossingRoadsStayDisjoint(t *testing.T) {
	features := []roadnet.RoadFeature{
		{
			ID:   "a",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 0, Lng: 0},
				{Lat: 0, Lng: 1},
			},
		},
		{
			ID:   "b",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 10, Lng: 10},
				{Lat: 10, Lng: 11},
			},
		},
	}

	g, err := roadnet.Build(features)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuild_DegeneratePolylineDropped(t *testing.T) {
	features := []roadnet.RoadFeature{
		{
			ID:       "zero-length",
			Kind:     roadnet.KindRoad,
			Polyline: []geo.Coordinate{{Lat: 1, Lng: 1}, {Lat: 1, Lng: 1}},
		},
		{
			ID:   "real",
			Kind: roadnet.KindRoad,
			Polyline: []geo.Coordinate{
				{Lat: 0, Lng: 0},
				{Lat: 0, Lng: 1},
			},
		},
	}

	g, err := roadnet.Build(features)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
}
