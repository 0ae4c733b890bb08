// Package astar implements the time-aware single-vehicle pathfinder
// (spec.md §4.6): A* search whose edge cost is free-flow travel time
// plus a non-stationary delay drawn from the conflict estimator.
package astar

import (
	"errors"

	"github.com/corenav/fleetplan/geo"
)

var (
	// ErrInvalidSpeed is returned when a request's speed is <= 0: the
	// heuristic would be infinite and no path can be costed.
	ErrInvalidSpeed = errors.New("astar: vehicle speed must be > 0")

	// ErrStartNotFound and ErrGoalNotFound are returned when the
	// request's start or goal node key is absent from the graph — the
	// caller is expected to have projected both onto the graph already.
	ErrStartNotFound = errors.New("astar: start node not found in graph")
	ErrGoalNotFound  = errors.New("astar: goal node not found in graph")

	// ErrUnreachable is returned when the open set empties without the
	// goal ever being popped.
	ErrUnreachable = errors.New("astar: goal unreachable from start")

	// ErrBudgetExceeded is returned when Config.MaxExpansions is set and
	// exhausted before the goal is reached.
	ErrBudgetExceeded = errors.New("astar: node expansion budget exceeded")
)

// Request is one vehicle's search parameters, already resolved onto
// graph node keys (the caller has run roadnet.Project on both ends).
type Request struct {
	VehicleID   string
	StartNode   string
	GoalNode    string
	StartTime   float64
	Speed       float64
	Length      float64
}

// TimedNode is one waypoint of a planned path: the graph node it sits
// on, that node's coordinate, and the absolute simulation time the
// vehicle's front reaches it.
type TimedNode struct {
	NodeKey    string
	Coordinate geo.Coordinate
	TAbs       float64
}

// Path is a complete, time-stamped route.
type Path struct {
	Nodes            []TimedNode
	TotalTimeSeconds float64
}
