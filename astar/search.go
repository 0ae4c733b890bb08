package astar

import (
	"container/heap"
	"fmt"

	"github.com/corenav/fleetplan/conflict"
	"github.com/corenav/fleetplan/geo"
	"github.com/corenav/fleetplan/reservation"
	"github.com/corenav/fleetplan/roadgraph"
)

// Search runs the time-aware A* described in spec.md §4.6: single-
// source shortest path in time from req.StartNode to req.GoalNode on
// g, where each edge's cost is free-flow travel time plus the delay
// conflict.Estimate derives from table.
func Search(g *roadgraph.Graph, req Request, table *reservation.Table, cp conflict.Params, cfg Config, params geo.Params) (Path, error) {
	if req.Speed <= 0 {
		return Path{}, ErrInvalidSpeed
	}
	if !g.HasNode(req.StartNode) {
		return Path{}, fmt.Errorf("%w: %s", ErrStartNotFound, req.StartNode)
	}
	if !g.HasNode(req.GoalNode) {
		return Path{}, fmt.Errorf("%w: %s", ErrGoalNotFound, req.GoalNode)
	}

	r := &runner{
		g:        g,
		req:      req,
		table:    table,
		cp:       cp,
		cfg:      cfg,
		params:   params,
		bestG:    make(map[string]float64),
		tAbs:     make(map[string]float64),
		parent:   make(map[string]string),
		visited:  make(map[string]bool),
	}

	r.init()

	if err := r.process(); err != nil {
		return Path{}, err
	}

	if !r.visited[req.GoalNode] {
		return Path{}, ErrUnreachable
	}

	return r.reconstruct(), nil
}

// runner holds the mutable state for one Search call.
type runner struct {
	g      *roadgraph.Graph
	req    Request
	table  *reservation.Table
	cp     conflict.Params
	cfg    Config
	params geo.Params

	bestG   map[string]float64
	tAbs    map[string]float64
	parent  map[string]string
	visited map[string]bool
	pq      nodePQ

	expansions int
}

func (r *runner) init() {
	r.bestG[r.req.StartNode] = 0
	r.tAbs[r.req.StartNode] = r.req.StartTime

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{key: r.req.StartNode, f: r.heuristic(r.req.StartNode)})
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.key

		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.req.GoalNode {
			return nil
		}

		r.expansions++
		if r.cfg.MaxExpansions != nil && r.expansions > *r.cfg.MaxExpansions {
			return ErrBudgetExceeded
		}

		r.relax(u)
	}

	return nil
}

// relax examines each neighbor of u and attempts to improve its
// recorded cost, per spec.md §4.6's relaxation rule.
func (r *runner) relax(u string) {
	vehicle := conflict.Vehicle{ID: r.req.VehicleID, Length: r.req.Length, Speed: r.req.Speed}

	for v, d := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}

		travel := d / r.req.Speed
		tDep := r.tAbs[u]
		tArrNoWait := tDep + travel

		penalty := conflict.Estimate(u, v, tDep, tArrNoWait, vehicle, r.table, r.cp)
		step := travel + penalty

		gV := r.bestG[u] + step

		best, known := r.bestG[v]
		if known && gV >= best {
			continue
		}

		r.bestG[v] = gV
		r.parent[v] = u
		r.tAbs[v] = r.tAbs[u] + step

		heap.Push(&r.pq, &nodeItem{key: v, f: gV + r.heuristic(v)})
	}
}

// heuristic is h(n) = distance(coord(n), coord(goal)) / speed, per
// spec.md §4.6. Admissible because conflict penalties are non-negative
// and Haversine distance lower-bounds any realizable path.
func (r *runner) heuristic(n string) float64 {
	nCoord, _ := r.g.Coordinate(n)
	goalCoord, _ := r.g.Coordinate(r.req.GoalNode)
	return geo.Distance(nCoord, goalCoord, r.params.EarthRadiusMeters) / r.req.Speed
}

func (r *runner) reconstruct() Path {
	var keys []string
	for k := r.req.GoalNode; ; {
		keys = append(keys, k)
		if k == r.req.StartNode {
			break
		}
		k = r.parent[k]
	}

	nodes := make([]TimedNode, len(keys))
	for i := range keys {
		key := keys[len(keys)-1-i]
		coord, _ := r.g.Coordinate(key)
		nodes[i] = TimedNode{NodeKey: key, Coordinate: coord, TAbs: r.tAbs[key]}
	}

	total := 0.0
	if len(nodes) > 0 {
		total = nodes[len(nodes)-1].TAbs - nodes[0].TAbs
	}

	return Path{Nodes: nodes, TotalTimeSeconds: total}
}
