package roadgraph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/corenav/fleetplan/geo"
)

// Graph is the core in-memory road-network graph: an undirected,
// weighted adjacency map from node key to {neighbor key: weight}.
//
// muNodes guards the coordinate map; muAdj guards the adjacency map.
// Both are RWMutex, matching core.Graph's per-concern locking split —
// the planner itself is single-threaded per spec.md §5, but Graph is a
// standalone type and is kept safe for concurrent read access regardless
// (e.g. inspecting a completed plan's working graph from another
// goroutine while the orchestrator has moved on).
type Graph struct {
	muNodes sync.RWMutex
	muAdj   sync.RWMutex

	nodes map[string]geo.Coordinate
	adj   map[string]map[string]float64
}

// NewGraph returns an empty Graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]geo.Coordinate),
		adj:   make(map[string]map[string]float64),
	}
}

// AddNode registers key with coordinate c if not already present. If key
// already exists, AddNode is a no-op (the existing coordinate is kept).
//
// Complexity: O(1).
func (g *Graph) AddNode(key string, c geo.Coordinate) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, ok := g.nodes[key]; ok {
		return
	}
	g.nodes[key] = c

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, ok := g.adj[key]; !ok {
		g.adj[key] = make(map[string]float64)
	}
}

// HasNode reports whether key is present in the graph.
//
// Complexity: O(1).
func (g *Graph) HasNode(key string) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	_, ok := g.nodes[key]

	return ok
}

// Coordinate returns the coordinate registered for key.
//
// Complexity: O(1).
func (g *Graph) Coordinate(key string) (geo.Coordinate, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	c, ok := g.nodes[key]

	return c, ok
}

// NodeCount returns the number of nodes in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// NodeKeys returns all node keys, sorted ascending for deterministic
// iteration by callers (the projector relies on this for reproducible
// tie-breaking).
//
// Complexity: O(V log V).
func (g *Graph) NodeKeys() []string {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	keys := make([]string, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// AddEdge adds an undirected edge between u and v with the given weight,
// mirroring it in both adjacency entries. Both endpoints must already be
// registered via AddNode (the graph builder always adds nodes before
// edges while seeding). Calling AddEdge twice for the same pair simply
// overwrites the weight — this is deliberate: a polyline that revisits
// the same pair of vertices (e.g. two road features sharing a segment)
// should not be treated as an error, and the adjacency map naturally
// dedupes on the second write.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, u)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, v)
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// RemoveEdge deletes the edge between u and v, in both directions. It is
// a no-op (not an error) if the edge is already absent, matching the
// "delete-then-insert" splice pattern SplitEdge uses: callers of
// RemoveEdge in this package always already hold a HasEdge check.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if neighbors, ok := g.adj[u]; ok {
		delete(neighbors, v)
	}
	if neighbors, ok := g.adj[v]; ok {
		delete(neighbors, u)
	}
}

// HasEdge reports whether an edge exists between u and v.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	neighbors, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = neighbors[v]

	return ok
}

// Weight returns the weight of the edge between u and v.
//
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	neighbors, ok := g.adj[u]
	if !ok {
		return 0, false
	}
	w, ok := neighbors[v]

	return w, ok
}

// Neighbors returns a snapshot of u's {neighbor: weight} adjacency.
// Mutating the returned map does not affect the graph.
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u string) map[string]float64 {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	src := g.adj[u]
	out := make(map[string]float64, len(src))
	for k, w := range src {
		out[k] = w
	}

	return out
}

// EdgeCount returns the number of undirected edges in the graph.
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	total := 0
	for _, neighbors := range g.adj {
		total += len(neighbors)
	}

	return total / 2
}
