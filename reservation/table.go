package reservation

import "github.com/corenav/fleetplan/geo"

// Table is the space-time reservation index built up across one
// planAllVehicleRoutes invocation. It has exactly one writer (the
// fleet orchestrator, between astar.Search calls) and one reader per
// invocation (that same invocation's astar.Search, via the conflict
// estimator) — spec.md §5 states explicitly that no cross-invocation
// concurrency exists, so, unlike roadgraph.Graph, Table carries no
// mutex.
//
// Entries are appended, never removed or compacted: spec.md §4.4 calls
// this out directly ("No removal, no compaction... linear scan is
// acceptable because reservation counts per key remain small relative
// to node counts").
type Table struct {
	segments map[string][]SegmentOccupation
	nodes    map[string][]NodeOccupation
}

// NewTable returns an empty reservation table.
func NewTable() *Table {
	return &Table{
		segments: make(map[string][]SegmentOccupation),
		nodes:    make(map[string][]NodeOccupation),
	}
}

// ReserveSegment appends a segment occupation under the canonical
// undirected key of (from, to).
func (t *Table) ReserveSegment(vehicleID, from, to string, enterTime, exitTime float64) {
	key := geo.SegmentKey(from, to)
	t.segments[key] = append(t.segments[key], SegmentOccupation{
		VehicleID: vehicleID,
		From:      from,
		To:        to,
		EnterTime: enterTime,
		ExitTime:  exitTime,
	})
}

// ReserveNode appends a node occupation under nodeKey.
func (t *Table) ReserveNode(vehicleID, nodeKey string, entryTime, exitTime float64) {
	t.nodes[nodeKey] = append(t.nodes[nodeKey], NodeOccupation{
		VehicleID: vehicleID,
		NodeKey:   nodeKey,
		EntryTime: entryTime,
		ExitTime:  exitTime,
	})
}

// SegmentReservations returns every occupation recorded against the
// undirected edge (from, to), regardless of which direction they were
// reserved in.
func (t *Table) SegmentReservations(from, to string) []SegmentOccupation {
	return t.segments[geo.SegmentKey(from, to)]
}

// NodeReservations returns every occupation recorded against nodeKey.
func (t *Table) NodeReservations(nodeKey string) []NodeOccupation {
	return t.nodes[nodeKey]
}
