// Package reservation holds the space-time occupation bookkeeping the
// fleet orchestrator builds up as it plans each vehicle in turn:
// segment occupations (which directed traversal of an undirected edge
// is reserved, and when) and node occupations (which intersection is
// held, and when). See spec.md §4.4.
package reservation

// SegmentOccupation records one vehicle's reserved traversal of an
// edge. The edge itself is identified by its canonical undirected key
// (geo.SegmentKey(From, To)); From/To additionally record the
// direction of travel, which the conflict estimator needs for
// head-on detection.
type SegmentOccupation struct {
	VehicleID string
	From, To  string
	EnterTime float64
	ExitTime  float64
}

// NodeOccupation records one vehicle's reserved hold on a node.
type NodeOccupation struct {
	VehicleID string
	NodeKey   string
	EntryTime float64
	ExitTime  float64
}
