package astar

// nodeItem is one open-set entry: a candidate node key with its
// priority f = g + h. Mirrors dijkstra's nodeItem, generalized from an
// integer distance to a float time-cost.
type nodeItem struct {
	key string
	f   float64
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, using the
// lazy-decrease-key pattern: a strictly better path to a node pushes a
// new entry rather than mutating the existing one; stale entries are
// skipped on pop via the runner's visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
