package pathfinding

import "container/heap"

// Frontier is a min-priority queue of nodes with lazy decrease-key: improving
// a node's priority pushes a new entry and the stale one is skipped by the
// caller when it surfaces. Equal priorities pop in insertion order.
type Frontier struct {
	pq  nodePQ
	seq uint64
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	return &Frontier{pq: make(nodePQ, 0, capacity)}
}

// Push enqueues node with the given priority.
func (f *Frontier) Push(node string, priority float64) {
	f.seq++
	heap.Push(&f.pq, &nodeItem{id: node, priority: priority, seq: f.seq})
}

// Pop removes the entry with the lowest priority. It panics on an empty frontier.
func (f *Frontier) Pop() (string, float64) {
	item := heap.Pop(&f.pq).(*nodeItem)

	return item.id, item.priority
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return f.pq.Len() }

type nodeItem struct {
	id       string
	priority float64
	seq      uint64 // insertion order, breaks ties
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
