package systems

import (
	"container/heap"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// openItem is one frontier node of the A* search.
type openItem struct {
	Pos   domain.GridPos
	G     int // steps from start
	F     int // G + heuristic
	Seq   int // insertion order, breaks ties on F
	Index int // heap index, needed by Update
}

// openSet implements heap.Interface as a min-heap on (F, Seq).
type openSet []*openItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	// first found wins
	return pq[i].Seq < pq[j].Seq
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *openSet) Push(x interface{}) {
	n := len(*pq)
	item := x.(*openItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}

// Update lowers the cost of a node that is already queued.
func (pq *openSet) Update(item *openItem, g, f int) {
	item.G = g
	item.F = f
	heap.Fix(pq, item.Index)
}
