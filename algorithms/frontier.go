// Package algorithms - frontier priority queue for Prim's algorithm.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// frontierItem is an unvisited cell adjacent to the visited region, keyed
// by a random weight drawn when the cell first entered the frontier.
type frontierItem struct {
	coords grid.Coordinates
	weight int
	index  int // insertion order; breaks weight ties deterministically
}

// frontierPQ is a binary min-heap of frontier cells ordered by weight.
// It implements heap.Interface; callers go through heap.Push/heap.Pop.
type frontierPQ []frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].index < pq[j].index
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; container/heap restores the heap property.
func (pq *frontierPQ) Push(x interface{}) {
	*pq = append(*pq, x.(frontierItem))
}

// Pop removes and returns the minimal element.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
