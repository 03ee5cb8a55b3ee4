// Package bfs implements the queue-based traversal behind Run, Distances
// and Connected.
package bfs

// NeighborFunc supplies the adjacency of a node. A nil function is treated
// as a graph with no edges.
type NeighborFunc[N comparable] func(N) []N

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node to its distance (in hops) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable traversal state.
type walker[N comparable] struct {
	neighbors NeighborFunc[N]
	queue     []queueItem[N]
	res       *Result[N]
}

// Run performs breadth-first search from start over the graph induced by
// the neighbor function. The start node is always part of the Result with
// depth 0.
func Run[N comparable](start N, neighbors NeighborFunc[N]) *Result[N] {
	w := &walker[N]{
		neighbors: neighbors,
		res: &Result[N]{
			Order:  []N{},
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}
	w.enqueue(start, 0)
	w.loop()
	return w.res
}

// enqueue marks node seen at depth d and adds it to the queue.
func (w *walker[N]) enqueue(node N, d int) {
	w.res.Depth[node] = d
	w.queue = append(w.queue, queueItem[N]{node: node, depth: d})
}

// loop processes the queue until empty.
func (w *walker[N]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if w.neighbors == nil {
			continue
		}
		for _, nbr := range w.neighbors(item.node) {
			// first time seen?
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Parent[nbr] = item.node
			w.enqueue(nbr, item.depth+1)
		}
	}
}

// PathTo reconstructs the forward-ordered path from the traversal's start
// to dest by walking Parent links. ok is false when dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, bool) {
	if _, reached := r.Depth[dest]; !reached {
		return nil, false
	}
	// build reversed path, then flip it
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Distances returns the hop count from start for every reachable node.
func Distances[N comparable](start N, neighbors NeighborFunc[N]) map[N]int {
	return Run(start, neighbors).Depth
}

// Connected returns the set of nodes reachable from start, start included.
func Connected[N comparable](start N, neighbors NeighborFunc[N]) map[N]struct{} {
	depth := Run(start, neighbors).Depth
	out := make(map[N]struct{}, len(depth))
	for node := range depth {
		out[node] = struct{}{}
	}
	return out
}
