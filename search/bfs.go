package search

import "github.com/katalvlaran/gridpath/grid"

// BFS explores the grid in level order from start, guaranteeing a
// shortest path in moves: every edge costs 1 and the FIFO frontier
// expands strictly by distance layer.
//
// Neighbors are marked visited at insertion time, so each cell enters
// the queue at most once. Terminal Found fires when the goal is
// dequeued; NoPath when the queue empties first.
//
// Complexity: O(W×H) time and memory.
func BFS(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	w := newWalker(g, start, end)
	w.front = newFIFO()
	w.seed()

	return newStream(w.step), nil
}
