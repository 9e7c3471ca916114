package search

import "github.com/katalvlaran/gridpath/grid"

// Dijkstra expands cells in order of accumulated path cost g, via a
// min-heap with the lazy-decrease-key pattern: an improved cost pushes a
// duplicate entry and stale entries are skipped when popped. A cell is
// finalized (marked visited) at pop time; a neighbor is re-pushed only
// when its tentative cost strictly improves on the best recorded one.
//
// With unit edge costs the result coincides with BFS, but expansion is
// driven by the heap rather than a FIFO.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Dijkstra(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	w := newWalker(g, start, end)
	w.front = newHeap()
	w.markOnPop = true
	w.keyFor = func(_ grid.Coordinate, gc int) pkey { return pkey{primary: gc} }
	w.relax = func(tentative, known int, seen bool) bool { return !seen || tentative < known }
	w.seed()

	return newStream(w.step), nil
}
