package search

import "github.com/katalvlaran/gridpath/grid"

// Greedy is best-first search keyed on the heuristic alone: h, the
// Manhattan distance to the goal. g is never tracked, so nothing
// compensates for the true cost of a detour and the algorithm can be
// misled around concave obstacles. No optimality guarantee.
//
// Pop/visited discipline matches Dijkstra, but without a
// cost-improvement check: the first push wins and a cell enters the
// frontier at most once.
func Greedy(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	w := newWalker(g, start, end)
	w.front = newHeap()
	w.markOnPop = true
	w.keyFor = func(c grid.Coordinate, _ int) pkey { return pkey{primary: c.Manhattan(end)} }
	w.relax = func(_, _ int, seen bool) bool { return !seen }
	w.seed()

	return newStream(w.step), nil
}
