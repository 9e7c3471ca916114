package search

import "github.com/katalvlaran/gridpath/grid"

// AStar runs A* with the Manhattan heuristic: the priority key is
// f = g + h, with ties broken by the smaller g so that among equal-f
// entries the one already closer to done is expanded first. Manhattan
// distance is admissible and consistent on a 4-connected unit grid, so
// the found path matches BFS/Dijkstra in length while expanding fewer
// cells.
//
// Structure is identical to Dijkstra otherwise: pop-time finalization,
// lazy decrease-key, strict cost-improvement relaxation.
func AStar(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	w := newWalker(g, start, end)
	w.front = newHeap()
	w.markOnPop = true
	w.keyFor = func(c grid.Coordinate, gc int) pkey {
		return pkey{primary: gc + c.Manhattan(end), secondary: gc}
	}
	w.relax = func(tentative, known int, seen bool) bool { return !seen || tentative < known }
	w.seed()

	return newStream(w.step), nil
}
