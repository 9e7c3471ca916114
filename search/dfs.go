package search

import "github.com/katalvlaran/gridpath/grid"

// DFS explores as deep as possible before backtracking, using a LIFO
// stack with the same insertion-time visited discipline as BFS.
// Neighbors are pushed in reversed enumeration order so that, once
// popped, expansion follows the natural Right/Down/Left/Up preference.
//
// DFS offers no optimality guarantee; the found path is simply the
// first complete branch that reaches the goal.
func DFS(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	w := newWalker(g, start, end)
	w.front = newLIFO()
	w.reverse = true
	w.seed()

	return newStream(w.step), nil
}
