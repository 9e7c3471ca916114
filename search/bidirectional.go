package search

import "github.com/katalvlaran/gridpath/grid"

// Bidirectional runs two BFS fronts, one from start and one from end,
// alternating one expansion per front per step within the same
// single-threaded pull sequence. Each front keeps its own queue, visited
// set, and parent map; the run terminates Found as soon as a cell popped
// by one front was already discovered by the other.
//
// The found path concatenates the forward walk start→meeting with the
// backward predecessor chain meeting→end. When start equals end the run
// is a single Found event with the one-cell path and no expansions.
func Bidirectional(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	if start == end {
		return terminalStream(Event{Kind: Found, Path: Path{start}}), nil
	}
	w := &biWalker{
		grid: g,
		fwd:  newBiSide(start),
		bwd:  newBiSide(end),
	}

	return newStream(w.step), nil
}

// biSide is one front of the bidirectional search.
type biSide struct {
	queue   []grid.Coordinate
	visited map[grid.Coordinate]bool
	parent  parentMap
}

func newBiSide(root grid.Coordinate) *biSide {
	return &biSide{
		queue:   []grid.Coordinate{root},
		visited: map[grid.Coordinate]bool{root: true},
		parent:  make(parentMap),
	}
}

// biWalker alternates the two fronts. "Simultaneous" is an illusion of
// alternation: both fronts live in one cooperative computation.
type biWalker struct {
	grid     *grid.Grid
	fwd, bwd *biSide
}

// step runs one forward expansion then one backward expansion, checking
// after each whether the fronts have met. Either queue emptying means no
// route exists.
func (w *biWalker) step(emit func(Event)) bool {
	if len(w.fwd.queue) == 0 || len(w.bwd.queue) == 0 {
		emit(Event{Kind: NoPath})

		return false
	}
	if w.substep(w.fwd, w.bwd, emit) {
		return false
	}
	if len(w.bwd.queue) > 0 && w.substep(w.bwd, w.fwd, emit) {
		return false
	}

	return true
}

// substep expands one cell of side, reporting true when the run ended.
func (w *biWalker) substep(side, other *biSide, emit func(Event)) bool {
	cur := side.queue[0]
	side.queue = side.queue[1:]

	emit(Event{Kind: Exploring, Cell: cur})
	if other.visited[cur] {
		emit(Event{Kind: Found, Path: w.join(cur)})

		return true
	}
	emit(Event{Kind: Visited, Cell: cur})

	for _, nb := range w.grid.Neighbors(cur) {
		if w.grid.Blocked(nb) || side.visited[nb] {
			continue
		}
		side.visited[nb] = true
		side.parent.set(nb, cur)
		side.queue = append(side.queue, nb)
	}

	return false
}

// join builds the full start→end path through the meeting cell: the
// forward parent chain yields start→meeting, then the backward chain is
// followed from the meeting cell's backward predecessor out to end.
func (w *biWalker) join(meeting grid.Coordinate) Path {
	path := w.fwd.parent.pathTo(meeting)
	for cur, ok := w.bwd.parent.get(meeting); ok; cur, ok = w.bwd.parent.get(cur) {
		path = append(path, cur)
	}

	return path
}
