package search

import "github.com/katalvlaran/gridpath/grid"

// walker is the traversal skeleton shared by BFS, DFS, Dijkstra, A*, and
// Greedy. The five differ only in frontier ordering, visited-set
// discipline, and cost bookkeeping, so those vary through fields while
// the pop/expand/push loop is written once.
//
// Visited-set discipline:
//
//   - markOnPop == false (BFS, DFS): a neighbor is marked visited when
//     it enters the frontier, so a cell is enqueued at most once.
//   - markOnPop == true (Dijkstra, A*, Greedy): a cell is finalized when
//     popped; stale duplicate entries (lazy decrease-key) are skipped.
type walker struct {
	grid  *grid.Grid
	start grid.Coordinate
	goal  grid.Coordinate

	front   frontier
	visited map[grid.Coordinate]bool
	parent  parentMap
	gScore  map[grid.Coordinate]int

	markOnPop bool
	// reverse pushes neighbors in reversed enumeration order so a LIFO
	// frontier pops them in the natural Right/Down/Left/Up preference.
	reverse bool
	// keyFor files a cell under its priority key. Unused by FIFO/LIFO.
	keyFor func(c grid.Coordinate, g int) pkey
	// relax decides whether a tentative cost admits a cell into a
	// priority frontier. Unused when markOnPop is false.
	relax func(tentative, known int, seen bool) bool
}

// newWalker prepares the shared state of one run.
func newWalker(g *grid.Grid, start, goal grid.Coordinate) *walker {
	return &walker{
		grid:    g,
		start:   start,
		goal:    goal,
		visited: make(map[grid.Coordinate]bool),
		parent:  make(parentMap),
		gScore:  make(map[grid.Coordinate]int),
	}
}

// seed inserts the start cell according to the visited discipline.
func (w *walker) seed() {
	if w.markOnPop {
		w.gScore[w.start] = 0
		w.front.push(node{at: w.start}, w.key(w.start, 0))

		return
	}
	w.visited[w.start] = true
	w.front.push(node{at: w.start}, pkey{})
}

// key guards against frontiers that never consult priorities.
func (w *walker) key(c grid.Coordinate, g int) pkey {
	if w.keyFor == nil {
		return pkey{}
	}

	return w.keyFor(c, g)
}

// step performs one pop/expand cycle: emits Exploring for the popped
// cell, then either the terminal Found, or Visited followed by neighbor
// expansion. Returns false once a terminal event was emitted.
func (w *walker) step(emit func(Event)) bool {
	var cur node
	for {
		if w.front.empty() {
			emit(Event{Kind: NoPath})

			return false
		}
		cur = w.front.pop()
		if !w.markOnPop {
			break
		}
		if w.visited[cur.at] {
			continue // stale lazy-decrease-key entry
		}
		w.visited[cur.at] = true

		break
	}

	emit(Event{Kind: Exploring, Cell: cur.at})
	if cur.at == w.goal {
		emit(Event{Kind: Found, Path: w.parent.pathTo(w.goal)})

		return false
	}
	emit(Event{Kind: Visited, Cell: cur.at})
	w.expand(cur)

	return true
}

// expand enqueues admissible neighbors of cur. Obstacle filtering
// happens here, at enqueue time, per the grid contract.
func (w *walker) expand(cur node) {
	nbs := w.grid.Neighbors(cur.at)
	if w.reverse {
		for i, j := 0, len(nbs)-1; i < j; i, j = i+1, j-1 {
			nbs[i], nbs[j] = nbs[j], nbs[i]
		}
	}
	for _, nb := range nbs {
		if w.grid.Blocked(nb) {
			continue
		}
		if w.visited[nb] {
			continue
		}
		if !w.markOnPop {
			// insertion-time marking: first discovery wins
			w.visited[nb] = true
			w.parent.set(nb, cur.at)
			w.front.push(node{at: nb, g: cur.g + 1}, pkey{})

			continue
		}
		tentative := cur.g + 1
		known, seen := w.gScore[nb]
		if !w.relax(tentative, known, seen) {
			continue
		}
		w.gScore[nb] = tentative
		w.parent.set(nb, cur.at)
		w.front.push(node{at: nb, g: tentative}, w.key(nb, tentative))
	}
}
