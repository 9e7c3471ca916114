package search

import "github.com/katalvlaran/gridpath/grid"

// JumpPoint runs a sparse A* variant over the four cardinal directions:
// instead of adjacent cells, each expansion scores one jump point per
// direction, found by scanning up to JumpDistance cells (default 3) in a
// straight line. A jump is costed by the Manhattan distance actually
// covered, under the same f = g + h ordering as A*.
//
// The default scan stops before the first obstacle, so every cell along
// a jump is traversable and the emitted, densified path is fully
// walkable. WithJumpThroughObstacles restores the original scan that
// advances the fixed distance regardless of obstacles on the line.
//
// With a fixed jump distance the algorithm is a visual approximation,
// not true JPS: it guarantees neither optimality nor, on adversarial
// grids, completeness.
func JumpPoint(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(g, start, end); err != nil {
		return nil, err
	}
	w := &jumpWalker{
		grid:    g,
		start:   start,
		goal:    end,
		dist:    o.JumpDistance,
		blind:   o.JumpThroughObstacles,
		front:   newHeap(),
		visited: make(map[grid.Coordinate]bool),
		parent:  make(parentMap),
		gScore:  map[grid.Coordinate]int{start: 0},
	}
	w.front.push(node{at: start}, pkey{primary: start.Manhattan(end)})

	return newStream(w.step), nil
}

// jumpWalker holds the state of one JumpPoint run.
type jumpWalker struct {
	grid        *grid.Grid
	start, goal grid.Coordinate
	dist        int
	blind       bool

	front   *heapFrontier
	visited map[grid.Coordinate]bool
	parent  parentMap
	gScore  map[grid.Coordinate]int
}

// step mirrors the A* pop discipline, but expands jump points.
func (w *jumpWalker) step(emit func(Event)) bool {
	var cur node
	for {
		if w.front.empty() {
			emit(Event{Kind: NoPath})

			return false
		}
		cur = w.front.pop()
		if w.visited[cur.at] {
			continue
		}
		w.visited[cur.at] = true

		break
	}

	emit(Event{Kind: Exploring, Cell: cur.at})
	if cur.at == w.goal {
		emit(Event{Kind: Found, Path: densify(w.parent.pathTo(w.goal))})

		return false
	}
	emit(Event{Kind: Visited, Cell: cur.at})

	for _, d := range grid.Directions() {
		jp, ok := w.jump(cur.at, d)
		if !ok || w.visited[jp] {
			continue
		}
		tentative := cur.g + cur.at.Manhattan(jp)
		known, seen := w.gScore[jp]
		if seen && tentative >= known {
			continue
		}
		w.gScore[jp] = tentative
		w.parent.set(jp, cur.at)
		w.front.push(
			node{at: jp, g: tentative},
			pkey{primary: tentative + jp.Manhattan(w.goal), secondary: tentative},
		)
	}

	return true
}

// jump scans from c in direction d, advancing up to w.dist cells. The
// scan ends early on reaching the goal or the grid boundary; unless the
// walker is blind it also stops before the first obstacle. The last
// cell reached is the jump point; ok is false when the scan could not
// advance at all.
func (w *jumpWalker) jump(c, d grid.Coordinate) (jp grid.Coordinate, ok bool) {
	jp = c
	for i := 0; i < w.dist; i++ {
		next := jp.Add(d)
		if !w.grid.InBounds(next) {
			break
		}
		if !w.blind && w.grid.Blocked(next) {
			break
		}
		jp = next
		if jp == w.goal {
			break
		}
	}

	return jp, jp != c
}

// densify converts a sparse jump-point chain into a full unit-step path
// by filling every cell along the straight line between consecutive
// jump points. Jumps are cardinal, so each segment is axis-aligned.
func densify(sparse Path) Path {
	if len(sparse) < 2 {
		return sparse
	}
	full := make(Path, 0, len(sparse))
	for i := 0; i < len(sparse)-1; i++ {
		cur, next := sparse[i], sparse[i+1]
		step := grid.Coordinate{X: sign(next.X - cur.X), Y: sign(next.Y - cur.Y)}
		for at := cur; at != next; at = at.Add(step) {
			full = append(full, at)
		}
	}

	return append(full, sparse[len(sparse)-1])
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
