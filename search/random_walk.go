package search

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// RandomWalk wanders the grid at random until it stumbles onto the goal
// or exhausts its step budget. At each step it prefers, with probability
// 0.7, a uniformly random unvisited traversable neighbor (falling back
// to any traversable neighbor when all are visited); otherwise it picks
// uniformly among all traversable neighbors, visited included. A cell's
// parent is recorded only the first time it is reached, so the Found
// path is the predecessor chain, not the meandering trail itself.
//
// Termination is probabilistic, so the budget of 2 × width × height
// steps (override with WithMaxSteps) is a required safety bound: runs
// that exceed it end in NoPath. Inject a seeded source with WithRand for
// reproducible runs.
func RandomWalk(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(g, start, end); err != nil {
		return nil, err
	}
	budget := o.MaxSteps
	if budget == 0 {
		budget = 2 * g.Width() * g.Height()
	}
	w := &randomWalker{
		grid:    g,
		cur:     start,
		goal:    end,
		rng:     o.rng(),
		budget:  budget,
		visited: map[grid.Coordinate]bool{start: true},
		parent:  make(parentMap),
	}

	return newStream(w.step), nil
}

// unvisitedBias is the probability of preferring an unvisited neighbor.
const unvisitedBias = 0.7

// randomWalker holds the walk position and bookkeeping of one run.
type randomWalker struct {
	grid  *grid.Grid
	cur   grid.Coordinate
	goal  grid.Coordinate
	rng   *rand.Rand
	steps int

	budget  int
	visited map[grid.Coordinate]bool
	parent  parentMap
}

// step emits the events for the current position, then moves. A walker
// boxed in by obstacles cannot move and burns its budget in place.
func (w *randomWalker) step(emit func(Event)) bool {
	if w.steps >= w.budget {
		emit(Event{Kind: NoPath})

		return false
	}
	w.steps++

	emit(Event{Kind: Exploring, Cell: w.cur})
	if w.cur == w.goal {
		emit(Event{Kind: Found, Path: w.parent.pathTo(w.goal)})

		return false
	}
	emit(Event{Kind: Visited, Cell: w.cur})

	var open, unvisited []grid.Coordinate
	for _, nb := range w.grid.Neighbors(w.cur) {
		if w.grid.Blocked(nb) {
			continue
		}
		open = append(open, nb)
		if !w.visited[nb] {
			unvisited = append(unvisited, nb)
		}
	}
	if len(open) == 0 {
		return true
	}

	var next grid.Coordinate
	if len(unvisited) > 0 && w.rng.Float64() < unvisitedBias {
		next = unvisited[w.rng.Intn(len(unvisited))]
	} else {
		next = open[w.rng.Intn(len(open))]
	}
	if !w.visited[next] {
		w.visited[next] = true
		w.parent.set(next, w.cur)
	}
	w.cur = next

	return true
}
