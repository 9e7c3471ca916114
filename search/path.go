package search

import "github.com/katalvlaran/gridpath/grid"

// Path is an ordered walk of cells: first element is the search's start,
// last is its end, and each consecutive pair is 4-directionally adjacent.
type Path []grid.Coordinate

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p) }

// Moves returns the edge count of the path (len−1, 0 for empty paths).
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// parentMap records, per discovered cell, the cell that first (or, for
// cost-relaxing algorithms, best) discovered it. It is the sole owner of
// predecessor information for one run; the root has no entry.
type parentMap map[grid.Coordinate]grid.Coordinate

// set records parent as the predecessor of child, overwriting any
// earlier link. Cost-relaxing algorithms rely on the overwrite; all
// others call set at most once per child.
func (p parentMap) set(child, parent grid.Coordinate) {
	p[child] = parent
}

// get returns the recorded predecessor of c, if any.
func (p parentMap) get(c grid.Coordinate) (grid.Coordinate, bool) {
	parent, ok := p[c]

	return parent, ok
}

// pathTo walks the predecessor chain from goal back to the root and
// returns the chain in forward order. The root is the unique cell with
// no entry, so a goal with an empty chain yields the single-cell path.
func (p parentMap) pathTo(goal grid.Coordinate) Path {
	path := Path{goal}
	for cur := goal; ; {
		prev, ok := p[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse in place to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
