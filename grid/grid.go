package grid

import (
	"fmt"
	"sort"
)

// directions lists the four cardinal offsets in the fixed enumeration
// order Right, Down, Left, Up. Every traversal in gridpath derives its
// neighbor order from this slice.
var directions = [4]Coordinate{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// Directions returns the four cardinal offsets in enumeration order
// Right, Down, Left, Up. The returned array is a copy.
func Directions() [4]Coordinate {
	return directions
}

// Grid is a rectangular field of width × height cells, some of which may
// be obstacles. A Grid is immutable after New returns, so it may be
// shared by any number of concurrent searches.
type Grid struct {
	width, height int
	obstacles     map[Coordinate]struct{}
}

// New constructs a Grid of the given dimensions.
// Returns ErrDimensions if width or height is not positive, and
// ErrObstacleOutOfBounds if any obstacle lies outside the grid.
// Complexity: O(#obstacles) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	var cfg gridOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[Coordinate]struct{}, len(cfg.obstacles)),
	}
	for _, c := range cfg.obstacles {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrObstacleOutOfBounds, c.X, c.Y, width, height)
		}
		g.obstacles[c] = struct{}{}
	}

	return g, nil
}

// Width returns the horizontal extent of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical extent of the grid.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether 0 ≤ c.X < width and 0 ≤ c.Y < height.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Blocked reports whether c belongs to the obstacle set. Out-of-bounds
// cells are not Blocked; callers check InBounds separately.
func (g *Grid) Blocked(c Coordinate) bool {
	_, ok := g.obstacles[c]

	return ok
}

// Traversable reports whether c is in-bounds and not an obstacle.
func (g *Grid) Traversable(c Coordinate) bool {
	return g.InBounds(c) && !g.Blocked(c)
}

// Neighbors returns the in-bounds 4-directional neighbors of c in the
// fixed order Right, Down, Left, Up. Obstacle cells are NOT filtered
// here: whether a blocked neighbor may be enqueued is the algorithm's
// decision, made at enqueue time.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range directions {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Obstacles returns a copy of the obstacle set, sorted row-major for
// deterministic iteration. Intended for display drivers.
func (g *Grid) Obstacles() []Coordinate {
	out := make([]Coordinate, 0, len(g.obstacles))
	for c := range g.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// ObstacleCount returns the number of obstacle cells.
func (g *Grid) ObstacleCount() int { return len(g.obstacles) }
