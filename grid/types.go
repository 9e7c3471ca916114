// Package grid defines core types, options, and sentinel errors for the
// grid subpackage of github.com/katalvlaran/gridpath.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = errors.New("grid: width and height must be positive")
	// ErrObstacleOutOfBounds indicates an obstacle cell outside the grid.
	ErrObstacleOutOfBounds = errors.New("grid: obstacle outside grid bounds")
)

// Coordinate identifies a single grid cell. It is a plain value type:
// two Coordinates are equal iff both components are equal, which makes
// it directly usable as a map key.
type Coordinate struct {
	X, Y int
}

// Manhattan returns the Manhattan distance |c.X−o.X| + |c.Y−o.Y|.
func (c Coordinate) Manhattan(o Coordinate) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Add returns the cell offset from c by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Adjacent reports whether c and o differ by exactly one unit in exactly
// one axis.
func (c Coordinate) Adjacent(o Coordinate) bool {
	return c.Manhattan(o) == 1
}

// Option configures Grid construction via functional arguments.
// Invalid options are surfaced as errors from New.
type Option func(*gridOptions)

// gridOptions accumulates construction parameters.
type gridOptions struct {
	obstacles []Coordinate
}

// WithObstacles marks the given cells as impassable. Cells may repeat;
// duplicates collapse into the set. Out-of-bounds cells cause New to
// fail with ErrObstacleOutOfBounds.
func WithObstacles(cells ...Coordinate) Option {
	return func(o *gridOptions) {
		o.obstacles = append(o.obstacles, cells...)
	}
}
