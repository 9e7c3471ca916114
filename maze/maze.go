package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = errors.New("maze: width and height must be positive")
	// ErrDensity indicates a density outside [0, 1].
	ErrDensity = errors.New("maze: density must be within [0, 1]")
	// ErrWallParams indicates a non-positive wall length or a negative
	// wall count.
	ErrWallParams = errors.New("maze: wall length must be positive and wall count non-negative")
	// ErrGridTooSmall indicates a grid too small for the requested layout.
	ErrGridTooSmall = errors.New("maze: grid too small for layout")
)

// Room dimension bounds, matching the original generator.
const (
	minRoomSpan = 8
	maxRoomSpan = 15
)

// RandomWalls scatters obstacle cells uniformly until roughly
// density × width × height cells are walls. A 3×3 clearing around start
// and end stays open. Placement retries are bounded, so very dense
// requests on small grids may come up short rather than spin.
func RandomWalls(width, height int, density float64, start, end grid.Coordinate, rng *rand.Rand) ([]grid.Coordinate, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrDensity, density)
	}
	protected := clearing(width, height, 1, start, end)
	target := int(float64(width*height) * density)

	walls := make(map[grid.Coordinate]struct{}, target)
	for attempts := 0; len(walls) < target && attempts < target*3; attempts++ {
		c := grid.Coordinate{X: rng.Intn(width), Y: rng.Intn(height)}
		if _, skip := protected[c]; skip {
			continue
		}
		walls[c] = struct{}{}
	}

	return collect(walls), nil
}

// WallSegments lays down numWalls straight runs of wallLength cells,
// each randomly horizontal or vertical, clipped to the grid. A 5×5
// clearing around start and end stays open.
func WallSegments(width, height, wallLength, numWalls int, start, end grid.Coordinate, rng *rand.Rand) ([]grid.Coordinate, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	if wallLength <= 0 || numWalls < 0 {
		return nil, fmt.Errorf("%w: wallLength=%d numWalls=%d", ErrWallParams, wallLength, numWalls)
	}
	protected := clearing(width, height, 2, start, end)

	walls := make(map[grid.Coordinate]struct{})
	for i := 0; i < numWalls; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		horizontal := rng.Float64() < 0.5
		for j := 0; j < wallLength; j++ {
			c := grid.Coordinate{X: x, Y: y}
			if horizontal {
				c.X = x + j
			} else {
				c.Y = y + j
			}
			if c.X >= width || c.Y >= height {
				break
			}
			if _, skip := protected[c]; skip {
				continue
			}
			walls[c] = struct{}{}
		}
	}

	return collect(walls), nil
}

// Rooms builds numRooms rectangular rooms of random size (8–15 cells per
// side) with 2–3 openings punched into each room's walls, then clears
// the start and end cells themselves.
// Returns ErrGridTooSmall when the grid cannot hold even the smallest room.
func Rooms(width, height, numRooms int, start, end grid.Coordinate, rng *rand.Rand) ([]grid.Coordinate, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	if width < minRoomSpan || height < minRoomSpan {
		return nil, fmt.Errorf("%w: %dx%d cannot hold a %d-cell room", ErrGridTooSmall, width, height, minRoomSpan)
	}

	walls := make(map[grid.Coordinate]struct{})
	for i := 0; i < numRooms; i++ {
		rw := roomSpan(rng, width)
		rh := roomSpan(rng, height)
		rx := rng.Intn(width - rw + 1)
		ry := rng.Intn(height - rh + 1)

		for x := rx; x < rx+rw; x++ {
			walls[grid.Coordinate{X: x, Y: ry}] = struct{}{}
			walls[grid.Coordinate{X: x, Y: ry + rh - 1}] = struct{}{}
		}
		for y := ry; y < ry+rh; y++ {
			walls[grid.Coordinate{X: rx, Y: y}] = struct{}{}
			walls[grid.Coordinate{X: rx + rw - 1, Y: y}] = struct{}{}
		}

		openings := 2 + rng.Intn(2)
		for j := 0; j < openings; j++ {
			switch rng.Intn(4) {
			case 0: // top
				delete(walls, grid.Coordinate{X: rx + 1 + rng.Intn(rw-2), Y: ry})
			case 1: // bottom
				delete(walls, grid.Coordinate{X: rx + 1 + rng.Intn(rw-2), Y: ry + rh - 1})
			case 2: // left
				delete(walls, grid.Coordinate{X: rx, Y: ry + 1 + rng.Intn(rh-2)})
			default: // right
				delete(walls, grid.Coordinate{X: rx + rw - 1, Y: ry + 1 + rng.Intn(rh-2)})
			}
		}
	}
	delete(walls, start)
	delete(walls, end)

	return collect(walls), nil
}

// roomSpan draws a room side length within [minRoomSpan, maxRoomSpan],
// clipped to the available extent.
func roomSpan(rng *rand.Rand, extent int) int {
	max := maxRoomSpan
	if max > extent {
		max = extent
	}

	return minRoomSpan + rng.Intn(max-minRoomSpan+1)
}

// clearing returns the cells within radius of start and end, clipped to
// the grid. Those cells never become walls.
func clearing(width, height, radius int, start, end grid.Coordinate) map[grid.Coordinate]struct{} {
	protected := make(map[grid.Coordinate]struct{})
	for _, center := range []grid.Coordinate{start, end} {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				c := grid.Coordinate{X: center.X + dx, Y: center.Y + dy}
				if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
					protected[c] = struct{}{}
				}
			}
		}
	}

	return protected
}

// collect flattens a wall set into a row-major sorted slice for
// grid.WithObstacles. Sorting keeps generator output a pure function of
// its inputs and seed; map iteration order would not be.
func collect(walls map[grid.Coordinate]struct{}) []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(walls))
	for c := range walls {
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
