package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// TestNew_Errors verifies that invalid dimensions and out-of-bounds
// obstacles are rejected.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		cells  []grid.Coordinate
		sentry error
	}{
		{"ZeroWidth", 0, 5, nil, grid.ErrDimensions},
		{"ZeroHeight", 5, 0, nil, grid.ErrDimensions},
		{"NegativeWidth", -3, 5, nil, grid.ErrDimensions},
		{"ObstacleOutside", 3, 3, []grid.Coordinate{{X: 3, Y: 0}}, grid.ErrObstacleOutOfBounds},
		{"ObstacleNegative", 3, 3, []grid.Coordinate{{X: 0, Y: -1}}, grid.ErrObstacleOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, grid.WithObstacles(tc.cells...))
			if !errors.Is(err, tc.sentry) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.sentry)
			}
		})
	}
}

// TestInBoundsTraversable checks membership predicates on a 3×2 grid
// with one obstacle.
func TestInBoundsTraversable(t *testing.T) {
	g, err := grid.New(3, 2, grid.WithObstacles(grid.Coordinate{X: 1, Y: 0}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for _, c := range []grid.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v) = false; want true", c)
		}
	}
	for _, c := range []grid.Coordinate{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -1}} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v) = true; want false", c)
		}
	}

	wall := grid.Coordinate{X: 1, Y: 0}
	if !g.Blocked(wall) {
		t.Errorf("Blocked(%v) = false; want true", wall)
	}
	if g.Traversable(wall) {
		t.Errorf("Traversable(%v) = true; want false", wall)
	}
	if g.Traversable(grid.Coordinate{X: 3, Y: 0}) {
		t.Error("Traversable(out of bounds) = true; want false")
	}
	if !g.Traversable(grid.Coordinate{X: 0, Y: 0}) {
		t.Error("Traversable(open cell) = false; want true")
	}
}

// TestNeighbors_OrderAndClipping verifies the fixed Right/Down/Left/Up
// enumeration and boundary clipping, and that obstacles are NOT filtered.
func TestNeighbors_OrderAndClipping(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithObstacles(grid.Coordinate{X: 2, Y: 1}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	cases := []struct {
		name string
		at   grid.Coordinate
		want []grid.Coordinate
	}{
		{"Center", grid.Coordinate{X: 1, Y: 1},
			[]grid.Coordinate{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}}},
		{"TopLeftCorner", grid.Coordinate{X: 0, Y: 0},
			[]grid.Coordinate{{X: 1, Y: 0}, {X: 0, Y: 1}}},
		{"BottomRightCorner", grid.Coordinate{X: 2, Y: 2},
			[]grid.Coordinate{{X: 1, Y: 2}, {X: 2, Y: 1}}},
		{"RightEdge", grid.Coordinate{X: 2, Y: 1},
			[]grid.Coordinate{{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Neighbors(tc.at); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors(%v) = %v; want %v", tc.at, got, tc.want)
			}
		})
	}
}

// TestManhattanAdjacent exercises the distance and adjacency helpers.
func TestManhattanAdjacent(t *testing.T) {
	a := grid.Coordinate{X: 1, Y: 2}
	b := grid.Coordinate{X: 4, Y: 0}
	if d := a.Manhattan(b); d != 5 {
		t.Errorf("Manhattan = %d; want 5", d)
	}
	if d := b.Manhattan(a); d != 5 {
		t.Errorf("Manhattan not symmetric: %d", d)
	}
	if d := a.Manhattan(a); d != 0 {
		t.Errorf("Manhattan(self) = %d; want 0", d)
	}

	if !a.Adjacent(grid.Coordinate{X: 0, Y: 2}) {
		t.Error("Adjacent(left neighbor) = false")
	}
	if a.Adjacent(grid.Coordinate{X: 2, Y: 3}) {
		t.Error("Adjacent(diagonal) = true; diagonals are not adjacent")
	}
	if a.Adjacent(a) {
		t.Error("Adjacent(self) = true")
	}
}

// TestObstacles_SortedCopy verifies the accessor returns a row-major
// sorted copy.
func TestObstacles_SortedCopy(t *testing.T) {
	cells := []grid.Coordinate{{X: 2, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	g, err := grid.New(4, 4, grid.WithObstacles(cells...))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []grid.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}
	got := g.Obstacles()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Obstacles() = %v; want %v", got, want)
	}
	if g.ObstacleCount() != 3 {
		t.Errorf("ObstacleCount() = %d; want 3", g.ObstacleCount())
	}

	// mutating the copy must not affect the grid
	got[0] = grid.Coordinate{X: 3, Y: 3}
	if g.Blocked(grid.Coordinate{X: 3, Y: 3}) {
		t.Error("mutating the Obstacles() copy leaked into the grid")
	}
}

// TestDirections pins the enumeration order all traversals rely on.
func TestDirections(t *testing.T) {
	want := [4]grid.Coordinate{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	if got := grid.Directions(); got != want {
		t.Errorf("Directions() = %v; want %v", got, want)
	}
}
