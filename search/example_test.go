package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS runs a breadth-first search across an open 3×3 grid and
// drains the stream straight to the answer.
func ExampleBFS() {
	g, _ := grid.New(3, 3)

	stream, _ := search.BFS(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 2})
	path, found := stream.Drain()

	fmt.Println(found)
	fmt.Println(path)
	// Output:
	// true
	// [{0 0} {1 0} {2 0} {2 1} {2 2}]
}

// ExampleStream_Next consumes a run event by event, the way an animated
// frontend would, instead of draining it.
func ExampleStream_Next() {
	g, _ := grid.New(2, 2)

	stream, _ := search.BFS(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 1, Y: 1})
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		if ev.Kind == search.Found {
			fmt.Printf("%s %v\n", ev.Kind, ev.Path)

			continue
		}
		fmt.Printf("%s (%d,%d)\n", ev.Kind, ev.Cell.X, ev.Cell.Y)
	}
	// Output:
	// exploring (0,0)
	// visited (0,0)
	// exploring (1,0)
	// visited (1,0)
	// exploring (0,1)
	// visited (0,1)
	// exploring (1,1)
	// found [{0 0} {1 0} {1 1}]
}

// ExampleLookup dispatches a search by algorithm identifier, the way
// the HTTP API and the visualizer select what to run.
func ExampleLookup() {
	g, _ := grid.New(4, 1)

	alg, _ := search.Lookup("dijkstra")
	stream, _ := alg.Search(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 0})
	path, found := stream.Drain()

	fmt.Println(alg.Name)
	fmt.Println(found, path.Moves())
	// Output:
	// Dijkstra's Algorithm
	// true 3
}
