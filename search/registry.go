package search

import "github.com/katalvlaran/gridpath/grid"

// SearchFunc is the uniform entry contract every algorithm satisfies.
type SearchFunc func(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (*Stream, error)

// Algorithm pairs a stable identifier and display name with a search
// entry point, so drivers can iterate the set without naming each one.
type Algorithm struct {
	// ID is the stable machine identifier (URL/config friendly).
	ID string
	// Name is the human-readable display name.
	Name string
	// Search runs the algorithm.
	Search SearchFunc
}

// algorithms is the canonical set, in presentation order.
var algorithms = []Algorithm{
	{ID: "bfs", Name: "BFS (Breadth-First Search)", Search: BFS},
	{ID: "dfs", Name: "DFS (Depth-First Search)", Search: DFS},
	{ID: "dijkstra", Name: "Dijkstra's Algorithm", Search: Dijkstra},
	{ID: "astar", Name: "A* (A-Star)", Search: AStar},
	{ID: "greedy", Name: "Greedy Best-First Search", Search: Greedy},
	{ID: "bidirectional", Name: "Bidirectional Search", Search: Bidirectional},
	{ID: "jps", Name: "Jump Point Search", Search: JumpPoint},
	{ID: "random", Name: "Random Walk (Drunkard)", Search: RandomWalk},
}

// All returns the eight algorithms in presentation order. The returned
// slice is a copy.
func All() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// Lookup resolves an algorithm by its ID.
// Returns ErrUnknownAlgorithm when the id is not registered.
func Lookup(id string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.ID == id {
			return a, nil
		}
	}

	return Algorithm{}, ErrUnknownAlgorithm
}
