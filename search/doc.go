// Package search implements eight grid pathfinding algorithms behind one
// uniform, pull-driven entry contract.
//
// What
//
//   - A SearchFunc signature shared by every algorithm:
//     BFS, DFS, Dijkstra, AStar, Greedy, Bidirectional, JumpPoint,
//     RandomWalk — all take (grid, start, end, options) and return a
//     *Stream of events.
//   - A four-variant Event protocol: Exploring and Visited progress
//     events, then exactly one terminal Found (with the full path) or
//     NoPath.
//   - A registry (All, Lookup) so display drivers can iterate the
//     algorithm set without knowing individual entry points.
//
// Why
//
//   - Visualization consumers need the traversal itself, not only the
//     answer: each pop/expand cycle surfaces as discrete events that a
//     display driver paints at its own pace.
//   - One shared traversal skeleton, parameterized by frontier ordering
//     and cost policy, keeps the five queue-driven algorithms from being
//     five copies of the same loop.
//
// Concurrency
//
//	A Stream is a single-threaded cooperative computation: all state is
//	inert between Next calls, nothing runs in the background, and
//	abandoning a Stream mid-run needs no teardown. Distinct Streams share
//	no mutable state, so independent searches never interfere.
//
// Errors
//
//	Malformed inputs (nil grid, out-of-bounds or blocked endpoints,
//	invalid options) are rejected synchronously by the constructor.
//	An exhausted search is not an error: it terminates with NoPath.
package search
