// Package gridpath is a grid pathfinding engine with watchable
// searches: every algorithm reports its progress as a pull-driven
// stream of events, so a frontend can animate the exploration frontier
// cell by cell instead of receiving a finished path.
//
// 🚀 What is gridpath?
//
//	A small, focused engine that brings together:
//		• Grid primitives: bounded 4-connected grids with obstacle sets
//		• Uninformed search: BFS, DFS, bidirectional BFS
//		• Informed search: Dijkstra, A*, greedy best-first
//		• Exotics: fixed-stride jump point search, biased random walk
//		• Maze generators: random walls, wall segments, rectangular rooms
//
// ✨ Why choose gridpath?
//
//   - Watchable – every run is a Stream of exploring/visited/found events
//   - Cooperative – no goroutines in the engine; stop pulling to cancel
//   - Deterministic – fixed neighbor order, injectable random sources
//   - Drivable – ships a terminal visualizer and an HTTP/SSE server
//
// Everything is organized under a handful of subpackages:
//
//	grid/   — Coordinate, Grid, bounds/obstacle predicates, neighbor order
//	search/ — the eight algorithms, the Stream event protocol, the registry
//	maze/   — obstacle layout generators for fresh scenarios
//	cmd/    — the gridpath binary: terminal visualizer or -serve HTTP mode
//
// Quick ASCII example:
//
//	S ░ · · ·       S = start, E = end, ░ = wall
//	· ░ · ░ ·
//	· · · ░ E       BFS explores outward from S in waves and
//	                reports the first route that reaches E.
//
// Dive into the search package docs for the event grammar and into
// cmd/gridpath for the visualizer keybindings.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
