// Package maze generates obstacle layouts for pathfinding scenarios.
//
// What
//
//   - RandomWalls: uniform random fill at a given density.
//   - WallSegments: straight horizontal/vertical wall runs.
//   - Rooms: rectangular rooms with random openings in their walls.
//
// All generators keep a protected clearing around the start and end
// cells so a scenario never begins inside a wall, take an explicit
// *rand.Rand for reproducibility, and return coordinates ready to feed
// grid.WithObstacles.
package maze
