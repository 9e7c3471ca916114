// Package grid models a rectangular 2D grid with obstacle cells, the
// substrate every search algorithm in gridpath traverses.
//
// What
//
//   - Coordinate: an immutable (X, Y) value pair with value equality,
//     usable directly as a map key.
//   - Grid: positive width × height bounds plus a set of obstacle cells,
//     immutable once constructed.
//   - Neighbors: 4-directional adjacency in the fixed enumeration order
//     Right, Down, Left, Up.
//   - Manhattan: |ax−bx| + |ay−by|, the only distance function used by
//     the search package.
//
// Why
//
//   - Keep bounds and obstacle membership in one read-only structure so
//     concurrent searches over the same grid never need locking.
//   - Neighbors deliberately filters bounds only; obstacle filtering is
//     each algorithm's own enqueue-time decision.
//
// Determinism
//
//	Neighbors always enumerates offsets in the same order, so every
//	traversal built on it is reproducible.
package grid
