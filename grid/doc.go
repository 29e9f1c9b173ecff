// Package grid models a fixed-size occupancy grid of Free and Blocked
// cells, the ground truth every other gridnav package plans against.
//
// What:
//
//   - Grid wraps a rectangular width×height field of cell States.
//   - IsNavigable is the single validity predicate shared by both search
//     strategies: in bounds AND Free; out of bounds is simply false.
//   - ToggleObstacle flips one cell and is an involution.
//   - LoadSnapshot replaces the whole field atomically; Snapshot copies it out.
//
// Why:
//
//   - Warehouse / tile maps: obstacles appear and disappear at runtime.
//   - Planner inputs: both BFS and A* ask only IsNavigable and Neighbors.
//   - Persistence: Snapshot/LoadSnapshot are the seam the layout codec uses.
//
// Complexity:
//
//   - IsNavigable, ToggleObstacle, InBounds: O(1).
//   - LoadSnapshot, Snapshot, FromRows:      O(W×H).
//   - Neighbors:                             O(1) (at most four cells).
//
// Errors:
//
//   - ErrBadDimensions:     non-positive width or height at construction.
//   - ErrEmptyGrid:         input rows have no rows or no columns.
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrBadCellValue:      a cell value other than 0 (free) or 1 (blocked).
//   - ErrOutOfBounds:       toggle target outside grid extents; grid unchanged.
//   - ErrDimensionMismatch: snapshot dimensions differ; grid unchanged.
//
// Dimensions never change after construction. The grid is exclusively owned
// by one logical thread of control; see the session package for the
// concurrency contract.
package grid
