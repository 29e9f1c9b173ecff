// Package planner computes shortest paths on an occupancy grid through one
// contract and two interchangeable strategies: unweighted breadth-first
// search and Manhattan-guided A*.
//
// What:
//
//   - Find(g, start, goal, opts…) returns the remaining waypoints from
//     (excluding) start to (including) goal.
//   - Unweighted explores in FIFO layers; cells are marked visited when
//     enqueued, so each cell enters the frontier at most once.
//   - Heuristic orders a min-heap frontier by f = g + Manhattan(goal) with
//     lazy decrease-key: improvements push fresh entries, stale entries are
//     skipped on pop, a cell is closed only when popped.
//   - Both strategies expand neighbors in the fixed up, right, down, left
//     order; A* breaks f ties by g ascending, then row-major index
//     ascending. Results are identical on every run.
//
// Why:
//
//   - Interchangeability: a session can switch strategies mid-transit and
//     the path lengths agree for every reachable pair.
//   - Reproducibility: deterministic parent assignment and tie-breaking
//     make paths byte-comparable across runs and implementations.
//
// Contract (shared by both strategies):
//
//   - start == goal            → empty path, nil error.
//   - start or goal not navigable → empty path, nil error.
//   - goal unreachable         → empty path, nil error. Unreachable is
//     "stand still", never a fault.
//
// Complexity:
//
//   - Unweighted: O(W×H) time, O(W×H) memory.
//   - Heuristic:  O(W×H log(W×H)) time, O(W×H) memory.
//
// Errors:
//
//   - ErrNilGrid:         nil grid pointer.
//   - ErrUnknownStrategy: a Strategy value outside the defined set.
//
// Hooks (OnEnqueue, OnExpand) observe frontier traffic for instrumentation
// and tests; they must not mutate the grid.
package planner
