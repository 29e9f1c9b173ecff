// Package gridnav is a navigation core for a single mobile agent on a
// mutable occupancy grid — plan a route, walk it smoothly, replan the
// moment the world changes.
//
// 🚀 What is gridnav?
//
//	A small, synchronous, presentation-free library that brings together:
//		• Occupancy grid: bounded Free/Blocked cells, obstacle toggling, bulk load
//		• Path planning: unweighted BFS and Manhattan-guided A* behind one contract
//		• Motion model: continuous sub-cell movement with exact waypoint arrival
//		• Orchestration: destination tracking with replan-on-edit and replan-on-switch
//		• Persistence: plain-text layout codec with all-or-nothing validation
//
// ✨ Why choose gridnav?
//
//   - Deterministic – fixed expansion order and an explicit A* tie-break,
//     identical paths on every run
//   - Honest contracts – unreachable is an empty path, never an error;
//     every failure is a sentinel you can errors.Is against
//   - Rendering-agnostic – the core exposes snapshots and accepts commands;
//     it never calls into a presentation layer
//   - Extensible – planner hooks (OnEnqueue, OnExpand…) for instrumentation
//
// Under the hood, everything is organized per concern:
//
//	grid/    — occupancy state, validity predicate, toggles & snapshots
//	planner/ — the two interchangeable shortest-path strategies
//	agent/   — continuous motion along a discrete path
//	session/ — the state machine tying grid, planner and agent together
//	layout/  — the 0/1 matrix wire format, file I/O and hot-reload watcher
//
// Quick ASCII example:
//
//	    ·───·───■───·
//	    │ A │   ■   │
//	    ·───·───■───·
//
//	the agent A detours around the blocked column the tick it appears.
//
// Dive into README.md for full examples and the per-package doc.go files
// for contracts, complexity notes and error taxonomies.
//
//	go get github.com/katalvlaran/gridnav
package gridnav
