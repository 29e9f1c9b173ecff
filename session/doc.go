// Package session orchestrates grid, planner and agent into one
// navigation state machine with a live replan policy.
//
// What:
//
//   - Session tracks the active destination, the selected strategy, and
//     the committed path (delegated to the agent).
//   - SetDestination plans from the agent's current logical cell; a
//     non-navigable request is silently ignored.
//   - ToggleObstacle and SwitchAlgorithm replan immediately from wherever
//     the agent currently stands — never from the original start.
//   - Tick advances the agent one step and promotes Committed → Arrived
//     when the destination cell is reached.
//   - Snapshots (grid, position, path, state) are the only surface a
//     presentation layer reads; it never reaches into internals.
//
// States:
//
//   - StateIdle:      no destination.
//   - StateCommitted: destination set; the path may be empty (Stuck) or
//     in progress.
//   - StateArrived:   the agent's logical cell equals the destination
//     while it remains set.
//
// An unreachable destination stays Committed with an empty path (Stuck
// reports true); a destination equal to the agent's current cell goes
// straight to Arrived. This disambiguates the two empty-path cases the
// planner contract deliberately leaves merged.
//
// Every replan is a full recomputation; no search state is reused. Given
// the bounded grid this keeps the policy stateless and trivially correct.
//
// Concurrency: single-threaded by contract. Grid mutation, replanning and
// one agent tick happen atomically within a simulation step; a concurrent
// caller must serialize access externally, because grid writes and
// planner reads are not designed to interleave.
//
// Errors:
//
//   - ErrNilGrid:   nil grid at construction.
//   - ErrBadStart:  a start cell that is not navigable.
//   - ErrBadSpeed:  a non-positive speed option.
//   - ErrBadConfig: an invalid scenario config file.
package session
