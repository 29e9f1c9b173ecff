// Package planner defines strategies, tunable options, and error
// definitions for shortest-path search over an occupancy grid.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for planner execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrUnknownStrategy is returned for a Strategy outside the defined set.
	ErrUnknownStrategy = errors.New("planner: unknown strategy")
)

// Strategy selects the search algorithm behind Find.
type Strategy uint8

const (
	// Unweighted is breadth-first search: optimal by hop count on the
	// unit-cost 4-connected grid.
	Unweighted Strategy = iota
	// Heuristic is A* with the Manhattan heuristic: same optimal lengths,
	// typically fewer expansions.
	Heuristic
)

// Valid reports whether s is a defined Strategy.
func (s Strategy) Valid() bool {
	return s == Unweighted || s == Heuristic
}

// String returns the human-facing algorithm name.
func (s Strategy) String() string {
	switch s {
	case Unweighted:
		return "BFS"
	case Heuristic:
		return "A*"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a human-facing algorithm name to its Strategy.
// Accepted (case-insensitive): "bfs", "unweighted", "astar", "a*",
// "heuristic". Returns ErrUnknownStrategy otherwise.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "bfs", "unweighted":
		return Unweighted, nil
	case "a*", "astar", "heuristic":
		return Heuristic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Path is the ordered sequence of cells to visit: it excludes the start
// cell and includes the goal cell. An empty Path means the goal equals the
// start or is unreachable; the session layer tells those apart.
type Path []grid.Cell

// Len returns the number of remaining waypoints.
func (p Path) Len() int { return len(p) }

// Clone returns a detached copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Option configures Find via functional arguments.
// An invalid Option (e.g. an undefined strategy) is recorded internally
// and surfaced as an error when Find is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Strategy selects the algorithm. Default: Unweighted.
	Strategy Strategy

	// OnEnqueue is called when a cell enters the frontier.
	OnEnqueue func(c grid.Cell)

	// OnExpand is called when a cell leaves the frontier and is expanded.
	// Under Heuristic this fires once per cell (stale entries are skipped).
	OnExpand func(c grid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Unweighted strategy
//   - no-op hooks
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Strategy:  Unweighted,
		OnEnqueue: func(grid.Cell) {},
		OnExpand:  func(grid.Cell) {},
		err:       nil,
	}
}

// WithStrategy selects the search algorithm.
// An undefined strategy is surfaced as ErrUnknownStrategy from Find.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.err = fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
			return
		}
		o.Strategy = s
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run when a cell is expanded.
func WithOnExpand(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
