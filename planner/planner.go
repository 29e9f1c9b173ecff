package planner

import (
	"github.com/katalvlaran/gridnav/grid"
)

// Find computes the shortest path from start to goal on g using the
// configured strategy, applying any number of functional Options.
//
// The returned Path excludes start and includes goal. An empty Path with a
// nil error means start == goal, start or goal is not navigable, or the
// goal is unreachable — none of these is a fault.
//
// Returns ErrNilGrid for a nil grid and ErrUnknownStrategy for an
// undefined strategy.
//
// Every call recomputes from scratch; no search state survives between
// invocations. Complexity: O(W×H) for Unweighted,
// O(W×H log(W×H)) for Heuristic.
func Find(g *grid.Grid, start, goal grid.Cell, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Degenerate contract: nothing to walk.
	if start == goal {
		return Path{}, nil
	}
	// No path can originate from, or terminate on, a non-navigable cell.
	if !g.IsNavigable(start) || !g.IsNavigable(goal) {
		return Path{}, nil
	}

	switch o.Strategy {
	case Unweighted:
		return findUnweighted(g, start, goal, &o), nil
	case Heuristic:
		return findHeuristic(g, start, goal, &o), nil
	default:
		// WithStrategy validates, but Options can be built by hand.
		return nil, ErrUnknownStrategy
	}
}

// noParent marks a cell with no recorded predecessor.
const noParent int32 = -1

// reconstruct follows parent links from goal back to start, then reverses.
// parent holds row-major predecessor indices; start itself keeps noParent.
// The result excludes start and includes goal.
func reconstruct(parent []int32, width int, start, goal grid.Cell) Path {
	path := make(Path, 0, 16)
	for cur := goal; cur != start; {
		path = append(path, cur)
		p := parent[cur.Index(width)]
		cur = grid.Cell{X: int(p) % width, Y: int(p) / width}
	}
	// Reverse to get start → goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// newParentTable allocates a parent table with every slot at noParent.
func newParentTable(n int) []int32 {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = noParent
	}

	return parent
}
