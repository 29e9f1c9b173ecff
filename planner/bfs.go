package planner

import (
	"github.com/katalvlaran/gridnav/grid"
)

// bfsWalker encapsulates mutable state for one unweighted search.
type bfsWalker struct {
	g       *grid.Grid
	opts    *Options
	queue   []grid.Cell
	visited []bool
	parent  []int32
}

// findUnweighted runs breadth-first search from start to goal.
//
// Invariants:
//   - A cell is marked visited at the moment it is enqueued, never when
//     dequeued, so each cell enters the queue at most once and total work
//     is bounded by O(W×H).
//   - Neighbors expand in the fixed up, right, down, left order, which
//     pins down parent assignment among equal-length paths.
//   - The search stops as soon as goal is dequeued; with unit edge costs
//     the first dequeue of any cell is at its minimum hop count.
//
// Returns the reconstructed path, or an empty Path when the frontier
// drains without reaching goal.
func findUnweighted(g *grid.Grid, start, goal grid.Cell, opts *Options) Path {
	n := g.Width() * g.Height()
	w := &bfsWalker{
		g:       g,
		opts:    opts,
		queue:   make([]grid.Cell, 0, n),
		visited: make([]bool, n),
		parent:  newParentTable(n),
	}

	// Seed the frontier with start (no parent).
	w.enqueue(start, noParent)

	for len(w.queue) > 0 {
		cur := w.dequeue()
		if cur == goal {
			return reconstruct(w.parent, g.Width(), start, goal)
		}
		w.enqueueNeighbors(cur)
	}

	// Frontier drained: goal unreachable.
	return Path{}
}

// enqueue marks c visited, records its parent, calls OnEnqueue, and adds
// it to the queue.
func (w *bfsWalker) enqueue(c grid.Cell, parent int32) {
	i := c.Index(w.g.Width())
	w.visited[i] = true
	w.parent[i] = parent
	w.opts.OnEnqueue(c)
	w.queue = append(w.queue, c)
}

// dequeue pops the first cell, invokes OnExpand, and returns it.
func (w *bfsWalker) dequeue() grid.Cell {
	c := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnExpand(c)

	return c
}

// enqueueNeighbors adds each unseen navigable neighbor of cur in the
// fixed expansion order.
func (w *bfsWalker) enqueueNeighbors(cur grid.Cell) {
	curIdx := int32(cur.Index(w.g.Width()))
	for _, nbr := range w.g.Neighbors(cur) {
		if !w.g.IsNavigable(nbr) || w.visited[nbr.Index(w.g.Width())] {
			continue
		}
		w.enqueue(nbr, curIdx)
	}
}
