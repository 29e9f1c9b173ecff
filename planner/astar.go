package planner

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridnav/grid"
)

// findHeuristic runs A* with the Manhattan heuristic from start to goal.
//
// Invariants:
//   - A cell is closed (finalized) only when popped with the lowest f,
//     never when merely pushed. Once closed it is never reconsidered.
//   - A neighbor is relaxed only on a strict g improvement; each
//     improvement pushes a fresh frontier entry ("lazy decrease-key"),
//     and stale entries for already-closed cells are skipped on pop.
//   - The Manhattan heuristic is consistent for unit-cost 4-connected
//     movement, so the first pop of any cell yields its optimal g.
//
// Returns the reconstructed path, or an empty Path when the frontier
// drains without reaching goal.
func findHeuristic(g *grid.Grid, start, goal grid.Cell, opts *Options) Path {
	n := g.Width() * g.Height()
	r := &astarRunner{
		g:      g,
		goal:   goal,
		opts:   opts,
		gScore: make([]int, n),
		closed: make([]bool, n),
		parent: newParentTable(n),
		pq:     make(frontier, 0, n),
	}
	r.init(start)

	if r.process() {
		return reconstruct(r.parent, g.Width(), start, goal)
	}

	return Path{}
}

// astarRunner holds the mutable state for a single A* execution.
type astarRunner struct {
	g      *grid.Grid
	goal   grid.Cell
	opts   *Options
	gScore []int    // row-major index → best known cost-from-start
	closed []bool   // row-major index → finalized
	parent []int32  // row-major index → predecessor index
	pq     frontier // min-heap under the deterministic comparator
}

// init sets every g-score to +∞, seeds start at g=0, and pushes it with
// f equal to its full heuristic.
func (r *astarRunner) init(start grid.Cell) {
	for i := range r.gScore {
		r.gScore[i] = math.MaxInt
	}
	si := start.Index(r.g.Width())
	r.gScore[si] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{
		cell: start,
		g:    0,
		f:    start.Manhattan(r.goal),
		idx:  si,
	})
	r.opts.OnEnqueue(start)
}

// process pops frontier entries in (f, g, index) order until the goal is
// closed or the frontier drains. Returns whether the goal was reached.
func (r *astarRunner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)

		// Skip stale entries for an already-finalized cell.
		if r.closed[item.idx] {
			continue
		}
		// First pop of a cell finalizes its optimal g.
		r.closed[item.idx] = true
		r.opts.OnExpand(item.cell)

		if item.cell == r.goal {
			return true
		}
		r.relax(item)
	}

	return false
}

// relax attempts to improve each open navigable neighbor of item by one
// unit step, pushing a fresh heap entry per strict improvement.
func (r *astarRunner) relax(item *frontierItem) {
	width := r.g.Width()
	for _, nbr := range r.g.Neighbors(item.cell) {
		ni := nbr.Index(width)
		if !r.g.IsNavigable(nbr) || r.closed[ni] {
			continue
		}
		candidate := item.g + 1
		if candidate >= r.gScore[ni] {
			continue
		}
		r.gScore[ni] = candidate
		r.parent[ni] = int32(item.idx)
		heap.Push(&r.pq, &frontierItem{
			cell: nbr,
			g:    candidate,
			f:    candidate + nbr.Manhattan(r.goal),
			idx:  ni,
		})
		r.opts.OnEnqueue(nbr)
	}
}

// frontierItem is one open-list entry: a cell with its cost-from-start g,
// priority f = g + h, and row-major index for the final tie-break.
type frontierItem struct {
	cell grid.Cell
	g    int
	f    int
	idx  int
}

// frontier is a min-heap of *frontierItem under the deterministic
// comparator: f ascending, then g ascending, then row-major index
// ascending. The explicit tie-break makes equal-cost results reproducible
// across runs and implementations.
type frontier []*frontierItem

// Len returns the number of open entries.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, then g, then row-major index.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the minimum entry.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
