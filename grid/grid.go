package grid

// neighborOffsets is the fixed 4-connectivity expansion order:
// up, right, down, left. Both search strategies expand neighbors in this
// order, which pins down the parent a cell gets when several equal-length
// paths exist and makes results reproducible.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid owns occupancy state for a fixed width×height field.
// Dimensions are invariant after construction; only cell states mutate.
// Cells are stored row-major.
type Grid struct {
	width, height int
	cells         []State
}

// New constructs an all-Free Grid of the given dimensions.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice of
// 0 (free) / 1 (blocked) values. It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCellValue for any value other than 0 or 1.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]State, 0, w*h)
	for _, row := range rows {
		for _, v := range row {
			switch v {
			case 0:
				cells = append(cells, Free)
			case 1:
				cells = append(cells, Blocked)
			default:
				return nil, ErrBadCellValue
			}
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsNavigable reports whether c is within bounds AND Free.
// Out-of-bounds cells yield false, never an error — this is the single
// validity predicate both search strategies rely on.
// Complexity: O(1).
func (g *Grid) IsNavigable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Index(g.width)] == Free
}

// ToggleObstacle flips c between Free and Blocked.
// Returns ErrOutOfBounds for a cell outside the grid; the grid is
// unchanged. Two toggles restore the original state.
// Complexity: O(1).
func (g *Grid) ToggleObstacle(c Cell) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	i := c.Index(g.width)
	if g.cells[i] == Free {
		g.cells[i] = Blocked
	} else {
		g.cells[i] = Free
	}

	return nil
}

// LoadSnapshot replaces all cell states from a row-major matrix of the
// same width×height. The load is all-or-nothing: on ErrDimensionMismatch
// (wrong height, or any ragged or wrong-length row) the grid keeps its
// previous contents.
// Complexity: O(W×H).
func (g *Grid) LoadSnapshot(matrix [][]State) error {
	if len(matrix) != g.height {
		return ErrDimensionMismatch
	}
	for _, row := range matrix {
		if len(row) != g.width {
			return ErrDimensionMismatch
		}
	}
	// Validated in full; commit.
	for y, row := range matrix {
		copy(g.cells[y*g.width:(y+1)*g.width], row)
	}

	return nil
}

// Snapshot produces a row-major deep copy of current occupancy,
// suitable for persistence or rendering.
// Complexity: O(W×H).
func (g *Grid) Snapshot() [][]State {
	out := make([][]State, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = make([]State, g.width)
		copy(out[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return out
}

// Neighbors returns the in-bounds 4-neighbors of c in the fixed
// up, right, down, left order. Navigability filtering is left to the
// caller so planner hooks observe every candidate.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// CountBlocked returns the number of Blocked cells.
// Complexity: O(W×H).
func (g *Grid) CountBlocked() int {
	n := 0
	for _, s := range g.cells {
		if s == Blocked {
			n++
		}
	}

	return n
}
