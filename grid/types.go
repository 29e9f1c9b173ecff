// Package grid defines core types and sentinel errors
// for the occupancy grid of github.com/katalvlaran/gridnav.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrEmptyGrid indicates input rows have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadCellValue indicates a cell value other than 0 (free) or 1 (blocked).
	ErrBadCellValue = errors.New("grid: cell values must be 0 (free) or 1 (blocked)")

	// ErrOutOfBounds indicates a mutation target outside the grid extents.
	ErrOutOfBounds = errors.New("grid: cell outside grid extents")

	// ErrDimensionMismatch indicates snapshot data whose dimensions differ
	// from the grid's. The grid is left unchanged.
	ErrDimensionMismatch = errors.New("grid: snapshot dimensions do not match grid")
)

// State is the occupancy of a single cell.
type State uint8

const (
	// Free marks a traversable cell.
	Free State = iota
	// Blocked marks an obstacle cell.
	Blocked
)

// String renders the state as its wire-format digit: "0" or "1".
func (s State) String() string {
	if s == Blocked {
		return "1"
	}

	return "0"
}

// Cell addresses one grid square by column (X) and row (Y).
// Equality is exact integer comparison; Cell is a valid map key.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Manhattan returns |Δx|+|Δy| between c and other.
// Admissible and consistent as a heuristic for unit-cost 4-connected
// movement: no step can reduce it by more than 1.
func (c Cell) Manhattan(other Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Index maps the cell to its row-major index: Y*width + X.
// Complexity: O(1).
func (c Cell) Index(width int) int {
	return c.Y*width + c.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
