package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for layout persistence.
var (
	// ErrBadToken indicates a token that is not the integer 0 or 1.
	ErrBadToken = errors.New("layout: cell token must be 0 or 1")

	// ErrDimensionMismatch indicates data whose dimensions do not match
	// the requested width×height.
	ErrDimensionMismatch = errors.New("layout: data dimensions do not match grid")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("layout: grid is nil")
)

// Encode writes the occupancy matrix to w in the wire format: one line
// per row, cells space-separated, 0 free / 1 blocked.
// Complexity: O(W×H).
func Encode(w io.Writer, matrix [][]grid.State) error {
	var sb strings.Builder
	for _, row := range matrix {
		sb.Reset()
		for x, s := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("layout: encode: %w", err)
		}
	}

	return nil
}

// Decode reads a width×height occupancy matrix from r, validating every
// token and both dimensions before returning anything. Trailing blank
// lines are tolerated; anything else that deviates from the format is
// ErrBadToken or ErrDimensionMismatch.
// Complexity: O(W×H).
func Decode(r io.Reader, width, height int) ([][]grid.State, error) {
	matrix := make([][]grid.State, 0, height)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // tolerate blank lines
		}
		if len(fields) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, len(matrix), len(fields), width)
		}
		if len(matrix) == height {
			return nil, fmt.Errorf("%w: more than %d rows", ErrDimensionMismatch, height)
		}
		row := make([]grid.State, width)
		for x, tok := range fields {
			switch tok {
			case "0":
				row[x] = grid.Free
			case "1":
				row[x] = grid.Blocked
			default:
				return nil, fmt.Errorf("%w: row %d cell %d: %q", ErrBadToken, len(matrix), x, tok)
			}
		}
		matrix = append(matrix, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if len(matrix) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, len(matrix), height)
	}

	return matrix, nil
}

// Save persists the grid's current occupancy to path.
func Save(path string, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("layout: save %s: %w", path, err)
	}
	if err = Encode(f, g.Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("layout: save %s: %w", path, err)
	}

	return nil
}

// Load replaces the grid's occupancy from path. The file is decoded and
// validated in full before the grid is touched; on any failure the grid
// keeps its previous contents.
func Load(path string, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("layout: load %s: %w", path, err)
	}
	defer f.Close()

	matrix, err := Decode(f, g.Width(), g.Height())
	if err != nil {
		return err
	}

	return g.LoadSnapshot(matrix)
}
