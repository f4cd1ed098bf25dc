package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It deep-copies the input so later changes to values
// cannot leak into the grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost
// for any cell below zero.
// Complexity: O(W×H) time and memory.
func New(values [][]int64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	costs := make([]int64, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: cost %d at (%d,%d)", ErrNegativeCost, c, x, y)
			}
		}
		costs = append(costs, row...)
	}

	return &Grid{width: w, height: h, costs: costs}, nil
}

// Parse reads a digit grid: one line per row, each byte an ASCII digit
// '0'–'9' giving that cell's cost. Windows line endings are accepted and
// trailing blank lines are ignored; a blank line before or between rows is
// an error. Rows may be arbitrarily wide.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	var (
		rows    [][]int64
		pending int // blank lines not yet followed by a row
	)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			pending++
			continue
		}
		if pending > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, y+1)
		}
		pending = 0
		row := make([]int64, len(line))
		for x := 0; x < len(line); x++ {
			b := line[x]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadDigit, b, y+1, x+1)
			}
			row[x] = int64(b - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: read grid: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cost returns the traversal cost of cell (x,y).
// The caller must ensure InBounds(x, y).
func (g *Grid) Cost(x, y int) int64 {
	return g.costs[g.Index(x, y)]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Start is the top-left cell.
func (g *Grid) Start() Cell { return Cell{0, 0} }

// Goal is the bottom-right cell.
func (g *Grid) Goal() Cell { return Cell{g.width - 1, g.height - 1} }

// Equal reports whether g and other have the same shape and costs.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.costs {
		if other.costs[i] != c {
			return false
		}
	}

	return true
}

// String renders the grid one row per line. Single-digit costs are
// written as-is, so a grid built by Parse round-trips; larger costs are
// space-separated.
func (g *Grid) String() string {
	digits := true
	for _, c := range g.costs {
		if c > 9 {
			digits = false
			break
		}
	}
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !digits && x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g.Cost(x, y))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
