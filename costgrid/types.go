// Package costgrid defines the sentinel errors and core types
// for the costgrid package of github.com/katalvlaran/crucible.
package costgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
//
// Every structural failure wraps ErrInvalidGrid, so callers that only care
// about "the input is unusable" can match it with errors.Is, while tests can
// still distinguish the precise cause.
var (
	// ErrInvalidGrid is the umbrella error for any malformed input matrix.
	ErrInvalidGrid = errors.New("costgrid: invalid grid")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: must have at least one row and one column", ErrInvalidGrid)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)

	// ErrBadDigit indicates a cell that is not an ASCII digit 0–9.
	ErrBadDigit = fmt.Errorf("%w: cell is not a decimal digit", ErrInvalidGrid)

	// ErrNegativeCost indicates a numeric cell below zero.
	ErrNegativeCost = fmt.Errorf("%w: cell cost must be non-negative", ErrInvalidGrid)
)

// Cell is a grid coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable rectangular matrix of non-negative traversal costs.
// Costs are stored row-major; Cost(x, y) is costs[y*width+x].
//
// A Grid is safe for concurrent readers: nothing mutates it after New returns.
type Grid struct {
	width, height int
	costs         []int64
}
