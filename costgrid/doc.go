// Package costgrid holds the immutable cost matrix that the crucible
// search walks over.
//
// What:
//
//   - Grid wraps a rectangular W×H matrix of non-negative int64 costs.
//   - Parse reads the digit text format: one line per row, one ASCII
//     digit '0'–'9' per cell.
//   - Index / Coordinate convert between (x,y) and row-major indices.
//
// Why:
//
//   - The search engine needs O(1) cost lookups and bounds checks and must
//     be able to share one grid between concurrent searches. Grid has no
//     mutating methods and deep-copies its input.
//
// Complexity:
//
//   - New, Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every structural failure below.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadDigit: a byte outside '0'–'9' in the text format.
//   - ErrNegativeCost: a negative value passed to New.
package costgrid
