// Package crucible finds minimum-cost routes across a cost grid when
// movement must happen in straight runs of bounded length.
//
// Overview:
//
//   - A route starts at the start cell and moves in runs: each run goes
//     straight for MinRun..MaxRun cells, then the route must turn 90°.
//     Reversing and continuing on the same axis are both forbidden.
//   - Entering a cell costs that cell's value; the start cell is free.
//   - Search returns the exact minimum total cost to the goal, or a typed
//     failure.
//
// State space:
//
//   - A state is (cell, axis): the axis of the run that entered the cell.
//     Tracking the axis rather than the length of the current run keeps the
//     state count at W·H·2. The price is that each expansion walks up to
//     MaxRun cells per direction instead of one.
//   - The start is seeded on both axes at cost 0, so the first run may go
//     horizontally or vertically.
//
// Algorithm (run-based relaxation, a Dijkstra variant):
//
//   - Pop the cheapest frontier entry. Skip it if it is stale
//     (its cost exceeds the best known cost of its state).
//   - If it is the goal, its cost is the answer.
//   - Otherwise walk each perpendicular direction for 1..MaxRun steps,
//     stopping at the grid edge; every cell reached after ≥ MinRun steps is
//     relaxed with the accumulated run cost.
//   - An empty frontier means ErrUnreachableGoal.
//
// Complexity:
//
//   - Time:  O(S·R·log(S·R)) where S = W·H·2 and R = MaxRun.
//   - Space: O(S) for the distance table (and predecessors), O(S·R) worst
//     case for heap entries under lazy decrease-key.
//
// Options:
//
//   - WithRunBounds(min, max): run length bounds, 1 ≤ min ≤ max. Default 1, 3.
//   - WithStart(x, y), WithGoal(x, y): default top-left and bottom-right.
//   - WithReturnPath(): fill Result.Path with every cell of one optimal route.
//   - WithMaxCost(c): do not expand states costing more than c.
//   - WithContext(ctx): cancellation, checked once per frontier pop.
//   - WithOnSettle(fn): observe each settled state and its final cost.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          nil grid; wraps costgrid.ErrInvalidGrid.
//   - ErrInvalidRunBounds: min < 1 or max < min.
//   - ErrBadMaxCost:       negative cost cap.
//   - ErrOutOfBounds:      start or goal outside the grid.
//   - ErrUnreachableGoal:  frontier exhausted; deterministic, do not retry.
//   - ErrCostOverflow:     a run total would reach Infinity or overflow int64.
//
// Thread safety:
//
//   - Search allocates all mutable state per call and only reads the grid,
//     so concurrent searches on one *costgrid.Grid are safe.
//
// Example usage:
//
//	g, _ := costgrid.ParseString(input)
//	res, err := crucible.Search(g, crucible.WithRunBounds(4, 10))
//	if errors.Is(err, crucible.ErrUnreachableGoal) {
//	    // no route satisfies the bounds
//	}
//	fmt.Println(res.Cost)
package crucible
