package crucible

import "github.com/katalvlaran/crucible/costgrid"

// path rebuilds the route ending in state target. Predecessor links join
// run endpoints, so every run is expanded back into the cells it crossed.
func (r *runner) path(target int) []costgrid.Cell {
	var ends []int // run endpoints, goal first
	for s := target; s >= 0; s = r.prev[s] {
		cell, _ := stateCell(s)
		ends = append(ends, cell)
	}

	sx, sy := r.g.Coordinate(ends[len(ends)-1])
	cells := []costgrid.Cell{{X: sx, Y: sy}}
	for i := len(ends) - 2; i >= 0; i-- {
		x, y := cells[len(cells)-1].X, cells[len(cells)-1].Y
		tx, ty := r.g.Coordinate(ends[i])
		dx, dy := sign(tx-x), sign(ty-y)
		for x != tx || y != ty {
			x, y = x+dx, y+dy
			cells = append(cells, costgrid.Cell{X: x, Y: y})
		}
	}

	return cells
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
