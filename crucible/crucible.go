package crucible

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// Search computes the minimum accumulated cost of moving from the start
// cell to the goal cell of g in straight runs of MinRun..MaxRun cells,
// turning 90° between runs. Entering a cell costs that cell's value; the
// start cell is free.
//
// Returns:
//
//   - Result.Cost: the optimum, exact (there is no partial result).
//   - Result.Path: one optimal route when WithReturnPath is given.
//   - err: a sentinel error; on failure only Result.Stats is meaningful.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid, wraps costgrid.ErrInvalidGrid).
//  2. Options must be valid (ErrInvalidRunBounds, ErrBadMaxCost).
//  3. Start and goal must lie inside g (ErrOutOfBounds).
//
// Failures during the search: ErrUnreachableGoal when the frontier empties,
// ErrCostOverflow when a run total would not fit in int64, or Ctx.Err().
//
// Complexity:
//
//   - Time:  O(S·R·log(S·R)) with S = W·H·2 states and R = MaxRun.
//   - Space: O(S·R) worst case for the frontier under lazy deletion.
func Search(g *costgrid.Grid, opts ...Option) (Result, error) {
	// 1) Validate grid
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if cfg.MinRun < 1 || cfg.MaxRun < cfg.MinRun {
		return Result{}, fmt.Errorf("%w: got min=%d max=%d", ErrInvalidRunBounds, cfg.MinRun, cfg.MaxRun)
	}

	// 3) Resolve start and goal
	start, goal := g.Start(), g.Goal()
	if cfg.Start != nil {
		start = *cfg.Start
	}
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}
	for _, c := range []costgrid.Cell{start, goal} {
		if !g.InBounds(c.X, c.Y) {
			return Result{}, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.Width(), g.Height())
		}
	}

	// 4) Prepare per-search state and run.
	r := newRunner(g, cfg, g.Index(start.X, start.Y), g.Index(goal.X, goal.Y))
	r.init()
	found, err := r.process()
	if err != nil {
		return Result{Stats: r.stats}, err
	}

	res := Result{Cost: r.dist[found], Stats: r.stats}
	if cfg.ReturnPath {
		res.Path = r.path(found)
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g     *costgrid.Grid // read-only
	opts  Options
	start int      // start cell index
	goal  int      // goal cell index
	dist  []int64  // state → best known cost
	prev  []int    // state → predecessor state, -1 for none; nil unless ReturnPath
	pq    frontier // min-heap with stale entries
	stats Stats
}

// stateIndex packs (cell, axis) into a dense table index.
func stateIndex(cell int, a Axis) int { return cell*2 + int(a) }

// stateCell unpacks a state index into its cell index and axis.
func stateCell(s int) (cell int, a Axis) { return s / 2, Axis(s % 2) }

func newRunner(g *costgrid.Grid, cfg Options, start, goal int) *runner {
	n := g.Width() * g.Height() * 2
	r := &runner{
		g:     g,
		opts:  cfg,
		start: start,
		goal:  goal,
		dist:  make([]int64, n),
		pq:    make(frontier, 0, g.Width()+g.Height()),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// init sets every distance to Infinity and seeds the start on both axes:
// the first run may go either way.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	heap.Init(&r.pq)
	for _, a := range []Axis{Horizontal, Vertical} {
		r.dist[stateIndex(r.start, a)] = 0
		heap.Push(&r.pq, entry{cost: 0, axis: a, pos: r.start})
		r.stats.Pushed++
	}
}

// process is the main loop. It returns the settled goal state.
//
// Loop termination conditions:
//
//   - the goal is popped (its cost is final: costs are non-negative);
//   - the heap empties or the cheapest entry exceeds MaxCost (ErrUnreachableGoal);
//   - Ctx is done or a run overflows.
func (r *runner) process() (int, error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return -1, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(entry)
		s := stateIndex(item.pos, item.axis)

		// Stale: the state was improved after this entry was pushed.
		if item.cost > r.dist[s] {
			r.stats.Stale++
			continue
		}
		if item.cost > r.opts.MaxCost {
			break
		}

		r.stats.Settled++
		x, y := r.g.Coordinate(item.pos)
		r.opts.OnSettle(State{Cell: costgrid.Cell{X: x, Y: y}, Axis: item.axis}, item.cost)

		if item.pos == r.goal {
			return s, nil
		}
		if err := r.relax(item, s); err != nil {
			return -1, err
		}
	}

	return -1, ErrUnreachableGoal
}

// relax walks up to MaxRun cells in each direction perpendicular to the
// settled entry's axis, summing entered cell costs. Every cell reached
// after at least MinRun steps is a candidate state on the new axis.
func (r *runner) relax(from entry, fromState int) error {
	x0, y0 := r.g.Coordinate(from.pos)
	for _, d := range from.axis.Turns() {
		dx, dy := d.Offset()
		axis := d.Axis()
		acc := from.cost
		x, y := x0, y0
		for k := 1; k <= r.opts.MaxRun; k++ {
			x, y = x+dx, y+dy
			if !r.g.InBounds(x, y) {
				break
			}
			c := r.g.Cost(x, y)
			// Infinity marks unreached states, so a total equal to it is an overflow too
			if acc >= Infinity-c {
				return fmt.Errorf("%w: at (%d,%d) after %d+%d", ErrCostOverflow, x, y, acc, c)
			}
			acc += c
			if k < r.opts.MinRun {
				continue
			}
			// acc only grows along the run
			if acc > r.opts.MaxCost {
				break
			}

			pos := r.g.Index(x, y)
			s := stateIndex(pos, axis)
			if acc >= r.dist[s] {
				continue
			}
			r.dist[s] = acc
			if r.prev != nil {
				r.prev[s] = fromState
			}
			heap.Push(&r.pq, entry{cost: acc, axis: axis, pos: pos})
			r.stats.Pushed++
		}
	}

	return nil
}
