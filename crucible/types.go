// Package crucible defines core types and configuration options
// for the run-length-bounded shortest-path search.
package crucible

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/costgrid"
)

// Infinity marks a state that has not been reached yet.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed to Search.
	// It wraps costgrid.ErrInvalidGrid.
	ErrNilGrid = fmt.Errorf("crucible: grid is nil: %w", costgrid.ErrInvalidGrid)

	// ErrInvalidRunBounds indicates MinRun < 1 or MaxRun < MinRun.
	ErrInvalidRunBounds = errors.New("crucible: run bounds must satisfy 1 <= min <= max")

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("crucible: cell outside grid")

	// ErrBadMaxCost indicates a negative MaxCost.
	ErrBadMaxCost = errors.New("crucible: MaxCost must be non-negative")

	// ErrUnreachableGoal indicates the frontier emptied before the goal was
	// settled. The search is exhaustive and deterministic; retrying cannot help.
	ErrUnreachableGoal = errors.New("crucible: goal unreachable under run bounds")

	// ErrCostOverflow indicates an accumulated cost that reaches Infinity
	// (math.MaxInt64) or would not fit in int64.
	ErrCostOverflow = errors.New("crucible: accumulated cost overflows int64")
)

// Axis is the orientation of the straight run that most recently entered a cell.
type Axis uint8

const (
	// Horizontal runs move Left or Right.
	Horizontal Axis = iota
	// Vertical runs move Up or Down.
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Turns returns the two directions perpendicular to a.
// Continuing or reversing along a is never allowed right after a run on a.
func (a Axis) Turns() [2]Direction {
	if a == Horizontal {
		return [2]Direction{Up, Down}
	}
	return [2]Direction{Left, Right}
}

// Direction is one of the four compass moves.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{"left", "right", "up", "down"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Axis returns the axis d moves along.
func (d Direction) Axis() Axis {
	if d == Left || d == Right {
		return Horizontal
	}
	return Vertical
}

// Offset returns the unit (dx, dy) step for d. Y grows downward.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

// State is a search node: a cell together with the axis it was entered on.
type State struct {
	Cell costgrid.Cell
	Axis Axis
}

// Stats counts frontier activity for one search.
type Stats struct {
	Settled int // states popped and expanded (goal included)
	Pushed  int // frontier insertions, seeds included
	Stale   int // popped entries discarded by lazy deletion
}

// Result is the outcome of a successful Search.
//
// Cost – minimum accumulated cost from start to goal (start cell excluded).
// Path – every cell on one optimal route, start and goal included;
//
//	nil unless WithReturnPath was given.
//
// Stats – frontier counters; also filled in when Search fails.
type Result struct {
	Cost  int64
	Path  []costgrid.Cell
	Stats Stats
}

// Options configures Search.
//
// MinRun, MaxRun – bounds on consecutive cells per run; 1 ≤ MinRun ≤ MaxRun.
// Start, Goal    – nil means the top-left and bottom-right corners.
// ReturnPath     – if true, predecessors are kept and Result.Path is filled.
// MaxCost        – states costing more are not expanded. Default Infinity.
// Ctx            – checked once per frontier pop.
// OnSettle       – called for every settled state with its final cost.
type Options struct {
	MinRun, MaxRun int
	Start, Goal    *costgrid.Cell
	ReturnPath     bool
	MaxCost        int64
	Ctx            context.Context
	OnSettle       func(s State, cost int64)

	// error recorded while applying options
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the defaults Search starts from:
//
//   - MinRun=1, MaxRun=3 (the classic crucible).
//   - Start/Goal at the grid corners.
//   - no path, no cost cap, background context, no-op hook.
func DefaultOptions() Options {
	return Options{
		MinRun:   1,
		MaxRun:   3,
		MaxCost:  Infinity,
		Ctx:      context.Background(),
		OnSettle: func(State, int64) {},
	}
}

// WithRunBounds sets the minimum and maximum run length.
// Invalid bounds are reported by Search as ErrInvalidRunBounds.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		if minRun < 1 || maxRun < minRun {
			o.err = fmt.Errorf("%w: got min=%d max=%d", ErrInvalidRunBounds, minRun, maxRun)
			return
		}
		o.MinRun, o.MaxRun = minRun, maxRun
	}
}

// WithStart overrides the start cell.
func WithStart(x, y int) Option {
	return func(o *Options) {
		o.Start = &costgrid.Cell{X: x, Y: y}
	}
}

// WithGoal overrides the goal cell.
func WithGoal(x, y int) Option {
	return func(o *Options) {
		o.Goal = &costgrid.Cell{X: x, Y: y}
	}
}

// WithReturnPath enables path reconstruction into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops expanding states whose cost exceeds max.
// A goal beyond the cap is reported as ErrUnreachableGoal.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, max)
			return
		}
		o.MaxCost = max
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSettle registers a callback invoked for each settled state.
func WithOnSettle(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
