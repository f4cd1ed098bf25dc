package solver

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/crucible"
)

var (
	// solvesTotal counts searches by variant and outcome.
	// Outcomes: "success", "unreachable", "overflow", "invalid", "canceled", "other".
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crucible_solves_total",
		Help: "Total crucible searches by variant and outcome",
	}, []string{"variant", "result"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crucible_solve_duration_seconds",
		Help:    "Wall time of one crucible search",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"variant"})

	settledStates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crucible_settled_states",
		Help:    "States settled per crucible search",
		Buckets: prometheus.ExponentialBuckets(16, 4, 10),
	}, []string{"variant"})
)

// resultLabel maps a Search error to its metrics label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, crucible.ErrUnreachableGoal):
		return "unreachable"
	case errors.Is(err, crucible.ErrCostOverflow):
		return "overflow"
	case errors.Is(err, costgrid.ErrInvalidGrid),
		errors.Is(err, crucible.ErrInvalidRunBounds),
		errors.Is(err, crucible.ErrOutOfBounds):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
