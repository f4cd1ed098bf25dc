package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/crucible"
)

// Sentinel errors for the solver layer.
var (
	// ErrUnknownVariant indicates a preset name that is not registered.
	ErrUnknownVariant = errors.New("solver: unknown variant")

	// ErrInvalidConfig indicates a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("solver: invalid config")
)

const tracerName = "github.com/katalvlaran/crucible/solver"

// Answer is the outcome of one variant.
type Answer struct {
	RunID    string
	Variant  Variant
	Cost     int64
	Path     []costgrid.Cell
	Stats    crucible.Stats
	Duration time.Duration
	Err      error
}

// Solver runs crucible searches with logging, metrics and tracing around
// them. It holds no per-search state and is safe for concurrent use.
type Solver struct {
	cfg    Config
	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the structured logger. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracerProvider sets where spans go. Default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Solver) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// New validates cfg and returns a Solver.
func New(cfg Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:    cfg,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the solver's configuration.
func (s *Solver) Config() Config { return s.cfg }

// Solve runs one search of g under v.
// The returned Answer always carries RunID, Variant, Stats and Duration;
// Cost and Path are set only when err is nil.
func (s *Solver) Solve(ctx context.Context, g *costgrid.Grid, v Variant) (Answer, error) {
	ans := Answer{RunID: uuid.NewString(), Variant: v}

	ctx, span := s.tracer.Start(ctx, "solver.Solve", trace.WithAttributes(
		attribute.String("crucible.run_id", ans.RunID),
		attribute.String("crucible.variant", v.Name),
		attribute.Int("crucible.min_run", v.MinRun),
		attribute.Int("crucible.max_run", v.MaxRun),
	))
	defer span.End()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	opts := []crucible.Option{
		crucible.WithRunBounds(v.MinRun, v.MaxRun),
		crucible.WithContext(ctx),
	}
	if s.cfg.ReturnPath {
		opts = append(opts, crucible.WithReturnPath())
	}

	start := time.Now()
	res, err := crucible.Search(g, opts...)
	ans.Duration = time.Since(start)
	ans.Stats = res.Stats

	solvesTotal.WithLabelValues(v.Name, resultLabel(err)).Inc()
	solveDuration.WithLabelValues(v.Name).Observe(ans.Duration.Seconds())
	settledStates.WithLabelValues(v.Name).Observe(float64(res.Stats.Settled))
	span.SetAttributes(
		attribute.Int("crucible.settled", res.Stats.Settled),
		attribute.Int("crucible.pushed", res.Stats.Pushed),
	)

	if err != nil {
		ans.Err = fmt.Errorf("solver: %s: %w", v, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, resultLabel(err))
		s.logger.WarnContext(ctx, "crucible search failed",
			slog.String("run_id", ans.RunID),
			slog.String("variant", v.Name),
			slog.Int("settled", res.Stats.Settled),
			slog.Duration("duration", ans.Duration),
			slog.String("error", err.Error()),
		)
		return ans, ans.Err
	}

	ans.Cost, ans.Path = res.Cost, res.Path
	span.SetAttributes(attribute.Int64("crucible.cost", res.Cost))
	span.SetStatus(codes.Ok, "")
	s.logger.InfoContext(ctx, "crucible search finished",
		slog.String("run_id", ans.RunID),
		slog.String("variant", v.Name),
		slog.Int64("cost", res.Cost),
		slog.Int("settled", res.Stats.Settled),
		slog.Int("stale", res.Stats.Stale),
		slog.Duration("duration", ans.Duration),
	)
	return ans, nil
}

// SolveAll runs every variant against g concurrently. The grid is immutable
// and each search owns its own tables, so the runs share nothing mutable.
// Answers come back in variant order; the error joins every failed
// variant's error, and those answers carry it in Err.
func (s *Solver) SolveAll(ctx context.Context, g *costgrid.Grid, variants []Variant) ([]Answer, error) {
	answers := make([]Answer, len(variants))

	var eg errgroup.Group
	if s.cfg.Parallelism > 0 {
		eg.SetLimit(s.cfg.Parallelism)
	}
	for i, v := range variants {
		i, v := i, v
		eg.Go(func() error {
			// failures stay in the Answer so one variant cannot cancel another
			answers[i], _ = s.Solve(ctx, g, v)
			return nil
		})
	}
	_ = eg.Wait()

	var errs []error
	for _, a := range answers {
		if a.Err != nil {
			errs = append(errs, a.Err)
		}
	}
	return answers, errors.Join(errs...)
}

// SolveFile parses the grid at path (Config.Input when path is empty) and
// solves every configured variant.
func (s *Solver) SolveFile(ctx context.Context, path string) ([]Answer, error) {
	if path == "" {
		path = s.cfg.Input
	}
	variants, err := s.cfg.ResolveVariants()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("solver: open grid: %w", err)
	}
	defer f.Close()

	g, err := costgrid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("solver: %s: %w", path, err)
	}
	s.logger.DebugContext(ctx, "grid loaded",
		slog.String("path", path),
		slog.Int("width", g.Width()),
		slog.Int("height", g.Height()),
	)

	return s.SolveAll(ctx, g, variants)
}
