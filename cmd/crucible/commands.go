package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/crucible/solver"
)

// solveFlags holds the flags of one solve command instance.
type solveFlags struct {
	configPath string
	minRun     int
	maxRun     int
	all        bool
	path       bool
	logLevel   string
	trace      bool
	timeout    time.Duration
	parallel   int
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crucible",
		Short: "Find the cheapest route for a crucible across a digit grid",
		Long: `crucible reads a grid of single-digit heat-loss costs and finds the
cheapest route from the top-left to the bottom-right cell when the crucible
must travel in straight runs whose length is bounded below and above.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newVariantsCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [file] [first|second|crucible|ultra]",
		Short: "Solve a grid file for one or more variants",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.IntVar(&f.minRun, "min-run", 0, "custom minimum run length")
	fl.IntVar(&f.maxRun, "max-run", 0, "custom maximum run length")
	fl.BoolVar(&f.all, "all", false, "solve both presets concurrently")
	fl.BoolVar(&f.path, "path", false, "print the cheapest route")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.BoolVar(&f.trace, "trace", false, "export spans to stderr")
	fl.DurationVar(&f.timeout, "timeout", 0, "per-search time limit (0 disables)")
	fl.IntVar(&f.parallel, "parallel", 0, "maximum concurrent searches (0 is unlimited)")
	return cmd
}

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the preset names and their run bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range solver.VariantNames() {
				v, err := solver.LookupVariant(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-9s %d..%d\n", name, v.MinRun, v.MaxRun)
			}
			return nil
		},
	}
}

func runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	cfg, err := solver.LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, args, f, &cfg)

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	opts := []solver.Option{solver.WithLogger(logger)}
	if f.trace {
		tp, err := newStdoutTracer(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("trace shutdown failed", slog.String("error", err.Error()))
			}
		}()
		opts = append(opts, solver.WithTracerProvider(tp))
	}

	s, err := solver.New(cfg, opts...)
	if err != nil {
		return err
	}

	answers, err := s.SolveFile(cmd.Context(), "")
	label := ""
	if len(args) > 1 {
		label = strings.ToLower(strings.TrimSpace(args[1]))
	}
	printAnswers(cmd.OutOrStdout(), answers, label)
	return err
}

// applyFlags layers positional arguments and explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, args []string, f solveFlags, cfg *solver.Config) {
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	fl := cmd.Flags()
	custom := fl.Changed("min-run") || fl.Changed("max-run")
	switch {
	case len(args) > 1:
		cfg.Variants = []string{args[1]}
	case f.all:
		cfg.Variants = []string{solver.Crucible.Name, solver.UltraCrucible.Name}
	case custom:
		cfg.Variants = nil
	}
	if custom {
		b := solver.Bounds{MinRun: f.minRun, MaxRun: f.maxRun}
		if !fl.Changed("max-run") {
			b.MaxRun = b.MinRun
		}
		if !fl.Changed("min-run") {
			b.MinRun = 1
		}
		cfg.Custom = &b
	}

	if f.path {
		cfg.ReturnPath = true
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fl.Changed("parallel") {
		cfg.Parallelism = f.parallel
	}
}

func newStdoutTracer(w io.Writer) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)), nil
}

// printAnswers writes one line per solved variant, plus its route if known.
// A non-empty label (the task name as typed) replaces the preset's name;
// a custom variant keeps its own.
func printAnswers(w io.Writer, answers []solver.Answer, label string) {
	for _, a := range answers {
		if a.Err != nil {
			continue
		}
		name := a.Variant.Name
		if label != "" && name != "custom" {
			name = label
		}
		fmt.Fprintf(w, "%s task solution: %d\n", title(name), a.Cost)
		if len(a.Path) > 0 {
			cells := make([]string, len(a.Path))
			for i, c := range a.Path {
				cells[i] = c.String()
			}
			fmt.Fprintf(w, "  path: %s\n", strings.Join(cells, " "))
		}
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
