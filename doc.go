// Package crucible is a small toolkit for run-bounded shortest paths on
// cost grids: routes that must travel in straight runs of bounded length
// and turn 90 degrees between them.
//
// Under the hood, everything is organized under a few subpackages:
//
//	costgrid/     immutable rectangular cost grid, text parsing & indexing
//	crucible/     the search engine: Search, run bounds, path reconstruction
//	solver/       named variants, YAML/env config, concurrent solving,
//	              slog logging, Prometheus metrics & OpenTelemetry spans
//	cmd/crucible/ the command-line front end (cobra)
//	examples/     a runnable scenario
//
// Quick start:
//
//	g, _ := costgrid.ParseString("2413\n3215\n3255\n")
//	res, err := crucible.Search(g, crucible.WithRunBounds(1, 3))
//	if err != nil {
//		// errors.Is(err, crucible.ErrUnreachableGoal) when no legal route exists
//	}
//	fmt.Println(res.Cost)
package crucible
