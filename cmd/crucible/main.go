// Command crucible solves run-bounded shortest-path puzzles on digit grids.
//
// Usage:
//
//	crucible solve [file] [first|second|crucible|ultra] [flags]
//	crucible variants
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "crucible:", err)
		stop()
		os.Exit(1)
	}
}
