package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run blocks until the signal context fires or the fx app shuts itself
// down, then drives a clean stop.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fatal("start", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fatal("stop", err)
	}
}

func fatal(phase string, err error) {
	fmt.Fprintf(os.Stderr, "zendo: %s failed: %v\n", phase, err)
	os.Exit(1)
}
