// SPDX-License-Identifier: MIT

// Command wfg computes exact hypervolumes of the fronts stored in a file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hypervolume/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "wfg: %v\n", err)
		stop()
		os.Exit(1)
	}
}
