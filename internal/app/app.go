// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Run calls run with a development logger and the process streams, printing
// the returned error and exiting with status 2 if it fails.
func Run(run func(ctx context.Context, lg *zap.Logger, args []string, out io.Writer) error) {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(context.Background(), lg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		_ = lg.Sync()
		os.Exit(2)
	}
}
