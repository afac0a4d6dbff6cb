// Command binsort reads a fixed number of strings, inserts each one into a
// vector by binary insertion and prints them in sorted order.
//
// Strings are read from standard input, one prompt per string when it is a
// terminal. See Config for the environment variables it understands.
package main

import (
	"os"

	"github.com/amp-labs/amp-vector/logger"
	"github.com/amp-labs/amp-vector/shutdown"
)

func main() {
	ctx := shutdown.SetupHandler()

	ctx, cfg, cfgErr := loadConfig(ctx)

	// stdout carries the results, so logs default to stderr.
	logger.ConfigureLogging(ctx, "binsort", logger.WithOutput(os.Stderr))

	if cfgErr != nil {
		logger.Fatal("invalid configuration", "error", cfgErr)
	}

	if err := run(ctx, cfg, tokenSource(cfg, os.Stdin), os.Stdout); err != nil {
		logger.Fatal("binsort failed", "error", err)
	}

	if err := writeMetrics(cfg.MetricsFile); err != nil {
		logger.Fatal("binsort failed", "error", err)
	}
}
