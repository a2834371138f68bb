// Package main implements a Chrono Trigger SNES ROM inspection tool
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/ctromutil/internal/cli"
	"github.com/retroenv/ctromutil/internal/config"
	"github.com/retroenv/ctromutil/internal/pipeline"
	"github.com/retroenv/ctromutil/internal/report"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Flags)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage(os.Stdout)
			if usageErr.Error() == "" {
				return
			}
		}
		logger.Error("Invalid arguments", log.Err(err))
		os.Exit(1)
	}

	report.PrintBanner(logger, version, commit, date)

	if err := pipeline.New(logger).Execute(ctx, opts, os.Stdout); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Command failed", log.Err(err))
		os.Exit(1)
	}
}
