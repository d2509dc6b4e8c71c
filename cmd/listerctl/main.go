// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command listerctl is the operator CLI for Lister: it migrates the
// configured databases, seeds the category catalogue and exports lists.
//
// It reads the same environment variables as the API server.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/taibuivan/lister/internal/platform/config"
	"github.com/taibuivan/lister/internal/platform/constants"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("configuration error: %v", err)
	}

	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	runner := NewRunner(RunnerOpts{Config: cfg, Logger: logger})

	app := &cli.Command{
		Name:     "listerctl",
		Usage:    "Operate a Lister deployment",
		Version:  constants.AppVersion,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
