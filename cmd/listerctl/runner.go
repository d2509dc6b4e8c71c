// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/taibuivan/lister/internal/api"
	"github.com/taibuivan/lister/internal/platform/config"
)

// OpenFunc opens the backends selected by a configuration.
type OpenFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*api.Backends, error)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *config.Config
	logger *log.Logger
	output io.Writer
	open   OpenFunc
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *config.Config
	Logger *log.Logger
	Output io.Writer
	Open   OpenFunc
}

// NewRunner creates a new Runner, defaulting every unset option.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = &config.Config{StoreDriver: config.StoreMemory, AuthMode: config.AuthMock}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Open == nil {
		opts.Open = api.OpenBackends
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		open:   opts.Open,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		migrateCommand, seedCommand, exportCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// backends opens the configured backends, logging through the CLI logger.
// The caller closes them.
func (r *Runner) backends(ctx context.Context) (*api.Backends, error) {
	backends, err := r.open(ctx, r.config, r.slog())
	if err != nil {
		return nil, fmt.Errorf("failed to open backends: %w", err)
	}
	return backends, nil
}

func (r *Runner) close(backends *api.Backends) {
	if err := backends.Close(); err != nil {
		r.logger.Warnf("closing backends: %v", err)
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.output, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// slog bridges the CLI logger into the structured logger the services expect.
func (r *Runner) slog() *slog.Logger {
	return slog.New(r.logger)
}
