package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kindred/internal/app/studio"
	"github.com/alexisbeaulieu97/kindred/internal/config"
	"github.com/alexisbeaulieu97/kindred/internal/logger"
	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

// AppContext bundles the configuration and logger shared by a command run.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger

	closers []io.Closer
}

// newAppContext resolves configuration and builds the logger. Interactive
// runs never log to the terminal: entries go to --log-file or nowhere.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath, nil)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flag("seed"); f != nil && f.Changed {
		seed := flags.seed
		cfg.Seed = &seed
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	app := &AppContext{Config: cfg}
	switch {
	case flags.logFile != "":
		log, closer, err := logger.NewFile(flags.logFile, level)
		if err != nil {
			return nil, err
		}
		app.Logger = log
		app.closers = append(app.closers, closer)
	case interactive:
		app.Logger = logger.Discard()
	default:
		log, err := logger.New(logger.Options{
			Level:         level,
			HumanReadable: cfg.Log.Human,
			Writer:        cmd.ErrOrStderr(),
		})
		if err != nil {
			return nil, err
		}
		app.Logger = log
	}

	return app, nil
}

// CommandContext returns the command context tagged with a correlation id and
// a logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) == "" {
		ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	}
	return ctx, a.Logger.Port(component)
}

// Studio builds the application service for this run.
func (a *AppContext) Studio(log ports.Logger, exporter ports.Exporter) (*studio.Service, error) {
	return studio.NewFromConfig(a.Config, log, exporter)
}

// Close releases log files.
func (a *AppContext) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
