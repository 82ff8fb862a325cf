package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/kindred/internal/export"
	"github.com/alexisbeaulieu97/kindred/internal/tui/composer"
)

var errNoTerminal = errors.New("the composer needs an interactive terminal; use `kindred export` for scripted output")

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runComposer(cmd *cobra.Command, flags *rootFlags) error {
	if !isInteractive() {
		return errNoTerminal
	}

	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "command.compose")
	exporter := export.NewFileExporter(app.Config.Export.Dir, export.WithLogger(logger))
	svc, err := app.Studio(logger, exporter)
	if err != nil {
		return err
	}

	logger.Info(ctx, "launching composer", "seed", svc.Seed())

	p := tea.NewProgram(composer.NewModel(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "composer execution failed", "error", err)
		return fmt.Errorf("failed to run composer: %w", err)
	}

	logger.Info(ctx, "composer closed")
	return nil
}
