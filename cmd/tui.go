package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive movie browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger := shared.NewFileLogger(r.config.Logging.File)
	r.SetLogger(fileLogger)
	r.api.SetLogger(fileLogger)
	if svc, ok := r.catalog.(*services.MovieService); ok {
		svc.SetLogger(fileLogger)
	}

	model := ui.NewModel(ctx, r.catalog, r.auth, fileLogger)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
