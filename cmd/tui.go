package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playq/internal/controllers"
	"github.com/desertthunder/playq/internal/library"
	"github.com/desertthunder/playq/internal/shared"
	"github.com/desertthunder/playq/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive library browser.
//
// Only one interactive session may use a database file at a time.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	dbPath := r.config.Database.Path
	if dbPath != shared.MemoryPath {
		lock, err := shared.AcquireInstanceLock(dbPath)
		if err != nil {
			return err
		}
		defer lock.Release()
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, logFile, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer logFile.Close()
	if err := shared.ConfigureLogger(fileLogger, r.config.Log); err != nil {
		fileLogger.Warn("using default log level", "error", err)
	}
	defer r.SetLogger(r.logger)
	r.SetLogger(fileLogger)

	tm, err := r.manager(ctx)
	if err != nil {
		return err
	}
	if r.config.Library.Seed {
		if _, err := library.Seed(ctx, tm, r.logger); err != nil {
			return err
		}
	}

	presenter := ui.NewPresenter()
	model := ui.NewModel(ctx, controllers.New(tm, presenter, r.logger), presenter)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
