package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for artist checks.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.source == nil {
		return fmt.Errorf("%w: chart source not initialized", shared.ErrSourceUnavailable)
	}

	config := r.loadConfig(cmd.String("config"))

	db, repo, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	if pruned, err := repo.Prune(config.Search.SinglesHorizonYears); err != nil {
		r.logger.Warn("failed to prune stale snapshots", "error", err)
	} else if pruned > 0 {
		r.logger.Debug("pruned stale snapshots", "rows", pruned)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/philosophy-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	engine := r.newEngine(config, repo)

	model := ui.NewModel(ctx, engine, r.now)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
