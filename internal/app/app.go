package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/ranked-carousel/internal/backend"
	"github.com/atomicstack/ranked-carousel/internal/logging/events"
	"github.com/atomicstack/ranked-carousel/internal/ranking"
	"github.com/atomicstack/ranked-carousel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Source     ranking.Options
	AssetRoot  string
	Width      int
	Height     int
	ShowFooter bool
	Print      bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	src, err := ranking.Open(context.Background(), cfg.Source)
	if err != nil {
		return fmt.Errorf("open ranking source: %w", err)
	}
	if closer, ok := src.(ranking.Closer); ok {
		defer closer.Close()
	}
	if cfg.Print {
		return Print(context.Background(), src, cfg, os.Stdout)
	}

	loader := backend.NewLoader(src, cfg.Source.Kind, cfg.Source.Timeout)
	model := ui.NewModel(ui.Options{
		Loader:     loader,
		AssetRoot:  cfg.AssetRoot,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	// Teardown runs on every exit path, including a killed program; the
	// request goroutine is joined after the model has stopped it.
	defer loader.Wait()
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Quit("killed")
		return nil
	}
	return err
}
