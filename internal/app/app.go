package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/record-picker/internal/backend"
	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/atomicstack/record-picker/internal/logging/events"
	"github.com/atomicstack/record-picker/internal/record"
	"github.com/atomicstack/record-picker/internal/source"
	"github.com/atomicstack/record-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// retrySpacing is the minimum gap between user-triggered refetches.
const retrySpacing = time.Second

// Config describes user-provided application options.
type Config struct {
	URL             string
	Title           string
	BatchSize       int
	RevealThreshold int
	Timeout         time.Duration
	Retries         int
	Width           int
	Height          int
	ShowFooter      bool
}

// Result is the outcome of a picker session.
type Result struct {
	Record    record.Record
	Confirmed bool
}

// Run bootstraps and executes the Bubble Tea program. The UI is drawn on
// stderr so stdout stays free for the confirmed record.
func Run(cfg Config) (Result, error) {
	src, err := source.NewHTTP(source.Options{
		URL:      cfg.URL,
		Timeout:  cfg.Timeout,
		RetryMax: cfg.Retries,
	})
	if err != nil {
		return Result{}, fmt.Errorf("record source: %w", err)
	}
	return runWith(cfg, src, tea.WithOutput(os.Stderr))
}

func runWith(cfg Config, src source.Source, opts ...tea.ProgramOption) (Result, error) {
	loader := backend.NewLoader(src, retrySpacing)
	defer func() {
		loader.Stop()
		loader.Wait()
	}()

	controller := batch.New(cfg.BatchSize)
	defer controller.Close()

	model := ui.NewModel(ui.Options{
		Title:           cfg.Title,
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		RevealThreshold: cfg.RevealThreshold,
		Controller:      controller,
	}, loader)
	defer model.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, err
	}

	rec, ok := model.Result()
	events.App.Exit(ok, rec.ID)
	return Result{Record: rec, Confirmed: ok}, nil
}
