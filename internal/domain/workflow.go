package domain

import (
	"context"
	"fmt"
	"log/slog"

	"elgen.dev/pkg/elgen/internal/adapter"
	"elgen.dev/pkg/elgen/internal/controller"
	m "elgen.dev/pkg/elgen/internal/model"
)

// ScaffoldArgs are the inputs of one el invocation before prompting.
type ScaffoldArgs struct {
	Config   m.ScaffoldConfig
	Answered controller.Answered
}

// Workflow drives one el invocation from flags to the displayed result.
type Workflow interface {
	Scaffold(ctx context.Context, args ScaffoldArgs) error
}

type workflow struct {
	projectRoot m.Path

	adapter.ProjectFSAdapter
	controller.Prompter
	controller.UI
	Orchestrator
}

// NewWorkflow creates a Workflow for the project rooted at projectRoot.
func NewWorkflow(
	projectRoot m.Path,
	fsAdapter adapter.ProjectFSAdapter,
	prompter controller.Prompter,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		projectRoot:      projectRoot,
		ProjectFSAdapter: fsAdapter,
		Prompter:         prompter,
		UI:               ui,
		Orchestrator:     orchestrator,
	}
}

// Scaffold validates the element name before asking anything, completes the
// configuration with the prompts, runs the orchestrator and displays what was
// written. A failed run still displays the writes performed before the error.
func (w *workflow) Scaffold(ctx context.Context, args ScaffoldArgs) error {
	cfg := args.Config

	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	paths, err := Resolve(cfg, string(w.projectRoot))
	if err != nil {
		return err
	}

	harnessExists, err := w.Exists(ctx, paths.HarnessFile())
	if err != nil {
		slog.Error("Failed to check test harness", "path", paths.HarnessFile(), "error", err)
		return fmt.Errorf("checking %s: %w", paths.Rel(paths.HarnessFile()), err)
	}

	cfg, err = controller.CollectConfig(ctx, cfg, w.Prompter, harnessExists, args.Answered)
	if err != nil {
		return err
	}

	slog.Info("Scaffolding element",
		"element", cfg.ElementName,
		"dependencies", cfg.Dependencies,
		"docs", cfg.IncludeDocs,
		"import", cfg.IncludeImport,
		"test", cfg.TestKind,
		"dryRun", cfg.DryRun,
	)

	result, err := w.Run(ctx, cfg)
	if err != nil {
		if result != nil && len(result.Writes) > 0 {
			if displayErr := w.DisplayResult(ctx, result); displayErr != nil {
				slog.Error("Failed to display partial result", "error", displayErr)
			}
		}

		return fmt.Errorf("scaffold %s: %w", cfg.ElementName, err)
	}

	slog.Info("Scaffolded element",
		"element", cfg.ElementName,
		"created", result.Created(),
		"modified", result.Modified(),
		"dryRun", result.DryRun,
	)

	if err := w.DisplayResult(ctx, result); err != nil {
		slog.Error("Failed to display result", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
