package controller

import (
	"context"
	"log/slog"

	m "elgen.dev/pkg/elgen/internal/model"
)

// Answered tells which interactive questions were already answered by flags.
type Answered struct {
	Import   bool
	TestKind bool
}

// CollectConfig completes cfg with the answers of the interactive questions.
//
// The import question is asked unless answered by a flag. The test question
// is only relevant when the project already has a test harness: without one
// no test is generated, whatever the flags say.
func CollectConfig(ctx context.Context, cfg m.ScaffoldConfig, prompter Prompter, harnessExists bool, answered Answered) (m.ScaffoldConfig, error) {
	if !answered.Import {
		include, err := prompter.ConfirmImport(ctx)
		if err != nil {
			return cfg, err
		}

		cfg.IncludeImport = include
	}

	if !harnessExists {
		if cfg.WantsTest() {
			slog.Warn("No test harness found, skipping test generation", "element", cfg.ElementName, "testKind", cfg.TestKind)
		}

		cfg.TestKind = m.TestNone

		return cfg, nil
	}

	if !answered.TestKind {
		kind, err := prompter.SelectTestKind(ctx)
		if err != nil {
			return cfg, err
		}

		cfg.TestKind = kind
	}

	return cfg, nil
}
