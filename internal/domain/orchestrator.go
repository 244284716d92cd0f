package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"elgen.dev/pkg/elgen/internal/adapter"
	m "elgen.dev/pkg/elgen/internal/model"
)

// Orchestrator runs a whole scaffolding pass: it generates the element files
// and wires the element into the aggregator and the test harness.
type Orchestrator interface {
	Run(ctx context.Context, cfg m.ScaffoldConfig) (*m.ScaffoldResult, error)
}

type orchestrator struct {
	projectRoot m.Path
	fsAdapter   adapter.ProjectFSAdapter
	renderer    adapter.TemplateRenderer
	beautifier  adapter.Beautifier
}

// NewOrchestrator constructs an Orchestrator working on the project rooted at
// projectRoot, which must be absolute.
func NewOrchestrator(
	projectRoot m.Path,
	fsAdapter adapter.ProjectFSAdapter,
	renderer adapter.TemplateRenderer,
	beautifier adapter.Beautifier,
) Orchestrator {
	return &orchestrator{
		projectRoot: projectRoot,
		fsAdapter:   fsAdapter,
		renderer:    renderer,
		beautifier:  beautifier,
	}
}

// Run validates cfg and performs every step it asks for. Steps run in order
// and the first failure stops the run; files written by earlier steps are
// kept and listed in the returned result. With cfg.DryRun set, writes are
// recorded in the result only.
func (o *orchestrator) Run(ctx context.Context, cfg m.ScaffoldConfig) (*m.ScaffoldResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		slog.Error("Invalid scaffold configuration", "element", cfg.ElementName, "error", err)
		return nil, err
	}

	paths, err := Resolve(cfg, string(o.projectRoot))
	if err != nil {
		slog.Error("Failed to resolve paths", "projectRoot", o.projectRoot, "error", err)
		return nil, err
	}

	slog.Debug("Resolved paths",
		"element", paths.ElementName,
		"target", paths.TargetElementDir,
		"depCache", paths.RelativeDepCachePath,
	)

	fsAdapter := o.fsAdapter
	if cfg.DryRun {
		fsAdapter = adapter.NewDryRunFSAdapter(fsAdapter)
	}

	run := &scaffoldRun{
		orchestrator: o,
		fs:           fsAdapter,
		cfg:          cfg,
		paths:        paths,
		data:         BuildContext(cfg, paths),
		result:       &m.ScaffoldResult{Paths: paths, DryRun: cfg.DryRun},
	}

	for _, step := range run.steps() {
		if err := ctx.Err(); err != nil {
			return run.result, err
		}

		if err := step(ctx); err != nil {
			return run.result, err
		}
	}

	return run.result, nil
}

// scaffoldRun holds the state of a single Run call.
type scaffoldRun struct {
	*orchestrator

	fs     adapter.ProjectFSAdapter
	cfg    m.ScaffoldConfig
	paths  m.ResolvedPaths
	data   TemplateContext
	result *m.ScaffoldResult
}

func (r *scaffoldRun) steps() []func(context.Context) error {
	steps := []func(context.Context) error{r.generateElement}

	if r.cfg.IncludeDocs {
		steps = append(steps, r.generateDocs)
	}

	if r.cfg.IncludeImport {
		steps = append(steps, r.wireImport)
	}

	if r.cfg.WantsTest() {
		steps = append(steps, r.generateTest, r.registerSuite)
	}

	return steps
}

func (r *scaffoldRun) generateElement(ctx context.Context) error {
	return r.create(ctx, adapter.TemplateElement, r.paths.ElementFile())
}

func (r *scaffoldRun) generateDocs(ctx context.Context) error {
	if err := r.create(ctx, adapter.TemplateDocs, r.paths.DocsFile()); err != nil {
		return err
	}

	return r.create(ctx, adapter.TemplateDemo, r.paths.DemoFile())
}

func (r *scaffoldRun) generateTest(ctx context.Context) error {
	name := adapter.TemplateTDD
	if r.cfg.TestKind == m.TestBDD {
		name = adapter.TemplateBDD
	}

	return r.create(ctx, name, r.paths.TestFile())
}

func (r *scaffoldRun) wireImport(ctx context.Context) error {
	target := r.paths.AggregatorFile()

	before, err := r.fs.ReadFile(ctx, target)
	if err != nil {
		slog.Error("Failed to read aggregator", "path", target, "error", err)
		return fmt.Errorf("reading %s: %w", r.paths.Rel(target), err)
	}

	var after string
	if r.cfg.Dedupe {
		var changed bool
		if after, changed = WireImportOnce(string(before), r.paths.ImportRef); !changed {
			slog.Info("Import already present", "path", target, "ref", r.paths.ImportRef)
			return nil
		}
	} else {
		after = WireImport(string(before), r.paths.ImportRef)
	}

	return r.modify(ctx, target, before, []byte(after))
}

func (r *scaffoldRun) registerSuite(ctx context.Context) error {
	target := r.paths.HarnessFile()

	before, err := r.fs.ReadFile(ctx, target)
	if err != nil {
		slog.Error("Failed to read test harness", "path", target, "error", err)
		return fmt.Errorf("reading %s: %w", r.paths.Rel(target), err)
	}

	rewriter := NewSuiteListRewriter(WithDedupe(r.cfg.Dedupe))

	rewritten, err := rewriter.RegisterSuite(string(before), r.paths.SuiteName())
	if err != nil {
		slog.Error("Failed to register test suite", "path", target, "suite", r.paths.SuiteName(), "error", err)
		return fmt.Errorf("registering %s in %s: %w", r.paths.SuiteName(), r.paths.Rel(target), err)
	}

	after, err := r.beautifier.Beautify(ctx, []byte(rewritten))
	if err != nil {
		slog.Error("Failed to reformat test harness", "path", target, "error", err)
		return fmt.Errorf("reformatting %s: %w", r.paths.Rel(target), err)
	}

	if bytes.Equal(before, after) {
		slog.Info("Test harness unchanged", "path", target)
		return nil
	}

	if suites, err := rewriter.ParseSuiteList(string(after)); err == nil {
		slog.Debug("Registered test suite", "path", target, "suite", r.paths.SuiteName(), "suites", len(suites))
	}

	return r.modify(ctx, target, before, after)
}

// create renders a template into a new file. Existing files are only
// replaced when the configuration forces it.
func (r *scaffoldRun) create(ctx context.Context, templateName string, target m.Path) error {
	exists, err := r.fs.Exists(ctx, target)
	if err != nil {
		slog.Error("Failed to check target file", "path", target, "error", err)
		return fmt.Errorf("checking %s: %w", r.paths.Rel(target), err)
	}

	if exists && !r.cfg.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, r.paths.Rel(target))
	}

	content, err := r.renderer.Render(ctx, templateName, r.data)
	if err != nil {
		slog.Error("Failed to render template", "template", templateName, "error", err)
		return fmt.Errorf("rendering %s: %w", templateName, err)
	}

	var before []byte
	if exists {
		if before, err = r.fs.ReadFile(ctx, target); err != nil {
			return fmt.Errorf("reading %s: %w", r.paths.Rel(target), err)
		}
	}

	if err := r.write(ctx, target, content); err != nil {
		return err
	}

	kind := m.WriteCreate
	if exists {
		kind = m.WriteModify
	}

	r.result.Writes = append(r.result.Writes, m.FileWrite{Path: target, Kind: kind, Before: before, After: content})

	return nil
}

func (r *scaffoldRun) modify(ctx context.Context, target m.Path, before, after []byte) error {
	if err := r.write(ctx, target, after); err != nil {
		return err
	}

	r.result.Writes = append(r.result.Writes, m.FileWrite{Path: target, Kind: m.WriteModify, Before: before, After: after})

	return nil
}

func (r *scaffoldRun) write(ctx context.Context, target m.Path, content []byte) error {
	if err := r.fs.WriteFile(ctx, target, content); err != nil {
		slog.Error("Failed to write file", "path", target, "error", err)
		return fmt.Errorf("writing %s: %w", r.paths.Rel(target), err)
	}

	slog.Debug("Wrote file", "path", target, "bytes", len(content), "dryRun", r.cfg.DryRun)

	return nil
}
