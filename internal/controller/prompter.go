package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	m "elgen.dev/pkg/elgen/internal/model"
)

// ErrPromptAborted is returned when the user cancels a prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// Prompter asks the interactive questions of the el command.
type Prompter interface {
	ConfirmImport(ctx context.Context) (bool, error)
	SelectTestKind(ctx context.Context) (m.TestKind, error)
}

// HuhPrompter asks questions on a terminal with huh forms.
type HuhPrompter struct {
	input      io.Reader
	output     io.Writer
	accessible bool
}

// NewHuhPrompter creates a HuhPrompter. Accessible mode replaces the
// interactive widgets with plain line prompts.
func NewHuhPrompter(input io.Reader, output io.Writer, accessible bool) *HuhPrompter {
	return &HuhPrompter{input: input, output: output, accessible: accessible}
}

// ConfirmImport asks whether to import the element in elements.html.
// The default answer is no.
func (p *HuhPrompter) ConfirmImport(ctx context.Context) (bool, error) {
	include := false

	field := huh.NewConfirm().
		Title("Would you like to include an import in your elements.html file?").
		Affirmative("Yes").
		Negative("No").
		Value(&include)

	if err := p.run(ctx, field); err != nil {
		return false, err
	}

	return include, nil
}

// SelectTestKind asks which test stub to create. The default answer is TDD.
func (p *HuhPrompter) SelectTestKind(ctx context.Context) (m.TestKind, error) {
	choice := string(m.TestTDD)

	options := make([]string, 0, len(m.TestKinds))
	for _, kind := range m.TestKinds {
		options = append(options, string(kind))
	}

	field := huh.NewSelect[string]().
		Title("What type of test would you like to create?").
		Options(huh.NewOptions(options...)...).
		Value(&choice)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}

	return m.ParseTestKind(choice)
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.input).
		WithOutput(p.output).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrPromptAborted
		}

		return fmt.Errorf("prompt: %w", err)
	}

	return nil
}

// StaticPrompter answers every question without asking. It is used when
// prompting is disabled or no terminal is attached.
type StaticPrompter struct {
	Import bool
	Test   m.TestKind
}

// NewStaticPrompter returns a StaticPrompter giving the interactive defaults:
// no import and a TDD test.
func NewStaticPrompter() *StaticPrompter {
	return &StaticPrompter{Import: false, Test: m.TestTDD}
}

// ConfirmImport returns the configured answer.
func (p *StaticPrompter) ConfirmImport(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return p.Import, nil
}

// SelectTestKind returns the configured answer.
func (p *StaticPrompter) SelectTestKind(ctx context.Context) (m.TestKind, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return p.Test, nil
}
